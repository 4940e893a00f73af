// Package reference holds the static, read-only tables behind the API: statutory AQI
// thresholds, city coordinates, AQI categories and complaint lifecycle labels.
// Lookups never fail; unknown keys resolve to a default label.
package reference

import "airjustice/models"

// Laws is the statutory threshold table, in declaration order. Violation lists preserve this order.
var Laws = []models.Law{
	{
		Name:      "National Green Tribunal Act, 2010",
		Code:      "NGT Order 2018",
		Threshold: 200,
		Authority: "National Green Tribunal",
		Penalties: []string{
			"₹5 lakh - ₹50 lakh fine",
			"Imprisonment up to 5 years",
			"Industry closure",
			"Daily fines until compliance",
		},
		Section: "Section 15, 16, 19",
	},
	{
		Name:      "CPCB National Ambient Air Quality Standards",
		Code:      "CPCB S.O. 3067(E)",
		Threshold: 250,
		Authority: "Central Pollution Control Board",
		Penalties: []string{
			"₹1 crore/day fine",
			"Immediate closure notice",
			"Criminal prosecution",
			"Asset seizure",
		},
		Section: "Schedule VI",
	},
	{
		Name:      "Environment Protection Act, 1986",
		Code:      "EPA Rules",
		Threshold: 300,
		Authority: "Ministry of Environment",
		Penalties: []string{
			"₹1 lakh/day penalty",
			"National Green Tribunal case",
			"Environmental compensation",
			"Public interest litigation",
		},
		Section: "Section 3, 5",
	},
	{
		Name:      "WHO Air Quality Guidelines",
		Code:      "WHO AQG 2021",
		Threshold: 25,
		Authority: "World Health Organization",
		Penalties: []string{
			"International pressure",
			"Health advisory",
			"Global ranking impact",
			"Travel advisories",
		},
		Section: "Guideline 4.1",
	},
}

// AuthoritiesNotified are copied onto every filed complaint
var AuthoritiesNotified = []string{
	"National Green Tribunal",
	"Central Pollution Control Board",
	"State Pollution Control Board",
	"District Magistrate",
}

// DefaultExpectedTimeline is the processing schedule promised at filing
var DefaultExpectedTimeline = models.ExpectedTimeline{
	Acknowledgment: "24 hours",
	Investigation:  "48 hours",
	Action:         "7 days",
	Resolution:     "30 days",
}

// Contacts is the static contact block returned with every status read
var Contacts = models.ContactInfo{
	NGT:       "ngt@nic.in",
	CPCB:      "cpcb@nic.in",
	Emergency: "1800-180-1551",
}

// LegalBasisActs are cited at the foot of every legal complaint document
var LegalBasisActs = []string{
	"Right to Information Act, 2005",
	"Right to Clean Air (Article 21, Constitution)",
	"Environmental protection laws",
}
