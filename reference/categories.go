package reference

import "airjustice/models"

// Category band upper bounds (inclusive)
const (
	GoodMax          = 50
	ModerateMax      = 100
	SensitiveMax     = 150
	UnhealthyMax     = 200
	VeryUnhealthyMax = 300
)

var (
	categoryGood          = models.Category{Name: "Good", Color: "#10B981", HealthImplications: "Minimal impact"}
	categoryModerate      = models.Category{Name: "Moderate", Color: "#FBBF24", HealthImplications: "Minor discomfort for sensitive people"}
	categorySensitive     = models.Category{Name: "Unhealthy for Sensitive", Color: "#F97316", HealthImplications: "Increased health effects for sensitive groups"}
	categoryUnhealthy     = models.Category{Name: "Unhealthy", Color: "#EF4444", HealthImplications: "Everyone may experience health effects"}
	categoryVeryUnhealthy = models.Category{Name: "Very Unhealthy", Color: "#8B5CF6", HealthImplications: "Health alert: everyone may experience more serious health effects"}
	categoryHazardous     = models.Category{Name: "Hazardous", Color: "#7C2D12", HealthImplications: "Health emergency: entire population affected"}
)

// Categorize maps an AQI value to exactly one category. Boundaries belong to the lower band.
func Categorize(aqi float64) models.Category {
	switch {
	case aqi <= GoodMax:
		return categoryGood
	case aqi <= ModerateMax:
		return categoryModerate
	case aqi <= SensitiveMax:
		return categorySensitive
	case aqi <= UnhealthyMax:
		return categoryUnhealthy
	case aqi <= VeryUnhealthyMax:
		return categoryVeryUnhealthy
	default:
		return categoryHazardous
	}
}

// Pollutant describes one tracked pollutant and its fixed fraction of the index
type Pollutant struct {
	Key          string
	Fraction     float64
	Places       int
	Unit         string
	Source       string
	HealthEffect string
}

// Pollutants is the breakdown table applied to every synthesized reading
var Pollutants = []Pollutant{
	{"pm25", 0.6, 1, "µg/m³", "Particulate Matter 2.5", "Respiratory issues, cardiovascular problems"},
	{"pm10", 0.8, 1, "µg/m³", "Dust, construction, vehicles", "Eye irritation, breathing discomfort"},
	{"no2", 0.3, 1, "ppb", "Vehicle emissions, power plants", "Asthma exacerbation, lung damage"},
	{"so2", 0.2, 1, "ppb", "Industrial emissions", "Respiratory tract irritation"},
	{"co", 0.01, 2, "ppm", "Incomplete combustion", "Headaches, dizziness, heart issues"},
	{"o3", 0.4, 1, "ppb", "Photochemical reactions", "Chest pain, coughing, throat irritation"},
}

var (
	recommendationEmergency = models.Recommendation{
		Alert: "HEALTH EMERGENCY PREDICTED",
		Actions: []string{
			"Avoid all outdoor activities during peak hours",
			"Use highest grade air purifiers",
			"Consider temporary relocation if possible",
			"Keep emergency medications ready",
		},
	}
	recommendationLegal = models.Recommendation{
		Alert: "LEGAL VIOLATIONS PREDICTED",
		Actions: []string{
			"Plan indoor activities during peak hours",
			"Use N95 masks if going outside",
			"File preventive complaint with authorities",
			"Alert community members",
		},
	}
	recommendationCaution = models.Recommendation{
		Alert: "UNHEALTHY CONDITIONS PREDICTED",
		Actions: []string{
			"Sensitive groups stay indoors",
			"Use air purifiers",
			"Keep windows closed during peak hours",
			"Monitor health symptoms",
		},
	}
	recommendationRoutine = models.Recommendation{
		Alert: "CONDITIONS MANAGEABLE",
		Actions: []string{
			"Normal activities with precautions",
			"Stay hydrated",
			"Monitor AQI changes",
			"Support clean air initiatives",
		},
	}
)

// ForecastRecommendation selects the recommendation tier for a forecast peak.
// The returned Actions slice is a copy.
func ForecastRecommendation(peakAqi float64) models.Recommendation {
	var r models.Recommendation
	switch {
	case peakAqi > 300:
		r = recommendationEmergency
	case peakAqi > 200:
		r = recommendationLegal
	case peakAqi > 150:
		r = recommendationCaution
	default:
		r = recommendationRoutine
	}
	r.Actions = append([]string(nil), r.Actions...)
	return r
}
