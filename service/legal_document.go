package service

import (
	"fmt"
	"strings"
	"text/template"

	"airjustice/models"
	"airjustice/reference"
	"airjustice/utils"
)

const (
	documentBanner     = "======================================================================"
	defaultSourceType  = "Multiple Sources"
	documentDateLayout = "2006-01-02T15:04:05.999999"
)

var requestedActions = []string{
	"Immediate investigation under relevant environmental laws",
	"Installation of continuous monitoring systems",
	"Penalties for violators as per law",
	"Public health advisory issuance",
	"Regular compliance reporting",
}

var legalDocumentTemplate = template.Must(template.New("legal_document").Parse(`{{.Banner}}
                 OFFICIAL LEGAL COMPLAINT DOCUMENT
{{.Banner}}

COMPLAINT ID: {{.ID}}
DATE: {{.Date}}
STATUS: {{.Status}}

VIOLATION DETAILS:
Location: {{.Location}}
AQI: {{.Aqi}}
Source Type: {{.SourceType}}

LEGAL BASIS:
{{range .LegalBasis}}- {{.}}
{{end}}
IMPACT ANALYSIS:
- Affected Area: {{.Impact.AffectedArea}}
- Estimated Population: {{.Impact.EstimatedPopulation}}
- Health Risk: {{.Impact.HealthRisk}}
- Environmental Impact: {{.Impact.EnvironmentalImpact}}

REQUESTED ACTIONS:
{{range .RequestedActions}}{{.}}
{{end}}
AUTHORITIES NOTIFIED:
{{range .Authorities}}- {{.}}
{{end}}
This complaint is filed in public interest under:
{{range .Acts}}- {{.}}
{{end}}
{{.Banner}}
`))

type legalDocumentView struct {
	Banner           string
	ID               string
	Date             string
	Status           models.ComplaintStatus
	Location         string
	Aqi              string
	SourceType       string
	LegalBasis       []string
	Impact           models.ImpactAnalysis
	RequestedActions []string
	Authorities      []string
	Acts             []string
}

// RenderLegalDocument formats a complaint record as a plain-text legal complaint.
// Pure function of the record.
func RenderLegalDocument(c *models.Complaint) (string, error) {
	view := legalDocumentView{
		Banner:      documentBanner,
		ID:          c.ID,
		Date:        c.Timestamp.Format(documentDateLayout),
		Status:      c.Status,
		Location:    fmt.Sprintf("{'lat': %s, 'lon': %s}", utils.FormatDecimal(c.Violation.Location.Lat), utils.FormatDecimal(c.Violation.Location.Lon)),
		Aqi:         utils.FormatDecimal(c.Violation.Aqi),
		SourceType:  defaultSourceType,
		Impact:      c.ImpactAnalysis,
		Authorities: c.Processing.AuthoritiesNotified,
		Acts:        reference.LegalBasisActs,
	}
	if c.Violation.SourceType != nil && *c.Violation.SourceType != "" {
		view.SourceType = *c.Violation.SourceType
	}
	for _, v := range c.Violation.LegalBasis {
		view.LegalBasis = append(view.LegalBasis,
			fmt.Sprintf("%s (Exceeded by %s points)", v.Name, utils.FormatDecimal(v.Excess)))
	}
	for i, a := range requestedActions {
		view.RequestedActions = append(view.RequestedActions, fmt.Sprintf("%d. %s", i+1, a))
	}

	var b strings.Builder
	if err := legalDocumentTemplate.Execute(&b, view); err != nil {
		return "", fmt.Errorf("failed to render legal document for %s: %w", c.ID, err)
	}
	return b.String(), nil
}
