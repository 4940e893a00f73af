package models

// Severity grades how far a reading exceeds one threshold
type Severity string

const (
	SeveritySevere Severity = "SEVERE"
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
)

// ActionUrgency is the required response class, keyed off the raw AQI
type ActionUrgency string

const (
	UrgencyImmediate     ActionUrgency = "IMMEDIATE"
	UrgencyUrgent        ActionUrgency = "URGENT"
	UrgencyWithin48Hours ActionUrgency = "WITHIN_48_HOURS"
)

// Legal status labels
const (
	LegalStatusCompliant    = "COMPLIANT"
	LegalStatusNonCompliant = "NON-COMPLIANT"
)

// Law is a statutory AQI threshold
type Law struct {
	Name      string   `json:"name"`
	Code      string   `json:"code"`
	Threshold float64  `json:"threshold"`
	Authority string   `json:"authority"`
	Penalties []string `json:"penalties"`
	Section   string   `json:"section"`
}

// ViolationRecord is a threshold strictly exceeded by a reading. Only built when Excess > 0.
type ViolationRecord struct {
	Law
	CurrentAqi       float64       `json:"current_aqi"`
	Excess           float64       `json:"excess"`
	ExcessPercentage float64       `json:"excess_percentage"`
	Severity         Severity      `json:"severity"`
	ActionRequired   ActionUrgency `json:"action_required"`
	ComplaintBasis   string        `json:"complaint_basis"`
}

// ViolationSummary aggregates a violation list
type ViolationSummary struct {
	TotalViolations int     `json:"total_violations"`
	MajorViolations int     `json:"major_violations"`
	TotalExcess     float64 `json:"total_excess"`
	HighestPenalty  string  `json:"highest_penalty"`
	LegalStatus     string  `json:"legal_status"`
}

// ViolationReport is the result of evaluating one AQI reading
type ViolationReport struct {
	Aqi                float64           `json:"aqi"`
	Location           Location          `json:"location"`
	Violations         []ViolationRecord `json:"violations"`
	Summary            ViolationSummary  `json:"summary"`
	RecommendedActions []string          `json:"recommended_actions"`
}

// Compliant reports whether no threshold was exceeded
func (r *ViolationReport) Compliant() bool {
	return len(r.Violations) == 0
}
