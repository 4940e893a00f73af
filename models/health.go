package models

// RiskAssessment is the headline of a health impact analysis
type RiskAssessment struct {
	OverallRisk         string  `json:"overall_risk"`
	CigaretteEquivalent float64 `json:"cigarette_equivalent"`
	HealthIndex         float64 `json:"health_index"`
	RecoveryTime        string  `json:"recovery_time"`
}

// SpecificRisks lists age, condition and general risks
type SpecificRisks struct {
	AgeRelated       string   `json:"age_related"`
	ConditionRelated []string `json:"condition_related"`
	General          []string `json:"general"`
}

// ProtectiveMeasures groups advice by horizon
type ProtectiveMeasures struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"short_term"`
	LongTerm  []string `json:"long_term"`
}

// HealthImpact is the advice bundle for one reading and optional profile
type HealthImpact struct {
	Aqi                float64            `json:"aqi"`
	RiskAssessment     RiskAssessment     `json:"risk_assessment"`
	SpecificRisks      SpecificRisks      `json:"specific_risks"`
	ProtectiveMeasures ProtectiveMeasures `json:"protective_measures"`
	MedicalAdvice      []string           `json:"medical_advice"`
}

// Impact tiers of a pollution source, highest first
const (
	ImpactVeryHigh = "VERY_HIGH"
	ImpactHigh     = "HIGH"
	ImpactMedium   = "MEDIUM"
	ImpactLow      = "LOW"
)

// PollutionSource is one detected likely source
type PollutionSource struct {
	Type           string  `json:"type"`
	Confidence     int     `json:"confidence"`
	Impact         string  `json:"impact"`
	DistanceKm     float64 `json:"distance_km"`
	Description    string  `json:"description"`
	Recommendation string  `json:"recommendation"`
}

// SourceAnalysis summarises a detection run
type SourceAnalysis struct {
	TotalSources          int    `json:"total_sources"`
	PrimarySource         string `json:"primary_source"`
	EstimatedContribution string `json:"estimated_contribution"`
	PeakHours             string `json:"peak_hours"`
}

// SourceReport is the ranked source list for a coordinate
type SourceReport struct {
	Location           Location          `json:"location"`
	DetectedSources    []PollutionSource `json:"detected_sources"`
	Analysis           SourceAnalysis    `json:"analysis"`
	ActionableInsights []string          `json:"actionable_insights"`
}
