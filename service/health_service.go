package service

import (
	"fmt"
	"strings"

	"airjustice/models"
	"airjustice/utils"
)

var (
	generalRisks = []string{
		"Respiratory system inflammation",
		"Reduced lung function",
		"Increased infection risk",
		"Cardiovascular strain",
	}
	shortTermMeasures = []string{"Use air purifiers", "Close windows", "Stay hydrated"}
	longTermMeasures  = []string{"Support clean air policies", "Plant trees", "Use public transport"}
)

// HealthService turns a reading and optional profile into health advice. Stateless.
type HealthService struct{}

// NewHealthService creates a new health service
func NewHealthService() *HealthService {
	return &HealthService{}
}

// HealthImpact builds the advice bundle. age 0 means unknown.
// conditions is a comma-separated list matched case-insensitively; unknown entries are ignored.
func (s *HealthService) HealthImpact(aqi float64, age int, conditions string) *models.HealthImpact {
	cigarettes := aqi / 100
	risk, advice := riskTier(aqi)
	conds := parseConditions(conditions)

	return &models.HealthImpact{
		Aqi: aqi,
		RiskAssessment: models.RiskAssessment{
			OverallRisk:         risk,
			CigaretteEquivalent: utils.Round(cigarettes, 1),
			HealthIndex:         utils.Round(100-aqi/5, 1),
			RecoveryTime:        fmt.Sprintf("%d hours in clean air", int(cigarettes*2)),
		},
		SpecificRisks: models.SpecificRisks{
			AgeRelated:       ageRisk(age),
			ConditionRelated: conditionRisks(conds),
			General:          append([]string(nil), generalRisks...),
		},
		ProtectiveMeasures: models.ProtectiveMeasures{
			Immediate: advice,
			ShortTerm: append([]string(nil), shortTermMeasures...),
			LongTerm:  append([]string(nil), longTermMeasures...),
		},
		MedicalAdvice: medicalAdvice(aqi, age, conds),
	}
}

func riskTier(aqi float64) (string, []string) {
	switch {
	case aqi <= 50:
		return "LOW", []string{"No restrictions needed", "Ideal for outdoor activities"}
	case aqi <= 100:
		return "MODERATE", []string{"Sensitive groups take precautions", "Limit prolonged exertion"}
	case aqi <= 150:
		return "HIGH for sensitive groups", []string{"Sensitive groups avoid outdoor activities", "Keep medications handy"}
	case aqi <= 200:
		return "HIGH for everyone", []string{"Everyone reduce outdoor activities", "Use air purifiers", "Wear masks"}
	case aqi <= 300:
		return "VERY HIGH", []string{"Avoid all outdoor activities", "Stay indoors", "Use N95 masks"}
	default:
		return "SEVERE", []string{"Health emergency", "Stay indoors with purifiers", "Consider relocation"}
	}
}

func ageRisk(age int) string {
	switch {
	case age == 0:
		return ""
	case age < 12:
		return "Children: Developing lungs at high risk"
	case age > 60:
		return "Elderly: Weakened immunity and respiratory systems"
	default:
		return ""
	}
}

func parseConditions(conditions string) []string {
	if conditions == "" {
		return nil
	}
	parts := strings.Split(conditions, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.ToLower(strings.TrimSpace(p)))
	}
	return out
}

func conditionRisks(conds []string) []string {
	risks := []string{}
	for _, c := range conds {
		switch c {
		case "asthma", "copd", "bronchitis":
			risks = append(risks, fmt.Sprintf("%s: High risk of exacerbation", strings.ToUpper(c)))
		case "heart", "cardiovascular":
			risks = append(risks, "HEART CONDITIONS: Increased cardiovascular risk")
		}
	}
	return risks
}

func hasAny(conds []string, names ...string) bool {
	for _, c := range conds {
		for _, n := range names {
			if c == n {
				return true
			}
		}
	}
	return false
}

func medicalAdvice(aqi float64, age int, conds []string) []string {
	var advice []string
	if aqi > 200 {
		advice = append(advice,
			"CONSULT DOCTOR IF: Experiencing breathing difficulty, chest pain, or dizziness",
			"EMERGENCY: Call ambulance if severe respiratory distress",
		)
	}
	if age != 0 && age < 12 {
		advice = append(advice, "PEDIATRIC ADVICE: Limit outdoor play, use child-sized masks")
	}
	if age > 60 {
		advice = append(advice, "GERIATRIC ADVICE: Regular health check-ups, avoid exposure")
	}
	if hasAny(conds, "asthma", "copd") {
		advice = append(advice, "RESPIRATORY PATIENTS: Keep inhalers/medications readily available")
	}
	// "cardio" here, not "cardiovascular"
	if hasAny(conds, "heart", "cardio") {
		advice = append(advice, "CARDIAC PATIENTS: Monitor blood pressure, avoid exertion")
	}
	return append(advice,
		"GENERAL: Stay hydrated, eat antioxidant-rich foods",
		"MONITORING: Check AQI regularly, adjust activities accordingly",
	)
}
