package service

import (
	"fmt"
	"unicode/utf8"

	"airjustice/metrics"
	"airjustice/models"
	"airjustice/reference"
	"airjustice/utils"
)

const noPenalty = "None"

// LegalService evaluates readings against statutory thresholds
type LegalService struct {
	laws []models.Law
}

// NewLegalService creates a legal service over the given laws, in declaration order.
// A nil slice uses reference.Laws.
func NewLegalService(laws []models.Law) *LegalService {
	if laws == nil {
		laws = reference.Laws
	}
	return &LegalService{laws: laws}
}

// ViolationSeverity grades a per-law excess
func ViolationSeverity(excess float64) models.Severity {
	switch {
	case excess > 100:
		return models.SeveritySevere
	case excess > 50:
		return models.SeverityHigh
	case excess > 20:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}

// ActionUrgencyFor derives the response class from the raw reading, not the excess
func ActionUrgencyFor(aqi float64) models.ActionUrgency {
	switch {
	case aqi > 300:
		return models.UrgencyImmediate
	case aqi > 200:
		return models.UrgencyUrgent
	default:
		return models.UrgencyWithin48Hours
	}
}

// Violations returns the thresholds strictly exceeded by aqi, in declaration order
func (s *LegalService) Violations(aqi float64) []models.ViolationRecord {
	violations := []models.ViolationRecord{}
	urgency := ActionUrgencyFor(aqi)
	for _, law := range s.laws {
		excess := aqi - law.Threshold
		if excess <= 0 {
			continue
		}
		law.Penalties = append([]string(nil), law.Penalties...)
		violations = append(violations, models.ViolationRecord{
			Law:              law,
			CurrentAqi:       aqi,
			Excess:           excess,
			ExcessPercentage: excess / law.Threshold * 100,
			Severity:         ViolationSeverity(excess),
			ActionRequired:   urgency,
			ComplaintBasis: fmt.Sprintf("Violation of %s exceeding threshold by %s points",
				law.Name, utils.FormatDecimal(excess)),
		})
		metrics.ViolationsDetected.WithLabelValues(law.Code).Inc()
	}
	return violations
}

// CheckViolations evaluates one reading and summarises the result
func (s *LegalService) CheckViolations(aqi float64, loc models.Location) *models.ViolationReport {
	violations := s.Violations(aqi)
	return &models.ViolationReport{
		Aqi:                aqi,
		Location:           loc,
		Violations:         violations,
		Summary:            SummarizeViolations(violations),
		RecommendedActions: RecommendedActions(violations),
	}
}

// SummarizeViolations computes the derived summary fields
func SummarizeViolations(violations []models.ViolationRecord) models.ViolationSummary {
	summary := models.ViolationSummary{
		TotalViolations: len(violations),
		HighestPenalty:  noPenalty,
		LegalStatus:     models.LegalStatusCompliant,
	}
	if len(violations) == 0 {
		return summary
	}
	summary.LegalStatus = models.LegalStatusNonCompliant

	longest := -1
	for _, v := range violations {
		if v.Severity == models.SeveritySevere {
			summary.MajorViolations++
		}
		summary.TotalExcess += v.Excess
		for _, p := range v.Penalties {
			// strictly longer only: ties keep the first penalty seen
			if n := utf8.RuneCountInString(p); n > longest {
				longest = n
				summary.HighestPenalty = p
			}
		}
	}
	return summary
}

// RecommendedActions lists what a citizen should do about the violations
func RecommendedActions(violations []models.ViolationRecord) []string {
	if len(violations) == 0 {
		return []string{"Continue monitoring", "Support clean air policies"}
	}

	actions := []string{"FILE OFFICIAL COMPLAINT IMMEDIATELY"}
	for _, v := range violations {
		switch v.Severity {
		case models.SeveritySevere:
			actions = append(actions,
				fmt.Sprintf("Demand immediate action under %s", v.Name),
				fmt.Sprintf("Contact %s directly", v.Authority),
			)
		case models.SeverityHigh:
			actions = append(actions,
				fmt.Sprintf("File complaint with %s", v.Authority),
				"Alert local media and community",
			)
		}
	}
	return append(actions,
		"Document all violations with timestamps",
		"Form community action group",
		"Consult environmental lawyer if needed",
		"Follow up every 48 hours until resolved",
	)
}
