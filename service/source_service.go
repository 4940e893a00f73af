package service

import (
	"fmt"
	"sort"
	"strings"

	"airjustice/models"
	"airjustice/utils"
)

const sourcePeakHours = "8-10 AM, 6-8 PM"

type sourceProfile struct {
	kind           string
	minConfidence  int
	maxConfidence  int // exclusive
	impact         string
	minDistanceKm  float64
	maxDistanceKm  float64
	description    string
	recommendation string
}

var sourceProfiles = []sourceProfile{
	{"VEHICULAR_TRAFFIC", 70, 95, models.ImpactHigh, 0.5, 3,
		"Major road junction with heavy traffic", "Promote public transport, implement odd-even scheme"},
	{"INDUSTRIAL_EMISSIONS", 60, 85, models.ImpactVeryHigh, 2, 5,
		"Manufacturing units without proper filters", "Install emission control devices, regular inspections"},
	{"CONSTRUCTION_ACTIVITY", 50, 80, models.ImpactMedium, 0.3, 1.5,
		"Building construction with dust emissions", "Use dust suppressants, cover construction material"},
	{"WASTE_BURNING", 40, 75, models.ImpactHigh, 1, 4,
		"Open burning of garbage and leaves", "Promote waste segregation, provide collection services"},
}

var impactRank = map[string]int{
	models.ImpactVeryHigh: 4,
	models.ImpactHigh:     3,
	models.ImpactMedium:   2,
	models.ImpactLow:      1,
}

// SourceService estimates likely pollution sources around a coordinate
type SourceService struct {
	rng utils.RandomSource
}

// NewSourceService creates a new source service
func NewSourceService(rng utils.RandomSource) *SourceService {
	return &SourceService{rng: rng}
}

// DetectSources returns the candidate sources ranked by impact tier, then confidence, both descending
func (s *SourceService) DetectSources(lat, lon float64) *models.SourceReport {
	sources := make([]models.PollutionSource, 0, len(sourceProfiles))
	for _, p := range sourceProfiles {
		sources = append(sources, models.PollutionSource{
			Type:           p.kind,
			Confidence:     utils.IntRange(s.rng, p.minConfidence, p.maxConfidence),
			Impact:         p.impact,
			DistanceKm:     utils.Round(utils.Uniform(s.rng, p.minDistanceKm, p.maxDistanceKm), 2),
			Description:    p.description,
			Recommendation: p.recommendation,
		})
	}
	RankSources(sources)

	primary := sources[0]
	return &models.SourceReport{
		Location:        models.Location{Lat: lat, Lon: lon},
		DetectedSources: sources,
		Analysis: models.SourceAnalysis{
			TotalSources:          len(sources),
			PrimarySource:         primary.Type,
			EstimatedContribution: fmt.Sprintf("%d%% of local pollution", utils.IntRange(s.rng, 60, 90)),
			PeakHours:             sourcePeakHours,
		},
		ActionableInsights: []string{
			fmt.Sprintf("Primary source: %s", humanizeSourceType(primary.Type)),
			fmt.Sprintf("Top recommendation: %s", primary.Recommendation),
			"Consider filing source-specific complaint",
			"Share findings with local community",
		},
	}
}

// RankSources sorts in place: VERY_HIGH > HIGH > MEDIUM > LOW, ties by confidence
func RankSources(sources []models.PollutionSource) {
	sort.SliceStable(sources, func(i, j int) bool {
		ri, rj := impactRank[sources[i].Impact], impactRank[sources[j].Impact]
		if ri != rj {
			return ri > rj
		}
		return sources[i].Confidence > sources[j].Confidence
	})
}

// VEHICULAR_TRAFFIC -> Vehicular Traffic
func humanizeSourceType(kind string) string {
	words := strings.Fields(strings.ReplaceAll(strings.ToLower(kind), "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
