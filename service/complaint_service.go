package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"airjustice/metrics"
	"airjustice/models"
	"airjustice/reference"
	"airjustice/repository"
	"airjustice/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	complainantType     = "citizen"
	complainantPlatform = "Air Justice"
	caseOfficerPending  = "To be assigned"
	filingStatusPending = "PENDING_AUTHORITY_REVIEW"
	defaultSensitivity  = "normal"

	// history anchor offset range, hours before "now": [1, 72)
	minHistoryOffsetHours = 1
	maxHistoryOffsetHours = 72

	// id draws per filing when the store rejects a duplicate
	maxIDAttempts = 3
)

// ComplaintService files complaints and derives their lifecycle state on read.
//
// Lifecycle rules:
// 1. The legal basis is evaluated once at filing and never recomputed
// 2. The current state is a pure function of time since filing; the stored status is a cache
// 3. The history anchor offset is drawn once at filing, so repeated reads agree
type ComplaintService struct {
	store           repository.ComplaintStore
	legal           *LegalService
	notifier        *NotificationService // optional
	clock           utils.Clock
	rng             utils.RandomSource
	trackingBaseURL string
}

// NewComplaintService creates a new complaint service
func NewComplaintService(
	store repository.ComplaintStore,
	legal *LegalService,
	notifier *NotificationService,
	clock utils.Clock,
	rng utils.RandomSource,
	trackingBaseURL string,
) *ComplaintService {
	return &ComplaintService{
		store:           store,
		legal:           legal,
		notifier:        notifier,
		clock:           clock,
		rng:             rng,
		trackingBaseURL: strings.TrimSuffix(trackingBaseURL, "/"),
	}
}

// GenerateComplaintID returns AJ-<YYYYMMDD>-<8 uppercase hex>. Uniqueness is left to the store.
func (s *ComplaintService) GenerateComplaintID(now time.Time) (string, error) {
	u, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		return "", fmt.Errorf("failed to generate complaint id: %w", err)
	}
	return fmt.Sprintf("AJ-%s-%s", now.Format("20060102"), strings.ToUpper(u.String()[:8])), nil
}

// FileComplaint records a complaint with its legal basis snapshot and renders the legal document.
// The AQI is not range-checked.
func (s *ComplaintService) FileComplaint(ctx context.Context, req *models.FileComplaintRequest) (*models.FileComplaintResponse, error) {
	now := s.clock()
	id, err := s.GenerateComplaintID(now)
	if err != nil {
		return nil, err
	}

	complaint := &models.Complaint{
		ID:        id,
		Timestamp: now,
		Status:    models.StatusSubmitted,
		Complainant: models.Complainant{
			Type:     complainantType,
			Platform: complainantPlatform,
			Profile:  normalizeProfile(req.UserProfile),
		},
		Violation: models.ViolationDetails{
			Location:    req.Location,
			Aqi:         req.Aqi,
			Description: req.Description,
			SourceType:  req.SourceType,
			LegalBasis:  s.legal.Violations(req.Aqi),
		},
		Processing: models.Processing{
			AuthoritiesNotified: append([]string(nil), reference.AuthoritiesNotified...),
			ExpectedTimeline:    reference.DefaultExpectedTimeline,
			TrackingURL:         s.trackingURL(id),
			CaseOfficer:         caseOfficerPending,
		},
		ImpactAnalysis:     impactAnalysis(req.Aqi),
		HistoryOffsetHours: utils.IntRange(s.rng, minHistoryOffsetHours, maxHistoryOffsetHours),
	}

	for attempt := 1; ; attempt++ {
		err := s.store.Record(ctx, complaint)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrDuplicateComplaintID) || attempt == maxIDAttempts {
			return nil, fmt.Errorf("failed to record complaint: %w", err)
		}
		log.Warn().Str("component", "complaint").Str("complaint_id", id).Msg("complaint id collision, drawing a new id")

		if id, err = s.GenerateComplaintID(now); err != nil {
			return nil, err
		}
		complaint.ID = id
		complaint.Processing.TrackingURL = s.trackingURL(id)
	}

	document, err := RenderLegalDocument(complaint)
	if err != nil {
		return nil, err
	}

	metrics.ComplaintsFiled.Inc()
	log.Info().
		Str("component", "complaint").
		Str("complaint_id", id).
		Float64("aqi", req.Aqi).
		Int("violations", len(complaint.Violation.LegalBasis)).
		Msg("complaint filed")

	if s.notifier != nil {
		s.notifier.ComplaintFiledAsync(complaint)
	}

	return &models.FileComplaintResponse{
		Success:     true,
		Message:     "Complaint filed successfully",
		ComplaintID: id,
		Details: models.FilingDetails{
			Status:          filingStatusPending,
			TrackingID:      id,
			ExpectedUpdates: "Within 24 hours",
			NextSteps: []string{
				"Complaint forwarded to NGT",
				"CPCB notification sent",
				"Local authorities alerted",
				"Case number generated",
			},
		},
		LegalDocument: document,
		Actions: models.FollowUpActions{
			Immediate: "Monitor your email for updates",
			FollowUp:  fmt.Sprintf("Check status at /complaint/status/%s", id),
			Share:     "Share with community for collective action",
			Escalate:  "Contact directly after 48 hours if no response",
		},
		Record: complaint,
	}, nil
}

// GetComplaintStatus derives the current state, caches it on the record and synthesizes the history.
// Returns repository.ErrComplaintNotFound for unknown ids.
func (s *ComplaintService) GetComplaintStatus(ctx context.Context, id string) (*models.ComplaintStatusResponse, error) {
	complaint, err := s.store.Find(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrComplaintNotFound) {
			metrics.StatusLookups.WithLabelValues("not_found").Inc()
		} else {
			metrics.StatusLookups.WithLabelValues("error").Inc()
		}
		return nil, err
	}
	metrics.StatusLookups.WithLabelValues("found").Inc()

	now := s.clock()
	if _, err := s.advance(ctx, complaint, now); err != nil {
		return nil, err
	}

	return &models.ComplaintStatusResponse{
		Success:       true,
		ComplaintID:   complaint.ID,
		Status:        complaint.Status,
		Details:       complaint,
		Updates:       SynthesizeHistory(complaint.Status, s.historyAnchor(complaint, now)),
		NextMilestone: reference.NextMilestone(complaint.Status),
		Contact:       reference.Contacts,
	}, nil
}

// RefreshStatuses re-derives every complaint's state and persists the ones that moved
func (s *ComplaintService) RefreshStatuses(ctx context.Context) ([]models.StatusRefreshResult, error) {
	complaints, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}

	now := s.clock()
	results := make([]models.StatusRefreshResult, 0, len(complaints))
	for i := range complaints {
		c := &complaints[i]
		old := c.Status
		changed, err := s.advance(ctx, c, now)
		if err != nil {
			log.Error().Err(err).Str("component", "complaint").Str("complaint_id", c.ID).Msg("status refresh failed")
			continue
		}
		results = append(results, models.StatusRefreshResult{
			ComplaintID: c.ID,
			OldStatus:   old,
			NewStatus:   c.Status,
			Changed:     changed,
			ProcessedAt: now,
		})
	}
	return results, nil
}

// ListForAuthority returns every complaint with its derived state, in filing order. Read-only.
func (s *ComplaintService) ListForAuthority(ctx context.Context) ([]models.AuthorityComplaintView, error) {
	complaints, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}

	now := s.clock()
	views := make([]models.AuthorityComplaintView, 0, len(complaints))
	for _, c := range complaints {
		status := StatusForElapsed(now.Sub(c.Timestamp))
		views = append(views, models.AuthorityComplaintView{
			ID:            c.ID,
			FiledAt:       c.Timestamp,
			Status:        status,
			Aqi:           c.Violation.Aqi,
			Location:      c.Violation.Location,
			Violations:    len(c.Violation.LegalBasis),
			HealthRisk:    c.ImpactAnalysis.HealthRisk,
			NextMilestone: reference.NextMilestone(status),
		})
	}
	return views, nil
}

// advance moves the cached status forward to the derived one. The store write is a compare-and-set
// on the status c was read with; when another writer got there first the record is reloaded.
// The cached status never moves backwards and each transition is published once.
func (s *ComplaintService) advance(ctx context.Context, c *models.Complaint, now time.Time) (bool, error) {
	derived := StatusForElapsed(now.Sub(c.Timestamp))
	for attempt := 0; attempt < len(models.ComplaintLifecycle); attempt++ {
		if derived.Index() <= c.Status.Index() {
			return false, nil
		}
		old := c.Status
		advanced, err := s.store.AdvanceStatus(ctx, c.ID, old, derived)
		if err != nil {
			return false, fmt.Errorf("failed to update status: %w", err)
		}
		if !advanced {
			fresh, err := s.store.Find(ctx, c.ID)
			if err != nil {
				return false, fmt.Errorf("failed to reload complaint: %w", err)
			}
			c.Status = fresh.Status
			continue
		}

		c.Status = derived
		metrics.StatusTransitions.WithLabelValues(string(derived)).Inc()
		log.Info().
			Str("component", "complaint").
			Str("complaint_id", c.ID).
			Str("old_status", string(old)).
			Str("new_status", string(derived)).
			Msg("status advanced")

		if s.notifier != nil {
			s.notifier.StatusChangedAsync(c, old, derived)
		}
		return true, nil
	}
	return false, nil
}

func (s *ComplaintService) trackingURL(id string) string {
	return fmt.Sprintf("%s/track/%s", s.trackingBaseURL, id)
}

func (s *ComplaintService) historyAnchor(c *models.Complaint, now time.Time) time.Time {
	offset := c.HistoryOffsetHours
	if offset < minHistoryOffsetHours {
		// records written without a pinned offset fall back to a per-read draw
		offset = utils.IntRange(s.rng, minHistoryOffsetHours, maxHistoryOffsetHours)
	}
	return now.Add(-time.Duration(offset) * time.Hour)
}

func normalizeProfile(p *models.UserProfile) *models.UserProfile {
	if p == nil {
		return nil
	}
	out := *p
	if out.HealthConditions == nil {
		out.HealthConditions = []string{}
	}
	if out.SensitivityLevel == "" {
		out.SensitivityLevel = defaultSensitivity
	}
	return &out
}

func impactAnalysis(aqi float64) models.ImpactAnalysis {
	impact := models.ImpactAnalysis{
		AffectedArea:        "5 km radius",
		EstimatedPopulation: 2500,
		HealthRisk:          "MEDIUM",
		EnvironmentalImpact: "MODERATE",
	}
	if aqi > 200 {
		impact.HealthRisk = "HIGH"
	}
	if aqi > 250 {
		impact.EnvironmentalImpact = "SIGNIFICANT"
	}
	return impact
}
