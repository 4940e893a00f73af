package service

import (
	"time"

	"airjustice/models"
	"airjustice/reference"
)

// HistoryStep is the spacing between synthesized history entries
const HistoryStep = 12 * time.Hour

// Elapsed-time thresholds; each must be strictly exceeded
var lifecycleThresholds = []struct {
	after  time.Duration
	status models.ComplaintStatus
}{
	{72 * time.Hour, models.StatusResolved},
	{48 * time.Hour, models.StatusActionTaken},
	{24 * time.Hour, models.StatusInvestigationStarted},
	{2 * time.Hour, models.StatusUnderReview},
}

// StatusForElapsed derives the lifecycle state from time since filing.
// Monotonic in elapsed; negative elapsed (clock skew) is SUBMITTED.
func StatusForElapsed(elapsed time.Duration) models.ComplaintStatus {
	for _, t := range lifecycleThresholds {
		if elapsed > t.after {
			return t.status
		}
	}
	return models.StatusSubmitted
}

// SynthesizeHistory emits one entry per lifecycle state up to and including current,
// entry i stamped at anchor + 12h*i.
func SynthesizeHistory(current models.ComplaintStatus, anchor time.Time) []models.StatusUpdate {
	last := current.Index()
	updates := make([]models.StatusUpdate, 0, last+1)
	for i := 0; i <= last; i++ {
		s := models.ComplaintLifecycle[i]
		updates = append(updates, models.StatusUpdate{
			Timestamp: anchor.Add(time.Duration(i) * HistoryStep),
			Status:    s,
			Message:   reference.StatusMessage(s),
			Authority: reference.StatusAuthority(s),
		})
	}
	return updates
}
