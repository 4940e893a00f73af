package service

import (
	"testing"
	"time"

	"airjustice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusForElapsed(t *testing.T) {
	cases := []struct {
		elapsed time.Duration
		want    models.ComplaintStatus
	}{
		{-time.Hour, models.StatusSubmitted},
		{0, models.StatusSubmitted},
		{time.Hour, models.StatusSubmitted},
		{2 * time.Hour, models.StatusSubmitted},
		{2*time.Hour + time.Second, models.StatusUnderReview},
		{24 * time.Hour, models.StatusUnderReview},
		{25 * time.Hour, models.StatusInvestigationStarted},
		{48 * time.Hour, models.StatusInvestigationStarted},
		{50 * time.Hour, models.StatusActionTaken},
		{72 * time.Hour, models.StatusActionTaken},
		{80 * time.Hour, models.StatusResolved},
		{365 * 24 * time.Hour, models.StatusResolved},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusForElapsed(tc.elapsed), "elapsed=%s", tc.elapsed)
	}
}

func TestStatusForElapsed_NeverRegresses(t *testing.T) {
	prev := -1
	for m := 0; m <= 100*60; m += 7 {
		idx := StatusForElapsed(time.Duration(m) * time.Minute).Index()
		require.GreaterOrEqual(t, idx, prev)
		prev = idx
	}
}

func TestSynthesizeHistory(t *testing.T) {
	anchor := testBase.Add(-30 * time.Hour)

	updates := SynthesizeHistory(models.StatusInvestigationStarted, anchor)
	require.Len(t, updates, 3)
	for i, u := range updates {
		assert.Equal(t, models.ComplaintLifecycle[i], u.Status)
		assert.Equal(t, anchor.Add(time.Duration(i)*12*time.Hour), u.Timestamp)
	}
	assert.Equal(t, "Complaint received and registered", updates[0].Message)
	assert.Equal(t, "NGT Registry", updates[1].Authority)
	assert.Equal(t, "CPCB Field Team", updates[2].Authority)

	assert.Len(t, SynthesizeHistory(models.StatusSubmitted, anchor), 1)
	assert.Len(t, SynthesizeHistory(models.StatusResolved, anchor), 5)
	assert.Empty(t, SynthesizeHistory(models.ComplaintStatus("UNKNOWN"), anchor))
}
