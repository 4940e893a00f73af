package repository

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"airjustice/config"
	"airjustice/models"
	"airjustice/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleComplaint(id string, filed time.Time) *models.Complaint {
	desc := "smoke from the landfill"
	return &models.Complaint{
		ID:        id,
		Timestamp: filed,
		Status:    models.StatusSubmitted,
		Complainant: models.Complainant{
			Type:     "citizen",
			Platform: "Air Justice",
		},
		Violation: models.ViolationDetails{
			Location:    models.Location{Lat: 28.6139, Lon: 77.209},
			Aqi:         220,
			Description: &desc,
			LegalBasis: []models.ViolationRecord{{
				Law:      models.Law{Name: "National Green Tribunal Act 2010", Threshold: 200},
				Excess:   20,
				Severity: models.SeverityLow,
			}},
		},
		Processing: models.Processing{
			AuthoritiesNotified: []string{"National Green Tribunal"},
			TrackingURL:         "https://airjustice.tech/track/" + id,
			CaseOfficer:         "To be assigned",
		},
		HistoryOffsetHours: 12,
	}
}

func newSQLiteStore(t *testing.T) *ComplaintRepository {
	t.Helper()
	db, err := schema.Open(&config.Config{
		DBDriver:   config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "ledger.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewComplaintRepository(db)
}

func stores(t *testing.T) map[string]ComplaintStore {
	return map[string]ComplaintStore{
		"memory": NewMemoryComplaintRepository(),
		"sqlite": newSQLiteStore(t),
	}
}

func TestComplaintStore_RecordAndFind(t *testing.T) {
	filed := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Record(ctx, sampleComplaint("AJ-20250314-ABCD1234", filed)))

			got, err := store.Find(ctx, "AJ-20250314-ABCD1234")
			require.NoError(t, err)
			assert.Equal(t, models.StatusSubmitted, got.Status)
			assert.True(t, filed.Equal(got.Timestamp))
			assert.Equal(t, 12, got.HistoryOffsetHours)
			assert.Equal(t, 220.0, got.Violation.Aqi)
			require.NotNil(t, got.Violation.Description)
			assert.Equal(t, "smoke from the landfill", *got.Violation.Description)
			assert.Nil(t, got.Violation.SourceType)
			require.Len(t, got.Violation.LegalBasis, 1)
			assert.Equal(t, 20.0, got.Violation.LegalBasis[0].Excess)
		})
	}
}

func TestComplaintStore_UnknownID(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			_, err := store.Find(ctx, "AJ-00000000-NOPE0000")
			assert.True(t, errors.Is(err, ErrComplaintNotFound))

			_, err = store.AdvanceStatus(ctx, "AJ-00000000-NOPE0000", models.StatusSubmitted, models.StatusResolved)
			assert.True(t, errors.Is(err, ErrComplaintNotFound))
		})
	}
}

func TestComplaintStore_AdvanceStatusOnlyTouchesStatus(t *testing.T) {
	filed := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Record(ctx, sampleComplaint("AJ-20250314-00000001", filed)))

			advanced, err := store.AdvanceStatus(ctx, "AJ-20250314-00000001", models.StatusSubmitted, models.StatusActionTaken)
			require.NoError(t, err)
			assert.True(t, advanced)

			got, err := store.Find(ctx, "AJ-20250314-00000001")
			require.NoError(t, err)
			assert.Equal(t, models.StatusActionTaken, got.Status)
			assert.Equal(t, 220.0, got.Violation.Aqi)
			assert.True(t, filed.Equal(got.Timestamp))
		})
	}
}

func TestComplaintStore_AdvanceStatusIsForwardOnly(t *testing.T) {
	filed := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			id := "AJ-20250314-00000002"
			require.NoError(t, store.Record(ctx, sampleComplaint(id, filed)))
			advanced, err := store.AdvanceStatus(ctx, id, models.StatusSubmitted, models.StatusActionTaken)
			require.NoError(t, err)
			require.True(t, advanced)

			// stale expected value: another writer already moved the row
			advanced, err = store.AdvanceStatus(ctx, id, models.StatusSubmitted, models.StatusInvestigationStarted)
			require.NoError(t, err)
			assert.False(t, advanced)

			// backwards and same-state requests are no-ops
			advanced, err = store.AdvanceStatus(ctx, id, models.StatusActionTaken, models.StatusUnderReview)
			require.NoError(t, err)
			assert.False(t, advanced)
			advanced, err = store.AdvanceStatus(ctx, id, models.StatusActionTaken, models.StatusActionTaken)
			require.NoError(t, err)
			assert.False(t, advanced)

			got, err := store.Find(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, models.StatusActionTaken, got.Status)
		})
	}
}

func TestComplaintStore_ConcurrentAdvanceHasOneWinner(t *testing.T) {
	filed := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			id := "AJ-20250314-00000003"
			require.NoError(t, store.Record(ctx, sampleComplaint(id, filed)))

			var (
				wg   sync.WaitGroup
				mu   sync.Mutex
				wins int
			)
			for i := 0; i < 10; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					advanced, err := store.AdvanceStatus(ctx, id, models.StatusSubmitted, models.StatusUnderReview)
					assert.NoError(t, err)
					if advanced {
						mu.Lock()
						wins++
						mu.Unlock()
					}
				}()
			}
			wg.Wait()
			assert.Equal(t, 1, wins)
		})
	}
}

func TestComplaintRepository_DuplicateIDIsReported(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)
	filed := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	require.NoError(t, store.Record(ctx, sampleComplaint("AJ-20250314-DUPE0001", filed)))

	err := store.Record(ctx, sampleComplaint("AJ-20250314-DUPE0001", filed))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateComplaintID))
}

func TestComplaintStore_ListPreservesFilingOrder(t *testing.T) {
	base := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			ids := []string{"AJ-20250314-CCCCCCCC", "AJ-20250314-AAAAAAAA", "AJ-20250314-BBBBBBBB"}
			for i, id := range ids {
				require.NoError(t, store.Record(ctx, sampleComplaint(id, base.Add(time.Duration(i)*time.Minute))))
			}

			list, err := store.List(ctx)
			require.NoError(t, err)
			require.Len(t, list, 3)
			for i, id := range ids {
				assert.Equal(t, id, list[i].ID)
			}
		})
	}
}

func TestMemoryComplaintRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryComplaintRepository()
	require.NoError(t, store.Record(ctx, sampleComplaint("AJ-20250314-COPY0001", time.Now())))

	got, err := store.Find(ctx, "AJ-20250314-COPY0001")
	require.NoError(t, err)
	got.Status = models.StatusResolved

	again, err := store.Find(ctx, "AJ-20250314-COPY0001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusSubmitted, again.Status)
}

func TestMemoryComplaintRepository_ConcurrentRecord(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryComplaintRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.Record(ctx, sampleComplaint(fmt.Sprintf("AJ-20250314-%08d", i), time.Now()))
		}(i)
	}
	wg.Wait()

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 50)
}
