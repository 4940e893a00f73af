package repository

import (
	"context"
	"fmt"
	"sync"

	"airjustice/models"
)

// MemoryComplaintRepository keeps the ledger in process memory. Contents are lost on restart.
// A single lock serializes appends and status overwrites.
type MemoryComplaintRepository struct {
	mu         sync.RWMutex
	complaints []models.Complaint
	index      map[string]int // id -> first position in complaints
}

// NewMemoryComplaintRepository creates an empty in-memory ledger
func NewMemoryComplaintRepository() *MemoryComplaintRepository {
	return &MemoryComplaintRepository{index: make(map[string]int)}
}

// Record appends a complaint. Ids are not checked for collisions; lookups resolve to the first match.
func (r *MemoryComplaintRepository) Record(_ context.Context, complaint *models.Complaint) error {
	if complaint == nil {
		return fmt.Errorf("failed to record complaint: nil complaint")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.complaints = append(r.complaints, *complaint)
	if _, exists := r.index[complaint.ID]; !exists {
		r.index[complaint.ID] = len(r.complaints) - 1
	}
	return nil
}

// Find returns a copy of the complaint with the given id
func (r *MemoryComplaintRepository) Find(_ context.Context, id string) (*models.Complaint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrComplaintNotFound, id)
	}
	c := r.complaints[pos]
	return &c, nil
}

// AdvanceStatus compares and sets the cached lifecycle status under the write lock
func (r *MemoryComplaintRepository) AdvanceStatus(_ context.Context, id string, from, to models.ComplaintStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrComplaintNotFound, id)
	}
	current := &r.complaints[pos]
	if current.Status != from || to.Index() <= from.Index() {
		return false, nil
	}
	current.Status = to
	return true, nil
}

// List returns a snapshot of every complaint in filing order
func (r *MemoryComplaintRepository) List(_ context.Context) ([]models.Complaint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Complaint, len(r.complaints))
	copy(out, r.complaints)
	return out, nil
}
