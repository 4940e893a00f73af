package repository

import (
	"context"
	"errors"

	"airjustice/models"
)

var (
	// ErrComplaintNotFound is returned when a complaint id is not in the ledger
	ErrComplaintNotFound = errors.New("complaint not found")
	// ErrDuplicateComplaintID is returned by stores that enforce unique ids
	ErrDuplicateComplaintID = errors.New("duplicate complaint id")
)

// ComplaintStore is the complaint ledger. Implementations must be safe for concurrent use.
// Insertion order is filing order; List returns complaints in that order.
type ComplaintStore interface {
	Record(ctx context.Context, complaint *models.Complaint) error
	Find(ctx context.Context, id string) (*models.Complaint, error)
	// AdvanceStatus moves the cached status from `from` to `to` only if the stored value is still
	// `from` and `to` is later in the lifecycle. Reports whether the row changed.
	AdvanceStatus(ctx context.Context, id string, from, to models.ComplaintStatus) (bool, error)
	List(ctx context.Context) ([]models.Complaint, error)
}
