package enquiry

import "context"

// Repository abstracts enquiry persistence. Implementations must keep
// most-recent-first ordering for List and assign identifiers to any
// enquiry, container line or offer inserted with a zero ID.
type Repository interface {
	// Insert stores a new enquiry at the head of the collection and
	// assigns identifiers.
	Insert(ctx context.Context, e *Enquiry) error
	// Get returns the full record or shared.ErrNotFound.
	Get(ctx context.Context, id int64) (*Enquiry, error)
	// Update replaces the stored record, assigning IDs to new
	// sub-records, or fails with shared.ErrNotFound.
	Update(ctx context.Context, e *Enquiry) error
	// Delete removes the record and its sub-records, or fails with
	// shared.ErrNotFound.
	Delete(ctx context.Context, id int64) error
	// List returns all enquiries in insertion order, newest first.
	List(ctx context.Context) ([]*Enquiry, error)
	// CountByReferenceMonth counts enquiries tagged with a YYMM code.
	CountByReferenceMonth(ctx context.Context, refMonth string) (int, error)
	// GetByOfferID finds the enquiry owning an offer, or fails with
	// shared.ErrNotFound.
	GetByOfferID(ctx context.Context, offerID int64) (*Enquiry, error)
}
