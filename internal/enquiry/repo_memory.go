package enquiry

import (
	"context"
	"fmt"
	"sync"

	"github.com/logitrack/logitrack/internal/shared"
)

// MemoryRepository keeps the enquiry collection in process memory. It
// is the canonical backend: an ordered slice, newest first, guarded by
// a single mutex. All reads and writes copy records so callers never
// share memory with the store.
type MemoryRepository struct {
	mu          sync.RWMutex
	enquiries   []*Enquiry
	nextID      int64
	nextLineID  int64
	nextOfferID int64
}

// NewMemoryRepository constructs an empty in-memory store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextID:      1,
		nextLineID:  1,
		nextOfferID: 1,
	}
}

// Insert stores a new enquiry at the head of the list.
func (r *MemoryRepository) Insert(ctx context.Context, e *Enquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneEnquiry(e)
	if stored.ID == 0 {
		stored.ID = r.nextID
		r.nextID++
	} else if stored.ID >= r.nextID {
		r.nextID = stored.ID + 1
	}
	r.assignSubIDs(stored)

	r.enquiries = append([]*Enquiry{stored}, r.enquiries...)
	*e = *cloneEnquiry(stored)
	return nil
}

// Get returns a copy of the stored record.
func (r *MemoryRepository) Get(ctx context.Context, id int64) (*Enquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.enquiries {
		if e.ID == id {
			return cloneEnquiry(e), nil
		}
	}
	return nil, fmt.Errorf("%w: enquiry %d", shared.ErrNotFound, id)
}

// Update replaces the stored record in place, keeping list position.
func (r *MemoryRepository) Update(ctx context.Context, e *Enquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.enquiries {
		if existing.ID == e.ID {
			stored := cloneEnquiry(e)
			r.assignSubIDs(stored)
			r.enquiries[i] = stored
			*e = *cloneEnquiry(stored)
			return nil
		}
	}
	return fmt.Errorf("%w: enquiry %d", shared.ErrNotFound, e.ID)
}

// Delete removes the record and its sub-records.
func (r *MemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.enquiries {
		if e.ID == id {
			r.enquiries = append(r.enquiries[:i], r.enquiries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: enquiry %d", shared.ErrNotFound, id)
}

// List returns copies of all records, newest first.
func (r *MemoryRepository) List(ctx context.Context) ([]*Enquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Enquiry, len(r.enquiries))
	for i, e := range r.enquiries {
		out[i] = cloneEnquiry(e)
	}
	return out, nil
}

// CountByReferenceMonth counts enquiries tagged with a YYMM code.
func (r *MemoryRepository) CountByReferenceMonth(ctx context.Context, refMonth string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, e := range r.enquiries {
		if e.ReferenceMonth == refMonth {
			count++
		}
	}
	return count, nil
}

// GetByOfferID finds the enquiry owning the given offer.
func (r *MemoryRepository) GetByOfferID(ctx context.Context, offerID int64) (*Enquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.enquiries {
		for _, o := range e.Offers {
			if o.ID == offerID {
				return cloneEnquiry(e), nil
			}
		}
	}
	return nil, fmt.Errorf("%w: offer %d", shared.ErrNotFound, offerID)
}

// assignSubIDs gives identifiers to new container lines and offers and
// stamps the owning enquiry ID. Callers must hold the write lock.
func (r *MemoryRepository) assignSubIDs(e *Enquiry) {
	for i := range e.ContainerLines {
		line := &e.ContainerLines[i]
		if line.ID == 0 {
			line.ID = r.nextLineID
			r.nextLineID++
		} else if line.ID >= r.nextLineID {
			r.nextLineID = line.ID + 1
		}
		line.EnquiryID = e.ID
	}
	for i := range e.Offers {
		offer := &e.Offers[i]
		if offer.ID == 0 {
			offer.ID = r.nextOfferID
			r.nextOfferID++
		} else if offer.ID >= r.nextOfferID {
			r.nextOfferID = offer.ID + 1
		}
		offer.EnquiryID = e.ID
	}
}

func cloneEnquiry(e *Enquiry) *Enquiry {
	out := *e
	out.ContainerLines = append([]ContainerLine(nil), e.ContainerLines...)
	out.Offers = append([]Offer(nil), e.Offers...)
	if e.VolumeCbm != nil {
		v := *e.VolumeCbm
		out.VolumeCbm = &v
	}
	if e.Quantity != nil {
		q := *e.Quantity
		out.Quantity = &q
	}
	for i := range out.Offers {
		if out.Offers[i].Price != nil {
			p := *out.Offers[i].Price
			out.Offers[i].Price = &p
		}
	}
	return &out
}
