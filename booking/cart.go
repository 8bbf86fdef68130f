package booking

import (
	"fmt"
	"sync"
)

// CartLine is one pending treatment selection. Service name and price are
// copied from the catalog when the line is added, so the checkout snapshot
// matches what the customer saw.
type CartLine struct {
	ServiceID   uint   `json:"service_id"`
	ServiceName string `json:"service_name"`
	PriceCents  int64  `json:"price_cents"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Specialist  string `json:"specialist"`
}

// CartStore persists one cart per browser session as a whole-value blob.
// Implementations: Redis for the running service, MemoryCartStore for tests.
type CartStore interface {
	Get(session string) ([]CartLine, error)
	Put(session string, lines []CartLine) error
	Clear(session string) error
}

// AddToCart appends a line for the given session. The slot is not
// re-validated here; the caller is expected to have just listed available
// slots, and the ledger stays last-writer-wins across sessions.
func (e *Engine) AddToCart(session string, serviceID uint, date, timeOfDay, specialist string) error {
	svc, ok := e.catalog.Find(serviceID)
	if !ok {
		return fmt.Errorf("%w: service %d", ErrNotFound, serviceID)
	}
	if specialist == "" {
		specialist = svc.Specialist
	}

	lines, err := e.carts.Get(session)
	if err != nil {
		return fmt.Errorf("%w: reading cart: %v", ErrStoreUnavailable, err)
	}
	lines = append(lines, CartLine{
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		PriceCents:  svc.PriceCents,
		Date:        date,
		Time:        timeOfDay,
		Specialist:  specialist,
	})
	if err := e.carts.Put(session, lines); err != nil {
		return fmt.Errorf("%w: writing cart: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// RemoveFromCart drops the line at the given position. An out-of-range index
// is a silent no-op; the UI derives indices from the same cart it mutates.
func (e *Engine) RemoveFromCart(session string, index int) error {
	lines, err := e.carts.Get(session)
	if err != nil {
		return fmt.Errorf("%w: reading cart: %v", ErrStoreUnavailable, err)
	}
	if index < 0 || index >= len(lines) {
		return nil
	}
	lines = append(lines[:index], lines[index+1:]...)
	if err := e.carts.Put(session, lines); err != nil {
		return fmt.Errorf("%w: writing cart: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Cart returns the session's pending lines in insertion order.
func (e *Engine) Cart(session string) ([]CartLine, error) {
	lines, err := e.carts.Get(session)
	if err != nil {
		return nil, fmt.Errorf("%w: reading cart: %v", ErrStoreUnavailable, err)
	}
	return lines, nil
}

// ClearCart empties the session's cart.
func (e *Engine) ClearCart(session string) error {
	if err := e.carts.Clear(session); err != nil {
		return fmt.Errorf("%w: clearing cart: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// MemoryCartStore keeps carts in process memory. Used by tests and as a
// fallback when Redis is not configured.
type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[string][]CartLine
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string][]CartLine)}
}

func (s *MemoryCartStore) Get(session string) ([]CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[session]
	out := make([]CartLine, len(lines))
	copy(out, lines)
	return out, nil
}

func (s *MemoryCartStore) Put(session string, lines []CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]CartLine, len(lines))
	copy(stored, lines)
	s.carts[session] = stored
	return nil
}

func (s *MemoryCartStore) Clear(session string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, session)
	return nil
}
