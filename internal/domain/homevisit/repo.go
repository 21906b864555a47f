package homevisit

import "sync"

// bookingStore keeps accepted bookings in memory. Confirmations are
// retained for the lifetime of the process; listing preserves insertion
// order.
type bookingStore struct {
	mu    sync.RWMutex
	byID  map[string]*BookingConfirmation
	order []string
}

func newBookingStore() *bookingStore {
	return &bookingStore{
		byID: make(map[string]*BookingConfirmation),
	}
}

func (s *bookingStore) save(conf *BookingConfirmation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[conf.ID]; !exists {
		s.order = append(s.order, conf.ID)
	}
	s.byID[conf.ID] = conf
}

func (s *bookingStore) get(id string) (*BookingConfirmation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conf, ok := s.byID[id]
	return conf, ok
}

func (s *bookingStore) list(limit, offset int) ([]*BookingConfirmation, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.order)
	if offset >= total {
		return []*BookingConfirmation{}, total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	out := make([]*BookingConfirmation, 0, end-offset)
	for _, id := range s.order[offset:end] {
		out = append(out, s.byID[id])
	}
	return out, total
}
