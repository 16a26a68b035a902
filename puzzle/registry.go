package puzzle

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps day numbers to Solutions. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	byDay map[int]Solution
}

// NewRegistry returns a Registry holding sols, or the first registration error.
func NewRegistry(sols ...Solution) (*Registry, error) {
	r := &Registry{byDay: make(map[int]Solution, len(sols))}
	for _, s := range sols {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register adds s. Returns ErrInvalidSolution or ErrDuplicateDay.
func (r *Registry) Register(s Solution) error {
	if err := s.validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byDay[s.Day]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateDay, s.Name())
	}
	r.byDay[s.Day] = s

	return nil
}

// Get returns the Solution for day, or ErrUnknownDay.
func (r *Registry) Get(day int) (Solution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byDay[day]
	if !ok {
		return Solution{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return s, nil
}

// Days returns every registered day number in ascending order.
func (r *Registry) Days() []int {
	r.mu.RLock()
	days := make([]int, 0, len(r.byDay))
	for d := range r.byDay {
		days = append(days, d)
	}
	r.mu.RUnlock()
	sort.Ints(days)

	return days
}
