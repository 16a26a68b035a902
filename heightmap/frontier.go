package heightmap

// candidate is one proposed step awaiting expansion. It is never mutated
// after creation; a cheaper route to the same cell produces a new candidate.
type candidate struct {
	at        Coordinate // cell this candidate occupies
	from      Coordinate // cell it was generated from; equal to at for seeds
	steps     int        // accumulated unit steps from a source
	estimate  int        // heuristic lower bound on steps remaining
	elevation int        // elevation at `at`
}

// priority is the ordering key: accumulated steps plus the estimate.
func (c candidate) priority() int { return c.steps + c.estimate }

// frontier is a min-heap of candidates ordered by priority ascending.
// Stale entries (superseded by a cheaper candidate for the same cell) are
// left in place and skipped when popped.
type frontier []candidate

// Len returns the number of candidates in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by lower total estimated cost first.
func (f frontier) Less(i, j int) bool { return f[i].priority() < f[j].priority() }

// Swap swaps two candidates.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds x, which must be a candidate. Called by heap.Push.
func (f *frontier) Push(x any) { *f = append(*f, x.(candidate)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
