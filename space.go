package qecc

import "sync"

/*
ResultSpace hands trial results from workers to whoever awaits them. Each
result is delivered once: to a waiting channel if one exists, otherwise to the
first Await call that asks for it.
*/
type ResultSpace struct {
	mu      sync.Mutex
	values  map[string]TrialResult
	waiting map[string][]chan TrialResult
}

func newResultSpace() *ResultSpace {
	return &ResultSpace{
		values:  make(map[string]TrialResult),
		waiting: make(map[string][]chan TrialResult),
	}
}

// Store publishes the result for id.
func (s *ResultSpace) Store(id string, result TrialResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	channels, ok := s.waiting[id]
	if !ok {
		s.values[id] = result
		return
	}

	for _, ch := range channels {
		ch <- result
		close(ch)
	}
	delete(s.waiting, id)
}

// Await returns a channel that will receive the result for id.
func (s *ResultSpace) Await(id string) chan TrialResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan TrialResult, 1)

	if result, ok := s.values[id]; ok {
		ch <- result
		close(ch)
		delete(s.values, id)
		return ch
	}

	s.waiting[id] = append(s.waiting[id], ch)
	return ch
}

// claim registers the single waiter for a trial that is about to be queued.
// It refuses an id that already has a waiter or an unclaimed result.
func (s *ResultSpace) claim(id string) (chan TrialResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[id]; ok {
		return nil, false
	}
	if _, ok := s.waiting[id]; ok {
		return nil, false
	}

	ch := make(chan TrialResult, 1)
	s.waiting[id] = []chan TrialResult{ch}
	return ch, true
}

// Pending counts results stored but not yet awaited.
func (s *ResultSpace) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values)
}
