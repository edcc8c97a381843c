package client

import (
	"sync"
	"time"

	"github.com/scamdex/scamdex-api/models"
)

// DefaultSearchDelay is the quiet period a Searcher waits for after the last
// keystroke before issuing a request.
const DefaultSearchDelay = 300 * time.Millisecond

// SearchFunc issues one search request. Searcher calls it off the caller's
// goroutine once the debounce window elapses.
type SearchFunc func(query string, limit int) ([]models.ScamReport, error)

// Searcher debounces rapid query updates and guarantees that results are
// delivered in query order: a response belonging to a superseded query is
// dropped, never delivered late over a newer one.
//
// A new keystroke resets the quiet-period timer but does not cancel a request
// already in flight; the stale response is discarded when it lands instead.
type Searcher struct {
	api     SearchFunc
	delay   time.Duration
	deliver func([]models.ScamReport, error)

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// NewSearcher wires a search function to a result callback. A delay of zero
// selects DefaultSearchDelay.
func NewSearcher(api SearchFunc, delay time.Duration, deliver func([]models.ScamReport, error)) *Searcher {
	if delay <= 0 {
		delay = DefaultSearchDelay
	}
	return &Searcher{api: api, delay: delay, deliver: deliver}
}

// SetQuery records the latest query and restarts the debounce timer. Only the
// most recent query when the timer fires reaches the search function.
func (s *Searcher) SetQuery(query string, limit int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	seq := s.seq
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		s.run(seq, query, limit)
	})
}

func (s *Searcher) run(seq uint64, query string, limit int) {
	s.mu.Lock()
	stale := seq != s.seq
	s.mu.Unlock()
	if stale {
		return
	}

	results, err := s.api(query, limit)

	s.mu.Lock()
	stale = seq != s.seq
	s.mu.Unlock()
	if stale {
		return
	}
	s.deliver(results, err)
}
