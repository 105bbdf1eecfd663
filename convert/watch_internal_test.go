package convert

import (
	"testing"
	"time"

	fswatch "github.com/andreaskoch/go-fswatch"
	"github.com/stretchr/testify/require"
)

// stubWatcher mimics fswatch's shutdown: after Stop it may still push a
// pending change, then announces Stopped on an unbuffered channel.
type stubWatcher struct {
	modified chan bool
	changes  chan *fswatch.FolderChange
	stopped  chan bool
	sent     chan struct{}
	announce bool
}

func newStubWatcher(announce bool) *stubWatcher {
	return &stubWatcher{
		modified: make(chan bool),
		changes:  make(chan *fswatch.FolderChange),
		stopped:  make(chan bool),
		sent:     make(chan struct{}),
		announce: announce,
	}
}

func (s *stubWatcher) Stop() {
	go func() {
		defer close(s.sent)
		s.modified <- true
		if s.announce {
			s.stopped <- true
		}
	}()
}

func (s *stubWatcher) Stopped() chan bool                        { return s.stopped }
func (s *stubWatcher) Modified() chan bool                       { return s.modified }
func (s *stubWatcher) ChangeDetails() chan *fswatch.FolderChange { return s.changes }

// TestStopWatcher_DrainsUntilStopped consumes the pending change and the
// stop notice, leaving no sender blocked.
func TestStopWatcher_DrainsUntilStopped(t *testing.T) {
	w := newStubWatcher(true)
	require.True(t, stopWatcher(w, 5*time.Second))

	select {
	case <-w.sent:
	case <-time.After(time.Second):
		t.Fatal("watcher goroutine still blocked after stopWatcher returned")
	}
}

// TestStopWatcher_Timeout gives up when Stopped never fires.
func TestStopWatcher_Timeout(t *testing.T) {
	w := newStubWatcher(false)
	start := time.Now()
	require.False(t, stopWatcher(w, 50*time.Millisecond))
	require.Less(t, time.Since(start), 2*time.Second)
	<-w.sent
}

// TestChangedPaths merges and sorts the change lists.
func TestChangedPaths(t *testing.T) {
	got := changedPaths([]string{"b.tsp", "a.tsp"}, []string{"a.tsp", "c.tsp"}, nil)
	require.Equal(t, []string{"a.tsp", "b.tsp", "c.tsp"}, got)
}
