// SPDX-License-Identifier: MIT

package convert

import (
	"context"
	"sort"
	"strings"
	"time"

	fswatch "github.com/andreaskoch/go-fswatch"
)

// Watch polls dir every interval (rounded down to whole seconds, at least
// one) and converts files matching pattern as they are created or modified.
// Every outcome is passed to onOutcome when it is non-nil. Watch returns
// when ctx is done.
func Watch(ctx context.Context, c *Converter, dir, pattern string, interval time.Duration, onOutcome func(Outcome)) error {
	if _, err := Discover(dir, pattern); err != nil {
		return err
	}
	recurse := strings.Contains(pattern, "/")
	skip := func(path string) bool { return !Matches(dir, pattern, path) }
	secs := max(1, int(interval/time.Second))
	w := fswatch.NewFolderWatcher(dir, recurse, skip, secs)
	w.Start()

	log := Logger(ctx).WithField("dir", dir)
	defer func() {
		if !stopWatcher(w, time.Duration(secs+1)*time.Second) {
			log.Debug("watcher did not confirm stop")
		}
	}()
	log.Infof("watching for %s", pattern)
	for {
		select {
		case <-ctx.Done():
			log.Info("watch stopped")
			return nil
		case <-w.Modified():
		case change := <-w.ChangeDetails():
			for _, path := range changedPaths(change.New(), change.Modified()) {
				o := c.ConvertFile(ctx, path)
				if onOutcome != nil {
					onOutcome(o)
				}
			}
		}
	}
}

// folderWatcher is the part of *fswatch.FolderWatcher that shutdown needs.
type folderWatcher interface {
	Stop()
	Stopped() chan bool
	Modified() chan bool
	ChangeDetails() chan *fswatch.FolderChange
}

// stopWatcher stops w and drains its channels until it reports Stopped, so
// none of its sender goroutines stay blocked. It gives up after wait and
// reports whether the stop was confirmed.
func stopWatcher(w folderWatcher, wait time.Duration) bool {
	w.Stop()
	timeout := time.NewTimer(wait)
	defer timeout.Stop()
	for {
		select {
		case <-w.Stopped():
			return true
		case <-w.Modified():
		case <-w.ChangeDetails():
		case <-timeout.C:
			return false
		}
	}
}

// changedPaths merges the change lists into a sorted set.
func changedPaths(lists ...[]string) []string {
	set := make(map[string]struct{})
	for _, l := range lists {
		for _, p := range l {
			set[p] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Strings(out)

	return out
}
