// Package sched provides the single-threaded callback scheduler used
// for staggered highlight steps. Callbacks are queued with a delay and
// executed from the application frame tick, so everything that mutates
// shared state keeps running on the event loop.
package sched

import (
	"sort"
	"time"
)

// Scheduler queues a callback to run after a delay
type Scheduler interface {
	Schedule(delay time.Duration, fn func())
}

type entry struct {
	due time.Time
	seq int
	fn  func()
}

// Queue is the production Scheduler. It is not safe for concurrent use;
// it belongs to the event loop that drains it.
type Queue struct {
	now     func() time.Time
	entries []entry
	seq     int
}

// NewQueue creates a queue using the supplied clock. Pass time.Now in
// production; tests inject a fake clock.
func NewQueue(now func() time.Time) *Queue {
	if now == nil {
		now = time.Now
	}
	return &Queue{now: now}
}

// Schedule queues fn to run once delay has elapsed
func (q *Queue) Schedule(delay time.Duration, fn func()) {
	q.entries = append(q.entries, entry{
		due: q.now().Add(delay),
		seq: q.seq,
		fn:  fn,
	})
	q.seq++
}

// RunDue executes every callback whose deadline has passed, ordered by
// deadline then by insertion. Callbacks scheduled during RunDue are not
// executed until a later call, which keeps a tick bounded.
func (q *Queue) RunDue() int {
	now := q.now()
	var due, pending []entry
	for _, e := range q.entries {
		if !e.due.After(now) {
			due = append(due, e)
		} else {
			pending = append(pending, e)
		}
	}
	if len(due) == 0 {
		return 0
	}
	sort.SliceStable(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})
	q.entries = pending
	for _, e := range due {
		e.fn()
	}
	return len(due)
}

// Pending returns the number of queued callbacks
func (q *Queue) Pending() int {
	return len(q.entries)
}
