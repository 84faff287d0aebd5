package ui

import (
	"sync"
	"time"
)

// Message is one status line entry.
type Message struct {
	Text      string
	Timestamp time.Time
}

// MessageLogger keeps the most recent status messages in a fixed-size
// ring so the `:dump` command can show what happened lately. Safe for
// use from multiple goroutines.
type MessageLogger struct {
	mu   sync.Mutex
	ring []Message
	next int
	full bool
}

// NewMessageLogger creates a logger keeping at most maxSize messages.
func NewMessageLogger(maxSize int) *MessageLogger {
	if maxSize < 1 {
		maxSize = 1
	}
	return &MessageLogger{ring: make([]Message, maxSize)}
}

// AddMessage records a status message. Empty messages are dropped.
func (ml *MessageLogger) AddMessage(text string) {
	if text == "" {
		return
	}

	ml.mu.Lock()
	defer ml.mu.Unlock()

	ml.ring[ml.next] = Message{Text: text, Timestamp: time.Now()}
	ml.next++
	if ml.next == len(ml.ring) {
		ml.next = 0
		ml.full = true
	}
}

// GetMessagesReverse returns the stored messages, newest first.
func (ml *MessageLogger) GetMessagesReverse() []Message {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	n := ml.next
	if ml.full {
		n = len(ml.ring)
	}

	out := make([]Message, 0, n)
	for i := 1; i <= n; i++ {
		idx := ml.next - i
		if idx < 0 {
			idx += len(ml.ring)
		}
		out = append(out, ml.ring[idx])
	}
	return out
}

// Count returns how many messages are stored.
func (ml *MessageLogger) Count() int {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	if ml.full {
		return len(ml.ring)
	}
	return ml.next
}
