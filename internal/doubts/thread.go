package doubts

import (
	"sort"
	"sync"
	"time"
)

// Sender identifies who wrote a thread message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is one entry in a doubt thread.
type Message struct {
	Sender  Sender
	Content string
	At      time.Time
}

// Log holds the per-topic doubt threads for one plan. Threads are
// append-only: messages are never edited, reordered, or removed.
type Log struct {
	mu      sync.RWMutex
	threads map[string][]Message
}

// NewLog creates an empty doubt log.
func NewLog() *Log {
	return &Log{threads: make(map[string][]Message)}
}

// Append adds a message to the end of the topic's thread, creating the
// thread on first use.
func (l *Log) Append(topic string, msg Message) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.threads[topic] = append(l.threads[topic], msg)
}

// Thread returns a copy of the topic's messages in append order. An
// unknown topic yields an empty slice.
func (l *Log) Thread(topic string) []Message {
	l.mu.RLock()
	defer l.mu.RUnlock()
	msgs := l.threads[topic]
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}

// Topics returns the topics with at least one message, sorted.
func (l *Log) Topics() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	topics := make([]string, 0, len(l.threads))
	for t := range l.threads {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	return topics
}

// Len returns the number of messages in the topic's thread.
func (l *Log) Len(topic string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.threads[topic])
}
