package publisher

import (
	"context"
	"sync"
)

// Message is one notification captured by a Recorder.
type Message struct {
	Topic string
	Event any
}

// Recorder keeps every published notification in memory. It backs the memory
// storage driver and lets tests assert on what was emitted.
type Recorder struct {
	mu       sync.Mutex
	messages []Message
}

func (r *Recorder) Publish(ctx context.Context, topic string, event any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, Message{Topic: topic, Event: event})
	return nil
}

func (r *Recorder) Close() error {
	return nil
}

// Messages returns a copy of the recorded notifications in publish order.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}

// Topics returns the recorded topics in publish order.
func (r *Recorder) Topics() []string {
	msgs := r.Messages()
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.Topic
	}
	return out
}
