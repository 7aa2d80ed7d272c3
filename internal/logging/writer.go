package logging

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/go-logfmt/logfmt"
	"github.com/leg100/timeago/internal/pubsub"
)

// maxMessages is the number of most recent log records kept in memory.
const maxMessages = 1000

// writer is a slog TextHandler writer that both keeps the most recent log
// records in memory and emits them as events.
type writer struct {
	broker *pubsub.Broker[Message]

	mu       sync.Mutex
	messages []Message
	serial   uint
}

func (w *writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	msgs := make([]Message, 0, 1)
	d := logfmt.NewDecoder(bytes.NewReader(p))
	for d.ScanRecord() {
		msg := Message{Serial: w.serial}
		for d.ScanKeyval() {
			switch string(d.Key()) {
			case "time":
				parsed, err := time.Parse(time.RFC3339, string(d.Value()))
				if err != nil {
					return 0, fmt.Errorf("parsing time: %w", err)
				}
				msg.Time = parsed
			case "level":
				msg.Level = string(d.Value())
			case "msg":
				msg.Message = string(d.Value())
			default:
				msg.Attributes = append(msg.Attributes, Attr{
					Key:   string(d.Key()),
					Value: string(d.Value()),
				})
			}
		}
		msgs = append(msgs, msg)
		w.broker.Publish(pubsub.CreatedEvent, msg)
		w.serial++
	}
	if d.Err() != nil {
		return 0, d.Err()
	}
	w.messages = append(w.messages, msgs...)
	if n := len(w.messages); n > 2*maxMessages {
		// copy so the dropped records can be garbage collected
		w.messages = append([]Message(nil), w.messages[n-maxMessages:]...)
	}
	return len(p), nil
}

func (w *writer) list() []Message {
	w.mu.Lock()
	defer w.mu.Unlock()

	msgs := w.messages
	if len(msgs) > maxMessages {
		msgs = msgs[len(msgs)-maxMessages:]
	}
	return append([]Message(nil), msgs...)
}
