// Package messaging publishes domain events to NATS for downstream
// consumers (reporting, overdue reminders). The service runs fine
// without a broker; the publisher is only wired when NATS_URL is set.
package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"library-service/internal/application/events"
)

const (
	subjectBookBorrowed = "library.book.borrowed"
	subjectBookReturned = "library.book.returned"
)

type NatsPublisher struct {
	conn *nats.Conn
}

func ConnectNats(url string) (*NatsPublisher, error) {
	conn, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return &NatsPublisher{conn: conn}, nil
}

var _ events.EventPublisher = (*NatsPublisher)(nil)

func (p *NatsPublisher) PublishBookEvent(event events.BookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	subject := subjectBookBorrowed
	if event.Type == events.TypeBookReturned {
		subject = subjectBookReturned
	}
	return p.conn.Publish(subject, payload)
}

func (p *NatsPublisher) Close() {
	if p.conn != nil && !p.conn.IsClosed() {
		p.conn.Close()
	}
}
