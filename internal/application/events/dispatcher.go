package events

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Mailer sends a single notification email.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// EventPublisher forwards events to an external bus (NATS when
// configured).
type EventPublisher interface {
	PublishBookEvent(event BookEvent) error
}

// Dispatcher decouples notification delivery from the request path.
// Publish enqueues and returns immediately; a single listener
// goroutine renders emails and forwards events to the optional bus.
// Delivery failures are logged and dropped, never propagated.
type Dispatcher struct {
	mailer    Mailer
	publisher EventPublisher
	queue     chan BookEvent
	done      chan struct{}
}

func NewDispatcher(mailer Mailer, publisher EventPublisher) *Dispatcher {
	d := &Dispatcher{
		mailer:    mailer,
		publisher: publisher,
		queue:     make(chan BookEvent, 128),
		done:      make(chan struct{}),
	}

	go d.listen()
	return d
}

// Publish never blocks; when the queue is saturated the event is
// dropped with a log line.
func (d *Dispatcher) Publish(event BookEvent) {
	select {
	case d.queue <- event:
	default:
		log.Printf("event queue full, dropping %s for %s", event.Type, event.UserEmail)
	}
}

// Close drains outstanding events and stops the listener.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}

func (d *Dispatcher) listen() {
	defer close(d.done)

	for event := range d.queue {
		d.deliver(event)
	}
}

func (d *Dispatcher) deliver(event BookEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	subject, body := renderEmail(event)
	if d.mailer != nil {
		if err := d.mailer.Send(ctx, event.UserEmail, subject, body); err != nil {
			log.Printf("failed to send %s email to %s: %v", event.Type, event.UserEmail, err)
		}
	}

	if d.publisher != nil {
		if err := d.publisher.PublishBookEvent(event); err != nil {
			log.Printf("failed to publish %s event: %v", event.Type, err)
		}
	}
}

func renderEmail(event BookEvent) (subject, body string) {
	switch event.Type {
	case TypeBookBorrowed:
		due := ""
		if event.DueDate != nil {
			due = event.DueDate.Format("Mon Jan 2 2006")
		}
		subject = "Book Borrowed"
		body = fmt.Sprintf(
			"Hi %s,\n\nYou have successfully borrowed %q by %s. It is due on %s.\n\nBest,\nThe Library Team",
			event.UserName, event.BookTitle, event.BookAuthor, due,
		)
	case TypeBookReturned:
		subject = "Book Returned"
		body = fmt.Sprintf(
			"Hi %s,\n\nYou have successfully returned %q by %s.\n\nBest,\nThe Library Team",
			event.UserName, event.BookTitle, event.BookAuthor,
		)
	default:
		subject = "Library Notification"
		body = fmt.Sprintf("Hi %s,\n\nThere is news about %q.\n\nBest,\nThe Library Team",
			event.UserName, event.BookTitle)
	}
	return subject, body
}
