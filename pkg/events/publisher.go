// Package events publishes the changes committed to the store to an AMQP exchange.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/alocar/backend/pkg/store"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// DefaultExchange is used when no exchange name is configured.
const DefaultExchange = "alocar.changes"

const (
	defaultPublishTimeout = 5 * time.Second
	defaultQueueSize      = 1024
)

// Channel is the part of *amqp091.Channel the Publisher uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Event is the message body for one change.
type Event struct {
	Table  string    `json:"table"`
	Op     store.Op  `json:"op"`
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"userId"`
	At     time.Time `json:"at"`
}

// RoutingKey returns the key the event is published with, e.g. "accounts.create".
func (e Event) RoutingKey() string {
	return fmt.Sprintf("%s.%s", e.Table, e.Op)
}

// Publisher publishes events to a topic exchange.
//
// Events passed in by Forward are queued and published by a single
// goroutine, so a slow broker never delays a write.
type Publisher struct {
	channel  Channel
	conn     *amqp091.Connection
	exchange string
	timeout  time.Duration

	mu      sync.Mutex
	closed  bool
	queue   chan Event
	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
}

type Option func(*Publisher)

// WithQueueSize sets how many events can wait to be published. Events
// forwarded while the queue is full are dropped.
func WithQueueSize(size int) Option {
	return func(p *Publisher) {
		p.queue = make(chan Event, size)
	}
}

// WithPublishTimeout sets how long publishing a single message may take.
// Close waits as long for queued events to be published.
func WithPublishTimeout(timeout time.Duration) Option {
	return func(p *Publisher) {
		p.timeout = timeout
	}
}

// Dial connects to the broker at url and declares the exchange.
func Dial(url, exchange string, opts ...Option) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p, err := New(channel, exchange, opts...)
	if err != nil {
		conn.Close()
		return nil, err
	}
	p.conn = conn

	return p, nil
}

// New creates a Publisher on an open channel and declares the exchange.
func New(channel Channel, exchange string, opts ...Option) (*Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	err := channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	p := &Publisher{
		channel:  channel,
		exchange: exchange,
		timeout:  defaultPublishTimeout,
		queue:    make(chan Event, defaultQueueSize),
		stopped:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.ctx, p.cancel = context.WithCancel(context.Background())
	go p.run()

	return p, nil
}

func (p *Publisher) run() {
	defer close(p.stopped)

	for e := range p.queue {
		if err := p.Publish(p.ctx, e); err != nil {
			log.Error().Err(err).Str("exchange", p.exchange).Str("routing-key", e.RoutingKey()).Msg("could not publish change")
			continue
		}

		log.Debug().Str("exchange", p.exchange).Str("routing-key", e.RoutingKey()).Str("id", e.ID.String()).Msg("published change")
	}
}

// enqueue hands the event to the publishing goroutine without blocking.
func (p *Publisher) enqueue(e Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	select {
	case p.queue <- e:
	default:
		log.Warn().Str("exchange", p.exchange).Str("routing-key", e.RoutingKey()).Str("id", e.ID.String()).Msg("publish queue is full, dropping change")
	}
}

// Publish sends the event as a persistent JSON message.
func (p *Publisher) Publish(ctx context.Context, e Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,     // exchange
		e.RoutingKey(), // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    e.At,
			MessageId:    uuid.NewString(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	return nil
}

// Forward queues every change committed to the store for publishing.
// Publishing errors are logged and do not affect the write.
//
// The returned function stops forwarding.
func (p *Publisher) Forward(s *store.Store) func() {
	owner := s.Owner()

	return s.OnChange(func(c store.Change) {
		p.enqueue(Event{
			Table:  c.Table,
			Op:     c.Op,
			ID:     c.ID,
			UserID: owner,
			At:     c.At,
		})
	})
}

// Close stops accepting events, waits up to the publish timeout for queued
// events to be published and closes the channel and the connection, if the
// Publisher opened it.
func (p *Publisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	select {
	case <-p.stopped:
	case <-time.After(p.timeout):
		log.Warn().Int("queued", len(p.queue)).Msg("publishing queued changes timed out")
	}
	p.cancel()
	<-p.stopped

	if err := p.channel.Close(); err != nil {
		return err
	}

	if p.conn != nil {
		return p.conn.Close()
	}

	return nil
}
