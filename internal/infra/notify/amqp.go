package notify

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"furnished-lease-engine/internal/pkg/errs"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Message is the JSON body published for every notification.
type Message struct {
	UserID     uuid.UUID      `json:"userId"`
	Event      string         `json:"event"`
	OccurredAt time.Time      `json:"occurredAt"`
	Data       map[string]any `json:"data"`
}

// brokerLink is one connection and channel pair.
type brokerLink interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

type dialFunc func() (brokerLink, error)

// AMQPNotifier publishes notifications to a topic exchange, routed by event name.
// A link closed by the broker is replaced on the next publish.
type AMQPNotifier struct {
	mu       sync.Mutex
	link     brokerLink
	dial     dialFunc
	exchange string
	now      func() time.Time
}

func NewAMQPNotifier(url, exchange string) (*AMQPNotifier, error) {
	return newAMQPNotifier(exchange, func() (brokerLink, error) {
		link, err := dialAMQP(url, exchange)
		if err != nil {
			return nil, err
		}
		return link, nil
	})
}

// newAMQPNotifier dials once so a bad broker URL fails at startup.
func newAMQPNotifier(exchange string, dial dialFunc) (*AMQPNotifier, error) {
	link, err := dial()
	if err != nil {
		return nil, err
	}
	return &AMQPNotifier{
		link:     link,
		dial:     dial,
		exchange: exchange,
		now:      func() time.Time { return time.Now().UTC() },
	}, nil
}

func (n *AMQPNotifier) Notify(ctx context.Context, userID uuid.UUID, event string, payload map[string]any) error {
	body, err := json.Marshal(Message{
		UserID:     userID,
		Event:      event,
		OccurredAt: n.now(),
		Data:       payload,
	})
	if err != nil {
		return errs.Wrap(err, "marshal notification")
	}
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    n.now(),
		Body:         body,
	}

	// amqp channels are not safe for concurrent publishing
	n.mu.Lock()
	defer n.mu.Unlock()

	link, err := n.current()
	if err != nil {
		return errs.Wrapf(err, "publish %s", event)
	}
	err = link.PublishWithContext(ctx, n.exchange, event, false, false, msg)
	if errors.Is(err, amqp.ErrClosed) {
		// closed between the check and the publish: one fresh attempt
		n.drop()
		if link, err = n.current(); err == nil {
			err = link.PublishWithContext(ctx, n.exchange, event, false, false, msg)
		}
	}
	if err != nil {
		return errs.Wrapf(err, "publish %s", event)
	}
	return nil
}

// current returns a live link, redialing when the broker closed the last one. Callers hold mu.
func (n *AMQPNotifier) current() (brokerLink, error) {
	if n.link != nil && !n.link.IsClosed() {
		return n.link, nil
	}
	n.drop()

	link, err := n.dial()
	if err != nil {
		return nil, err
	}
	slog.Info("rabbitmq link re-established", "exchange", n.exchange)
	n.link = link
	return link, nil
}

func (n *AMQPNotifier) drop() {
	if n.link != nil {
		_ = n.link.Close()
		n.link = nil
	}
}

func (n *AMQPNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.link == nil {
		return nil
	}
	err := n.link.Close()
	n.link = nil
	return err
}

type amqpLink struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	closed atomic.Bool
}

func dialAMQP(url, exchange string) (*amqpLink, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "declare exchange")
	}

	l := &amqpLink{conn: conn, ch: ch}
	go l.watch(conn.NotifyClose(make(chan *amqp.Error, 1)), "connection")
	go l.watch(ch.NotifyClose(make(chan *amqp.Error, 1)), "channel")
	return l, nil
}

// watch marks the link dead once the broker closes it. A nil error is a local Close.
func (l *amqpLink) watch(closes <-chan *amqp.Error, what string) {
	for amqpErr := range closes {
		if amqpErr != nil {
			slog.Warn("rabbitmq "+what+" closed",
				"code", amqpErr.Code,
				"reason", amqpErr.Reason)
		}
		l.closed.Store(true)
	}
	l.closed.Store(true)
}

func (l *amqpLink) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	return l.ch.PublishWithContext(ctx, exchange, key, mandatory, immediate, msg)
}

func (l *amqpLink) IsClosed() bool {
	return l.closed.Load() || l.ch.IsClosed() || l.conn.IsClosed()
}

func (l *amqpLink) Close() error {
	l.closed.Store(true)
	_ = l.ch.Close()
	return l.conn.Close()
}
