package rabbitmq_client

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"

	"github.com/init-pkg/sheet-export/domain/app"
	"github.com/init-pkg/sheet-export/internal/config"
)

var errNotConnected = errors.New("rabbitmq: not connected")

// Publisher sends audit events to a topic exchange, routed by event type.
// Without a url, or when the broker is unreachable, events are dropped.
type Publisher struct {
	cfg  config.Rabbit
	log  *slog.Logger
	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

var _ app.EventPublisher = &Publisher{}

func New(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) *Publisher {
	p := &Publisher{cfg: cfg.Infrastructure.Rabbit, log: log}
	if p.cfg.Url == "" {
		log.Info("rabbitmq not configured, events disabled")
		return p
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if err := p.connect(); err != nil {
				log.Warn("rabbitmq connect failed, events disabled", slog.String("error", err.Error()))
			}
			return nil
		},
		OnStop: func(context.Context) error {
			return p.Close()
		},
	})
	return p
}

func (this *Publisher) connect() error {
	conn, err := amqp.Dial(this.cfg.Url)
	if err != nil {
		return err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return err
	}
	if err := ch.ExchangeDeclare(this.cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return err
	}

	this.mu.Lock()
	this.conn, this.ch = conn, ch
	this.mu.Unlock()
	return nil
}

func (this *Publisher) Publish(ctx context.Context, event app.Event) error {
	this.mu.Lock()
	defer this.mu.Unlock()

	if this.ch == nil {
		if this.cfg.Url == "" {
			return nil
		}
		return errNotConnected
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return this.ch.PublishWithContext(ctx, this.cfg.Exchange, event.Type, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now(),
		Body:         body,
	})
}

func (this *Publisher) Close() error {
	this.mu.Lock()
	defer this.mu.Unlock()

	var errs []error
	if this.ch != nil {
		errs = append(errs, this.ch.Close())
		this.ch = nil
	}
	if this.conn != nil {
		errs = append(errs, this.conn.Close())
		this.conn = nil
	}
	return errors.Join(errs...)
}
