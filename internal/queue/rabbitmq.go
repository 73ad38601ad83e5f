package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"campaign_syncer/internal/domain"
)

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
	Prefetch   int
}

// session is a connection and channel with the job topology declared.
type session struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	cfg     Config
	logger  *slog.Logger
}

func dial(cfg Config, logger *slog.Logger) (*session, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declare(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &session{conn: conn, channel: ch, cfg: cfg, logger: logger}, nil
}

func declare(ch *amqp.Channel, cfg Config) error {
	err := ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

func (s *session) Close() error {
	if s.channel != nil {
		s.channel.Close()
	}
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// Publisher sends job messages to the job exchange.
type Publisher struct {
	*session
}

func NewPublisher(cfg Config, logger *slog.Logger) (*Publisher, error) {
	s, err := dial(cfg, logger)
	if err != nil {
		return nil, err
	}
	return &Publisher{session: s}, nil
}

// Publish sends msg as a persistent message. The message expires from the
// queue once its ttl has elapsed.
func (p *Publisher) Publish(ctx context.Context, msg *domain.JobMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	publishing := amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    msg.UUID,
		Body:         body,
		Timestamp:    time.Now(),
	}
	if msg.TTL > 0 {
		publishing.Expiration = strconv.Itoa(msg.TTL * 1000)
	}
	if msg.Body != nil {
		publishing.Type = msg.Body.Action
	}

	err = p.channel.PublishWithContext(
		ctx,
		p.cfg.Exchange,
		p.cfg.RoutingKey,
		false,
		false,
		publishing,
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	p.logger.Debug("published job",
		"job_uuid", msg.UUID,
		"type", publishing.Type,
	)

	return nil
}

// Consumer receives job messages from the job queue with manual acks.
type Consumer struct {
	*session
	tag string
}

func NewConsumer(cfg Config, tag string, logger *slog.Logger) (*Consumer, error) {
	s, err := dial(cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.Prefetch > 0 {
		if err := s.channel.Qos(cfg.Prefetch, 0, false); err != nil {
			s.Close()
			return nil, fmt.Errorf("set prefetch: %w", err)
		}
	}

	return &Consumer{session: s, tag: tag}, nil
}

// Consume starts the delivery stream. The channel is closed when ctx is
// cancelled or the connection drops.
func (c *Consumer) Consume(ctx context.Context) (<-chan amqp.Delivery, error) {
	deliveries, err := c.channel.ConsumeWithContext(
		ctx,
		c.cfg.QueueName,
		c.tag,
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("consume queue: %w", err)
	}

	c.logger.Info("consuming jobs", "queue", c.cfg.QueueName, "prefetch", c.cfg.Prefetch)
	return deliveries, nil
}

// ExpirationOf returns the ttl carried by a delivery, or 0 when it has none.
func ExpirationOf(d amqp.Delivery) time.Duration {
	if d.Expiration == "" {
		return 0
	}
	ms, err := strconv.Atoi(d.Expiration)
	if err != nil || ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}
