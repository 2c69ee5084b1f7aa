package rmqconsumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"docchat-api/config"
)

// can scale depends on a parallel worker count
const preFetchCount = 1

// Routing keys emitted by the external upload pipeline.
const (
	UploadCompleted = "upload.completed"
	UploadProcessed = "upload.processed"
	UploadFailed    = "upload.failed"
)

// UploadEvent is the payload of an upload lifecycle message.
type UploadEvent struct {
	UserID string `json:"user_id"`
	Key    string `json:"storage_key"`
	Name   string `json:"file_name"`
	URL    string `json:"download_url"`
}

// UploadHandler receives decoded upload events. The file service implements
// it; the consumer stays transport-only.
type UploadHandler interface {
	UploadCompleted(ctx context.Context, ev UploadEvent) error
	UploadProcessed(ctx context.Context, key string) error
	UploadFailed(ctx context.Context, key string) error
}

type Consumer struct {
	cfg        config.MQ
	log        *zap.Logger
	handler    UploadHandler
	conn       *amqp091.Connection
	chConsume  *amqp091.Channel
	chDelivery <-chan amqp091.Delivery
}

func New(cfg config.MQ, logger *zap.Logger, handler UploadHandler) *Consumer {
	return &Consumer{
		cfg:     cfg,
		log:     logger,
		handler: handler,
	}
}

func (c *Consumer) Connect(dsn string) error {
	var err error
	c.conn, err = amqp091.Dial(dsn)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	c.chConsume, err = c.conn.Channel()
	if err != nil {
		_ = c.conn.Close()
		return fmt.Errorf("amqp channel: %w", err)
	}

	c.log.Info("rabbitmq consumer connected successfully")

	return nil
}

func (c *Consumer) Init() error {
	var err error
	if err = c.chConsume.ExchangeDeclare(
		c.cfg.Exchange,
		c.cfg.ExchangeType,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("exchange declare: %w", err)
	}
	if _, err = c.chConsume.QueueDeclare(
		c.cfg.UploadsQueue,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	for _, rk := range []string{
		UploadCompleted,
		UploadProcessed,
		UploadFailed,
	} {
		if err = c.chConsume.QueueBind(
			c.cfg.UploadsQueue,
			rk,
			c.cfg.Exchange,
			false,
			nil,
		); err != nil {
			return fmt.Errorf("queue bind %s: %w", rk, err)
		}
	}

	if err = c.chConsume.Qos(preFetchCount, 0, false); err != nil {
		return fmt.Errorf("qos: %w", err)
	}

	var cerr error
	c.chDelivery, cerr = c.chConsume.Consume(
		c.cfg.UploadsQueue,
		"",
		true,
		false,
		false,
		false,
		nil,
	)
	if cerr != nil {
		return fmt.Errorf("consume: %w", cerr)
	}

	return nil
}

func (c *Consumer) DeliveryWorker(ctx context.Context) {
	c.log.Info("starting upload delivery worker")

	defer func() {
		c.log.Info("upload delivery worker gracefully stopped")
	}()

	for {
		select {
		case msg := <-c.chDelivery:
			if err := c.Delivery(ctx, msg.RoutingKey, msg.Body); err != nil {
				// alert
				c.log.Error("mq read message error", zap.Error(err))
			}
		case <-ctx.Done():
			c.chConsume.Close()
			return
		}
	}
}

// Delivery decodes one upload message and hands it to the handler.
func (c *Consumer) Delivery(ctx context.Context, routingKey string, body []byte) error {
	var ev UploadEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("upload event decode: %w", err)
	}
	if ev.Key == "" {
		return fmt.Errorf("upload event without storage key")
	}

	switch routingKey {
	case UploadCompleted:
		return c.handler.UploadCompleted(ctx, ev)
	case UploadProcessed:
		return c.handler.UploadProcessed(ctx, ev.Key)
	case UploadFailed:
		return c.handler.UploadFailed(ctx, ev.Key)
	}

	return fmt.Errorf("unknown upload routing key %q", routingKey)
}
