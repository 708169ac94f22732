// SPDX-License-Identifier: GPL-3.0-only

package rabbitmq

import (
	"context"
	"sync"

	"mineeast-server/models"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	DefaultExchange  = "waitlist"
	SignupRoutingKey = "signup.created"
)

type RabbitMQConfig struct {
	amqpURL  string
	exchange string
}

// Publisher sends waitlist events to the message bus.
type Publisher interface {
	PublishSignup(ctx context.Context, event *models.SignupEvent) error
	Close() error
}

type Client struct {
	Exchange    string
	AMQPConn    *amqp.Connection
	AMQPChannel *amqp.Channel
	mu          sync.Mutex
}

type noopPublisher struct{}

func (noopPublisher) PublishSignup(context.Context, *models.SignupEvent) error { return nil }
func (noopPublisher) Close() error                                              { return nil }
