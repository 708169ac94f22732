// SPDX-License-Identifier: GPL-3.0-only

package rabbitmq

import (
	"context"
	"testing"
	"time"

	"mineeast-server/models"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupMessageRoundTrip(t *testing.T) {
	country := "SA"
	event := models.NewSignupEvent(models.Signup{
		Email:     "builder@example.com",
		Country:   &country,
		CreatedAt: time.Date(2026, 10, 18, 7, 0, 0, 0, time.UTC),
	}, 128)

	msg, err := NewSignupMessage(event)
	require.NoError(t, err)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, event.EID, msg.MessageId)

	decoded, err := DecodeSignupEvent(msg.Body)
	require.NoError(t, err)
	assert.Equal(t, event.Email, decoded.Email)
	assert.Equal(t, "SA", decoded.Country)
	assert.Equal(t, int64(128), decoded.SignupNumber)
}

func TestDecodeSignupEventRejectsGarbage(t *testing.T) {
	_, err := DecodeSignupEvent([]byte("{"))
	require.Error(t, err)

	_, err = DecodeSignupEvent([]byte(`{"eid":"x"}`))
	require.Error(t, err)
}

func TestDefaultPublisherIsNoop(t *testing.T) {
	require.NoError(t, Events.PublishSignup(context.Background(), &models.SignupEvent{Email: "a@example.com"}))
	require.NoError(t, Events.Close())
}
