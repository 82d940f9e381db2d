package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/franciscosanchezn/pizza-order-api/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublishOrderPlaced(t *testing.T) {
	writer := &fakeWriter{}
	publisher := &KafkaPublisher{writer: writer}

	order := &models.Order{
		ID:           7,
		PizzaID:      3,
		Extras:       []models.Extra{{ID: 1}, {ID: 4}},
		Quantity:     2,
		TotalPrice:   decimal.RequireFromString("27"),
		CustomerName: "John Doe",
	}
	require.NoError(t, publisher.PublishOrderPlaced(context.Background(), NewOrderPlacedEvent(order)))

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, "order-7", string(msg.Key))
	assert.Equal(t, EventTypeOrderPlaced, string(msg.Headers[0].Value))

	var decoded OrderPlacedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, uint(7), decoded.OrderID)
	assert.Equal(t, []uint{1, 4}, decoded.ExtraIDs)
	assert.Equal(t, "27.00", decoded.TotalPrice)
	assert.NotEmpty(t, decoded.EventID)
}

func TestPublishStatusChangedPropagatesWriteError(t *testing.T) {
	writer := &fakeWriter{err: errors.New("broker down")}
	publisher := &KafkaPublisher{writer: writer}

	err := publisher.PublishOrderStatusChanged(context.Background(),
		NewOrderStatusChangedEvent(1, models.OrderStatusPending, models.OrderStatusBaking))
	assert.ErrorContains(t, err, "broker down")

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}
