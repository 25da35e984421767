package application

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novamart/storefront/internal/order/domain"
	"github.com/novamart/storefront/internal/order/infrastructure/persistence/memory"
)

type fakeDirectory struct {
	err error
}

func (d *fakeDirectory) Lookup(ctx context.Context, userID string) (string, string, error) {
	if d.err != nil {
		return "", "", d.err
	}
	return "Sarah Wilson", "sarah@example.com", nil
}

type recordingPublisher struct {
	topics []string
}

func (p *recordingPublisher) Publish(ctx context.Context, topic, key string, event any) error {
	p.topics = append(p.topics, topic)
	return nil
}

func TestRecord_CreatesProcessingOrder(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewOrderApplicationService(memory.NewOrderRepository(), &fakeDirectory{}, pub)

	id, err := svc.Record(context.Background(), "U2", "Zenith Pro Wireless Headphones", decimal.NewFromFloat(322.92))

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Contains(t, pub.topics, "order.recorded")

	order, err := svc.GetOrder(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProcessing, order.Status)
	assert.Equal(t, "Sarah Wilson", order.CustomerName)
	assert.True(t, order.Amount.Equal(decimal.NewFromFloat(322.92)))
}

func TestRecord_LookupFailureUsesPlaceholder(t *testing.T) {
	svc := NewOrderApplicationService(memory.NewOrderRepository(), &fakeDirectory{err: errors.New("unknown user")}, &recordingPublisher{})

	id, err := svc.Record(context.Background(), "guest", "Luxe Minimalist Cotton Tee", decimal.NewFromInt(63))

	require.NoError(t, err)
	order, err := svc.GetOrder(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Guest Customer", order.CustomerName)
}

func TestListUserOrders_ScopedToUser(t *testing.T) {
	svc := NewOrderApplicationService(memory.NewOrderRepository(), &fakeDirectory{}, &recordingPublisher{})

	orders, err := svc.ListUserOrders(context.Background(), "U2")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-001", orders[0].ID)

	orders, err = svc.ListUserOrders(context.Background(), "U1")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestGetOrder_NotFound(t *testing.T) {
	svc := NewOrderApplicationService(memory.NewOrderRepository(), &fakeDirectory{}, &recordingPublisher{})

	_, err := svc.GetOrder(context.Background(), "ORD-999")

	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}
