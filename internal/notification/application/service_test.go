package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novamart/storefront/internal/notification/domain"
	"github.com/novamart/storefront/internal/notification/infrastructure/persistence/memory"
)

type recordingSender struct {
	toasts []*domain.Toast
	err    error
}

func (s *recordingSender) Send(ctx context.Context, toast *domain.Toast) error {
	if s.err != nil {
		return s.err
	}
	s.toasts = append(s.toasts, toast)
	return nil
}

func TestSuccessAndInfo_StoreWithTone(t *testing.T) {
	sender := &recordingSender{}
	svc := NewNotificationApplicationService(memory.NewToastRepository(), sender)

	svc.Success(context.Background(), "u1", "Added Zenith Pro Wireless Headphones to cart.")
	svc.Info(context.Background(), "u1", "Removed from wishlist.")

	toasts, err := svc.Recent(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, toasts, 2)
	// 新消息在前
	assert.Equal(t, domain.ToneInfo, toasts[0].Tone)
	assert.Equal(t, domain.ToneSuccess, toasts[1].Tone)
	assert.Len(t, sender.toasts, 2)
}

func TestDeliver_SenderFailureDoesNotPanic(t *testing.T) {
	sender := &recordingSender{err: errors.New("broker down")}
	svc := NewNotificationApplicationService(memory.NewToastRepository(), sender)

	svc.Success(context.Background(), "u1", "Order confirmed!")

	// 投递失败不影响本地留存
	toasts, err := svc.Recent(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, toasts, 1)
}

func TestRecent_ScopedToUser(t *testing.T) {
	svc := NewNotificationApplicationService(memory.NewToastRepository())

	svc.Success(context.Background(), "u1", "Saved to wishlist.")

	toasts, err := svc.Recent(context.Background(), "u2")
	require.NoError(t, err)
	assert.Empty(t, toasts)
}
