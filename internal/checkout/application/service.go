// Package application 结算流程的应用服务
package application

import (
	"context"
	"strings"
	"time"

	"github.com/novamart/storefront/internal/checkout/domain"
	"github.com/novamart/storefront/pkg/logger"
)

// CheckoutCompletedEvent 结算完成事件
type CheckoutCompletedEvent struct {
	UserID    string    `json:"user_id"`
	OrderID   string    `json:"order_id"`
	Amount    string    `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// EventPublisher 事件发布者接口
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
}

// ConfirmResult 确认支付的结果，NavigateTo 指示视图层跳转目标
type ConfirmResult struct {
	OrderID    string        `json:"order_id"`
	Totals     domain.Totals `json:"totals"`
	NavigateTo string        `json:"navigate_to"`
}

// CheckoutState 当前结算状态与金额
type CheckoutState struct {
	Checkout *domain.Checkout `json:"checkout"`
	Totals   domain.Totals    `json:"totals"`
}

// CheckoutApplicationService 结算服务门面
type CheckoutApplicationService struct {
	repo      domain.CheckoutRepository
	carts     domain.CartGateway
	orders    domain.OrderRecorder
	publisher EventPublisher
	// 模拟支付处理时长
	processingDelay time.Duration
}

// NewCheckoutApplicationService 创建结算服务实例
func NewCheckoutApplicationService(
	repo domain.CheckoutRepository,
	carts domain.CartGateway,
	orders domain.OrderRecorder,
	publisher EventPublisher,
	processingDelay time.Duration,
) *CheckoutApplicationService {
	return &CheckoutApplicationService{
		repo:            repo,
		carts:           carts,
		orders:          orders,
		publisher:       publisher,
		processingDelay: processingDelay,
	}
}

// State 当前步骤与金额拆分
func (s *CheckoutApplicationService) State(ctx context.Context, userID string) (*CheckoutState, error) {
	checkout, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary, err := s.carts.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &CheckoutState{
		Checkout: checkout,
		Totals:   domain.ComputeTotals(summary.Subtotal),
	}, nil
}

// Continue 前进到下一步
func (s *CheckoutApplicationService) Continue(ctx context.Context, userID string) (*domain.Checkout, error) {
	return s.repo.Update(ctx, userID, func(c *domain.Checkout) error {
		return c.Continue()
	})
}

// Back 回退到上一步
func (s *CheckoutApplicationService) Back(ctx context.Context, userID string) (*domain.Checkout, error) {
	return s.repo.Update(ctx, userID, func(c *domain.Checkout) error {
		return c.Back()
	})
}

// Confirm 在 Review 步骤确认支付。进入处理子状态并等待固定时长，
// 之后清空购物车、落一笔订单并指示跳转到订单历史。
// ctx 取消会中止等待并把状态机退回 Review，购物车保持原样。
func (s *CheckoutApplicationService) Confirm(ctx context.Context, userID string) (*ConfirmResult, error) {
	summary, err := s.carts.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}
	if summary.ItemCount == 0 {
		return nil, domain.ErrEmptyCart
	}

	// 进入处理子状态，保证同一时刻只有一次确认在进行
	if _, err := s.repo.Update(ctx, userID, func(c *domain.Checkout) error {
		return c.StartProcessing()
	}); err != nil {
		return nil, err
	}

	timer := time.NewTimer(s.processingDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		if _, abortErr := s.repo.Update(context.WithoutCancel(ctx), userID, func(c *domain.Checkout) error {
			c.AbortProcessing()
			return nil
		}); abortErr != nil {
			logger.Error(ctx, "Failed to abort checkout processing", "user_id", userID, "error", abortErr)
		}
		logger.Info(ctx, "Checkout processing aborted", "user_id", userID)
		return nil, ctx.Err()
	}

	totals := domain.ComputeTotals(summary.Subtotal)

	orderID, err := s.orders.Record(ctx, userID, strings.Join(summary.ProductNames, ", "), totals.Total)
	if err != nil {
		logger.Error(ctx, "Failed to record order", "user_id", userID, "error", err)
	}

	if err := s.carts.Clear(ctx, userID); err != nil {
		return nil, err
	}

	if _, err := s.repo.Update(ctx, userID, func(c *domain.Checkout) error {
		c.Reset()
		return nil
	}); err != nil {
		return nil, err
	}

	event := CheckoutCompletedEvent{
		UserID:    userID,
		OrderID:   orderID,
		Amount:    totals.Total.String(),
		Timestamp: time.Now(),
	}
	if err := s.publisher.Publish(ctx, "checkout.completed", userID, event); err != nil {
		logger.Warn(ctx, "Failed to publish checkout completed event", "user_id", userID, "error", err)
	}

	return &ConfirmResult{
		OrderID:    orderID,
		Totals:     totals,
		NavigateTo: "/orders",
	}, nil
}
