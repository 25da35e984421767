// Package domain 结算流程的领域模型
package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotAtReview 只能在 Review 步骤确认支付
	ErrNotAtReview = errors.New("checkout is not at review step")
	// ErrAtFinalStep Review 之后没有下一步
	ErrAtFinalStep = errors.New("checkout is already at final step")
	// ErrAlreadyProcessing 支付处理中，拒绝重复确认
	ErrAlreadyProcessing = errors.New("checkout is already processing")
	// ErrEmptyCart 空购物车不能结算
	ErrEmptyCart = errors.New("cart is empty")
)

// Step 结算步骤，线性推进
type Step string

const (
	StepShipping Step = "Shipping"
	StepPayment  Step = "Payment"
	StepReview   Step = "Review"
)

// Checkout 单个用户的结算状态机。
// 仅允许相邻步骤间前进/后退，终态动作只能从 Review 发起一次。
type Checkout struct {
	UserID     string `json:"user_id"`
	Step       Step   `json:"step"`
	Processing bool   `json:"processing"`
}

// NewCheckout 创建初始状态的结算流程
func NewCheckout(userID string) *Checkout {
	return &Checkout{UserID: userID, Step: StepShipping}
}

// Continue 前进一步，Review 处不可再前进
func (c *Checkout) Continue() error {
	if c.Processing {
		return ErrAlreadyProcessing
	}
	switch c.Step {
	case StepShipping:
		c.Step = StepPayment
	case StepPayment:
		c.Step = StepReview
	default:
		return ErrAtFinalStep
	}
	return nil
}

// Back 后退一步，初始步骤处为空操作
func (c *Checkout) Back() error {
	if c.Processing {
		return ErrAlreadyProcessing
	}
	switch c.Step {
	case StepReview:
		c.Step = StepPayment
	case StepPayment:
		c.Step = StepShipping
	}
	return nil
}

// StartProcessing 进入支付处理子状态，仅允许从 Review 进入一次
func (c *Checkout) StartProcessing() error {
	if c.Processing {
		return ErrAlreadyProcessing
	}
	if c.Step != StepReview {
		return ErrNotAtReview
	}
	c.Processing = true
	return nil
}

// AbortProcessing 中止支付处理，回到 Review
func (c *Checkout) AbortProcessing() {
	c.Processing = false
}

// Reset 完成后回到初始状态
func (c *Checkout) Reset() {
	c.Step = StepShipping
	c.Processing = false
}

// Totals 结算金额拆分
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

var (
	taxRate           = decimal.NewFromFloat(0.08)
	shippingFee       = decimal.NewFromInt(15)
	freeShippingAbove = decimal.NewFromInt(100)
)

// ComputeTotals 由小计派生税费与运费：8% 销售税，满 100 免 15 运费
func ComputeTotals(subtotal decimal.Decimal) Totals {
	tax := subtotal.Mul(taxRate)
	shipping := shippingFee
	if subtotal.GreaterThan(freeShippingAbove) {
		shipping = decimal.Zero
	}
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Add(tax).Add(shipping),
	}
}

// CheckoutRepository 结算状态仓储接口，Update 对同一用户原子执行
type CheckoutRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Checkout, error)
	Update(ctx context.Context, userID string, fn func(*Checkout) error) (*Checkout, error)
}

// CartSummary 结算视角的购物车摘要
type CartSummary struct {
	ItemCount    int
	ProductNames []string
	Subtotal     decimal.Decimal
}

// CartGateway 购物车协作方接口，由购物车服务实现
type CartGateway interface {
	Summary(ctx context.Context, userID string) (*CartSummary, error)
	Clear(ctx context.Context, userID string) error
}

// OrderRecorder 订单落账接口，由订单服务实现
type OrderRecorder interface {
	Record(ctx context.Context, userID, productName string, amount decimal.Decimal) (string, error)
}
