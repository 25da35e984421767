// Package domain 后台运营的领域模型
package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrTicketNotFound 工单不存在
	ErrTicketNotFound = errors.New("support ticket not found")
	// ErrSellerNotFound 卖家不存在
	ErrSellerNotFound = errors.New("seller not found")
)

// TicketPriority 工单优先级
type TicketPriority string

const (
	PriorityLow    TicketPriority = "Low"
	PriorityMedium TicketPriority = "Medium"
	PriorityHigh   TicketPriority = "High"
)

// TicketStatus 工单状态
type TicketStatus string

const (
	TicketOpen       TicketStatus = "Open"
	TicketInProgress TicketStatus = "In Progress"
	TicketResolved   TicketStatus = "Resolved"
)

// SupportTicket 客服工单
type SupportTicket struct {
	ID           string         `json:"id"`
	Subject      string         `json:"subject"`
	CustomerName string         `json:"customer_name"`
	Priority     TicketPriority `json:"priority"`
	Status       TicketStatus   `json:"status"`
	LastUpdated  string         `json:"last_updated"`
}

// Seller 入驻卖家
type Seller struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	StoreName  string          `json:"store_name"`
	Email      string          `json:"email"`
	JoinDate   string          `json:"join_date"`
	Status     string          `json:"status"`
	Revenue    decimal.Decimal `json:"revenue"`
	Rating     float64         `json:"rating"`
	IsVerified bool            `json:"is_verified"`
}

// TicketRepository 工单仓储接口
type TicketRepository interface {
	GetByID(ctx context.Context, id string) (*SupportTicket, error)
	List(ctx context.Context) ([]*SupportTicket, error)
	Save(ctx context.Context, ticket *SupportTicket) error
}

// SellerRepository 卖家仓储接口
type SellerRepository interface {
	GetByID(ctx context.Context, id string) (*Seller, error)
	List(ctx context.Context) ([]*Seller, error)
}
