// Package application 后台运营应用服务
package application

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/novamart/storefront/internal/admin/domain"
)

// DashboardSummary 运营看板汇总
type DashboardSummary struct {
	TotalRevenue    decimal.Decimal        `json:"total_revenue"`
	OrderCount      int                    `json:"order_count"`
	UserCount       int                    `json:"user_count"`
	OpenTickets     int                    `json:"open_tickets"`
	LowStockCount   int                    `json:"low_stock_count"`
	LowStockSamples []domain.ProductDigest `json:"low_stock_samples"`
}

// AdminApplicationService 后台运营应用服务
type AdminApplicationService struct {
	tickets   domain.TicketRepository
	sellers   domain.SellerRepository
	orders    domain.OrderFeed
	users     domain.UserFeed
	inventory domain.InventoryFeed
}

// NewAdminApplicationService 创建后台运营应用服务
func NewAdminApplicationService(
	tickets domain.TicketRepository,
	sellers domain.SellerRepository,
	orders domain.OrderFeed,
	users domain.UserFeed,
	inventory domain.InventoryFeed,
) *AdminApplicationService {
	return &AdminApplicationService{
		tickets:   tickets,
		sellers:   sellers,
		orders:    orders,
		users:     users,
		inventory: inventory,
	}
}

// Summary 聚合营收、订单、用户与低库存信息
func (s *AdminApplicationService) Summary(ctx context.Context) (*DashboardSummary, error) {
	orders, err := s.orders.Orders(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.Users(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.inventory.LowStockProducts(ctx)
	if err != nil {
		return nil, err
	}
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	for _, o := range orders {
		if o.Status != "Cancelled" {
			revenue = revenue.Add(o.Amount)
		}
	}

	openTickets := 0
	for _, t := range tickets {
		if t.Status != domain.TicketResolved {
			openTickets++
		}
	}

	samples := lowStock
	if len(samples) > 5 {
		samples = samples[:5]
	}

	return &DashboardSummary{
		TotalRevenue:    revenue,
		OrderCount:      len(orders),
		UserCount:       len(users),
		OpenTickets:     openTickets,
		LowStockCount:   len(lowStock),
		LowStockSamples: samples,
	}, nil
}

// ListTickets 工单列表
func (s *AdminApplicationService) ListTickets(ctx context.Context) ([]*domain.SupportTicket, error) {
	return s.tickets.List(ctx)
}

// ResolveTicket 关闭工单
func (s *AdminApplicationService) ResolveTicket(ctx context.Context, id string) (*domain.SupportTicket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ticket.Status = domain.TicketResolved
	ticket.LastUpdated = "just now"
	if err := s.tickets.Save(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// ListSellers 卖家列表
func (s *AdminApplicationService) ListSellers(ctx context.Context) ([]*domain.Seller, error) {
	return s.sellers.List(ctx)
}

// ListUsers 用户列表
func (s *AdminApplicationService) ListUsers(ctx context.Context) ([]domain.UserDigest, error) {
	return s.users.Users(ctx)
}
