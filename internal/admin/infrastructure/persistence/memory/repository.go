// Package memory 工单与卖家的内存仓储
package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/novamart/storefront/internal/admin/domain"
)

type ticketRepository struct {
	mu      sync.RWMutex
	order   []string
	tickets map[string]*domain.SupportTicket
}

// NewTicketRepository 创建预置演示工单的内存仓储
func NewTicketRepository() domain.TicketRepository {
	repo := &ticketRepository{tickets: make(map[string]*domain.SupportTicket)}
	for _, t := range fixtureTickets() {
		repo.order = append(repo.order, t.ID)
		repo.tickets[t.ID] = t
	}
	return repo
}

func fixtureTickets() []*domain.SupportTicket {
	return []*domain.SupportTicket{
		{
			ID:           "TIC-001",
			Subject:      "Refund request for broken item",
			CustomerName: "Sarah Wilson",
			Priority:     domain.PriorityHigh,
			Status:       domain.TicketOpen,
			LastUpdated:  "2 hours ago",
		},
	}
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.SupportTicket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	clone := *ticket
	return &clone, nil
}

func (r *ticketRepository) List(ctx context.Context) ([]*domain.SupportTicket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.SupportTicket, 0, len(r.order))
	for _, id := range r.order {
		clone := *r.tickets[id]
		out = append(out, &clone)
	}
	return out, nil
}

func (r *ticketRepository) Save(ctx context.Context, ticket *domain.SupportTicket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tickets[ticket.ID]; !ok {
		r.order = append(r.order, ticket.ID)
	}
	clone := *ticket
	r.tickets[ticket.ID] = &clone
	return nil
}

type sellerRepository struct {
	mu      sync.RWMutex
	order   []string
	sellers map[string]*domain.Seller
}

// NewSellerRepository 创建预置演示卖家的内存仓储
func NewSellerRepository() domain.SellerRepository {
	repo := &sellerRepository{sellers: make(map[string]*domain.Seller)}
	for _, s := range fixtureSellers() {
		repo.order = append(repo.order, s.ID)
		repo.sellers[s.ID] = s
	}
	return repo
}

func fixtureSellers() []*domain.Seller {
	return []*domain.Seller{
		{
			ID:         "S1",
			Name:       "Alpha Tech",
			StoreName:  "Alpha Electronics",
			Email:      "sales@alphatech.com",
			JoinDate:   "2023-02-12",
			Status:     "Active",
			Revenue:    decimal.NewFromInt(154000),
			Rating:     4.9,
			IsVerified: true,
		},
	}
}

func (r *sellerRepository) GetByID(ctx context.Context, id string) (*domain.Seller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seller, ok := r.sellers[id]
	if !ok {
		return nil, domain.ErrSellerNotFound
	}
	clone := *seller
	return &clone, nil
}

func (r *sellerRepository) List(ctx context.Context) ([]*domain.Seller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Seller, 0, len(r.order))
	for _, id := range r.order {
		clone := *r.sellers[id]
		out = append(out, &clone)
	}
	return out, nil
}
