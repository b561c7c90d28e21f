package load

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=load
type Repository interface {
	GetLoad(ctx context.Context, tenantID, id uuid.UUID) (*Load, error)
	ListLoads(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]*Load, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ListFilter struct {
	Status          *Status
	FinancialStatus *FinancialStatus
}

func (s *Service) Get(ctx context.Context, tenantID, id uuid.UUID) (*Load, error) {
	return s.repo.GetLoad(ctx, tenantID, id)
}

func (s *Service) List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]*Load, error) {
	return s.repo.ListLoads(ctx, tenantID, filter)
}

// AwaitingInvoice lists delivered loads that have not been invoiced yet, oldest first.
func (s *Service) AwaitingInvoice(ctx context.Context, tenantID uuid.UUID) ([]*Load, error) {
	loads, err := s.repo.ListLoads(ctx, tenantID, ListFilter{Status: new(StatusDelivered)})
	if err != nil {
		return nil, err
	}

	pending := make([]*Load, 0, len(loads))

	for _, l := range loads {
		if l.FinancialStatus == FinancialStatusInvoiced {
			continue
		}

		pending = append(pending, l)
	}

	return pending, nil
}
