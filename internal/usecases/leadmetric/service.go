package leadmetric

import (
	"context"
	"errors"

	"github.com/vfg2006/lead-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/lead-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/lead-dashboard-api/internal/domain"
	"github.com/vfg2006/lead-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/lead-dashboard-api/pkg/log"
)

type LeadMetricService interface {
	ListLeadMetrics(ctx context.Context, filters domain.LeadMetricFilters) ([]*domain.LeadMetric, error)
	GetLeadMetric(ctx context.Context, id int) (*domain.LeadMetric, error)
	CreateLeadMetric(ctx context.Context, request *domain.LeadMetricRequest) (*domain.LeadMetric, bool, error)
	UpdateLeadMetric(ctx context.Context, id int, request *domain.LeadMetricRequest) (*domain.LeadMetric, error)
	DeleteLeadMetric(ctx context.Context, id int) error
}

type Service struct {
	leadMetricRepository repository.LeadMetricRepository
	reportCache          cache.ReportCache
}

func NewService(leadMetricRepository repository.LeadMetricRepository, reportCache cache.ReportCache) LeadMetricService {
	return &Service{
		leadMetricRepository: leadMetricRepository,
		reportCache:          reportCache,
	}
}

func (s *Service) ListLeadMetrics(ctx context.Context, filters domain.LeadMetricFilters) ([]*domain.LeadMetric, error) {
	metrics, err := s.leadMetricRepository.ListLeadMetrics(ctx, filters)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar métricas de leads")
		return nil, NewLeadMetricError(ErrFetchLeadMetrics, apiErrors.ErrDatabaseOperation, "Falha ao listar métricas no banco de dados")
	}

	return metrics, nil
}

func (s *Service) GetLeadMetric(ctx context.Context, id int) (*domain.LeadMetric, error) {
	metric, err := s.leadMetricRepository.GetLeadMetricByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).Errorf("Erro ao buscar métrica %d", id)
		return nil, NewLeadMetricErrorWithID(ErrFetchLeadMetrics, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar métrica")
	}

	if metric == nil {
		return nil, NewLeadMetricErrorWithID(ErrLeadMetricNotFound, apiErrors.ErrResourceNotFound, id, "")
	}

	return metric, nil
}

// CreateLeadMetric devolve a métrica existente quando a combinação categoria, fonte e semana já existe
func (s *Service) CreateLeadMetric(ctx context.Context, request *domain.LeadMetricRequest) (*domain.LeadMetric, bool, error) {
	metric, created, err := s.leadMetricRepository.GetOrCreateLeadMetric(ctx, request.ToLeadMetric())
	if err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			return nil, false, NewLeadMetricError(ErrInvalidReference, apiErrors.ErrInvalidReference, err.Error())
		}

		log.ForContext(ctx).WithError(err).Error("Erro ao criar métrica de leads")
		return nil, false, NewLeadMetricError(ErrSaveLeadMetric, apiErrors.ErrDatabaseOperation, "Falha ao criar métrica")
	}

	if created {
		cache.InvalidateReports(ctx, s.reportCache)
	}

	return metric, created, nil
}

// UpdateLeadMetric substitui todos os campos da métrica
func (s *Service) UpdateLeadMetric(ctx context.Context, id int, request *domain.LeadMetricRequest) (*domain.LeadMetric, error) {
	if _, err := s.GetLeadMetric(ctx, id); err != nil {
		return nil, err
	}

	metric := request.ToLeadMetric()
	metric.ID = id

	updated, err := s.leadMetricRepository.UpdateLeadMetric(ctx, metric)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, NewLeadMetricErrorWithID(ErrLeadMetricNotFound, apiErrors.ErrResourceNotFound, id, "")
		case errors.Is(err, repository.ErrConflict):
			return nil, NewLeadMetricErrorWithID(ErrLeadMetricConflict, apiErrors.ErrResourceConflict, id, "Metric with such category_id, source_id and week_id already exists")
		case errors.Is(err, repository.ErrInvalidReference):
			return nil, NewLeadMetricErrorWithID(ErrInvalidReference, apiErrors.ErrInvalidReference, id, err.Error())
		}

		log.ForContext(ctx).WithError(err).Errorf("Erro ao atualizar métrica %d", id)
		return nil, NewLeadMetricErrorWithID(ErrSaveLeadMetric, apiErrors.ErrDatabaseOperation, id, "Falha ao atualizar métrica")
	}

	cache.InvalidateReports(ctx, s.reportCache)

	return updated, nil
}

func (s *Service) DeleteLeadMetric(ctx context.Context, id int) error {
	if err := s.leadMetricRepository.DeleteLeadMetric(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewLeadMetricErrorWithID(ErrLeadMetricNotFound, apiErrors.ErrResourceNotFound, id, "")
		}

		log.ForContext(ctx).WithError(err).Errorf("Erro ao remover métrica %d", id)
		return NewLeadMetricErrorWithID(ErrDeleteLeadMetric, apiErrors.ErrDatabaseOperation, id, "Falha ao remover métrica")
	}

	cache.InvalidateReports(ctx, s.reportCache)

	return nil
}
