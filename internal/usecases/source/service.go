package source

import (
	"context"
	"errors"

	"github.com/vfg2006/lead-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/lead-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/lead-dashboard-api/internal/domain"
	"github.com/vfg2006/lead-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/lead-dashboard-api/pkg/log"
)

type SourceService interface {
	ListSources(ctx context.Context) ([]*domain.Source, error)
	GetSource(ctx context.Context, id int) (*domain.Source, error)
	CreateSource(ctx context.Context, request *domain.SourceRequest) (*domain.Source, bool, error)
	UpdateSource(ctx context.Context, id int, request *domain.SourceRequest) (*domain.Source, error)
	DeleteSource(ctx context.Context, id int) error
}

type Service struct {
	sourceRepository repository.SourceRepository
	reportCache      cache.ReportCache
}

func NewService(sourceRepository repository.SourceRepository, reportCache cache.ReportCache) SourceService {
	return &Service{
		sourceRepository: sourceRepository,
		reportCache:      reportCache,
	}
}

func (s *Service) ListSources(ctx context.Context) ([]*domain.Source, error) {
	sources, err := s.sourceRepository.ListSources(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar fontes")
		return nil, NewSourceError(ErrFetchSources, apiErrors.ErrDatabaseOperation, "Falha ao listar fontes no banco de dados")
	}

	return sources, nil
}

func (s *Service) GetSource(ctx context.Context, id int) (*domain.Source, error) {
	source, err := s.sourceRepository.GetSourceByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).Errorf("Erro ao buscar fonte %d", id)
		return nil, NewSourceErrorWithID(ErrFetchSources, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar fonte")
	}

	if source == nil {
		return nil, NewSourceErrorWithID(ErrSourceNotFound, apiErrors.ErrResourceNotFound, id, "")
	}

	return source, nil
}

// CreateSource devolve a fonte existente quando o nome já está cadastrado.
// Sem pricing_type a fonte é criada como total_divided.
func (s *Service) CreateSource(ctx context.Context, request *domain.SourceRequest) (*domain.Source, bool, error) {
	newSource := &domain.Source{
		Name:        request.Name,
		PricingType: domain.PricingTypeTotalDivided,
	}

	if request.PricingType != nil {
		if !request.PricingType.IsValid() {
			return nil, false, NewSourceError(ErrInvalidPricingType, apiErrors.ErrInvalidFormat, string(*request.PricingType))
		}
		newSource.PricingType = *request.PricingType
	}

	source, created, err := s.sourceRepository.GetOrCreateSource(ctx, newSource)
	if err != nil {
		log.ForContext(ctx).WithError(err).Errorf("Erro ao criar fonte %q", request.Name)
		return nil, false, NewSourceError(ErrSaveSource, apiErrors.ErrDatabaseOperation, "Falha ao criar fonte")
	}

	if created {
		cache.InvalidateReports(ctx, s.reportCache)
	}

	return source, created, nil
}

// UpdateSource troca o nome e, quando informado, o pricing_type
func (s *Service) UpdateSource(ctx context.Context, id int, request *domain.SourceRequest) (*domain.Source, error) {
	if request.PricingType != nil && !request.PricingType.IsValid() {
		return nil, NewSourceErrorWithID(ErrInvalidPricingType, apiErrors.ErrInvalidFormat, id, string(*request.PricingType))
	}

	source, err := s.GetSource(ctx, id)
	if err != nil {
		return nil, err
	}

	source.Name = request.Name
	if request.PricingType != nil {
		source.PricingType = *request.PricingType
	}

	updated, err := s.sourceRepository.UpdateSource(ctx, source)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, NewSourceErrorWithID(ErrSourceNotFound, apiErrors.ErrResourceNotFound, id, "")
		case errors.Is(err, repository.ErrConflict):
			return nil, NewSourceErrorWithID(ErrSourceConflict, apiErrors.ErrResourceConflict, id, "Source with this name already exists")
		}

		log.ForContext(ctx).WithError(err).Errorf("Erro ao atualizar fonte %d", id)
		return nil, NewSourceErrorWithID(ErrSaveSource, apiErrors.ErrDatabaseOperation, id, "Falha ao atualizar fonte")
	}

	cache.InvalidateReports(ctx, s.reportCache)

	return updated, nil
}

// DeleteSource remove a fonte e, em cascata, suas métricas
func (s *Service) DeleteSource(ctx context.Context, id int) error {
	if err := s.sourceRepository.DeleteSource(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewSourceErrorWithID(ErrSourceNotFound, apiErrors.ErrResourceNotFound, id, "")
		}

		log.ForContext(ctx).WithError(err).Errorf("Erro ao remover fonte %d", id)
		return NewSourceErrorWithID(ErrDeleteSource, apiErrors.ErrDatabaseOperation, id, "Falha ao remover fonte")
	}

	cache.InvalidateReports(ctx, s.reportCache)

	return nil
}
