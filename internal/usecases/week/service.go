package week

import (
	"context"
	"errors"

	"github.com/vfg2006/lead-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/lead-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/lead-dashboard-api/internal/domain"
	"github.com/vfg2006/lead-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/lead-dashboard-api/pkg/log"
	"github.com/vfg2006/lead-dashboard-api/pkg/utils"
)

type WeekService interface {
	ListWeeks(ctx context.Context) ([]*domain.Week, error)
	GetWeek(ctx context.Context, id int) (*domain.Week, error)
	CreateWeek(ctx context.Context, request *domain.WeekRequest) (*domain.Week, bool, error)
	UpdateWeek(ctx context.Context, id int, request *domain.WeekRequest) (*domain.Week, error)
	DeleteWeek(ctx context.Context, id int) error
	ListSourcesByWeek(ctx context.Context, weekID int) ([]*domain.SourceInWeek, error)
	ListCategoriesByWeekAndSource(ctx context.Context, weekID, sourceID int) ([]*domain.CategoryInWeekAndSource, error)
}

type Service struct {
	weekRepository repository.WeekRepository
	reportCache    cache.ReportCache
}

func NewService(weekRepository repository.WeekRepository, reportCache cache.ReportCache) WeekService {
	return &Service{
		weekRepository: weekRepository,
		reportCache:    reportCache,
	}
}

func (s *Service) ListWeeks(ctx context.Context) ([]*domain.Week, error) {
	weeks, err := s.weekRepository.ListWeeks(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar semanas")
		return nil, NewWeekError(ErrFetchWeeks, apiErrors.ErrDatabaseOperation, "Falha ao listar semanas no banco de dados")
	}

	return weeks, nil
}

func (s *Service) GetWeek(ctx context.Context, id int) (*domain.Week, error) {
	week, err := s.weekRepository.GetWeekByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).Errorf("Erro ao buscar semana %d", id)
		return nil, NewWeekErrorWithID(ErrFetchWeeks, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar semana")
	}

	if week == nil {
		return nil, NewWeekErrorWithID(ErrWeekNotFound, apiErrors.ErrResourceNotFound, id, "")
	}

	return week, nil
}

// CreateWeek devolve a semana existente quando o mesmo par de datas já está cadastrado
func (s *Service) CreateWeek(ctx context.Context, request *domain.WeekRequest) (*domain.Week, bool, error) {
	week, created, err := s.weekRepository.GetOrCreateWeek(ctx, *request.StartDate, *request.EndDate)
	if err != nil {
		log.ForContext(ctx).WithError(err).Errorf("Erro ao criar semana %s - %s", request.StartDate, request.EndDate)
		return nil, false, NewWeekError(ErrSaveWeek, apiErrors.ErrDatabaseOperation, "Falha ao criar semana")
	}

	if created {
		cache.InvalidateReports(ctx, s.reportCache)
	}

	return week, created, nil
}

// UpdateWeek substitui as duas datas. Não há verificação de ordem ou sobreposição.
func (s *Service) UpdateWeek(ctx context.Context, id int, request *domain.WeekRequest) (*domain.Week, error) {
	week, err := s.GetWeek(ctx, id)
	if err != nil {
		return nil, err
	}

	week.StartDate = *request.StartDate
	week.EndDate = *request.EndDate

	updated, err := s.weekRepository.UpdateWeek(ctx, week)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewWeekErrorWithID(ErrWeekNotFound, apiErrors.ErrResourceNotFound, id, "")
		}

		log.ForContext(ctx).WithError(err).Errorf("Erro ao atualizar semana %d", id)
		return nil, NewWeekErrorWithID(ErrSaveWeek, apiErrors.ErrDatabaseOperation, id, "Falha ao atualizar semana")
	}

	cache.InvalidateReports(ctx, s.reportCache)

	return updated, nil
}

// DeleteWeek remove a semana e, em cascata, suas métricas
func (s *Service) DeleteWeek(ctx context.Context, id int) error {
	if err := s.weekRepository.DeleteWeek(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewWeekErrorWithID(ErrWeekNotFound, apiErrors.ErrResourceNotFound, id, "")
		}

		log.ForContext(ctx).WithError(err).Errorf("Erro ao remover semana %d", id)
		return NewWeekErrorWithID(ErrDeleteWeek, apiErrors.ErrDatabaseOperation, id, "Falha ao remover semana")
	}

	cache.InvalidateReports(ctx, s.reportCache)

	return nil
}

func (s *Service) ListSourcesByWeek(ctx context.Context, weekID int) ([]*domain.SourceInWeek, error) {
	if _, err := s.GetWeek(ctx, weekID); err != nil {
		return nil, err
	}

	sources, err := s.weekRepository.ListSourcesByWeek(ctx, weekID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Errorf("Erro ao listar fontes da semana %d", weekID)
		return nil, NewWeekErrorWithID(ErrFetchWeeks, apiErrors.ErrDatabaseOperation, weekID, "Falha ao listar fontes da semana")
	}

	return sources, nil
}

// ListCategoriesByWeekAndSource traz as categorias com métrica na semana e fonte, já com o custo por lead
func (s *Service) ListCategoriesByWeekAndSource(ctx context.Context, weekID, sourceID int) ([]*domain.CategoryInWeekAndSource, error) {
	if _, err := s.GetWeek(ctx, weekID); err != nil {
		return nil, err
	}

	categories, err := s.weekRepository.ListCategoriesByWeekAndSource(ctx, weekID, sourceID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Errorf("Erro ao listar categorias da semana %d e fonte %d", weekID, sourceID)
		return nil, NewWeekErrorWithID(ErrFetchWeeks, apiErrors.ErrDatabaseOperation, weekID, "Falha ao listar categorias da semana")
	}

	for _, category := range categories {
		category.LeadCost = utils.LeadCost(category.Amount, category.LeadsCount)
	}

	return categories, nil
}
