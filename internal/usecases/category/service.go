package category

import (
	"context"
	"errors"

	"github.com/vfg2006/lead-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/lead-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/lead-dashboard-api/internal/domain"
	"github.com/vfg2006/lead-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/lead-dashboard-api/pkg/log"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	GetCategory(ctx context.Context, id int) (*domain.Category, error)
	CreateCategory(ctx context.Context, request *domain.CategoryRequest) (*domain.Category, bool, error)
	UpdateCategory(ctx context.Context, id int, request *domain.CategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int) error
}

type Service struct {
	categoryRepository repository.CategoryRepository
	reportCache        cache.ReportCache
}

func NewService(categoryRepository repository.CategoryRepository, reportCache cache.ReportCache) CategoryService {
	return &Service{
		categoryRepository: categoryRepository,
		reportCache:        reportCache,
	}
}

func (s *Service) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categoryRepository.ListCategories(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar categorias")
		return nil, NewCategoryError(ErrFetchCategories, apiErrors.ErrDatabaseOperation, "Falha ao listar categorias no banco de dados")
	}

	return categories, nil
}

func (s *Service) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).Errorf("Erro ao buscar categoria %d", id)
		return nil, NewCategoryErrorWithID(ErrFetchCategories, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar categoria")
	}

	if category == nil {
		return nil, NewCategoryErrorWithID(ErrCategoryNotFound, apiErrors.ErrResourceNotFound, id, "")
	}

	return category, nil
}

// CreateCategory devolve a categoria existente quando o nome já está cadastrado
func (s *Service) CreateCategory(ctx context.Context, request *domain.CategoryRequest) (*domain.Category, bool, error) {
	category, created, err := s.categoryRepository.GetOrCreateCategory(ctx, request.Name)
	if err != nil {
		log.ForContext(ctx).WithError(err).Errorf("Erro ao criar categoria %q", request.Name)
		return nil, false, NewCategoryError(ErrSaveCategory, apiErrors.ErrDatabaseOperation, "Falha ao criar categoria")
	}

	if created {
		cache.InvalidateReports(ctx, s.reportCache)
	}

	return category, created, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id int, request *domain.CategoryRequest) (*domain.Category, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = request.Name

	updated, err := s.categoryRepository.UpdateCategory(ctx, category)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, NewCategoryErrorWithID(ErrCategoryNotFound, apiErrors.ErrResourceNotFound, id, "")
		case errors.Is(err, repository.ErrConflict):
			return nil, NewCategoryErrorWithID(ErrCategoryConflict, apiErrors.ErrResourceConflict, id, "Category with this name already exists")
		}

		log.ForContext(ctx).WithError(err).Errorf("Erro ao atualizar categoria %d", id)
		return nil, NewCategoryErrorWithID(ErrSaveCategory, apiErrors.ErrDatabaseOperation, id, "Falha ao atualizar categoria")
	}

	cache.InvalidateReports(ctx, s.reportCache)

	return updated, nil
}

// DeleteCategory remove a categoria e, em cascata, suas métricas
func (s *Service) DeleteCategory(ctx context.Context, id int) error {
	if err := s.categoryRepository.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewCategoryErrorWithID(ErrCategoryNotFound, apiErrors.ErrResourceNotFound, id, "")
		}

		log.ForContext(ctx).WithError(err).Errorf("Erro ao remover categoria %d", id)
		return NewCategoryErrorWithID(ErrDeleteCategory, apiErrors.ErrDatabaseOperation, id, "Falha ao remover categoria")
	}

	cache.InvalidateReports(ctx, s.reportCache)

	return nil
}
