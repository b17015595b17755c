package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/lead-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/lead-dashboard-api/internal/domain"
)

const (
	categoriesTable = "categories c"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	GetCategoryByID(ctx context.Context, id int) (*domain.Category, error)
	GetOrCreateCategory(ctx context.Context, name string) (*domain.Category, bool, error)
	UpdateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int) error
}

type categoryRepository struct {
	conn *postgres.Connection
}

func NewCategoryRepository(conn *postgres.Connection) CategoryRepository {
	return &categoryRepository{
		conn: conn,
	}
}

func selectCategories() squirrel.SelectBuilder {
	return squirrel.
		Select("c.id, c.name").
		From(categoriesTable).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	categories := make([]*domain.Category, 0)
	if err := selectAll(ctx, r.conn, &categories, selectCategories().OrderBy("c.id ASC")); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	return r.getCategory(ctx, squirrel.Eq{"c.id": id})
}

func (r *categoryRepository) getCategory(ctx context.Context, where squirrel.Eq) (*domain.Category, error) {
	category := &domain.Category{}
	if err := getOne(ctx, r.conn, category, selectCategories().Where(where)); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, translateError(err)
	}

	return category, nil
}

func insertCategoryQuery(name string) squirrel.InsertBuilder {
	return squirrel.
		Insert("categories").
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT (name) DO NOTHING RETURNING id, name").
		PlaceholderFormat(squirrel.Dollar)
}

// GetOrCreateCategory insere a categoria ou retorna a existente com o mesmo nome.
// O booleano indica se a linha foi criada agora.
func (r *categoryRepository) GetOrCreateCategory(ctx context.Context, name string) (*domain.Category, bool, error) {
	created := &domain.Category{}
	err := getOne(ctx, r.conn, created, insertCategoryQuery(name))
	if err == nil {
		return created, true, nil
	}

	if !isNoRows(err) {
		return nil, false, translateError(err)
	}

	existing, err := r.getCategory(ctx, squirrel.Eq{"c.name": name})
	if err != nil {
		return nil, false, err
	}

	if existing == nil {
		return nil, false, errors.Wrapf(ErrNotFound, "category %q removed during creation", name)
	}

	return existing, false, nil
}

func updateCategoryQuery(category *domain.Category) squirrel.UpdateBuilder {
	return squirrel.
		Update("categories").
		Set("name", category.Name).
		Where(squirrel.Eq{"id": category.ID}).
		Suffix("RETURNING id, name").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	updated := &domain.Category{}
	if err := getOne(ctx, r.conn, updated, updateCategoryQuery(category)); err != nil {
		return nil, translateError(err)
	}

	return updated, nil
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id int) error {
	return execAffecting(ctx, r.conn, squirrel.
		Delete("categories").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar),
	)
}
