package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/lead-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/lead-dashboard-api/internal/domain"
)

const (
	sourcesTable = "sources s"
)

type SourceRepository interface {
	ListSources(ctx context.Context) ([]*domain.Source, error)
	GetSourceByID(ctx context.Context, id int) (*domain.Source, error)
	GetOrCreateSource(ctx context.Context, source *domain.Source) (*domain.Source, bool, error)
	UpdateSource(ctx context.Context, source *domain.Source) (*domain.Source, error)
	DeleteSource(ctx context.Context, id int) error
}

type sourceRepository struct {
	conn *postgres.Connection
}

func NewSourceRepository(conn *postgres.Connection) SourceRepository {
	return &sourceRepository{
		conn: conn,
	}
}

func selectSources() squirrel.SelectBuilder {
	return squirrel.
		Select("s.id, s.name, s.pricing_type").
		From(sourcesTable).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *sourceRepository) ListSources(ctx context.Context) ([]*domain.Source, error) {
	sources := make([]*domain.Source, 0)
	if err := selectAll(ctx, r.conn, &sources, selectSources().OrderBy("s.id ASC")); err != nil {
		return nil, err
	}

	return sources, nil
}

func (r *sourceRepository) GetSourceByID(ctx context.Context, id int) (*domain.Source, error) {
	return r.getSource(ctx, squirrel.Eq{"s.id": id})
}

func (r *sourceRepository) getSource(ctx context.Context, where squirrel.Eq) (*domain.Source, error) {
	source := &domain.Source{}
	if err := getOne(ctx, r.conn, source, selectSources().Where(where)); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, translateError(err)
	}

	return source, nil
}

func insertSourceQuery(source *domain.Source) squirrel.InsertBuilder {
	pricingType := source.PricingType
	if pricingType == "" {
		pricingType = domain.PricingTypeTotalDivided
	}

	return squirrel.
		Insert("sources").
		Columns("name", "pricing_type").
		Values(source.Name, string(pricingType)).
		Suffix("ON CONFLICT (name) DO NOTHING RETURNING id, name, pricing_type").
		PlaceholderFormat(squirrel.Dollar)
}

// GetOrCreateSource insere a fonte ou retorna a existente com o mesmo nome.
// Uma fonte existente mantém o pricing_type já gravado.
func (r *sourceRepository) GetOrCreateSource(ctx context.Context, source *domain.Source) (*domain.Source, bool, error) {
	created := &domain.Source{}
	err := getOne(ctx, r.conn, created, insertSourceQuery(source))
	if err == nil {
		return created, true, nil
	}

	if !isNoRows(err) {
		return nil, false, translateError(err)
	}

	existing, err := r.getSource(ctx, squirrel.Eq{"s.name": source.Name})
	if err != nil {
		return nil, false, err
	}

	if existing == nil {
		return nil, false, errors.Wrapf(ErrNotFound, "source %q removed during creation", source.Name)
	}

	return existing, false, nil
}

func updateSourceQuery(source *domain.Source) squirrel.UpdateBuilder {
	return squirrel.
		Update("sources").
		Set("name", source.Name).
		Set("pricing_type", string(source.PricingType)).
		Where(squirrel.Eq{"id": source.ID}).
		Suffix("RETURNING id, name, pricing_type").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *sourceRepository) UpdateSource(ctx context.Context, source *domain.Source) (*domain.Source, error) {
	updated := &domain.Source{}
	if err := getOne(ctx, r.conn, updated, updateSourceQuery(source)); err != nil {
		return nil, translateError(err)
	}

	return updated, nil
}

func (r *sourceRepository) DeleteSource(ctx context.Context, id int) error {
	return execAffecting(ctx, r.conn, squirrel.
		Delete("sources").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar),
	)
}
