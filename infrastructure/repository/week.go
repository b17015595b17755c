package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/vfg2006/lead-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/lead-dashboard-api/internal/domain"
)

const (
	weeksTable = "weeks w"

	// chave do advisory lock que serializa a criação de semanas
	weeksLockKey = 7_340_001
)

type WeekRepository interface {
	ListWeeks(ctx context.Context) ([]*domain.Week, error)
	GetWeekByID(ctx context.Context, id int) (*domain.Week, error)
	GetOrCreateWeek(ctx context.Context, startDate, endDate domain.Date) (*domain.Week, bool, error)
	UpdateWeek(ctx context.Context, week *domain.Week) (*domain.Week, error)
	DeleteWeek(ctx context.Context, id int) error
	ListSourcesByWeek(ctx context.Context, weekID int) ([]*domain.SourceInWeek, error)
	ListCategoriesByWeekAndSource(ctx context.Context, weekID, sourceID int) ([]*domain.CategoryInWeekAndSource, error)
}

type weekRepository struct {
	conn *postgres.Connection
}

func NewWeekRepository(conn *postgres.Connection) WeekRepository {
	return &weekRepository{
		conn: conn,
	}
}

func selectWeeks() squirrel.SelectBuilder {
	return squirrel.
		Select("w.id, w.start_date, w.end_date").
		From(weeksTable).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *weekRepository) ListWeeks(ctx context.Context) ([]*domain.Week, error) {
	weeks := make([]*domain.Week, 0)
	if err := selectAll(ctx, r.conn, &weeks, selectWeeks().OrderBy("w.start_date ASC", "w.id ASC")); err != nil {
		return nil, err
	}

	return weeks, nil
}

func (r *weekRepository) GetWeekByID(ctx context.Context, id int) (*domain.Week, error) {
	return getWeek(ctx, r.conn, squirrel.Eq{"w.id": id})
}

func getWeek(ctx context.Context, q postgres.Queryer, where squirrel.Sqlizer) (*domain.Week, error) {
	week := &domain.Week{}
	if err := getOne(ctx, q, week, selectWeeks().Where(where).OrderBy("w.id ASC").Limit(1)); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, translateError(err)
	}

	return week, nil
}

func weekByDatesQuery(startDate, endDate domain.Date) squirrel.Eq {
	return squirrel.Eq{
		"w.start_date": startDate,
		"w.end_date":   endDate,
	}
}

// GetOrCreateWeek busca a semana pelo par exato de datas e cria quando não existe.
// Não há constraint única nas datas, então a busca e a inserção rodam sob advisory lock.
func (r *weekRepository) GetOrCreateWeek(ctx context.Context, startDate, endDate domain.Date) (*domain.Week, bool, error) {
	var (
		week    *domain.Week
		created bool
	)

	err := r.conn.RunInTransaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", weeksLockKey); err != nil {
			return errors.Wrap(err, "failed to acquire weeks lock")
		}

		existing, err := getWeek(ctx, tx, weekByDatesQuery(startDate, endDate))
		if err != nil {
			return err
		}

		if existing != nil {
			week = existing
			return nil
		}

		inserted := &domain.Week{}
		if err := getOne(ctx, tx, inserted, insertWeekQuery(startDate, endDate)); err != nil {
			return translateError(err)
		}

		week = inserted
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return week, created, nil
}

func insertWeekQuery(startDate, endDate domain.Date) squirrel.InsertBuilder {
	return squirrel.
		Insert("weeks").
		Columns("start_date", "end_date").
		Values(startDate, endDate).
		Suffix("RETURNING id, start_date, end_date").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *weekRepository) UpdateWeek(ctx context.Context, week *domain.Week) (*domain.Week, error) {
	updated := &domain.Week{}
	err := getOne(ctx, r.conn, updated, squirrel.
		Update("weeks").
		Set("start_date", week.StartDate).
		Set("end_date", week.EndDate).
		Where(squirrel.Eq{"id": week.ID}).
		Suffix("RETURNING id, start_date, end_date").
		PlaceholderFormat(squirrel.Dollar),
	)
	if err != nil {
		return nil, translateError(err)
	}

	return updated, nil
}

func (r *weekRepository) DeleteWeek(ctx context.Context, id int) error {
	return execAffecting(ctx, r.conn, squirrel.
		Delete("weeks").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar),
	)
}

func sourcesByWeekQuery(weekID int) squirrel.SelectBuilder {
	return squirrel.
		Select("s.id", "s.name").
		Distinct().
		From(sourcesTable).
		Join("lead_metrics lm ON lm.source_id = s.id").
		Where(squirrel.Eq{"lm.week_id": weekID}).
		OrderBy("s.name ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *weekRepository) ListSourcesByWeek(ctx context.Context, weekID int) ([]*domain.SourceInWeek, error) {
	sources := make([]*domain.SourceInWeek, 0)
	if err := selectAll(ctx, r.conn, &sources, sourcesByWeekQuery(weekID)); err != nil {
		return nil, err
	}

	return sources, nil
}

func categoriesByWeekAndSourceQuery(weekID, sourceID int) squirrel.SelectBuilder {
	return squirrel.
		Select("c.id", "c.name", "lm.amount", "lm.leads_count").
		From(categoriesTable).
		Join("lead_metrics lm ON lm.category_id = c.id").
		Where(squirrel.Eq{"lm.week_id": weekID}).
		Where(squirrel.Eq{"lm.source_id": sourceID}).
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *weekRepository) ListCategoriesByWeekAndSource(ctx context.Context, weekID, sourceID int) ([]*domain.CategoryInWeekAndSource, error) {
	categories := make([]*domain.CategoryInWeekAndSource, 0)
	if err := selectAll(ctx, r.conn, &categories, categoriesByWeekAndSourceQuery(weekID, sourceID)); err != nil {
		return nil, err
	}

	return categories, nil
}
