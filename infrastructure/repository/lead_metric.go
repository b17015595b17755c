package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/lead-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/lead-dashboard-api/internal/domain"
)

const (
	leadMetricsTable   = "lead_metrics lm"
	leadMetricsColumns = "lm.id, lm.amount, lm.leads_count, lm.category_id, lm.source_id, lm.week_id"
	leadMetricsReturn  = "RETURNING id, amount, leads_count, category_id, source_id, week_id"
)

type LeadMetricRepository interface {
	ListLeadMetrics(ctx context.Context, filters domain.LeadMetricFilters) ([]*domain.LeadMetric, error)
	GetLeadMetricByID(ctx context.Context, id int) (*domain.LeadMetric, error)
	GetOrCreateLeadMetric(ctx context.Context, metric *domain.LeadMetric) (*domain.LeadMetric, bool, error)
	UpdateLeadMetric(ctx context.Context, metric *domain.LeadMetric) (*domain.LeadMetric, error)
	DeleteLeadMetric(ctx context.Context, id int) error
}

type leadMetricRepository struct {
	conn *postgres.Connection
}

func NewLeadMetricRepository(conn *postgres.Connection) LeadMetricRepository {
	return &leadMetricRepository{
		conn: conn,
	}
}

func selectLeadMetrics() squirrel.SelectBuilder {
	return squirrel.
		Select(leadMetricsColumns).
		From(leadMetricsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func listLeadMetricsQuery(filters domain.LeadMetricFilters) squirrel.SelectBuilder {
	queryBuilder := selectLeadMetrics().OrderBy("lm.id ASC")

	if filters.WeekID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"lm.week_id": *filters.WeekID})
	}

	if filters.CategoryID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"lm.category_id": *filters.CategoryID})
	}

	if filters.SourceID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"lm.source_id": *filters.SourceID})
	}

	return queryBuilder
}

func (r *leadMetricRepository) ListLeadMetrics(ctx context.Context, filters domain.LeadMetricFilters) ([]*domain.LeadMetric, error) {
	metrics := make([]*domain.LeadMetric, 0)
	if err := selectAll(ctx, r.conn, &metrics, listLeadMetricsQuery(filters)); err != nil {
		return nil, err
	}

	return metrics, nil
}

func (r *leadMetricRepository) GetLeadMetricByID(ctx context.Context, id int) (*domain.LeadMetric, error) {
	return r.getLeadMetric(ctx, squirrel.Eq{"lm.id": id})
}

func (r *leadMetricRepository) getLeadMetric(ctx context.Context, where squirrel.Eq) (*domain.LeadMetric, error) {
	metric := &domain.LeadMetric{}
	if err := getOne(ctx, r.conn, metric, selectLeadMetrics().Where(where)); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, translateError(err)
	}

	return metric, nil
}

func insertLeadMetricQuery(metric *domain.LeadMetric) squirrel.InsertBuilder {
	return squirrel.
		Insert("lead_metrics").
		Columns("amount", "leads_count", "category_id", "source_id", "week_id").
		Values(metric.Amount, metric.LeadsCount, metric.CategoryID, metric.SourceID, metric.WeekID).
		Suffix("ON CONFLICT (category_id, source_id, week_id) DO NOTHING " + leadMetricsReturn).
		PlaceholderFormat(squirrel.Dollar)
}

// GetOrCreateLeadMetric insere a métrica ou retorna a existente para o mesmo
// trio (categoria, fonte, semana), sem alterar os valores gravados.
func (r *leadMetricRepository) GetOrCreateLeadMetric(ctx context.Context, metric *domain.LeadMetric) (*domain.LeadMetric, bool, error) {
	created := &domain.LeadMetric{}
	err := getOne(ctx, r.conn, created, insertLeadMetricQuery(metric))
	if err == nil {
		return created, true, nil
	}

	if !isNoRows(err) {
		return nil, false, translateError(err)
	}

	existing, err := r.getLeadMetric(ctx, squirrel.Eq{
		"lm.category_id": metric.CategoryID,
		"lm.source_id":   metric.SourceID,
		"lm.week_id":     metric.WeekID,
	})
	if err != nil {
		return nil, false, err
	}

	if existing == nil {
		return nil, false, errors.Wrap(ErrNotFound, "lead metric removed during creation")
	}

	return existing, false, nil
}

func updateLeadMetricQuery(metric *domain.LeadMetric) squirrel.UpdateBuilder {
	return squirrel.
		Update("lead_metrics").
		Set("amount", metric.Amount).
		Set("leads_count", metric.LeadsCount).
		Set("category_id", metric.CategoryID).
		Set("source_id", metric.SourceID).
		Set("week_id", metric.WeekID).
		Where(squirrel.Eq{"id": metric.ID}).
		Suffix(leadMetricsReturn).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *leadMetricRepository) UpdateLeadMetric(ctx context.Context, metric *domain.LeadMetric) (*domain.LeadMetric, error) {
	updated := &domain.LeadMetric{}
	if err := getOne(ctx, r.conn, updated, updateLeadMetricQuery(metric)); err != nil {
		return nil, translateError(err)
	}

	return updated, nil
}

func (r *leadMetricRepository) DeleteLeadMetric(ctx context.Context, id int) error {
	return execAffecting(ctx, r.conn, squirrel.
		Delete("lead_metrics").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar),
	)
}
