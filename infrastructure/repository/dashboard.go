package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/lead-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/lead-dashboard-api/internal/domain"
)

// DashboardRepository concentra as consultas agregadas usadas pelos relatórios
type DashboardRepository interface {
	ListCategorySummaries(ctx context.Context) ([]*domain.CategorySummary, error)
	ListSourceSummaries(ctx context.Context) ([]*domain.SourceSummary, error)
	ListWeeklyAggregatesByCategory(ctx context.Context, categoryID int, filters domain.StatsFilters) ([]*domain.WeeklyAggregate, error)
	ListWeeklyAggregatesBySource(ctx context.Context, sourceID int, filters domain.StatsFilters) ([]*domain.WeeklyAggregate, error)
	ListLeadMetricDetails(ctx context.Context) ([]*domain.LeadMetricDetail, error)
}

type dashboardRepository struct {
	conn *postgres.Connection
}

func NewDashboardRepository(conn *postgres.Connection) DashboardRepository {
	return &dashboardRepository{
		conn: conn,
	}
}

func categorySummariesQuery() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"lm.category_id",
			"c.name AS category_name",
			"SUM(lm.leads_count) AS total_leads",
			"SUM(lm.amount)::float8 AS total_amount",
		).
		From(leadMetricsTable).
		Join("categories c ON c.id = lm.category_id").
		GroupBy("lm.category_id", "c.name").
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *dashboardRepository) ListCategorySummaries(ctx context.Context) ([]*domain.CategorySummary, error) {
	summaries := make([]*domain.CategorySummary, 0)
	if err := selectAll(ctx, r.conn, &summaries, categorySummariesQuery()); err != nil {
		return nil, err
	}

	return summaries, nil
}

func sourceSummariesQuery() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"lm.source_id",
			"s.name AS source_name",
			"SUM(lm.leads_count) AS total_leads",
			"SUM(lm.amount)::float8 AS total_amount",
		).
		From(leadMetricsTable).
		Join("sources s ON s.id = lm.source_id").
		GroupBy("lm.source_id", "s.name").
		OrderBy("s.name ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *dashboardRepository) ListSourceSummaries(ctx context.Context) ([]*domain.SourceSummary, error) {
	summaries := make([]*domain.SourceSummary, 0)
	if err := selectAll(ctx, r.conn, &summaries, sourceSummariesQuery()); err != nil {
		return nil, err
	}

	return summaries, nil
}

// weeklyAggregatesQuery agrupa as métricas por semana. O filtro de período
// considera semanas que começam em from_date ou depois e terminam em to_date ou antes.
func weeklyAggregatesQuery(where squirrel.Eq, filters domain.StatsFilters) squirrel.SelectBuilder {
	queryBuilder := squirrel.
		Select(
			"w.id AS week_id",
			"w.start_date",
			"w.end_date",
			"COALESCE(SUM(lm.amount), 0) AS amount",
			"COALESCE(SUM(lm.leads_count), 0) AS leads_count",
		).
		From(leadMetricsTable).
		Join("weeks w ON w.id = lm.week_id").
		Where(where).
		GroupBy("w.id", "w.start_date", "w.end_date").
		OrderBy("w.start_date ASC", "w.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.FromDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"w.start_date": filters.FromDate.String()})
	}

	if filters.ToDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"w.end_date": filters.ToDate.String()})
	}

	return queryBuilder
}

func (r *dashboardRepository) ListWeeklyAggregatesByCategory(ctx context.Context, categoryID int, filters domain.StatsFilters) ([]*domain.WeeklyAggregate, error) {
	return r.listWeeklyAggregates(ctx, weeklyAggregatesQuery(squirrel.Eq{"lm.category_id": categoryID}, filters))
}

func (r *dashboardRepository) ListWeeklyAggregatesBySource(ctx context.Context, sourceID int, filters domain.StatsFilters) ([]*domain.WeeklyAggregate, error) {
	return r.listWeeklyAggregates(ctx, weeklyAggregatesQuery(squirrel.Eq{"lm.source_id": sourceID}, filters))
}

func (r *dashboardRepository) listWeeklyAggregates(ctx context.Context, queryBuilder squirrel.SelectBuilder) ([]*domain.WeeklyAggregate, error) {
	aggregates := make([]*domain.WeeklyAggregate, 0)
	if err := selectAll(ctx, r.conn, &aggregates, queryBuilder); err != nil {
		return nil, err
	}

	return aggregates, nil
}

func leadMetricDetailsQuery() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"lm.id AS lead_metric_id",
			"lm.amount",
			"lm.leads_count",
			"c.id AS category_id",
			"c.name AS category_name",
			"s.id AS source_id",
			"s.name AS source_name",
			"w.id AS week_id",
			"w.start_date AS week_start_date",
			"w.end_date AS week_end_date",
		).
		From(leadMetricsTable).
		Join("categories c ON c.id = lm.category_id").
		Join("sources s ON s.id = lm.source_id").
		Join("weeks w ON w.id = lm.week_id").
		OrderBy("w.start_date ASC", "w.end_date ASC", "lm.id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *dashboardRepository) ListLeadMetricDetails(ctx context.Context) ([]*domain.LeadMetricDetail, error) {
	details := make([]*domain.LeadMetricDetail, 0)
	if err := selectAll(ctx, r.conn, &details, leadMetricDetailsQuery()); err != nil {
		return nil, err
	}

	return details, nil
}
