package reporting

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/vfg2006/lead-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/lead-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/lead-dashboard-api/internal/domain"
	"github.com/vfg2006/lead-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/lead-dashboard-api/pkg/log"
	"github.com/vfg2006/lead-dashboard-api/pkg/utils"
)

const (
	leadOverviewKey      = "lead_overview"
	leadMetricsByWeekKey = "lead_metrics_by_weeks"
)

type ReportingService interface {
	LeadOverview(ctx context.Context) (*domain.LeadOverview, error)
	CategoryStats(ctx context.Context, categoryID int, filters domain.StatsFilters) (*domain.LeadStatsSummary, error)
	SourceStats(ctx context.Context, sourceID int, filters domain.StatsFilters) (*domain.LeadStatsSummary, error)
	LeadMetricsByWeeks(ctx context.Context) ([]*domain.LeadMetricsByWeek, error)
}

type Service struct {
	dashboardRepository repository.DashboardRepository
	categoryRepository  repository.CategoryRepository
	sourceRepository    repository.SourceRepository
	reportCache         cache.ReportCache
}

func NewService(
	dashboardRepository repository.DashboardRepository,
	categoryRepository repository.CategoryRepository,
	sourceRepository repository.SourceRepository,
	reportCache cache.ReportCache,
) ReportingService {
	return &Service{
		dashboardRepository: dashboardRepository,
		categoryRepository:  categoryRepository,
		sourceRepository:    sourceRepository,
		reportCache:         reportCache,
	}
}

// LeadOverview soma leads e valores por categoria e por fonte, ordenados pelo nome.
// Só aparecem categorias e fontes com ao menos uma métrica.
func (s *Service) LeadOverview(ctx context.Context) (*domain.LeadOverview, error) {
	overview := &domain.LeadOverview{}

	err := s.reportCache.Fetch(ctx, leadOverviewKey, overview, func(ctx context.Context) (interface{}, error) {
		byCategory, err := s.dashboardRepository.ListCategorySummaries(ctx)
		if err != nil {
			return nil, err
		}

		bySource, err := s.dashboardRepository.ListSourceSummaries(ctx)
		if err != nil {
			return nil, err
		}

		if byCategory == nil {
			byCategory = []*domain.CategorySummary{}
		}
		if bySource == nil {
			bySource = []*domain.SourceSummary{}
		}

		return &domain.LeadOverview{ByCategory: byCategory, BySource: bySource}, nil
	})
	if err != nil {
		return nil, reportError(ctx, err, "Falha ao montar resumo de leads")
	}

	return overview, nil
}

// CategoryStats agrupa as métricas da categoria por semana dentro do intervalo informado
func (s *Service) CategoryStats(ctx context.Context, categoryID int, filters domain.StatsFilters) (*domain.LeadStatsSummary, error) {
	summary := &domain.LeadStatsSummary{}

	err := s.reportCache.Fetch(ctx, statsKey("category", categoryID, filters), summary, func(ctx context.Context) (interface{}, error) {
		category, err := s.categoryRepository.GetCategoryByID(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, NewReportingErrorWithID(ErrCategoryNotFound, apiErrors.ErrResourceNotFound, categoryID, "")
		}

		rows, err := s.dashboardRepository.ListWeeklyAggregatesByCategory(ctx, categoryID, filters)
		if err != nil {
			return nil, err
		}

		return summarize(rows, func(stats *domain.WeeklyStats) {
			stats.CategoryID = &categoryID
		}), nil
	})
	if err != nil {
		return nil, reportError(ctx, err, fmt.Sprintf("Falha ao calcular estatísticas da categoria %d", categoryID))
	}

	return summary, nil
}

// SourceStats agrupa as métricas da fonte por semana dentro do intervalo informado
func (s *Service) SourceStats(ctx context.Context, sourceID int, filters domain.StatsFilters) (*domain.LeadStatsSummary, error) {
	summary := &domain.LeadStatsSummary{}

	err := s.reportCache.Fetch(ctx, statsKey("source", sourceID, filters), summary, func(ctx context.Context) (interface{}, error) {
		source, err := s.sourceRepository.GetSourceByID(ctx, sourceID)
		if err != nil {
			return nil, err
		}
		if source == nil {
			return nil, NewReportingErrorWithID(ErrSourceNotFound, apiErrors.ErrResourceNotFound, sourceID, "")
		}

		rows, err := s.dashboardRepository.ListWeeklyAggregatesBySource(ctx, sourceID, filters)
		if err != nil {
			return nil, err
		}

		return summarize(rows, func(stats *domain.WeeklyStats) {
			stats.SourceID = &sourceID
		}), nil
	})
	if err != nil {
		return nil, reportError(ctx, err, fmt.Sprintf("Falha ao calcular estatísticas da fonte %d", sourceID))
	}

	return summary, nil
}

// LeadMetricsByWeeks agrupa as métricas pelo par (start_date, end_date), em ordem crescente.
// Semanas distintas com as mesmas datas caem no mesmo grupo.
func (s *Service) LeadMetricsByWeeks(ctx context.Context) ([]*domain.LeadMetricsByWeek, error) {
	groups := make([]*domain.LeadMetricsByWeek, 0)

	err := s.reportCache.Fetch(ctx, leadMetricsByWeekKey, &groups, func(ctx context.Context) (interface{}, error) {
		details, err := s.dashboardRepository.ListLeadMetricDetails(ctx)
		if err != nil {
			return nil, err
		}

		return groupByWeek(details), nil
	})
	if err != nil {
		return nil, reportError(ctx, err, "Falha ao agrupar métricas por semana")
	}

	return groups, nil
}

func summarize(rows []*domain.WeeklyAggregate, owner func(*domain.WeeklyStats)) *domain.LeadStatsSummary {
	summary := &domain.LeadStatsSummary{
		WeeklyStats: make([]*domain.WeeklyStats, 0, len(rows)),
	}

	for _, row := range rows {
		stats := &domain.WeeklyStats{
			ID:         row.WeekID,
			StartDate:  row.StartDate.Display(),
			EndDate:    row.EndDate.Display(),
			LeadsCount: row.LeadsCount,
			Amount:     row.Amount,
			LeadCost:   utils.LeadCost(row.Amount, row.LeadsCount),
		}
		owner(stats)

		summary.TotalAmount += row.Amount
		summary.TotalLeads += row.LeadsCount
		summary.WeeklyStats = append(summary.WeeklyStats, stats)
	}

	summary.LeadCost = utils.LeadCost(summary.TotalAmount, summary.TotalLeads)

	return summary
}

type weekKey struct {
	start string
	end   string
}

func groupByWeek(details []*domain.LeadMetricDetail) []*domain.LeadMetricsByWeek {
	groups := make([]*domain.LeadMetricsByWeek, 0)
	index := make(map[weekKey]*domain.LeadMetricsByWeek)

	for _, detail := range details {
		key := weekKey{start: detail.WeekStartDate.String(), end: detail.WeekEndDate.String()}

		group, ok := index[key]
		if !ok {
			group = &domain.LeadMetricsByWeek{
				StartDate: detail.WeekStartDate,
				EndDate:   detail.WeekEndDate,
				Metrics:   make([]*domain.LeadMetricItem, 0),
			}
			index[key] = group
			groups = append(groups, group)
		}

		group.Metrics = append(group.Metrics, &domain.LeadMetricItem{
			LeadMetricID: detail.LeadMetricID,
			Amount:       detail.Amount,
			LeadsCount:   detail.LeadsCount,
			Category:     domain.NamedRef{ID: detail.CategoryID, Name: detail.CategoryName},
			Source:       domain.NamedRef{ID: detail.SourceID, Name: detail.SourceName},
			Week: domain.WeekRef{
				ID:        detail.WeekID,
				StartDate: detail.WeekStartDate.String(),
				EndDate:   detail.WeekEndDate.String(),
			},
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if !groups[i].StartDate.Equal(groups[j].StartDate) {
			return groups[i].StartDate.Before(groups[j].StartDate)
		}
		return groups[i].EndDate.Before(groups[j].EndDate)
	})

	return groups
}

func statsKey(kind string, id int, filters domain.StatsFilters) string {
	return fmt.Sprintf("stats:%s:%d:%s:%s", kind, id, filterKey(filters.FromDate), filterKey(filters.ToDate))
}

func filterKey(date *domain.Date) string {
	if date == nil {
		return "-"
	}
	return date.String()
}

// reportError preserva erros já tipados e converte o resto em falha de banco
func reportError(ctx context.Context, err error, details string) error {
	var reportingErr *ReportingError
	if errors.As(err, &reportingErr) {
		return reportingErr
	}

	log.ForContext(ctx).WithError(err).Error(details)
	return NewReportingError(ErrBuildReport, apiErrors.ErrDatabaseOperation, details)
}
