package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-dashboard-api/infrastructure/cache"
	cachemocks "github.com/vfg2006/lead-dashboard-api/infrastructure/cache/mocks"
	"github.com/vfg2006/lead-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/lead-dashboard-api/internal/domain"
	"github.com/vfg2006/lead-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type reportingMocks struct {
	dashboard *mocks.MockDashboardRepository
	category  *mocks.MockCategoryRepository
	source    *mocks.MockSourceRepository
}

func newTestService(ctrl *gomock.Controller, reportCache cache.ReportCache) (ReportingService, reportingMocks) {
	m := reportingMocks{
		dashboard: mocks.NewMockDashboardRepository(ctrl),
		category:  mocks.NewMockCategoryRepository(ctrl),
		source:    mocks.NewMockSourceRepository(ctrl),
	}
	return NewService(m.dashboard, m.category, m.source, reportCache), m
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestService_CategoryStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, cache.NewNoop())
	ctx := context.Background()

	week1 := domain.NewDate(2024, time.May, 29)
	week2 := domain.NewDate(2024, time.June, 5)
	from := domain.NewDate(2024, time.May, 1)
	filters := domain.StatsFilters{FromDate: &from}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, summary *domain.LeadStatsSummary, err error)
	}{
		{
			name: "Soma as semanas e calcula custo por lead",
			setup: func() {
				m.category.EXPECT().GetCategoryByID(gomock.Any(), 1).Return(&domain.Category{ID: 1, Name: "Москва"}, nil)
				m.dashboard.EXPECT().
					ListWeeklyAggregatesByCategory(gomock.Any(), 1, filters).
					Return([]*domain.WeeklyAggregate{
						{WeekID: 1, StartDate: week1, EndDate: week1.AddDays(6), Amount: 10000, LeadsCount: 3},
						{WeekID: 2, StartDate: week2, EndDate: week2.AddDays(6), Amount: 5000, LeadsCount: 0},
					}, nil)
			},
			validate: func(t *testing.T, summary *domain.LeadStatsSummary, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(15000), summary.TotalAmount)
				assert.Equal(t, int64(3), summary.TotalLeads)
				assert.Equal(t, floatPtr(5000), summary.LeadCost)

				require.Len(t, summary.WeeklyStats, 2)
				first := summary.WeeklyStats[0]
				assert.Equal(t, 1, first.ID)
				assert.Equal(t, "29.05.2024", first.StartDate)
				assert.Equal(t, "04.06.2024", first.EndDate)
				assert.Equal(t, floatPtr(3333.33), first.LeadCost)
				require.NotNil(t, first.CategoryID)
				assert.Equal(t, 1, *first.CategoryID)
				assert.Nil(t, first.SourceID)
				assert.Nil(t, first.LeadMetricID)

				assert.Nil(t, summary.WeeklyStats[1].LeadCost)
			},
		},
		{
			name: "Sem métricas no intervalo",
			setup: func() {
				m.category.EXPECT().GetCategoryByID(gomock.Any(), 1).Return(&domain.Category{ID: 1}, nil)
				m.dashboard.EXPECT().
					ListWeeklyAggregatesByCategory(gomock.Any(), 1, filters).
					Return([]*domain.WeeklyAggregate{}, nil)
			},
			validate: func(t *testing.T, summary *domain.LeadStatsSummary, err error) {
				require.NoError(t, err)
				assert.Zero(t, summary.TotalLeads)
				assert.Nil(t, summary.LeadCost)
				assert.NotNil(t, summary.WeeklyStats)
				assert.Empty(t, summary.WeeklyStats)
			},
		},
		{
			name: "Categoria inexistente",
			setup: func() {
				m.category.EXPECT().GetCategoryByID(gomock.Any(), 1).Return(nil, nil)
			},
			validate: func(t *testing.T, summary *domain.LeadStatsSummary, err error) {
				var reportingErr *ReportingError
				require.ErrorAs(t, err, &reportingErr)
				assert.ErrorIs(t, err, ErrCategoryNotFound)
				assert.Equal(t, apiErrors.ErrResourceNotFound, reportingErr.Code)
				assert.Nil(t, summary)
			},
		},
		{
			name: "Falha no banco",
			setup: func() {
				m.category.EXPECT().GetCategoryByID(gomock.Any(), 1).Return(&domain.Category{ID: 1}, nil)
				m.dashboard.EXPECT().
					ListWeeklyAggregatesByCategory(gomock.Any(), 1, filters).
					Return(nil, errors.New("connection reset"))
			},
			validate: func(t *testing.T, summary *domain.LeadStatsSummary, err error) {
				var reportingErr *ReportingError
				require.ErrorAs(t, err, &reportingErr)
				assert.ErrorIs(t, err, ErrBuildReport)
				assert.Equal(t, apiErrors.ErrDatabaseOperation, reportingErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			summary, err := service.CategoryStats(ctx, 1, filters)
			tt.validate(t, summary, err)
		})
	}
}

func TestService_SourceStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, cache.NewNoop())
	ctx := context.Background()
	start := domain.NewDate(2024, time.June, 12)

	m.source.EXPECT().GetSourceByID(gomock.Any(), 5).Return(&domain.Source{ID: 5, Name: "Flocktory"}, nil)
	m.dashboard.EXPECT().
		ListWeeklyAggregatesBySource(gomock.Any(), 5, domain.StatsFilters{}).
		Return([]*domain.WeeklyAggregate{
			{WeekID: 3, StartDate: start, EndDate: start.AddDays(6), Amount: 1000, LeadsCount: 3},
		}, nil)

	summary, err := service.SourceStats(ctx, 5, domain.StatsFilters{})
	require.NoError(t, err)
	require.Len(t, summary.WeeklyStats, 1)
	assert.Equal(t, floatPtr(333.33), summary.LeadCost)
	require.NotNil(t, summary.WeeklyStats[0].SourceID)
	assert.Equal(t, 5, *summary.WeeklyStats[0].SourceID)
	assert.Nil(t, summary.WeeklyStats[0].CategoryID)

	m.source.EXPECT().GetSourceByID(gomock.Any(), 6).Return(nil, nil)
	_, err = service.SourceStats(ctx, 6, domain.StatsFilters{})
	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestService_LeadOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, cache.NewNoop())

	m.dashboard.EXPECT().
		ListCategorySummaries(gomock.Any()).
		Return([]*domain.CategorySummary{{CategoryID: 2, CategoryName: "Абакан", TotalLeads: 10, TotalAmount: 2500}}, nil)
	m.dashboard.EXPECT().ListSourceSummaries(gomock.Any()).Return(nil, nil)

	overview, err := service.LeadOverview(context.Background())
	require.NoError(t, err)
	require.Len(t, overview.ByCategory, 1)
	assert.Equal(t, "Абакан", overview.ByCategory[0].CategoryName)
	assert.NotNil(t, overview.BySource)
	assert.Empty(t, overview.BySource)
}

func TestService_LeadMetricsByWeeks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, cache.NewNoop())

	early := domain.NewDate(2024, time.May, 29)
	late := domain.NewDate(2024, time.June, 5)

	m.dashboard.EXPECT().
		ListLeadMetricDetails(gomock.Any()).
		Return([]*domain.LeadMetricDetail{
			{LeadMetricID: 3, CategoryID: 1, CategoryName: "Москва", SourceID: 1, SourceName: "TG ADS", WeekID: 2, WeekStartDate: late, WeekEndDate: late.AddDays(6)},
			{LeadMetricID: 1, CategoryID: 1, CategoryName: "Москва", SourceID: 1, SourceName: "TG ADS", WeekID: 1, WeekStartDate: early, WeekEndDate: early.AddDays(6)},
			// semana duplicada com as mesmas datas
			{LeadMetricID: 2, CategoryID: 2, CategoryName: "Казань", SourceID: 1, SourceName: "TG ADS", WeekID: 9, WeekStartDate: early, WeekEndDate: early.AddDays(6), Amount: 700, LeadsCount: 7},
		}, nil)

	groups, err := service.LeadMetricsByWeeks(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "2024-05-29", groups[0].StartDate.String())
	assert.Equal(t, "2024-06-04", groups[0].EndDate.String())
	require.Len(t, groups[0].Metrics, 2)
	assert.Equal(t, 1, groups[0].Metrics[0].LeadMetricID)
	assert.Equal(t, 9, groups[0].Metrics[1].Week.ID)
	assert.Equal(t, "Казань", groups[0].Metrics[1].Category.Name)
	assert.Equal(t, "2024-05-29", groups[0].Metrics[1].Week.StartDate)

	assert.Equal(t, "2024-06-05", groups[1].StartDate.String())
	require.Len(t, groups[1].Metrics, 1)
}

func TestService_UsesCacheKeyWithFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cachemocks.NewMockReportCache(ctrl)
	service, _ := newTestService(ctrl, mockCache)

	from := domain.NewDate(2024, time.June, 1)
	mockCache.EXPECT().
		Fetch(gomock.Any(), "stats:category:4:2024-06-01:-", gomock.Any(), gomock.Any()).
		Return(nil)

	summary, err := service.CategoryStats(context.Background(), 4, domain.StatsFilters{FromDate: &from})
	require.NoError(t, err)
	assert.NotNil(t, summary)
}
