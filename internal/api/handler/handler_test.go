package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/lead-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/lead-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/lead-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/lead-dashboard-api/internal/config"
	"github.com/vfg2006/lead-dashboard-api/internal/domain"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/category"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/leadmetric"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/week"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Status  string              `json:"status"`
	Data    jsoniter.RawMessage `json:"data"`
	Message string              `json:"message"`
	Errors  *struct {
		Code    string              `json:"code"`
		Details jsoniter.RawMessage `json:"details"`
	} `json:"errors"`
}

func serve(t *testing.T, routes []router.Route, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func intPtr(i int) *int {
	return &i
}

func TestCategoriesHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCategoryRepository(ctrl)
	routes := Categories(category.NewService(mockRepo, cache.NewNoop()))

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		setup    func()
		validate func(t *testing.T, rec *httptest.ResponseRecorder, env envelope)
	}{
		{
			name:   "Lista categorias",
			method: http.MethodGet,
			path:   "/api/v1/categories",
			setup: func() {
				mockRepo.EXPECT().ListCategories(gomock.Any()).
					Return([]*domain.Category{{ID: 1, Name: "Москва"}, {ID: 2, Name: "Казань"}}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "ok", env.Status)
				assert.Equal(t, "List all categories", env.Message)
				assert.JSONEq(t, `[{"id":1,"name":"Москва"},{"id":2,"name":"Казань"}]`, string(env.Data))
				assert.Nil(t, env.Errors)
			},
		},
		{
			name:   "ID inválido na rota",
			method: http.MethodGet,
			path:   "/api/v1/categories/abc",
			setup:  func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, "VAL_003", env.Errors.Code)
			},
		},
		{
			name:   "Categoria inexistente",
			method: http.MethodGet,
			path:   "/api/v1/categories/9",
			setup: func() {
				mockRepo.EXPECT().GetCategoryByID(gomock.Any(), 9).Return(nil, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusNotFound, rec.Code)
				assert.Equal(t, "error", env.Status)
				assert.Equal(t, "Category not found", env.Message)
				assert.Equal(t, "RES_001", env.Errors.Code)
				assert.Contains(t, rec.Body.String(), `"data":null`)
			},
		},
		{
			name:   "Cria categoria nova",
			method: http.MethodPost,
			path:   "/api/v1/categories",
			body:   `{"name":"Адлер"}`,
			setup: func() {
				mockRepo.EXPECT().GetOrCreateCategory(gomock.Any(), "Адлер").
					Return(&domain.Category{ID: 5, Name: "Адлер"}, true, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusCreated, rec.Code)
				assert.Equal(t, "Category created", env.Message)
				assert.JSONEq(t, `{"id":5,"name":"Адлер"}`, string(env.Data))
			},
		},
		{
			name:   "Categoria já existente devolve 200",
			method: http.MethodPost,
			path:   "/api/v1/categories",
			body:   `{"name":"Адлер"}`,
			setup: func() {
				mockRepo.EXPECT().GetOrCreateCategory(gomock.Any(), "Адлер").
					Return(&domain.Category{ID: 5, Name: "Адлер"}, false, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "Category already exists", env.Message)
			},
		},
		{
			name:   "Nome ausente falha na validação",
			method: http.MethodPost,
			path:   "/api/v1/categories",
			body:   `{}`,
			setup:  func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, "Validation failed", env.Message)
				assert.Equal(t, "VAL_002", env.Errors.Code)
				assert.JSONEq(t, `[{"field":"name","rule":"required"}]`, string(env.Errors.Details))
			},
		},
		{
			name:   "Corpo malformado",
			method: http.MethodPost,
			path:   "/api/v1/categories",
			body:   `{"name":`,
			setup:  func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, "VAL_001", env.Errors.Code)
			},
		},
		{
			name:   "Atualização com nome duplicado",
			method: http.MethodPut,
			path:   "/api/v1/categories/1",
			body:   `{"name":"Казань"}`,
			setup: func() {
				mockRepo.EXPECT().GetCategoryByID(gomock.Any(), 1).Return(&domain.Category{ID: 1, Name: "Москва"}, nil)
				mockRepo.EXPECT().UpdateCategory(gomock.Any(), &domain.Category{ID: 1, Name: "Казань"}).
					Return(nil, repository.ErrConflict)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusConflict, rec.Code)
				assert.Equal(t, "Category already exists", env.Message)
				assert.Equal(t, "RES_002", env.Errors.Code)
				assert.JSONEq(t, `"Category with this name already exists"`, string(env.Errors.Details))
			},
		},
		{
			name:   "Remove categoria",
			method: http.MethodDelete,
			path:   "/api/v1/categories/3",
			setup: func() {
				mockRepo.EXPECT().DeleteCategory(gomock.Any(), 3).Return(nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "Category deleted", env.Message)
				assert.Contains(t, rec.Body.String(), `"data":null`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			rec, env := serve(t, routes, tt.method, tt.path, tt.body)
			tt.validate(t, rec, env)
		})
	}
}

func TestWeeksHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWeekRepository(ctrl)
	routes := Weeks(week.NewService(mockRepo, cache.NewNoop()))

	tests := []struct {
		name     string
		body     string
		setup    func()
		validate func(t *testing.T, rec *httptest.ResponseRecorder, env envelope)
	}{
		{
			name:  "Datas vazias são rejeitadas",
			body:  `{"start_date":"","end_date":""}`,
			setup: func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, "VAL_001", env.Errors.Code)
			},
		},
		{
			name:  "Data nula falha na validação",
			body:  `{"start_date":null,"end_date":"2024-06-11"}`,
			setup: func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, "VAL_002", env.Errors.Code)
				assert.JSONEq(t, `[{"field":"start_date","rule":"required"}]`, string(env.Errors.Details))
			},
		},
		{
			name: "Cria semana",
			body: `{"start_date":"2024-06-05","end_date":"2024-06-11"}`,
			setup: func() {
				start := domain.NewDate(2024, time.June, 5)
				end := domain.NewDate(2024, time.June, 11)
				mockRepo.EXPECT().GetOrCreateWeek(gomock.Any(), start, end).
					Return(&domain.Week{ID: 2, StartDate: start, EndDate: end}, true, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusCreated, rec.Code)
				assert.Equal(t, "Week created", env.Message)
				assert.JSONEq(t, `{"id":2,"start_date":"2024-06-05","end_date":"2024-06-11"}`, string(env.Data))
			},
		},
		{
			name: "Semana já existente devolve 200",
			body: `{"start_date":"2024-06-05","end_date":"2024-06-11"}`,
			setup: func() {
				start := domain.NewDate(2024, time.June, 5)
				end := domain.NewDate(2024, time.June, 11)
				mockRepo.EXPECT().GetOrCreateWeek(gomock.Any(), start, end).
					Return(&domain.Week{ID: 2, StartDate: start, EndDate: end}, false, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "Week already exists", env.Message)
				assert.JSONEq(t, `{"id":2,"start_date":"2024-06-05","end_date":"2024-06-11"}`, string(env.Data))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			rec, env := serve(t, routes, http.MethodPost, "/api/v1/weeks", tt.body)
			tt.validate(t, rec, env)
		})
	}
}

func TestLeadMetricsHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLeadMetricRepository(ctrl)
	routes := LeadMetrics(leadmetric.NewService(mockRepo, cache.NewNoop()))

	t.Run("Filtros da query chegam ao repositório", func(t *testing.T) {
		mockRepo.EXPECT().
			ListLeadMetrics(gomock.Any(), domain.LeadMetricFilters{WeekID: intPtr(3), SourceID: intPtr(2)}).
			Return([]*domain.LeadMetric{}, nil)

		rec, env := serve(t, routes, http.MethodGet, "/api/v1/lead_metrics?week_id=3&source_id=2", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, string(env.Data))
	})

	t.Run("Filtro não numérico", func(t *testing.T) {
		rec, env := serve(t, routes, http.MethodGet, "/api/v1/lead_metrics?week_id=abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VAL_003", env.Errors.Code)
		assert.JSONEq(t, `"week_id"`, string(env.Errors.Details))
	})

	t.Run("Referência inexistente", func(t *testing.T) {
		mockRepo.EXPECT().
			GetOrCreateLeadMetric(gomock.Any(), &domain.LeadMetric{Amount: 100, LeadsCount: 4, CategoryID: 1, SourceID: 2, WeekID: 99}).
			Return(nil, false, repository.ErrInvalidReference)

		rec, env := serve(t, routes, http.MethodPost, "/api/v1/lead_metrics",
			`{"amount":100,"leads_count":4,"category_id":1,"source_id":2,"week_id":99}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Category, source or week not found", env.Message)
		assert.Equal(t, "VAL_004", env.Errors.Code)
	})

	t.Run("Erro inesperado não expõe detalhes", func(t *testing.T) {
		mockRepo.EXPECT().GetLeadMetricByID(gomock.Any(), 8).Return(nil, assert.AnError)

		rec, env := serve(t, routes, http.MethodGet, "/api/v1/lead_metrics/8", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", env.Message)
		assert.Equal(t, "SRV_002", env.Errors.Code)
		assert.Empty(t, env.Errors.Details)
	})
}

func TestDashboardHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDashboard := mocks.NewMockDashboardRepository(ctrl)
	mockCategories := mocks.NewMockCategoryRepository(ctrl)
	mockSources := mocks.NewMockSourceRepository(ctrl)
	routes := Dashboard(reporting.NewService(mockDashboard, mockCategories, mockSources, cache.NewNoop()))

	t.Run("Data inválida no filtro", func(t *testing.T) {
		rec, env := serve(t, routes, http.MethodGet, "/api/v1/dashboard/category/1?from_date=01.06.2024", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VAL_003", env.Errors.Code)
		assert.JSONEq(t, `"from_date"`, string(env.Errors.Details))
	})

	t.Run("Categoria inexistente", func(t *testing.T) {
		mockCategories.EXPECT().GetCategoryByID(gomock.Any(), 42).Return(nil, nil)

		rec, env := serve(t, routes, http.MethodGet, "/api/v1/dashboard/category/42", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Category not found", env.Message)
		assert.Equal(t, "RES_001", env.Errors.Code)
	})

	t.Run("Fonte sem métricas devolve resumo zerado", func(t *testing.T) {
		mockSources.EXPECT().GetSourceByID(gomock.Any(), 5).
			Return(&domain.Source{ID: 5, Name: "Flocktory", PricingType: domain.PricingTypeFixedPerLead}, nil)
		mockDashboard.EXPECT().ListWeeklyAggregatesBySource(gomock.Any(), 5, domain.StatsFilters{}).
			Return([]*domain.WeeklyAggregate{}, nil)

		rec, env := serve(t, routes, http.MethodGet, "/api/v1/dashboard/source/5", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Source stats calculated", env.Message)
	})
}

func TestLoginHandler(t *testing.T) {
	authenticator, err := authenticating.NewService(config.Auth{
		Secret:        "test-secret",
		AdminUsername: "admin",
		AdminPassword: "qwerty123",
		TokenTTL:      time.Hour,
	})
	require.NoError(t, err)

	routes := Authentication(authenticator)

	t.Run("Credenciais válidas devolvem token", func(t *testing.T) {
		rec, env := serve(t, routes, http.MethodPost, "/api/v1/login", `{"username":"Admin","password":"qwerty123"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var data domain.LoginResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.NotEmpty(t, data.Token)

		_, err := authenticator.ValidateToken(data.Token)
		assert.NoError(t, err)
	})

	t.Run("Senha incorreta", func(t *testing.T) {
		rec, env := serve(t, routes, http.MethodPost, "/api/v1/login", `{"username":"admin","password":"errada"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "AUTH_001", env.Errors.Code)
	})

	t.Run("Campos ausentes", func(t *testing.T) {
		rec, env := serve(t, routes, http.MethodPost, "/api/v1/login", `{"username":"admin"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VAL_002", env.Errors.Code)
	})
}

func TestCronHandlers(t *testing.T) {
	routes := CronJobs(CronJobServices{})

	t.Run("Tipo desconhecido", func(t *testing.T) {
		rec, env := serve(t, routes, http.MethodPost, "/api/v1/cron/meta/run", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid cron job type", env.Message)
	})

	t.Run("Status sem agendadores", func(t *testing.T) {
		rec, env := serve(t, routes, http.MethodGet, "/api/v1/cron/all/status", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{}`, string(env.Data))
	})

	t.Run("Status de tipo desconhecido", func(t *testing.T) {
		rec, _ := serve(t, routes, http.MethodGet, "/api/v1/cron/meta/status", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_RotaInexistente(t *testing.T) {
	rec, env := serve(t, Healthcheck(), http.MethodGet, "/api/v1/nada", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", env.Message)
	assert.Equal(t, "RES_001", env.Errors.Code)
}
