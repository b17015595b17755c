package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/lead-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/lead-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/lead-dashboard-api/internal/config"
	"github.com/vfg2006/lead-dashboard-api/internal/domain"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/week"
	"go.uber.org/mock/gomock"
)

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		day       domain.Date
		weekday   time.Weekday
		wantStart string
		wantEnd   string
	}{
		{
			name:      "Quarta-feira é o próprio início",
			day:       domain.NewDate(2024, time.May, 29),
			weekday:   time.Wednesday,
			wantStart: "2024-05-29",
			wantEnd:   "2024-06-04",
		},
		{
			name:      "Terça-feira fecha a semana",
			day:       domain.NewDate(2024, time.June, 4),
			weekday:   time.Wednesday,
			wantStart: "2024-05-29",
			wantEnd:   "2024-06-04",
		},
		{
			name:      "Domingo com semana começando na segunda",
			day:       domain.NewDate(2024, time.June, 9),
			weekday:   time.Monday,
			wantStart: "2024-06-03",
			wantEnd:   "2024-06-09",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekBounds(tt.day, tt.weekday)
			assert.Equal(t, tt.wantStart, start.String())
			assert.Equal(t, tt.wantEnd, end.String())
		})
	}
}

func newTestRolloverService(t *testing.T, ctrl *gomock.Controller) (*WeekRolloverService, *mocks.MockWeekRepository) {
	t.Helper()

	mockRepo := mocks.NewMockWeekRepository(ctrl)
	appConfig := &config.Config{
		WeekRollover: config.WeekRollover{
			CronSchedule: "0 1 * * *",
			Enabled:      true,
			StartWeekday: "wednesday",
		},
	}

	service, err := NewWeekRolloverService(week.NewService(mockRepo, cache.NewNoop()), appConfig)
	if err != nil {
		t.Fatal(err)
	}

	// 2024-06-06 é uma quinta-feira
	service.now = func() time.Time { return time.Date(2024, time.June, 6, 9, 30, 0, 0, time.Local) }

	return service, mockRepo
}

func TestWeekRolloverService_ensureWeeks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockRepo := newTestRolloverService(t, ctrl)

	currentStart := domain.NewDate(2024, time.June, 5)
	nextStart := domain.NewDate(2024, time.June, 12)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, status map[string]any)
	}{
		{
			name: "Cria a semana atual e a próxima",
			setup: func() {
				mockRepo.EXPECT().
					GetOrCreateWeek(gomock.Any(), currentStart, currentStart.AddDays(6)).
					Return(&domain.Week{ID: 10, StartDate: currentStart, EndDate: currentStart.AddDays(6)}, true, nil)
				mockRepo.EXPECT().
					GetOrCreateWeek(gomock.Any(), nextStart, nextStart.AddDays(6)).
					Return(&domain.Week{ID: 11, StartDate: nextStart, EndDate: nextStart.AddDays(6)}, true, nil)
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, 2, status["last_weeks_created"])
				assert.Equal(t, "", status["last_run_error"])
				assert.Len(t, status["last_run_id"], 6)
				assert.Equal(t, false, status["sync_running"])
			},
		},
		{
			name: "Semanas já existentes não são recriadas",
			setup: func() {
				mockRepo.EXPECT().
					GetOrCreateWeek(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.Week{ID: 10}, false, nil).
					Times(2)
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, 0, status["last_weeks_created"])
			},
		},
		{
			name: "Erro no banco interrompe a execução",
			setup: func() {
				mockRepo.EXPECT().
					GetOrCreateWeek(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, false, errors.New("connection refused"))
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, 0, status["last_weeks_created"])
				assert.Contains(t, status["last_run_error"], "2024-06-05")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			service.ensureWeeks(context.Background())
			tt.validate(t, service.GetStatus())
		})
	}
}

func TestWeekRolloverService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestRolloverService(t, ctrl)
	service.config.Enabled = false

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}

func TestNewWeekRolloverService_InvalidWeekday(t *testing.T) {
	_, err := NewWeekRolloverService(nil, &config.Config{
		WeekRollover: config.WeekRollover{StartWeekday: "someday"},
	})
	assert.Error(t, err)
}
