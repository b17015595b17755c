package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/lead-dashboard-api/internal/config"
	"github.com/vfg2006/lead-dashboard-api/internal/domain"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/week"
	"github.com/vfg2006/lead-dashboard-api/pkg/log"
	"github.com/vfg2006/lead-dashboard-api/pkg/utils"
)

const weekRolloverJob = "week-rollover"

// WeekRolloverConfig representa a configuração do agendador de semanas
type WeekRolloverConfig struct {
	CronSchedule string
	Enabled      bool
	StartWeekday time.Weekday
}

// WeekRolloverService garante que a semana atual e a próxima existam.
// Como usa get-or-create, rodar mais de uma vez no mesmo dia não duplica semanas.
type WeekRolloverService struct {
	scheduler        *gocron.Scheduler
	config           WeekRolloverConfig
	weekService      week.WeekService
	now              func() time.Time
	syncRunning      bool
	syncMutex        sync.Mutex
	lastRunID        string
	lastRunError     string
	lastWeeksCreated int
	lastStartedAt    time.Time
	lastCompletedAt  time.Time
}

// NewWeekRolloverService cria o serviço a partir da configuração da aplicação
func NewWeekRolloverService(weekService week.WeekService, appConfig *config.Config) (*WeekRolloverService, error) {
	startWeekday, err := config.ParseWeekday(appConfig.WeekRollover.StartWeekday)
	if err != nil {
		return nil, err
	}

	rolloverConfig := WeekRolloverConfig{
		CronSchedule: appConfig.WeekRollover.CronSchedule,
		Enabled:      appConfig.WeekRollover.Enabled,
		StartWeekday: startWeekday,
	}

	log.L.WithFields(log.Fields{
		"job":           weekRolloverJob,
		"cron_schedule": rolloverConfig.CronSchedule,
		"enabled":       rolloverConfig.Enabled,
		"start_weekday": rolloverConfig.StartWeekday.String(),
	}).Info("Configuração do agendador de semanas carregada")

	return &WeekRolloverService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      rolloverConfig,
		weekService: weekService,
		now:         time.Now,
	}, nil
}

// Start inicia o agendador
func (s *WeekRolloverService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.WithField("job", weekRolloverJob).Info("Criação automática de semanas desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.ensureWeeks(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar criação de semanas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.WithField("job", weekRolloverJob).Info("Parando agendador de semanas")
		s.scheduler.Stop()
	}()

	log.L.WithField("job", weekRolloverJob).Infof("Agendador de semanas iniciado (%s)", s.config.CronSchedule)

	return nil
}

// WeekBounds devolve o início e o fim (inclusive) da semana que contém day
func WeekBounds(day domain.Date, startWeekday time.Weekday) (domain.Date, domain.Date) {
	offset := (int(day.Weekday()) - int(startWeekday) + 7) % 7
	start := day.AddDays(-offset)
	return start, start.AddDays(6)
}

func (s *WeekRolloverService) ensureWeeks(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.WithField("job", weekRolloverJob).Info("Criação de semanas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastStartedAt = time.Now()
	s.syncMutex.Unlock()

	runID, err := utils.NewRunID()
	if err != nil {
		runID = "unknown"
	}

	logger := log.L.WithFields(log.Fields{
		"job":    weekRolloverJob,
		"run_id": runID,
	})

	created, runErr := s.run(ctx, logger)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastRunID = runID
	s.lastWeeksCreated = created
	s.lastRunError = ""
	if runErr != nil {
		s.lastRunError = runErr.Error()
	}
	s.lastCompletedAt = time.Now()
	s.syncMutex.Unlock()

	if runErr != nil {
		logger.WithError(runErr).Error("Falha ao garantir semanas")
		return
	}

	logger.Infof("Semanas verificadas, %d criada(s)", created)
}

func (s *WeekRolloverService) run(ctx context.Context, logger log.Logger) (int, error) {
	currentStart, currentEnd := WeekBounds(domain.DateOf(s.now()), s.config.StartWeekday)
	nextStart, nextEnd := currentStart.AddDays(7), currentEnd.AddDays(7)

	created := 0
	for _, bounds := range [][2]domain.Date{{currentStart, currentEnd}, {nextStart, nextEnd}} {
		start, end := bounds[0], bounds[1]

		result, isNew, err := s.weekService.CreateWeek(ctx, &domain.WeekRequest{StartDate: &start, EndDate: &end})
		if err != nil {
			return created, fmt.Errorf("semana %s - %s: %w", start, end, err)
		}

		if isNew {
			created++
			logger.WithField("week_id", result.ID).Infof("Semana %s - %s criada", start, end)
		}
	}

	return created, nil
}

// TriggerManualSync inicia manualmente a verificação das semanas
func (s *WeekRolloverService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.WithField("job", weekRolloverJob).Info("Criação de semanas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	log.L.WithField("job", weekRolloverJob).Info("Iniciando criação manual de semanas")
	go s.ensureWeeks(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *WeekRolloverService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"start_weekday":          s.config.StartWeekday.String(),
		"last_run_id":            s.lastRunID,
		"last_run_error":         s.lastRunError,
		"last_weeks_created":     s.lastWeeksCreated,
		"last_sync_started_at":   s.lastStartedAt,
		"last_sync_completed_at": s.lastCompletedAt,
	}
}
