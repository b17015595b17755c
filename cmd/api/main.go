package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/lead-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/lead-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/lead-dashboard-api/infrastructure/seed"
	"github.com/vfg2006/lead-dashboard-api/internal/api"
	"github.com/vfg2006/lead-dashboard-api/internal/config"
	"github.com/vfg2006/lead-dashboard-api/internal/scheduler"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/category"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/leadmetric"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/source"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/week"
	"github.com/vfg2006/lead-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.RunMigrations(pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	if cfg.Seed.Enabled {
		if _, err := seed.New(pgConn, cfg.Seed).Run(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao popular o banco de dados")
		}
	}

	reportCache, err := cache.New(ctx, cfg.Redis)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, relatórios serão calculados sem cache")
		reportCache = cache.NewNoop()
	}

	categoryRepo := repository.NewCategoryRepository(pgConn)
	sourceRepo := repository.NewSourceRepository(pgConn)
	weekRepo := repository.NewWeekRepository(pgConn)
	leadMetricRepo := repository.NewLeadMetricRepository(pgConn)
	dashboardRepo := repository.NewDashboardRepository(pgConn)

	authenticator, err := authenticating.NewService(cfg.Auth)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar autenticação")
	}

	weekService := week.NewService(weekRepo, reportCache)

	weekRolloverService, err := scheduler.NewWeekRolloverService(weekService, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o agendador de semanas")
	}

	if err := weekRolloverService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de semanas")
	}

	server, err := api.New(cfg, api.Services{
		Categories:   category.NewService(categoryRepo, reportCache),
		Sources:      source.NewService(sourceRepo, reportCache),
		Weeks:        weekService,
		LeadMetrics:  leadmetric.NewService(leadMetricRepo, reportCache),
		Reporting:    reporting.NewService(dashboardRepo, categoryRepo, sourceRepo, reportCache),
		Auth:         authenticator,
		WeekRollover: weekRolloverService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
