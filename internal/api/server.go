package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-dashboard-api/internal/api/handler"
	"github.com/vfg2006/lead-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/lead-dashboard-api/internal/config"
	"github.com/vfg2006/lead-dashboard-api/internal/scheduler"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/category"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/leadmetric"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/source"
	"github.com/vfg2006/lead-dashboard-api/internal/usecases/week"
	"github.com/vfg2006/lead-dashboard-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Categories   category.CategoryService
	Sources      source.SourceService
	Weeks        week.WeekService
	LeadMetrics  leadmetric.LeadMetricService
	Reporting    reporting.ReportingService
	Auth         authenticating.Authenticator
	WeekRollover *scheduler.WeekRolloverService
}

// NewHandler monta o router com todas as rotas e a cadeia de middlewares global
func NewHandler(cfg *config.Config, services Services) http.Handler {
	cronServices := handler.CronJobServices{
		WeekRolloverService: services.WeekRollover,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Auth)...),
		router.WithRoutes(handler.Categories(services.Categories)...),
		router.WithRoutes(handler.Sources(services.Sources)...),
		router.WithRoutes(handler.Weeks(services.Weeks)...),
		router.WithRoutes(handler.LeadMetrics(services.LeadMetrics)...),
		router.WithRoutes(handler.Dashboard(services.Reporting)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Auth, cfg.Auth.Enabled),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Auth == nil {
		return nil, fmt.Errorf("api: serviço de autenticação não configurado")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)

	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
			serveErr <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err := <-serveErr:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
