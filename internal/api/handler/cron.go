package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/lead-dashboard-api/internal/scheduler"
	"github.com/vfg2006/lead-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/lead-dashboard-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeWeekRollover = "week-rollover"
	CronJobTypeAll          = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	WeekRolloverService *scheduler.WeekRolloverService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		log.ForContext(r.Context()).WithField("job", cronType).Info("Execução manual de cron solicitada")

		switch cronType {
		case CronJobTypeWeekRollover, CronJobTypeAll:
			if services.WeekRolloverService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Week rollover job is not available", nil)
				return
			}
			services.WeekRolloverService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type", []string{CronJobTypeWeekRollover, CronJobTypeAll})
			return
		}

		writeResponse(w, http.StatusAccepted, map[string]string{"type": cronType}, "Cron job started")
	}
}

// GetCronStatus retorna o status da cron job informada, ou de todas com o tipo "all"
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType != CronJobTypeWeekRollover && cronType != CronJobTypeAll {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type", []string{CronJobTypeWeekRollover, CronJobTypeAll})
			return
		}

		status := map[string]any{}
		if services.WeekRolloverService != nil {
			status[CronJobTypeWeekRollover] = services.WeekRolloverService.GetStatus()
		}

		writeResponse(w, http.StatusOK, status, "Cron jobs status")
	}
}
