package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/vitalcheck/vitalcheck-api/api/handlers"
	"github.com/vitalcheck/vitalcheck-api/api/scheduler"
	"github.com/vitalcheck/vitalcheck-api/config"
	"github.com/vitalcheck/vitalcheck-api/databases"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	//initialize database and router
	if err := a.Initialize(); err != nil {
		log.Fatal(err)
	}

	s := scheduler.NewScheduler(&a.Config,
		databases.NewMedicationDatabase(a.DB()),
		databases.NewNotificationDatabase(a.DB()),
		databases.NewSchedulerLockDatabase(a.DB()),
	)
	if err := s.Start(); err != nil {
		zap.S().Errorw("failed to start reminder scheduler", "error", err)
	}
	defer s.Stop()

	zap.S().Infow("vitalcheck-api is up and running",
		"port", a.Config.Port,
		"url", a.Config.BaseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", a.Config.Port), a.Router))
}
