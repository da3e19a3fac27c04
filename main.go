// @title Studienhouse API
// @version 1.0
// @description Backend service for the Studienhouse course catalog and landing CMS.

// @contact.name API Support
// @contact.email support@studienhouse.id

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"github.com/seha22/studienhouse/internal/app"
	"github.com/seha22/studienhouse/internal/config"
	"github.com/seha22/studienhouse/pkg/configwatcher"
	"github.com/seha22/studienhouse/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.RegisterConfigCallback(func(newCfg *config.Config) {
		log.Println("Configuration reloaded")
	})
	go configwatcher.WatchConfig("configs/config.yaml", application.ApplyConfig)

	application.Run()
}
