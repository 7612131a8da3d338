// Package app cablea el servicio completo: store, services, controllers
// y router.
package app

import (
	"fmt"
	"net/http"

	"github.com/dropDatabas3/catalogo/internal/config"
	"github.com/dropDatabas3/catalogo/internal/http/controllers"
	"github.com/dropDatabas3/catalogo/internal/http/router"
	"github.com/dropDatabas3/catalogo/internal/http/services"
	"github.com/dropDatabas3/catalogo/internal/metrics"
	"github.com/dropDatabas3/catalogo/internal/observability/logger"
	"github.com/dropDatabas3/catalogo/internal/store"
	fsstore "github.com/dropDatabas3/catalogo/internal/store/fs"
)

// App es la aplicación cableada, lista para servir.
type App struct {
	Handler http.Handler
	Store   store.Store
}

// New construye la aplicación a partir de la config cargada.
func New(cfg *config.Config) (*App, error) {
	st := fsstore.New(cfg.Storage.DataDir)

	if err := metrics.Register(nil); err != nil {
		return nil, fmt.Errorf("registrando métricas: %w", err)
	}

	svcs := services.New(services.Deps{Store: st})
	ctrls := controllers.New(svcs)
	handler := router.New(ctrls, router.Options{
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
	})

	logger.L().Info("aplicación cableada",
		logger.Component("app"),
		logger.String("data_dir", cfg.Storage.DataDir),
	)

	return &App{Handler: handler, Store: st}, nil
}
