// Package restserver exposes the question generator and the solvers over a
// small JSON REST API.
package restserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/thermoquiz/thermoquiz/internal/generator"
	"github.com/thermoquiz/thermoquiz/internal/log"
	"github.com/thermoquiz/thermoquiz/pkg/catalog"
	"github.com/thermoquiz/thermoquiz/pkg/config"
	"github.com/thermoquiz/thermoquiz/pkg/psychro"
)

// Controller represents the REST server controller
type Controller struct {
	ctx        context.Context
	wg         *sync.WaitGroup
	httpConfig config.HTTPConfig
	Server     http.Server
	logger     *zap.SugaredLogger
	handlers   *Handlers
}

// NewController creates a new REST server controller
func NewController(ctx context.Context, wg *sync.WaitGroup, provider config.Provider, logger *zap.SugaredLogger) (*Controller, error) {
	cfg, err := provider.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}

	hc := cfg.HTTP
	if hc.ListenAddr == "" {
		logger.Info("http.listen_addr not provided; defaulting to 0.0.0.0 (all interfaces)")
		hc.ListenAddr = "0.0.0.0"
	}
	if hc.Port == 0 {
		logger.Info("http.port not provided; defaulting to 8080")
		hc.Port = 8080
	}

	cat, err := catalog.Load(cfg.Catalog.Source, cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("error loading material catalog: %w", err)
	}

	p := psychro.New(cfg.Psychrometrics.Pressure)
	if cfg.Psychrometrics.SatSearchMin != 0 || cfg.Psychrometrics.SatSearchMax != 0 {
		p.SatSearchMin = cfg.Psychrometrics.SatSearchMin
		p.SatSearchMax = cfg.Psychrometrics.SatSearchMax
	}

	gen := generator.New(cat, cfg.Generator.Seed, cfg.Psychrometrics.SpecificHeat)

	ctrl := &Controller{
		ctx:        ctx,
		wg:         wg,
		httpConfig: hc,
		logger:     logger,
	}
	ctrl.handlers = NewHandlers(gen, p, logger)

	ctrl.Server.Addr = fmt.Sprintf("%v:%v", hc.ListenAddr, hc.Port)
	ctrl.Server.Handler = ctrl.setupRouter()

	return ctrl, nil
}

// StartController starts the REST server
func (c *Controller) StartController() error {
	log.Info("Starting REST server controller...")
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		if c.httpConfig.TLSCertPath != "" && c.httpConfig.TLSKeyPath != "" {
			if err := c.Server.ListenAndServeTLS(c.httpConfig.TLSCertPath, c.httpConfig.TLSKeyPath); err != http.ErrServerClosed {
				log.Errorf("REST server error: %v", err)
			}
		} else {
			if err := c.Server.ListenAndServe(); err != http.ErrServerClosed {
				log.Errorf("REST server error: %v", err)
			}
		}
	}()

	go func() {
		<-c.ctx.Done()
		log.Info("Shutting down the REST server...")
		c.Server.Shutdown(context.Background())
	}()

	return nil
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()

	router.Use(c.loggingMiddleware)

	router.HandleFunc("/psychrometry/generate_question", c.handlers.GeneratePsychroQuestion).Methods(http.MethodGet)
	router.HandleFunc("/psychrometry/show_solution", c.handlers.ShowPsychroSolution).Methods(http.MethodPost)
	router.HandleFunc("/heat_loss/generate_question", c.handlers.GenerateHeatLossQuestion).Methods(http.MethodPost)
	router.HandleFunc("/thermal_bridging/generate_question", c.handlers.GenerateBridgingQuestion).Methods(http.MethodPost)

	router.HandleFunc("/healthz", c.handlers.Health).Methods(http.MethodGet)

	return router
}

func (c *Controller) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.logger.Debugw("handling request", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}
