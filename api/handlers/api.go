package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/scamdex/scamdex-api/api"
	"github.com/scamdex/scamdex-api/api/scheduler"
	"github.com/scamdex/scamdex-api/config"
	"github.com/scamdex/scamdex-api/databases"
	"github.com/scamdex/scamdex-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Scheduler *scheduler.Scheduler
	dbHelper  databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()
	r.Use(api.CORS)

	s := Scam{DB: databases.NewScamReportDatabase(a.dbHelper)}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api").Subrouter()

	// fixed paths must be registered before the {scam_id} routes
	apiCreate.Handle("/scams/trending", api.Middleware(http.HandlerFunc(s.TrendingScamsHandler))).Methods("GET")
	apiCreate.Handle("/scams/tags", api.Middleware(http.HandlerFunc(s.ScamTagsHandler))).Methods("GET")
	apiCreate.Handle("/scams/stats", api.Middleware(http.HandlerFunc(s.ScamStatsHandler))).Methods("GET")
	apiCreate.Handle("/scams/search", api.Middleware(http.HandlerFunc(s.ScamSearchHandler))).Methods("GET")
	apiCreate.Handle("/scams", api.Middleware(http.HandlerFunc(s.ScamHandler))).Methods("GET")
	apiCreate.Handle("/scams", api.Middleware(http.HandlerFunc(s.CreateScamHandler))).Methods("POST")
	apiCreate.Handle("/scams/{scam_id}", api.Middleware(http.HandlerFunc(s.ScamByIDHandler))).Methods("GET")
	apiCreate.Handle("/scams/{scam_id}", api.Middleware(http.HandlerFunc(s.UpdateScamHandler))).Methods("PUT")
	apiCreate.Handle("/scams/{scam_id}", api.Middleware(http.HandlerFunc(s.DeleteScamHandler))).Methods("DELETE")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {
	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("scamdex-api has connected to the database")

	a.Scheduler = scheduler.NewScheduler(databases.NewScamReportDatabase(a.dbHelper))
	a.Scheduler.Start()

	// initialize api router
	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
