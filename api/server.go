// Package api - Thin JSON layer over the dashboard core
// The API is only responsible for input ingestion, core invocation and output
// serialization. It performs no filter, cost or funnel logic of its own.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"voicedash/core/calc"
	"voicedash/core/filter"
	"voicedash/core/nav"
	"voicedash/core/types"
	"voicedash/internal/config"
	"voicedash/internal/errors"
	"voicedash/internal/logging"
	"voicedash/internal/store"
)

// hundredPercent bounds the conversion-rate contract check
var hundredPercent = decimal.NewFromInt(100)

// adminHeader carries the permission flag set by the fronting auth layer.
// The API branches on it and nothing more; enforcement lives in the backend's
// row-level security.
const adminHeader = "X-Admin-Access"

// Server is the API server
type Server struct {
	router  chi.Router
	store   store.AggregateStore
	cfg     *config.Config
	version string
	log     *zap.Logger

	// now is swappable so "last 30 days" is deterministic under test
	now func() time.Time
}

// NewServer creates a new API server
func NewServer(version string, cfg *config.Config, st store.AggregateStore) *Server {
	s := &Server{
		store:   st,
		cfg:     cfg,
		version: version,
		log:     logging.Logger,
		now:     time.Now,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/calls/summary", s.handleSummary)
		r.Get("/filters/normalize", s.handleNormalize)
		r.Get("/filters/options", s.handleFilterOptions)
		r.Post("/costs", s.handleCosts)
		r.Post("/volume", s.handleVolume)
		r.Get("/breadcrumbs", s.handleBreadcrumbs)
	})
	s.router = r
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (s *Server) today() types.Date {
	return types.DateOf(s.now())
}

func (s *Server) defaults() types.FilterDefaults {
	return s.cfg.FilterDefaults()
}

// isAdmin reads the external permission flag. Not verified here.
func isAdmin(r *http.Request) bool {
	return r.Header.Get(adminHeader) == "true"
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, HealthResponse{Status: "ok"}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, VersionResponse{Version: s.version}, http.StatusOK)
}

// handleNormalize handles GET /v1/filters/normalize
func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	today := s.today()
	f := filter.Normalize(r.URL.Query(), s.defaults(), today)
	s.writeJSON(w, NormalizeResponse{
		Filter: f,
		Query:  filter.Encode(f, s.defaults(), today),
	}, http.StatusOK)
}

// handleFilterOptions handles GET /v1/filters/options
func (s *Server) handleFilterOptions(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, FilterOptionsResponse{
		AgentTypes:  types.AgentTypes(),
		Outcomes:    types.Outcomes(),
		Emotions:    types.Emotions(),
		SortColumns: filter.SortColumnNames(),
	}, http.StatusOK)
}

// handleSummary handles GET /v1/calls/summary
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	today := s.today()
	f := filter.Normalize(r.URL.Query(), s.defaults(), today)

	rows, err := s.store.Query(r.Context(), f)
	if err != nil {
		s.writeError(w, errors.Store("querying aggregates", err), http.StatusInternalServerError)
		return
	}

	resp := SummaryResponse{
		Filter:    f,
		Query:     filter.Encode(f, s.defaults(), today),
		Funnel:    calc.ComputeFunnel(rows),
		Rows:      store.Page(rows, f.Page),
		TotalRows: len(rows),
	}
	if isAdmin(r) {
		billing := calc.ComputeBilling(rows)
		resp.Billing = &billing
	}
	s.writeJSON(w, resp, http.StatusOK)
}

// handleCosts handles POST /v1/costs
func (s *Server) handleCosts(w http.ResponseWriter, r *http.Request) {
	var cfg types.PricingVolumeConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		s.writeError(w, errors.Parsing("decoding pricing config", err), http.StatusBadRequest)
		return
	}
	if err := validatePricingConfig(&cfg); err != nil {
		s.writeError(w, err, http.StatusBadRequest)
		return
	}
	s.writeJSON(w, calc.ComputeCosts(cfg), http.StatusOK)
}

// handleVolume handles POST /v1/volume
func (s *Server) handleVolume(w http.ResponseWriter, r *http.Request) {
	var req VolumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Parsing("decoding volume request", err), http.StatusBadRequest)
		return
	}

	var triple types.VolumeTriple
	switch {
	case req.Schedule != nil:
		triple = calc.FromSchedule(*req.Schedule)
	case req.PerMonth != nil:
		triple = calc.FromMonth(*req.PerMonth)
	case req.PerWeek != nil:
		triple = calc.FromWeek(*req.PerWeek)
	case req.PerDay != nil:
		triple = calc.FromDay(*req.PerDay)
	}
	s.writeJSON(w, triple, http.StatusOK)
}

// handleBreadcrumbs handles GET /v1/breadcrumbs
func (s *Server) handleBreadcrumbs(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		s.writeError(w, errors.Input("path parameter is required"), http.StatusBadRequest)
		return
	}
	s.writeJSON(w, BreadcrumbsResponse{Crumbs: nav.TrailFromPath(path)}, http.StatusOK)
}

// validatePricingConfig rejects inputs that violate the calculator's type
// contract. The calculator itself is total; the contract is enforced at the
// ingestion edge.
func validatePricingConfig(cfg *types.PricingVolumeConfig) *errors.Error {
	if cfg.AverageCallDurationSeconds.IsNegative() {
		return errors.Input("average_call_duration_seconds must be non-negative")
	}
	if cfg.UnitPricing.PerProcessing.IsNegative() || cfg.UnitPricing.PerMinute.IsNegative() {
		return errors.Input("unit pricing must be non-negative")
	}
	if cfg.AdditionalCosts.OneTimeIntegration.IsNegative() || cfg.AdditionalCosts.MonthlyFee.IsNegative() {
		return errors.Input("additional costs must be non-negative")
	}
	if cfg.Volume.PerDay < 0 || cfg.Volume.PerWeek < 0 || cfg.Volume.PerMonth < 0 {
		return errors.Input("volume must be non-negative")
	}
	if a := cfg.ROIAssumptions; a != nil && a.ConversionRatePercent != nil {
		rate := *a.ConversionRatePercent
		if rate.IsNegative() || rate.GreaterThan(hundredPercent) {
			return errors.Input("conversion_rate_percent must be in [0, 100]")
		}
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encoding response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err *errors.Error, status int) {
	s.writeJSON(w, ErrorResponse{Error: ErrorBody{
		Type:    string(err.Type),
		Message: err.Message,
	}}, status)
}
