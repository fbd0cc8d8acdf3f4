package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/pwalkow/mensa"
)

// Server exposes the menu service over HTTP.
//
// Routes:
//
//	GET /menu?date=YYYY-MM-DD&mensa=ID   the menu for one venue and day
//	GET /menu/history?mensa=ID&limit=N   recorded menus (store required)
//	GET /metrics                         Prometheus metrics
type Server struct {
	router *mux.Router
	menus  mensa.MenuService
	store  mensa.MenuStore
	logger *slog.Logger

	requests *prometheus.CounterVec
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithStore enables menu history: successful loads are recorded and the
// /menu/history route is registered.
func WithStore(store mensa.MenuStore) ServerOption {
	return func(s *Server) {
		s.store = store
	}
}

// WithLogger sets the request logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a Server around the given menu service.
func NewServer(menus mensa.MenuService, opts ...ServerOption) *Server {
	s := &Server{
		router: mux.NewRouter(),
		menus:  menus,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	// Per-server registry so tests can construct servers independently.
	registry := prometheus.NewRegistry()
	s.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mensa_menu_requests_total",
		Help: "Menu requests served, labeled by HTTP status code.",
	}, []string{"status"})
	registry.MustRegister(s.requests)

	s.router.HandleFunc("/menu", s.handleMenu).Methods(http.MethodGet)
	if s.store != nil {
		s.router.HandleFunc("/menu/history", s.handleHistory).Methods(http.MethodGet)
	}
	s.router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	date := mensa.Today()
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, err := mensa.ParseDate(v)
		if err != nil {
			s.respondError(w, err)
			return
		}
		date = parsed
	}

	mensaID := r.URL.Query().Get("mensa")
	if mensaID == "" {
		mensaID = mensa.DefaultMensaID
	}

	menu, err := s.menus.Menu(r.Context(), mensaID, date)
	if err != nil {
		s.respondError(w, err)
		return
	}

	if s.store != nil {
		s.record(r, mensaID, menu)
	}

	s.respondJSON(w, menu)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	filter := mensa.MenuFilter{Limit: 20}
	if v := r.URL.Query().Get("mensa"); v != "" {
		filter.MensaID = &v
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			s.respondError(w, mensa.Errorf(mensa.EINVALID, "invalid limit %q", v))
			return
		}
		filter.Limit = limit
	}

	records, err := s.store.FindMenus(r.Context(), filter)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, records)
}

// record persists a successfully loaded menu. Recording is best-effort:
// a store failure is logged and the response is served regardless.
func (s *Server) record(r *http.Request, mensaID string, menu *mensa.MensaMenu) {
	rec := &mensa.MenuRecord{
		MensaID: mensaID,
		Date:    menu.Date,
		Menu:    menu,
	}
	if err := s.store.SaveMenu(r.Context(), rec); err != nil {
		s.logger.Error("failed to record menu",
			"mensa", mensaID,
			"date", menu.Date.String(),
			"err", err,
		)
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	s.requests.WithLabelValues(strconv.Itoa(http.StatusOK)).Inc()
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "err", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	s.requests.WithLabelValues(strconv.Itoa(status)).Inc()
	s.logger.Error("request failed", "status", status, "err", err)
	http.Error(w, mensa.ErrorMessage(err), status)
}

// statusFromError maps application error codes to HTTP status codes.
// Opaque upstream fetch errors carry no code and map to 500.
func statusFromError(err error) int {
	switch mensa.ErrorCode(err) {
	case mensa.EINVALID:
		return http.StatusBadRequest
	case mensa.ENOTFOUND:
		return http.StatusNotFound
	case mensa.EUNAVAILABLE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
