package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"moduled/internal/engine"
	"moduled/pkg/types"
)

// Service defines the engine methods required by the HTTP API layer.
type Service interface {
	CurrentModuleID() types.ModuleID
	Switch(id types.ModuleID) bool
}

// EventSource feeds /events. *engine.Bus satisfies it.
type EventSource interface {
	Subscribe(ch chan engine.Event)
	Unsubscribe(ch chan engine.Event)
}

// EventHistory feeds /events/recent. *engine.MemoryPublisher satisfies it.
type EventHistory interface {
	Since(seq uint64) []engine.Event
}

// NewMux builds the HTTP handler. events and history may be nil, in which
// case /events and /events/recent respond 503.
func NewMux(svc Service, events EventSource, history EventHistory) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	if corsEnabled {
		origins, methods, headers := corsDefaults()
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: methods,
			AllowedHeaders: headers,
			MaxAge:         300,
		}))
	}
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/modules", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, types.ModulesResponse{Modules: types.ModuleIDs()})
	})

	r.Get("/module", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, types.CurrentModuleResponse{ID: svc.CurrentModuleID()})
	})

	r.Put("/module", func(w http.ResponseWriter, r *http.Request) {
		ct := r.Header.Get("Content-Type")
		if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
			writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var req types.SwitchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		id, err := types.ParseModuleID(req.ID)
		if err != nil {
			switchesTotal.WithLabelValues("rejected").Inc()
			requestEvent(r, LevelError).Err(err).Msg("switch rejected")
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		opID := uuid.NewString()
		changed := svc.Switch(id)
		outcome := "unchanged"
		if changed {
			outcome = "changed"
		}
		switchesTotal.WithLabelValues(outcome).Inc()
		requestEvent(r, LevelInfo).Str("op_id", opID).Stringer("module", id).Bool("changed", changed).Msg("switch")
		writeJSON(w, types.SwitchResponse{ID: svc.CurrentModuleID(), Changed: changed, OpID: opID})
	})

	r.Get("/events", func(w http.ResponseWriter, r *http.Request) {
		if events == nil {
			writeJSONError(w, http.StatusServiceUnavailable, "event stream unavailable")
			return
		}
		streamEvents(w, r, events)
	})

	r.Get("/events/recent", func(w http.ResponseWriter, r *http.Request) {
		if history == nil {
			writeJSONError(w, http.StatusServiceUnavailable, "event history unavailable")
			return
		}
		var since uint64
		if v := r.URL.Query().Get("since"); v != "" {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, "since must be a sequence number")
				return
			}
			since = n
		}
		evts := history.Since(since)
		resp := types.RecentEventsResponse{Events: make([]types.EventMessage, 0, len(evts))}
		for _, ev := range evts {
			resp.Events = append(resp.Events, ev.Message())
		}
		writeJSON(w, resp)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if serverBaseCtx.Err() != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("shutting down"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	MountSwagger(r)

	return r
}

// streamEvents writes one EventMessage per line until the client goes away
// or the server base context is canceled.
func streamEvents(w http.ResponseWriter, r *http.Request, events EventSource) {
	ch := make(chan engine.Event, eventBuffer)
	events.Subscribe(ch)
	defer events.Unsubscribe(ch)
	eventStreams.Inc()
	defer eventStreams.Dec()

	flush := func() {}
	if f, ok := w.(http.Flusher); ok {
		flush = f.Flush
	}
	w.Header().Set("Content-Type", "application/x-ndjson")
	w.WriteHeader(http.StatusOK)
	flush()

	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()
	requestEvent(r, LevelInfo).Msg("events start")
	enc := json.NewEncoder(w)
	for {
		select {
		case <-ctx.Done():
			requestEvent(r, LevelInfo).Msg("events end")
			return
		case ev := <-ch:
			if err := enc.Encode(ev.Message()); err != nil {
				requestEvent(r, LevelError).Err(err).Msg("events write")
				return
			}
			requestEvent(r, LevelDebug).Uint64("seq", ev.Seq).Str("event", ev.Name).Msg("events>")
			flush()
		}
	}
}
