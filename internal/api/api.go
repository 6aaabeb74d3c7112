package api

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"adms-ingestor/internal/adms"
	"adms-ingestor/internal/config"

	"github.com/go-chi/chi/v5"
)

//go:generate mockery
type ingestor interface {
	Store(ctx context.Context, event adms.AttendanceEvent, rawBody string) (bool, error)
	RecordFailure(ctx context.Context, event *adms.AttendanceEvent, cause error, rawBody string) bool
}

type API struct {
	ingestor       ingestor
	token          string
	handshake      config.Handshake
	discoveryUntil time.Time
	now            func() time.Time
}

type Config struct {
	Ingestor  ingestor
	Token     string
	Handshake config.Handshake
	// DiscoveryUntil keeps the catch-all POST route open until this instant.
	// Zero disables it.
	DiscoveryUntil time.Time
}

func New(cfg Config) *API {
	return &API{
		ingestor:       cfg.Ingestor,
		token:          cfg.Token,
		handshake:      cfg.Handshake,
		discoveryUntil: cfg.DiscoveryUntil,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// ManualIngest handles POST /zk/{token}, the JSON test endpoint.
func (a *API) ManualIngest(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if a.token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
		slog.WarnContext(r.Context(), "Rejected manual ingest token", "remote", r.RemoteAddr)
		writeJSON(w, http.StatusForbidden, ErrorResponse{Detail: "Token invalid"})
		return
	}

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Detail: "unreadable request body"})
		return
	}
	var body map[string]any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil || body == nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Detail: "request body must be a JSON object"})
		return
	}

	event := adms.FromJSON(body, a.now())
	if _, err := a.ingestor.Store(r.Context(), event, adms.Sanitize(string(raw))); err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Detail: fmt.Sprintf("DB error: %v", err)})
		return
	}

	slog.InfoContext(r.Context(), "Manual ingest stored",
		"subject_id", event.SubjectID,
		"device_code", event.DeviceCode,
		"occurred_at", event.OccurredAt,
	)
	writeJSON(w, http.StatusOK, IngestResponse{OK: true})
}

// Handshake handles GET /iclock/cdata. The response never depends on the store.
func (a *API) Handshake(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	serial := adms.SerialFromQuery(q)
	event := adms.FromQuery(adms.KindHandshake, serial, adms.MethodGet, q, a.now())
	a.ingestor.Store(r.Context(), event, "")

	slog.InfoContext(r.Context(), "Device handshake", "sn", serial, "table", q.Get("table"))
	writeText(w, http.StatusOK, handshakeBody(serial, a.handshake))
}

// Upload handles POST /iclock/cdata. Every line is stored independently and
// the device always gets OK so its upload queue keeps moving.
func (a *API) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	serial := adms.SerialFromQuery(q)
	receivedAt := a.now()

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		a.ingestor.RecordFailure(ctx, nil, fmt.Errorf("read cdata body from %s: %w", serial, err), adms.Sanitize(string(raw)))
		writeText(w, http.StatusOK, textOK)
		return
	}
	body := adms.Sanitize(string(raw))

	var stored, duplicates, failed int
	for _, event := range adms.ParseBody(serial, body, receivedAt) {
		inserted, err := a.ingestor.Store(ctx, event, event.Source)
		switch {
		case err != nil:
			failed++
		case inserted:
			stored++
		default:
			duplicates++
		}
	}

	slog.InfoContext(ctx, "Device upload processed",
		"sn", serial,
		"table", q.Get("table"),
		"stored", stored,
		"duplicates", duplicates,
		"failed", failed,
	)
	writeText(w, http.StatusOK, textOK)
}

// GetRequest handles the command poll. No command queue exists, so the body is
// always empty.
func (a *API) GetRequest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	serial := adms.SerialFromQuery(q)
	event := adms.FromQuery(adms.KindGetRequest, serial, adms.MethodGet, q, a.now())
	a.ingestor.Store(r.Context(), event, "")
	writeText(w, http.StatusOK, "")
}

// DeviceCmd handles POST /iclock/devicecmd, where terminals report command
// results. Nothing is ever queued, so the report is only logged.
func (a *API) DeviceCmd(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	slog.InfoContext(r.Context(), "Device command report",
		"sn", adms.SerialFromQuery(r.URL.Query()),
		"body", adms.Sanitize(string(raw)),
	)
	writeText(w, http.StatusOK, textOK)
}

// Discovery answers unrouted requests. While the discovery window is open a
// POST is stored as UNKNOWN and acknowledged; otherwise it is a 404.
func (a *API) Discovery(w http.ResponseWriter, r *http.Request) {
	now := a.now()
	if r.Method != http.MethodPost || a.discoveryUntil.IsZero() || !now.Before(a.discoveryUntil) {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	serial := adms.SerialFromQuery(q)
	raw, _ := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	body := adms.Sanitize(string(raw))

	slog.WarnContext(r.Context(), "Discovery: POST to unrouted path",
		"path", r.URL.Path,
		"query", r.URL.RawQuery,
		"sn", serial,
		"bytes", len(raw),
		"window_closes", a.discoveryUntil,
	)
	a.ingestor.Store(r.Context(), adms.FromUnrouted(serial, r.URL.Path, q, body, now), body)
	writeText(w, http.StatusOK, textOK)
}

func (a *API) Healthz(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "ok")
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
