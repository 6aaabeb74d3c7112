package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"adms-ingestor/internal/adms"
	"adms-ingestor/internal/db"

	"github.com/jackc/pgconn"
)

var (
	ErrPersistence       = errors.New("persistence failed")
	ErrFailureUnrecorded = errors.New("failure record not written")
)

// PersistenceError is returned by Store when the primary insert fails.
// Recorded reports whether the failure landed in the error log table.
type PersistenceError struct {
	Err      error
	Recorded bool
}

func (e *PersistenceError) Error() string {
	if e.Recorded {
		return fmt.Sprintf("%s: %v", ErrPersistence, e.Err)
	}
	return fmt.Sprintf("%s: %v (%s)", ErrPersistence, e.Err, ErrFailureUnrecorded)
}

func (e *PersistenceError) Unwrap() []error {
	if e.Recorded {
		return []error{ErrPersistence, e.Err}
	}
	return []error{ErrPersistence, ErrFailureUnrecorded, e.Err}
}

//go:generate mockery
type repository interface {
	InsertEvent(ctx context.Context, event db.AttendanceEvent) (bool, error)
	InsertIngestError(ctx context.Context, rec db.IngestErrorRecord) error
}

type Config struct {
	Repository repository
	// Diagnostics receives failures that could not be written to the error
	// log table. Defaults to a text logger on stderr.
	Diagnostics *slog.Logger
}

type Gateway struct {
	repo  repository
	diag  *slog.Logger
	stack func() []byte
}

func New(cfg Config) *Gateway {
	diag := cfg.Diagnostics
	if diag == nil {
		diag = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return &Gateway{
		repo:  cfg.Repository,
		diag:  diag,
		stack: debug.Stack,
	}
}

// Store inserts event. A duplicate is not an error and returns false.
// rawBody is the request body the event came from, kept for the error log.
func (g *Gateway) Store(ctx context.Context, event adms.AttendanceEvent, rawBody string) (bool, error) {
	inserted, err := g.repo.InsertEvent(ctx, toRow(event))
	if err == nil {
		if !inserted {
			slog.DebugContext(ctx, "Duplicate event dropped",
				"subject_id", event.SubjectID,
				"device_code", event.DeviceCode,
				"occurred_at", event.OccurredAt,
			)
		}
		return inserted, nil
	}

	slog.ErrorContext(ctx, "Event insert failed",
		"error", err,
		"kind", event.Kind,
		"subject_id", event.SubjectID,
		"device_code", event.DeviceCode,
	)
	recorded := g.RecordFailure(ctx, &event, err, rawBody)
	return false, &PersistenceError{Err: err, Recorded: recorded}
}

// RecordFailure writes an error log row for a failed attempt. event may be nil
// when the failure happened before normalization. It never panics and reports
// whether the row was written; otherwise the failure goes to the diagnostic
// sink.
func (g *Gateway) RecordFailure(ctx context.Context, event *adms.AttendanceEvent, cause error, rawBody string) (recorded bool) {
	defer func() {
		if r := recover(); r != nil {
			g.diag.Error("Failure recording panicked", "panic", r, "cause", errString(cause), "body", rawBody)
			recorded = false
		}
	}()

	rec := db.IngestErrorRecord{
		ErrorMessage: errString(cause),
		ErrorCode:    sqlState(cause),
		StackTrace:   strPtr(fmt.Sprintf("%+v\n\n%s", cause, g.stack())),
	}
	if body := adms.Sanitize(rawBody); body != "" {
		rec.OriginalBody = strPtr(body)
	}
	if event != nil {
		occurredAt := event.OccurredAt
		rec.SubjectID = strPtr(event.SubjectID)
		rec.OccurredAt = &occurredAt
		rec.DeviceCode = strPtr(event.DeviceCode)
		rec.RawPayload = event.RawPayload
	}

	if err := g.repo.InsertIngestError(ctx, rec); err != nil {
		attrs := []any{
			"error", err,
			"cause", rec.ErrorMessage,
			"body", rawBody,
		}
		if event != nil {
			attrs = append(attrs,
				"subject_id", event.SubjectID,
				"device_code", event.DeviceCode,
				"occurred_at", event.OccurredAt.Format(time.DateTime),
			)
		}
		g.diag.Error("Could not record ingest failure", attrs...)
		return false
	}
	return true
}

func toRow(event adms.AttendanceEvent) db.AttendanceEvent {
	return db.AttendanceEvent{
		SubjectID:       event.SubjectID,
		OccurredAt:      event.OccurredAt,
		DeviceCode:      event.DeviceCode,
		SerialNumber:    event.SerialNumber,
		EventKind:       string(event.Kind),
		TransportMethod: event.Method,
		Verified:        event.Verified,
		Status:          event.Status,
		WorkCode:        event.WorkCode,
		RawPayload:      event.RawPayload,
	}
}

func sqlState(err error) *string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strPtr(pgErr.Code)
	}
	return nil
}

func errString(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

func strPtr(s string) *string {
	return &s
}
