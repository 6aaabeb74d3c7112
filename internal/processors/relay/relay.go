package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"adms-ingestor/internal/db"
	"adms-ingestor/internal/worker"

	k "adms-ingestor/internal/kafka" // alias to avoid name conflict

	"github.com/segmentio/kafka-go"
)

var (
	ErrLoadCursor   = errors.New("error loading relay cursor")
	ErrLoadEvents   = errors.New("error loading events")
	ErrMarshal      = errors.New("error marshalling record")
	ErrWriteMessage = errors.New("error writing message")
	ErrSaveCursor   = errors.New("error saving relay cursor")
)

//go:generate mockery
type repository interface {
	LoadRelayCursor(ctx context.Context, name string) (db.RelayCursor, error)
	LoadEventsAfter(ctx context.Context, cursor db.RelayCursor, limit int) ([]db.AttendanceEvent, error)
	SaveRelayCursor(ctx context.Context, name string, cursor db.RelayCursor) error
}

type Config struct {
	Name       string
	Repository repository
	Writer     k.Writer
	BatchSize  int
	Interval   time.Duration
}

// Relay forwards stored events to Kafka in commit-safe (txid, id) order. The
// cursor only moves after a batch is acknowledged, so delivery is
// at-least-once.
type Relay struct {
	worker    *worker.Worker
	name      string
	repo      repository
	writer    k.Writer
	batchSize int
}

func New(cfg Config) *Relay {
	relay := &Relay{
		name:      cfg.Name,
		repo:      cfg.Repository,
		writer:    cfg.Writer,
		batchSize: cfg.BatchSize,
	}

	relay.worker = worker.New(worker.Config{
		Name:      "relay-worker",
		Processor: relay,
		Interval:  cfg.Interval,
	})
	return relay
}

func (r *Relay) Run(ctx context.Context) {
	r.worker.Run(ctx)
}

func (r *Relay) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing relay resources...")
	if err := r.writer.Close(); err != nil {
		slog.ErrorContext(ctx, "Error closing relay writer", "error", err)
	}
}

func (r *Relay) Process(ctx context.Context) (int, error) {
	const fn = "Relay:Process"
	cursor, err := r.repo.LoadRelayCursor(ctx, r.name)
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrLoadCursor, err)
	}
	events, err := r.repo.LoadEventsAfter(ctx, cursor, r.batchSize)
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrLoadEvents, err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		record := k.StructuredConnectRecord{
			Schema:  k.StructuredSchema,
			Payload: toRecord(event),
		}
		out, err := json.Marshal(record)
		if err != nil {
			return 0, fmt.Errorf("%s:%w:%w", fn, ErrMarshal, err)
		}
		msgs = append(msgs, kafka.Message{Key: []byte(event.DeviceCode), Value: out})
	}

	if err := r.writer.WriteMessages(ctx, msgs...); err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrWriteMessage, err)
	}

	last := events[len(events)-1]
	next := db.RelayCursor{TxID: last.TxID, ID: last.ID}
	if err := r.repo.SaveRelayCursor(ctx, r.name, next); err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrSaveCursor, err)
	}
	slog.InfoContext(ctx, "Relayed events", "count", len(events), "last_txid", next.TxID, "last_id", next.ID)
	return len(events), nil
}

func toRecord(event db.AttendanceEvent) k.AttendanceEvent {
	return k.AttendanceEvent{
		ID:              event.ID,
		SubjectID:       event.SubjectID,
		OccurredAt:      event.OccurredAt.UnixMilli(),
		DeviceCode:      event.DeviceCode,
		SerialNumber:    event.SerialNumber,
		EventKind:       event.EventKind,
		TransportMethod: event.TransportMethod,
		Verified:        event.Verified,
		Status:          event.Status,
		WorkCode:        event.WorkCode,
		RawPayload:      string(event.RawPayload),
		ReceivedAt:      event.ReceivedAt.UnixMilli(),
	}
}
