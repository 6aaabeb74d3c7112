package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/pgxscan"
)

var (
	ErrAcquireFailed = errors.New("connection acquire failed")
	ErrInsertFailed  = errors.New("insert operation failed")
	ErrSelectFailed  = errors.New("select operation failed")
	ErrUpsertFailed  = errors.New("upsert operation failed")
)

// InsertEvent stores one event on a freshly acquired connection. A row that
// collides with an existing (subject_id, occurred_at, device_code) is dropped
// and reported as not inserted.
func (db *DB) InsertEvent(ctx context.Context, event AttendanceEvent) (bool, error) {
	const fn = "DB:InsertEvent"
	conn, err := db.pool.Acquire(ctx)
	if err != nil {
		return false, fmt.Errorf("%s:%w:%w", fn, ErrAcquireFailed, err)
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx, `
		INSERT INTO attendance_events (
			subject_id,
			occurred_at,
			device_code,
			serial_number,
			event_kind,
			transport_method,
			verified,
			status,
			workcode,
			raw_payload
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (subject_id, occurred_at, device_code) DO NOTHING
	`,
		event.SubjectID,
		event.OccurredAt,
		event.DeviceCode,
		event.SerialNumber,
		event.EventKind,
		event.TransportMethod,
		event.Verified,
		event.Status,
		event.WorkCode,
		event.RawPayload,
	)
	if err != nil {
		return false, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (db *DB) InsertIngestError(ctx context.Context, rec IngestErrorRecord) error {
	const fn = "DB:InsertIngestError"
	conn, err := db.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrAcquireFailed, err)
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, `
		INSERT INTO ingest_error_log (
			error_message,
			error_code,
			subject_id,
			occurred_at,
			device_code,
			raw_payload,
			original_body,
			stack_trace
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		rec.ErrorMessage,
		rec.ErrorCode,
		rec.SubjectID,
		rec.OccurredAt,
		rec.DeviceCode,
		rec.RawPayload,
		rec.OriginalBody,
		rec.StackTrace,
	)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return nil
}

// LoadEventsAfter returns up to limit events positioned after cursor in
// (txid, id) order. Rows written by a transaction that some snapshot may still
// see as running are held back, so no row can later appear behind the cursor.
func (db *DB) LoadEventsAfter(ctx context.Context, cursor RelayCursor, limit int) ([]AttendanceEvent, error) {
	const fn = "DB:LoadEventsAfter"
	var events []AttendanceEvent
	err := pgxscan.Select(ctx, db.pool, &events, `
			SELECT
				id,
				subject_id,
				occurred_at,
				device_code,
				serial_number,
				event_kind,
				transport_method,
				verified,
				status,
				workcode,
				raw_payload,
				received_at,
				txid::text::bigint AS txid
			FROM attendance_events
			WHERE (txid, id) > ($1::bigint::text::xid8, $2)
			AND txid < pg_snapshot_xmin(pg_current_snapshot())
			ORDER BY txid ASC, id ASC
			LIMIT $3
		`, cursor.TxID, cursor.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return events, nil
}

func (db *DB) LoadRelayCursor(ctx context.Context, name string) (RelayCursor, error) {
	const fn = "DB:LoadRelayCursor"
	var cursor RelayCursor
	err := pgxscan.Get(ctx, db.pool, &cursor, `SELECT last_txid, last_id FROM relay_cursors WHERE name = $1`, name)
	if err != nil {
		if pgxscan.NotFound(err) {
			return RelayCursor{}, nil
		}
		return RelayCursor{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return cursor, nil
}

func (db *DB) SaveRelayCursor(ctx context.Context, name string, cursor RelayCursor) error {
	const fn = "DB:SaveRelayCursor"
	_, err := db.pool.Exec(ctx, `
		INSERT INTO relay_cursors (name, last_txid, last_id, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (name) DO UPDATE
		SET last_txid = EXCLUDED.last_txid, last_id = EXCLUDED.last_id, updated_at = EXCLUDED.updated_at
	`, name, cursor.TxID, cursor.ID)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrUpsertFailed, err)
	}
	return nil
}
