package db

import "time"

// AttendanceEvent mirrors a row of attendance_events.
type AttendanceEvent struct {
	ID              int64     `db:"id"`
	SubjectID       string    `db:"subject_id"`
	OccurredAt      time.Time `db:"occurred_at"`
	DeviceCode      string    `db:"device_code"`
	SerialNumber    *string   `db:"serial_number"`
	EventKind       string    `db:"event_kind"`
	TransportMethod string    `db:"transport_method"`
	Verified        *string   `db:"verified"`
	Status          *string   `db:"status"`
	WorkCode        *string   `db:"workcode"`
	RawPayload      []byte    `db:"raw_payload"`
	ReceivedAt      time.Time `db:"received_at"`
	// TxID is the id of the transaction that wrote the row.
	TxID int64 `db:"txid"`
}

// RelayCursor is the position of the last relayed row in (txid, id) order.
type RelayCursor struct {
	TxID int64 `db:"last_txid"`
	ID   int64 `db:"last_id"`
}

// IngestErrorRecord mirrors a row of ingest_error_log. Every attempted field is
// optional since the failure may predate normalization.
type IngestErrorRecord struct {
	ErrorMessage string
	ErrorCode    *string
	SubjectID    *string
	OccurredAt   *time.Time
	DeviceCode   *string
	RawPayload   []byte
	OriginalBody *string
	StackTrace   *string
}
