package kafka

// StructuredConnectRecord is the Kafka Connect JSON envelope for relayed events.
type StructuredConnectRecord struct {
	Schema  Schema          `json:"schema"`
	Payload AttendanceEvent `json:"payload"`
}

type AttendanceEvent struct {
	ID              int64   `json:"id"`
	SubjectID       string  `json:"subject_id"`
	OccurredAt      int64   `json:"occurred_at"`
	DeviceCode      string  `json:"device_code"`
	SerialNumber    *string `json:"serial_number"`
	EventKind       string  `json:"event_kind"`
	TransportMethod string  `json:"transport_method"`
	Verified        *string `json:"verified"`
	Status          *string `json:"status"`
	WorkCode        *string `json:"workcode"`
	RawPayload      string  `json:"raw_payload"`
	ReceivedAt      int64   `json:"received_at"`
}

type Schema struct {
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Fields   []Field `json:"fields"`
	Optional bool    `json:"optional"`
}

type Field struct {
	Field    string `json:"field"`
	Type     string `json:"type"`
	Optional bool   `json:"optional,omitempty"`
}

// Times are epoch milliseconds; raw_payload is carried as a JSON string field.
var StructuredSchema = Schema{
	Type:     "struct",
	Name:     "AttendanceEvent",
	Optional: false,
	Fields: []Field{
		{Field: "id", Type: "int64"},
		{Field: "subject_id", Type: "string"},
		{Field: "occurred_at", Type: "int64"},
		{Field: "device_code", Type: "string"},
		{Field: "serial_number", Type: "string", Optional: true},
		{Field: "event_kind", Type: "string"},
		{Field: "transport_method", Type: "string"},
		{Field: "verified", Type: "string", Optional: true},
		{Field: "status", Type: "string", Optional: true},
		{Field: "workcode", Type: "string", Optional: true},
		{Field: "raw_payload", Type: "string"},
		{Field: "received_at", Type: "int64"},
	},
}
