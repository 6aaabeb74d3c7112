package adms

import (
	"encoding/json"
	"time"
)

type Kind string

const (
	KindHandshake  Kind = "HANDSHAKE"
	KindAttLog     Kind = "ATTLOG"
	KindOpLog      Kind = "OPLOG"
	KindDevInfo    Kind = "DEVINFO"
	KindUnknown    Kind = "UNKNOWN"
	KindGetRequest Kind = "GETREQUEST"
)

const (
	MethodGet  = "GET"
	MethodPost = "POST"
)

// Placeholders used when a payload does not identify its subject or device.
const (
	UnknownSubject = "unknown"
	UnknownDevice  = "DESCONOCIDO"
	UnknownSerial  = "UNKNOWN_SN"
)

// AttendanceEvent is the canonical record produced from any device or test payload.
type AttendanceEvent struct {
	SubjectID    string
	OccurredAt   time.Time
	DeviceCode   string
	SerialNumber *string
	Kind         Kind
	Method       string
	Verified     *string
	Status       *string
	WorkCode     *string
	RawPayload   json.RawMessage
	// Source is the protocol line the event was parsed from, if any.
	Source string
}

// deviceRecord is the audit copy kept for every line received over /iclock/cdata.
type deviceRecord struct {
	SN       string  `json:"sn,omitempty"`
	PIN      string  `json:"pin,omitempty"`
	Raw      string  `json:"raw"`
	Time     string  `json:"time,omitempty"`
	Kind     Kind    `json:"kind,omitempty"`
	Method   string  `json:"method,omitempty"`
	Verified *string `json:"verified,omitempty"`
	Status   *string `json:"status,omitempty"`
	WorkCode *string `json:"workcode,omitempty"`
}

type queryRecord struct {
	Method string              `json:"method"`
	Query  map[string][]string `json:"query"`
}

type unroutedRecord struct {
	Path  string              `json:"path"`
	Query map[string][]string `json:"query"`
	Raw   string              `json:"raw"`
}

func encode(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return b
}

func strPtr(s string) *string {
	return &s
}
