package adms

import (
	"net/url"
	"strings"
	"time"
)

var (
	subjectKeys = []string{"user_id", "pin", "PIN"}
	timeKeys    = []string{"timestamp", "time", "LogTime"}
	deviceKeys  = []string{"device_id", "DeviceID", "sn"}
)

// FromJSON normalizes a manual/test JSON body. Missing fields degrade to
// placeholders and an unparseable time to receivedAt.
func FromJSON(body map[string]any, receivedAt time.Time) AttendanceEvent {
	body, _ = scrub(body).(map[string]any)
	subject, ok := FirstPresent(body, subjectKeys...)
	if !ok {
		subject = UnknownSubject
	}

	var occurredAt time.Time
	if raw, ok := FirstPresent(body, timeKeys...); ok {
		t, parsed := ParseLoose(raw)
		occurredAt = timeOr(t, parsed, receivedAt)
	} else {
		occurredAt = receivedAt.UTC()
	}

	device, ok := FirstPresent(body, deviceKeys...)
	if !ok {
		device = UnknownDevice
	}

	ev := AttendanceEvent{
		SubjectID:  subject,
		OccurredAt: occurredAt,
		DeviceCode: device,
		Kind:       KindAttLog,
		Method:     MethodPost,
		RawPayload: encode(body),
	}
	if sn, ok := FirstPresent(body, "sn"); ok {
		ev.SerialNumber = strPtr(sn)
	}
	return ev
}

// SerialFromQuery resolves the device serial for /iclock endpoints: SN, then sn,
// then UnknownSerial.
func SerialFromQuery(q url.Values) string {
	for _, key := range []string{"SN", "sn"} {
		if v := strings.TrimSpace(q.Get(key)); v != "" {
			return v
		}
	}
	return UnknownSerial
}

// FromQuery records a request that carries no body, such as a handshake or a
// command poll.
func FromQuery(kind Kind, serial, method string, q url.Values, receivedAt time.Time) AttendanceEvent {
	return AttendanceEvent{
		SubjectID:    string(kind),
		OccurredAt:   receivedAt.UTC(),
		DeviceCode:   serial,
		SerialNumber: strPtr(serial),
		Kind:         kind,
		Method:       method,
		RawPayload:   encode(queryRecord{Method: method, Query: q}),
	}
}

// FromUnrouted records a POST that reached no known route, so an unfamiliar
// firmware's upload path can be identified.
func FromUnrouted(serial, path string, q url.Values, body string, receivedAt time.Time) AttendanceEvent {
	return AttendanceEvent{
		SubjectID:    string(KindUnknown),
		OccurredAt:   receivedAt.UTC(),
		DeviceCode:   serial,
		SerialNumber: strPtr(serial),
		Kind:         KindUnknown,
		Method:       MethodPost,
		RawPayload:   encode(unroutedRecord{Path: path, Query: q, Raw: body}),
	}
}

// ParseBody splits a cdata upload into one event per non-empty line, in order.
// Lines other than ATTLOG that would share a (subject, time, device) key with
// an earlier line of the same body are moved forward one microsecond at a time.
// The shift depends only on line order.
func ParseBody(serial, body string, receivedAt time.Time) []AttendanceEvent {
	type key struct {
		subject string
		at      time.Time
	}
	var out []AttendanceEvent
	seen := map[key]bool{}
	for _, line := range strings.Split(body, "\n") {
		ev, ok := ParseLine(serial, line, receivedAt)
		if !ok {
			continue
		}
		at := ev.OccurredAt.Truncate(time.Microsecond)
		if ev.Kind != KindAttLog {
			for seen[key{ev.SubjectID, at}] {
				at = at.Add(time.Microsecond)
			}
			ev.OccurredAt = at
		}
		seen[key{ev.SubjectID, at}] = true
		out = append(out, ev)
	}
	return out
}

// ParseLine classifies a single tab-separated protocol line. It reports false
// for blank lines.
func ParseLine(serial, line string, receivedAt time.Time) (AttendanceEvent, bool) {
	line = strings.TrimSpace(Sanitize(line))
	if line == "" {
		return AttendanceEvent{}, false
	}
	parts := strings.Split(line, "\t")
	first := parts[0]

	ev := AttendanceEvent{
		OccurredAt:   receivedAt.UTC(),
		DeviceCode:   serial,
		SerialNumber: strPtr(serial),
		Method:       MethodPost,
		Source:       line,
	}

	switch {
	case strings.HasPrefix(first, "~"):
		ev.Kind = KindDevInfo
		ev.SubjectID = string(KindDevInfo)
		ev.RawPayload = encode(deviceRecord{SN: serial, Raw: line, Kind: KindDevInfo, Method: MethodPost})
	case strings.HasPrefix(first, "OPLOG"):
		// OPLOG <op>\t<admin>\t<time>\t...
		var timeStr string
		if tok := field(parts, 2); tok != nil {
			timeStr = *tok
		}
		t, ok := ParseExact(timeStr)
		ev.Kind = KindOpLog
		ev.SubjectID = string(KindOpLog)
		ev.OccurredAt = timeOr(t, ok, receivedAt)
		ev.RawPayload = encode(deviceRecord{SN: serial, Raw: line, Time: timeStr, Kind: KindOpLog, Method: MethodPost})
	case len(parts) >= 2:
		pin := strings.TrimSpace(parts[0])
		timeStr := strings.TrimSpace(parts[1])
		t, ok := ParseExact(timeStr)

		ev.Kind = KindAttLog
		ev.SubjectID = pin
		ev.OccurredAt = timeOr(t, ok, receivedAt)
		ev.Verified = field(parts, 2)
		ev.Status = field(parts, 3)
		ev.WorkCode = field(parts, 4)
		ev.RawPayload = encode(deviceRecord{
			SN:       serial,
			PIN:      pin,
			Raw:      line,
			Time:     timeStr,
			Kind:     KindAttLog,
			Method:   MethodPost,
			Verified: ev.Verified,
			Status:   ev.Status,
			WorkCode: ev.WorkCode,
		})
	default:
		ev.Kind = KindUnknown
		ev.SubjectID = string(KindUnknown)
		ev.RawPayload = encode(deviceRecord{Raw: line})
	}
	return ev, true
}

func field(parts []string, i int) *string {
	if i >= len(parts) {
		return nil
	}
	return strPtr(strings.TrimSpace(parts[i]))
}
