package api

import (
	"fmt"
	"strings"

	"adms-ingestor/internal/config"
)

type IngestResponse struct {
	OK bool `json:"ok"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

const (
	textOK = "OK"

	// maxBodyBytes caps uploads; terminals send a few KB per push.
	maxBodyBytes = 4 << 20
)

// handshakeBody renders the options block a terminal reads on GET /iclock/cdata.
func handshakeBody(serial string, h config.Handshake) string {
	if h.Mode == config.HandshakeOK {
		return textOK
	}

	lines := []string{fmt.Sprintf("GET OPTION FROM: %s", serial)}
	if h.RegistryCode != "" {
		lines = append(lines, "RegistryCode="+h.RegistryCode)
	}
	lines = append(lines,
		"ATTLOGStamp=None",
		"OPERLOGStamp=9999",
		"ATTPHOTOStamp=None",
		fmt.Sprintf("ErrorDelay=%d", h.ErrorDelay),
		fmt.Sprintf("Delay=%d", h.Delay),
		"TransTimes=00:00;14:05",
		fmt.Sprintf("TransInterval=%d", h.TransInterval),
		"TransFlag="+h.TransFlag,
		fmt.Sprintf("TimeZone=%d", h.TimeZone),
		"Realtime=1",
		"Encrypt=None",
		"ServerVer="+h.PushVersion,
		"PushProtVer="+h.PushVersion,
	)
	return strings.Join(lines, "\n") + "\n"
}
