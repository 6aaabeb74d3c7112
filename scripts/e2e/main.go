package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Steps:
// 1. Upload attendance lines for a fresh serial, one of them twice
// 2. Read the relay topic until the expected records arrive or the deadline passes
// 3. Check one record per distinct line reached Kafka
func main() {
	baseURL := flag.String("url", "http://localhost:8080", "ingestor base URL")
	brokers := flag.String("brokers", "localhost:9092", "comma separated Kafka brokers")
	topic := flag.String("topic", "attendance-events", "relay topic")
	wait := flag.Duration("wait", time.Minute, "how long to wait for relayed records")
	flag.Parse()

	serial := fmt.Sprintf("E2E%d", time.Now().Unix())
	base := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	var lines []string
	for i := 0; i < 3; i++ {
		at := base.Add(time.Duration(i) * time.Minute).Format("2006-01-02 15:04:05")
		lines = append(lines, fmt.Sprintf("10%d\t%s\t1\t0", i, at))
	}
	lines = append(lines, lines[0])
	expected := 3

	resp, err := http.Post(
		*baseURL+"/iclock/cdata?SN="+serial+"&table=ATTLOG",
		"text/plain",
		strings.NewReader(strings.Join(lines, "\n")),
	)
	if err != nil {
		panic(err)
	}
	resp.Body.Close()
	fmt.Printf("Uploaded %d lines for %s: %s\n", len(lines), serial, resp.Status)

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     strings.Split(*brokers, ","),
		Topic:       *topic,
		StartOffset: kafka.FirstOffset,
		GroupID:     "e2e-" + serial,
	})
	defer reader.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *wait)
	defer cancel()

	seen := map[string]int{}
	for len(seen) < expected {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			fmt.Printf("Stopped reading: %v\n", err)
			break
		}
		if string(msg.Key) != serial {
			continue
		}
		var record struct {
			Payload struct {
				SubjectID  string `json:"subject_id"`
				OccurredAt int64  `json:"occurred_at"`
				EventKind  string `json:"event_kind"`
			} `json:"payload"`
		}
		if err := json.Unmarshal(msg.Value, &record); err != nil {
			fmt.Printf("failed to decode record: %v\n", err)
			continue
		}
		if record.Payload.EventKind != "ATTLOG" {
			continue
		}
		seen[fmt.Sprintf("%s@%d", record.Payload.SubjectID, record.Payload.OccurredAt)]++
	}

	failed := len(seen) != expected
	for key, n := range seen {
		if n > 1 {
			// The relay is at-least-once, so repeats are reported but tolerated.
			fmt.Printf("Record %s relayed %d times\n", key, n)
		}
	}
	fmt.Printf("Distinct ATTLOG records relayed: %d, expected %d\n", len(seen), expected)
	if failed {
		os.Exit(1)
	}
	fmt.Println("E2E test completed")
}
