package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Simulates one terminal: handshake, a mixed upload and a command poll.
func main() {
	baseURL := flag.String("url", "http://localhost:8080", "ingestor base URL")
	serial := flag.String("sn", "SIM0001", "device serial number")
	pin := flag.String("pin", "007", "user pin for the attendance line")
	flag.Parse()

	q := url.Values{"SN": {*serial}}

	// 1. Handshake
	body := get(*baseURL + "/iclock/cdata?" + withQuery(q, "options", "all"))
	fmt.Printf("Handshake response:\n%s\n", body)

	// 2. Upload attendance, oplog and devinfo lines
	now := time.Now().UTC().Format("2006-01-02 15:04:05")
	lines := []string{
		strings.Join([]string{*pin, now, "1", "0", "0"}, "\t"),
		"OPLOG 4\t0\t" + now + "\t0\t0\t0\t0",
		"~DeviceName=Simulator",
	}
	payload := strings.Join(lines, "\n") + "\n"
	resp, err := http.Post(*baseURL+"/iclock/cdata?"+withQuery(q, "table", "ATTLOG"), "text/plain", strings.NewReader(payload))
	if err != nil {
		panic(err)
	}
	out, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	fmt.Println("POST /iclock/cdata status:", resp.Status, "body:", string(out))

	// 3. Re-send the same upload; the ingestor must not duplicate the attendance line
	resp, err = http.Post(*baseURL+"/iclock/cdata?"+withQuery(q, "table", "ATTLOG"), "text/plain", strings.NewReader(payload))
	if err != nil {
		panic(err)
	}
	resp.Body.Close()
	fmt.Println("Repeat POST /iclock/cdata status:", resp.Status)

	// 4. Command poll
	body = get(*baseURL + "/iclock/getrequest?" + q.Encode())
	fmt.Printf("GET /iclock/getrequest body: %q\n", body)
}

func withQuery(q url.Values, key, value string) string {
	out := url.Values{}
	for k, v := range q {
		out[k] = v
	}
	out.Set(key, value)
	return out.Encode()
}

func get(u string) string {
	resp, err := http.Get(u)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		panic(err)
	}
	if resp.StatusCode != http.StatusOK {
		panic(fmt.Errorf("GET %s: HTTP %d: %s", u, resp.StatusCode, body))
	}
	return string(body)
}
