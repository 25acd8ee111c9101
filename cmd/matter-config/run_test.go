package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"nhooyr.io/websocket"
)

// fakeServer is an in-process Matter server holding one attribute value.
// Writes update the value when apply is set, so the verify read sees the
// written value; with apply off the device appears to ignore writes.
type fakeServer struct {
	mu       sync.Mutex
	value    float64
	apply    bool
	writes   []any
	commands int

	url string
}

func startFakeServer(t *testing.T, initial float64, apply bool) *fakeServer {
	t.Helper()
	f := &fakeServer{value: initial, apply: apply}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			t.Errorf("fake server: accept: %v", err)
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "")
		ctx := r.Context()

		info := map[string]any{
			"fabric_id":                    2,
			"compressed_fabric_id":         1234,
			"schema_version":               11,
			"min_supported_schema_version": 2,
			"sdk_version":                  "2024.11.4",
		}
		if err := writeJSON(ctx, conn, info); err != nil {
			return
		}
		for {
			_, data, err := conn.Read(ctx)
			if err != nil {
				return
			}
			var cmd struct {
				MessageID string         `json:"message_id"`
				Command   string         `json:"command"`
				Args      map[string]any `json:"args"`
			}
			if err := json.Unmarshal(data, &cmd); err != nil {
				t.Errorf("fake server: decode command: %v", err)
				return
			}
			f.mu.Lock()
			f.commands++
			var reply map[string]any
			switch cmd.Command {
			case "read_attribute":
				path, _ := cmd.Args["attribute_path"].(string)
				reply = map[string]any{"message_id": cmd.MessageID, "result": map[string]any{path: f.value}}
			case "write_attribute":
				f.writes = append(f.writes, cmd.Args["value"])
				if f.apply {
					if v, ok := cmd.Args["value"].(float64); ok {
						f.value = v
					}
				}
				reply = map[string]any{"message_id": cmd.MessageID, "result": nil}
			default:
				reply = map[string]any{"message_id": cmd.MessageID, "error_code": 9, "details": "unknown command"}
			}
			f.mu.Unlock()
			if err := writeJSON(ctx, conn, reply); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	f.url = "ws" + strings.TrimPrefix(srv.URL, "http")
	return f
}

func writeJSON(ctx context.Context, conn *websocket.Conn, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, data)
}

func (f *fakeServer) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.writes)
}

func (f *fakeServer) commandCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.commands
}

func writeTestConfig(t *testing.T, extra string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "settle_delay: 1ms\nlog:\n  level: error\n" + extra
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunEndToEnd(t *testing.T) {
	srv := startFakeServer(t, 600, true)
	out := &bytes.Buffer{}
	opts := &options{
		configPath: writeTestConfig(t, ""),
		yes:        true,
		in:         strings.NewReader(""),
		out:        out,
	}

	err := run(context.Background(), opts, []string{"12", "1", "1030", "3", "30", srv.url})
	if err != nil {
		t.Fatalf("run() error = %v\noutput:\n%s", err, out.String())
	}

	got := out.String()
	for _, want := range []string{
		"OccupancySensing (1030)",
		"HoldTime (3)",
		"Current value: 600",
		"Configuration completed successfully",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if srv.writeCount() != 1 {
		t.Errorf("server saw %d writes, want 1", srv.writeCount())
	}
}

func TestRunVerifyMismatchWarns(t *testing.T) {
	// The device takes the write but keeps reporting the old value.
	srv := startFakeServer(t, 600, false)
	out := &bytes.Buffer{}
	opts := &options{
		configPath: writeTestConfig(t, ""),
		yes:        true,
		in:         strings.NewReader(""),
		out:        out,
	}

	err := run(context.Background(), opts, []string{"12", "1", "1030", "3", "30", srv.url})
	if err != nil {
		t.Fatalf("run() error = %v, want nil in warn mode\noutput:\n%s", err, out.String())
	}
	got := out.String()
	if !strings.Contains(got, "⚠") {
		t.Errorf("output missing warning marker:\n%s", got)
	}
	if !strings.Contains(got, "600") || !strings.Contains(got, "30") {
		t.Errorf("warning does not name both values:\n%s", got)
	}
}

func TestRunStrictVerifyFails(t *testing.T) {
	srv := startFakeServer(t, 600, false)
	out := &bytes.Buffer{}
	opts := &options{
		configPath: writeTestConfig(t, "verify: strict\n"),
		yes:        true,
		in:         strings.NewReader(""),
		out:        out,
	}

	err := run(context.Background(), opts, []string{"12", "1", "1030", "3", "30", srv.url})
	if !errors.Is(err, errReported) {
		t.Fatalf("run() error = %v, want errReported", err)
	}
	if !strings.Contains(out.String(), "Verification failed") {
		t.Errorf("output missing verification failure:\n%s", out.String())
	}
}

func TestRunValidationBeforeNetwork(t *testing.T) {
	out := &bytes.Buffer{}
	opts := &options{
		configPath: writeTestConfig(t, ""),
		yes:        true,
		in:         strings.NewReader(""),
		out:        out,
	}

	// No server exists; a network attempt would show up as a connection
	// failure in the output.
	err := run(context.Background(), opts, []string{"3", "1", "1030", "3", "999999"})
	if !errors.Is(err, errReported) {
		t.Fatalf("run() error = %v, want errReported", err)
	}
	got := out.String()
	if !strings.Contains(got, "Invalid input") {
		t.Errorf("output missing validation failure:\n%s", got)
	}
	if strings.Contains(got, "Connection") {
		t.Errorf("validation failure should precede any connection attempt:\n%s", got)
	}
}

func TestRunConnectFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	srv.Close()

	out := &bytes.Buffer{}
	opts := &options{
		configPath: writeTestConfig(t, "timeouts:\n  connect: 2s\n"),
		yes:        true,
		in:         strings.NewReader(""),
		out:        out,
	}

	err := run(context.Background(), opts, []string{"3", "1", "1030", "3", "30", url})
	if !errors.Is(err, errReported) {
		t.Fatalf("run() error = %v, want errReported", err)
	}
	got := out.String()
	if !strings.Contains(got, "Connection failed") {
		t.Errorf("output missing connection failure:\n%s", got)
	}
	if !strings.Contains(got, "port 5580") {
		t.Errorf("output missing remediation hint:\n%s", got)
	}
}

func TestRunDeclineConfirmDoesNothing(t *testing.T) {
	srv := startFakeServer(t, 600, true)
	out := &bytes.Buffer{}
	opts := &options{
		configPath: writeTestConfig(t, ""),
		in:         strings.NewReader("n\n"),
		out:        out,
	}

	err := run(context.Background(), opts, []string{"12", "1", "1030", "3", "30", srv.url})
	if err != nil {
		t.Fatalf("run() error = %v, want nil on decline", err)
	}
	if !strings.Contains(out.String(), "Operation cancelled.") {
		t.Errorf("output missing cancellation notice:\n%s", out.String())
	}
	if srv.commandCount() != 0 {
		t.Errorf("server saw %d commands after decline, want 0", srv.commandCount())
	}
}

func TestRunPromptsForMissing(t *testing.T) {
	srv := startFakeServer(t, 600, true)
	out := &bytes.Buffer{}
	// No URL argument, so the configured server is used. One stream
	// carries the prompted answers and the confirmation.
	opts := &options{
		configPath: writeTestConfig(t, "server_url: "+srv.url+"\n"),
		in:         strings.NewReader("1\n1030\n3\n30\ny\n"),
		out:        out,
	}

	err := run(context.Background(), opts, []string{"12"})
	if err != nil {
		t.Fatalf("run() error = %v\noutput:\n%s", err, out.String())
	}
	got := out.String()
	if strings.Contains(got, "Enter Matter node ID") {
		t.Errorf("prompted for the node id that was given positionally:\n%s", got)
	}
	for _, want := range []string{"Enter endpoint ID", "Enter cluster ID", "Enter attribute ID", "Enter desired attribute value", "(y/N)"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing prompt %q:\n%s", want, got)
		}
	}
	if srv.writeCount() != 1 {
		t.Errorf("server saw %d writes, want 1", srv.writeCount())
	}
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "verbose", "yes"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("flag --%s not registered", name)
		}
	}
}

func TestRootCmdVersion(t *testing.T) {
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out.String(), version) {
		t.Errorf("version output = %q, want it to contain %q", out.String(), version)
	}
}
