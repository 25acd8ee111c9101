package matter

import (
	"encoding/json"
	"fmt"
)

// Commands of the Matter server WebSocket API used by this client.
const (
	cmdReadAttribute  = "read_attribute"
	cmdWriteAttribute = "write_attribute"
)

// ServerInfo is the first frame the server sends after the WebSocket
// handshake, before any command may be issued.
type ServerInfo struct {
	FabricID                  uint64 `json:"fabric_id"`
	CompressedFabricID        uint64 `json:"compressed_fabric_id"`
	SchemaVersion             int    `json:"schema_version"`
	MinSupportedSchemaVersion int    `json:"min_supported_schema_version"`
	SDKVersion                string `json:"sdk_version"`
	WifiCredentialsSet        bool   `json:"wifi_credentials_set"`
	ThreadCredentialsSet      bool   `json:"thread_credentials_set"`
}

// commandMessage is a client-to-server command frame.
type commandMessage struct {
	MessageID string         `json:"message_id"`
	Command   string         `json:"command"`
	Args      map[string]any `json:"args,omitempty"`
}

// incomingMessage is any server-to-client frame after the server info:
// a command result, a command error, or a pushed event. Exactly one
// shape applies per frame.
type incomingMessage struct {
	MessageID string          `json:"message_id"`
	Result    json.RawMessage `json:"result"`
	ErrorCode *int            `json:"error_code"`
	Details   string          `json:"details"`
	Event     string          `json:"event"`
	Data      json.RawMessage `json:"data"`
}

func (m *incomingMessage) isEvent() bool { return m.Event != "" }
func (m *incomingMessage) isError() bool { return m.ErrorCode != nil }

// Error codes from the Matter server's error table.
const (
	errCodeNodeCommissionFailed = 1
	errCodeNodeInterviewFailed  = 2
	errCodeNodeNotResolving     = 3
	errCodeNodeNotReady         = 4
	errCodeNodeNotExists        = 5
	errCodeVersionMismatch      = 6
	errCodeSDKStackError        = 7
	errCodeInvalidArguments     = 9
)

// serverError is an error frame from the server, kept as-is until the
// calling operation maps it onto the fault taxonomy (the right category
// depends on whether the command was a read or a write).
type serverError struct {
	Code    int
	Details string
}

func (e *serverError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("server error %d: %s", e.Code, e.Details)
	}
	return fmt.Sprintf("server error %d", e.Code)
}
