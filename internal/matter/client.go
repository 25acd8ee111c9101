package matter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"nhooyr.io/websocket"

	"github.com/sharaf-n/ha-matter-device-configure/internal/fault"
)

// schemaVersion is the server API schema generation this client speaks.
// Servers advertise the oldest schema they still accept; Connect refuses
// servers that demand a newer one.
const schemaVersion = 11

// Default timeouts applied when Config leaves them zero.
const (
	DefaultConnectTimeout = 10 * time.Second
	DefaultRequestTimeout = 15 * time.Second
)

// readLimit bounds a single server frame. Command results here are a
// handful of attribute values, never full fabric dumps.
const readLimit = 1 << 20

// Config configures Connect. Only URL is required.
type Config struct {
	// URL is the server WebSocket endpoint,
	// e.g. ws://homeassistant.local:5580/ws.
	URL string

	// ConnectTimeout bounds the dial plus the server-info handshake.
	ConnectTimeout time.Duration

	// RequestTimeout bounds each command round-trip when the caller's
	// context carries no deadline of its own.
	RequestTimeout time.Duration

	// Logger receives diagnostic logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client is a connected session with the Matter server. The session owns
// its WebSocket connection for its entire lifetime and runs one command
// round-trip at a time.
type Client struct {
	conn    *websocket.Conn
	url     string
	timeout time.Duration
	logger  *slog.Logger
	info    ServerInfo

	mu     sync.Mutex // serializes round-trips and Close
	closed bool
}

// Connect dials the server and consumes its initial server-info frame.
// The caller releases the connection with Close, including on failure of
// any later step.
func Connect(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fault.Validation("server URL is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	connectTimeout := cfg.ConnectTimeout
	if connectTimeout == 0 {
		connectTimeout = DefaultConnectTimeout
	}
	requestTimeout := cfg.RequestTimeout
	if requestTimeout == 0 {
		requestTimeout = DefaultRequestTimeout
	}

	dialCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	conn, _, err := websocket.Dial(dialCtx, cfg.URL, nil)
	if err != nil {
		return nil, fault.Connection("could not connect to matter server at %s: %w", cfg.URL, err)
	}
	conn.SetReadLimit(readLimit)

	c := &Client{
		conn:    conn,
		url:     cfg.URL,
		timeout: requestTimeout,
		logger:  logger,
	}

	// The server speaks first: one server-info frame right after the
	// handshake.
	if err := c.readServerInfo(dialCtx); err != nil {
		conn.Close(websocket.StatusProtocolError, "handshake failed")
		return nil, err
	}

	logger.Debug("connected to matter server",
		"url", cfg.URL,
		"fabric_id", c.info.FabricID,
		"schema_version", c.info.SchemaVersion,
		"sdk_version", c.info.SDKVersion)
	return c, nil
}

func (c *Client) readServerInfo(ctx context.Context) error {
	_, data, err := c.conn.Read(ctx)
	if err != nil {
		return fault.Connection("no server info from %s: %w", c.url, err)
	}
	var info ServerInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return fault.Protocol("decode server info: %w", err)
	}
	if info.SchemaVersion == 0 {
		return fault.Protocol("server at %s did not identify itself (is this a matter server?)", c.url)
	}
	if info.MinSupportedSchemaVersion > schemaVersion {
		return fault.Connection("server at %s requires API schema %d or newer, this tool speaks %d",
			c.url, info.MinSupportedSchemaVersion, schemaVersion)
	}
	c.info = info
	return nil
}

// ServerInfo returns the identity frame received during Connect.
func (c *Client) ServerInfo() ServerInfo {
	return c.info
}

// ReadAttribute reads one attribute value from a node. Numbers decode as
// json.Number so 64-bit values survive without float rounding.
func (c *Client) ReadAttribute(ctx context.Context, nodeID NodeID, path AttributePath) (any, error) {
	args := map[string]any{
		"node_id":        nodeID,
		"attribute_path": path.String(),
	}
	result, err := c.roundTrip(ctx, cmdReadAttribute, args)
	if err != nil {
		var se *serverError
		if errors.As(err, &se) {
			return nil, readFault(nodeID, path, se)
		}
		return nil, err
	}

	// The result is an object keyed by attribute path.
	values := map[string]json.RawMessage{}
	if err := json.Unmarshal(result, &values); err != nil {
		return nil, fault.Protocol("read %s on node %d: unexpected result shape: %w", path, nodeID, err)
	}
	raw, ok := values[path.String()]
	if !ok {
		return nil, fault.Protocol("read %s on node %d: result is missing the attribute path", path, nodeID)
	}
	val, err := decodeValue(raw)
	if err != nil {
		return nil, err
	}
	if val == nil {
		return nil, fault.NotFound("read %s on node %d: attribute has no value", path, nodeID)
	}
	return val, nil
}

// WriteAttribute writes one attribute value on a node.
func (c *Client) WriteAttribute(ctx context.Context, nodeID NodeID, path AttributePath, value any) error {
	args := map[string]any{
		"node_id":        nodeID,
		"attribute_path": path.String(),
		"value":          value,
	}
	result, err := c.roundTrip(ctx, cmdWriteAttribute, args)
	if err != nil {
		var se *serverError
		if errors.As(err, &se) {
			return writeFault(nodeID, path, se)
		}
		return err
	}
	return checkWriteStatus(nodeID, path, result)
}

// Close closes the WebSocket connection with a normal-closure status.
// Safe to call more than once and after failed operations: the session
// owns the connection, and Close is its single release point.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close(websocket.StatusNormalClosure, "")
}

// roundTrip sends one command and waits for its result frame, skipping
// pushed events and responses to abandoned commands. Server error frames
// come back as *serverError for the caller to categorize.
func (c *Client) roundTrip(ctx context.Context, command string, args map[string]any) (json.RawMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, fault.Connection("connection already closed")
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	id := uuid.NewString()
	payload, err := json.Marshal(commandMessage{MessageID: id, Command: command, Args: args})
	if err != nil {
		return nil, fault.Protocol("encode %s command: %w", command, err)
	}
	c.logger.Debug("sending command", "command", command, "message_id", id)
	if err := c.conn.Write(ctx, websocket.MessageText, payload); err != nil {
		return nil, fault.Connection("send %s command: %w", command, err)
	}

	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fault.Connection("%s: no response from server: %w", command, ctx.Err())
			}
			return nil, fault.Connection("read %s response: %w", command, err)
		}
		var msg incomingMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, fault.Protocol("decode server frame: %w", err)
		}
		switch {
		case msg.isEvent():
			// The server pushes node/attribute events on the shared
			// socket; this tool never subscribes, but skip them anyway.
			c.logger.Debug("ignoring event frame", "event", msg.Event)
		case msg.MessageID != id:
			c.logger.Debug("ignoring stale response", "message_id", msg.MessageID)
		case msg.isError():
			return nil, &serverError{Code: *msg.ErrorCode, Details: msg.Details}
		default:
			return msg.Result, nil
		}
	}
}

// decodeValue decodes an attribute value, keeping numbers as json.Number.
func decodeValue(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fault.Protocol("decode attribute value: %w", err)
	}
	return v, nil
}

// checkWriteStatus inspects a write result for per-path interaction
// statuses. The server forwards the SDK response: a list of entries with
// Status 0 on success. Refusals normally arrive as error frames, so an
// absent or unrecognized payload counts as success.
func checkWriteStatus(nodeID NodeID, path AttributePath, result json.RawMessage) error {
	if len(result) == 0 || bytes.Equal(result, []byte("null")) {
		return nil
	}
	var entries []struct {
		Status int `json:"Status"`
	}
	if err := json.Unmarshal(result, &entries); err != nil {
		return nil
	}
	for _, e := range entries {
		if e.Status != 0 {
			return fault.WriteRejected("write %s on node %d refused with status %d", path, nodeID, e.Status)
		}
	}
	return nil
}

// readFault maps a server error on read_attribute onto the fault taxonomy.
func readFault(nodeID NodeID, path AttributePath, se *serverError) error {
	switch se.Code {
	case errCodeNodeNotExists:
		return fault.NotFound("node %d does not exist on this fabric", nodeID)
	case errCodeNodeNotResolving, errCodeNodeNotReady:
		return fault.NotFound("node %d is not reachable: %s", nodeID, se.Details)
	default:
		return fault.Protocol("read %s on node %d: %s", path, nodeID, se.Error())
	}
}

// writeFault maps a server error on write_attribute onto the fault
// taxonomy. Unreachable and SDK-level refusals are write rejections: the
// command was valid, the device would not take it.
func writeFault(nodeID NodeID, path AttributePath, se *serverError) error {
	switch se.Code {
	case errCodeNodeNotExists:
		return fault.NotFound("node %d does not exist on this fabric", nodeID)
	case errCodeNodeNotResolving, errCodeNodeNotReady:
		return fault.WriteRejected("node %d is not reachable: %s", nodeID, se.Details)
	case errCodeSDKStackError, errCodeInvalidArguments:
		return fault.WriteRejected("write %s on node %d refused: %s", path, nodeID, se.Details)
	default:
		return fault.Protocol("write %s on node %d: %s", path, nodeID, se.Error())
	}
}
