// Package report prints the operator-facing progress of a configuration
// run: marked step lines and a final summary. Failure summaries name the
// fault category and add a remediation hint. Everything here is
// presentation; no decisions are made from it.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/sharaf-n/ha-matter-device-configure/internal/fault"
)

// Line markers.
const (
	markerInfo    = "·"
	markerSuccess = "✓"
	markerWarn    = "⚠"
	markerError   = "✗"
)

var (
	infoStyle    = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// Reporter writes progress lines to one stream.
type Reporter struct {
	out   io.Writer
	color bool
}

// New builds a reporter for out. Styling turns off when out is not a
// terminal or when noColor is set.
func New(out io.Writer, noColor bool) *Reporter {
	color := !noColor
	if f, ok := out.(*os.File); ok {
		if !term.IsTerminal(int(f.Fd())) {
			color = false
		}
	} else {
		color = false
	}
	return &Reporter{out: out, color: color}
}

func (r *Reporter) line(style lipgloss.Style, marker, format string, args ...any) {
	line := marker + " " + fmt.Sprintf(format, args...)
	if r.color {
		line = style.Render(line)
	}
	fmt.Fprintln(r.out, line)
}

// Step prints one progress line.
func (r *Reporter) Step(format string, args ...any) {
	r.line(infoStyle, markerInfo, format, args...)
}

// Success prints a success line.
func (r *Reporter) Success(format string, args ...any) {
	r.line(successStyle, markerSuccess, format, args...)
}

// Warn prints a warning line.
func (r *Reporter) Warn(format string, args ...any) {
	r.line(warnStyle, markerWarn, format, args...)
}

// Error prints an error line.
func (r *Reporter) Error(format string, args ...any) {
	r.line(errorStyle, markerError, format, args...)
}

// Fail prints the failure summary for err: one categorized line plus a
// remediation hint when the category has one.
func (r *Reporter) Fail(err error) {
	cat, ok := fault.CategoryOf(err)
	if !ok {
		r.Error("Error: %v", err)
		return
	}
	r.Error("%s: %v", label(cat), err)
	if h := hint(cat); h != "" {
		fmt.Fprintln(r.out, "  "+h)
	}
}

func label(cat fault.Category) string {
	switch cat {
	case fault.CategoryValidation:
		return "Invalid input"
	case fault.CategoryConnection:
		return "Connection failed"
	case fault.CategoryNotFound:
		return "Not found"
	case fault.CategoryProtocol:
		return "Protocol error"
	case fault.CategoryWriteRejected:
		return "Write rejected"
	case fault.CategoryVerification:
		return "Verification failed"
	default:
		return "Error"
	}
}

func hint(cat fault.Category) string {
	switch cat {
	case fault.CategoryValidation:
		return "Run with no arguments to be prompted for each value interactively."
	case fault.CategoryConnection:
		return "Check that the Matter server is running and reachable. For the Home Assistant add-on, expose port 5580 under Settings → Add-ons → Matter Server → Configuration → Network, then restart the add-on."
	case fault.CategoryNotFound:
		return "Check the node, endpoint, cluster, and attribute ids. The node must be commissioned and awake."
	case fault.CategoryProtocol:
		return "The server answered in an unexpected way. Check that the URL points at a Matter server WebSocket endpoint."
	case fault.CategoryWriteRejected:
		return "The device refused the value. Check that the attribute is writable and the value is valid for it."
	case fault.CategoryVerification:
		return "The device may apply the change with a delay, or another controller may have changed the value since."
	}
	return ""
}
