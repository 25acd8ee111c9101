// Package prompt resolves the tool's positional arguments, asking the
// operator for whatever the command line left out. Parsing is separate
// from prompting so it stays testable without a terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sharaf-n/ha-matter-device-configure/internal/fault"
	"github.com/sharaf-n/ha-matter-device-configure/internal/matter"
)

// field describes one positional integer argument: how to ask for it and
// the range it must fall in.
type field struct {
	prompt string
	name   string
	min    uint64
	max    uint64
}

var (
	fieldNode      = field{"Enter Matter node ID", "node id", 1, math.MaxUint64}
	fieldEndpoint  = field{"Enter endpoint ID", "endpoint id", 0, math.MaxUint16}
	fieldCluster   = field{"Enter cluster ID", "cluster id", 0, math.MaxUint32}
	fieldAttribute = field{"Enter attribute ID", "attribute id", 0, math.MaxUint32}
	fieldValue     = field{"Enter desired attribute value", "attribute value", 1, 65535}
)

func (f field) parse(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", f.name, s)
	}
	if v < f.min {
		return 0, fmt.Errorf("%s must be at least %d, got %d", f.name, f.min, v)
	}
	if v > f.max {
		return 0, fmt.Errorf("%s must be at most %d, got %d", f.name, f.max, v)
	}
	return v, nil
}

// Partial is the subset of the target supplied on the command line. Nil
// fields were not given and resolve interactively.
type Partial struct {
	NodeID    *matter.NodeID
	Endpoint  *matter.EndpointID
	Cluster   *matter.ClusterID
	Attribute *matter.AttributeID
	Value     *int64
	URL       string
}

// Resolved is a fully specified target. URL stays empty when the command
// line gave none; the server URL then comes from configuration.
type Resolved struct {
	NodeID    matter.NodeID
	Endpoint  matter.EndpointID
	Cluster   matter.ClusterID
	Attribute matter.AttributeID
	Value     int64
	URL       string
}

// Path returns the attribute path portion of the target.
func (r Resolved) Path() matter.AttributePath {
	return matter.AttributePath{Endpoint: r.Endpoint, Cluster: r.Cluster, Attribute: r.Attribute}
}

// ParseArgs parses up to six positional arguments in the order
// node endpoint cluster attribute value [url]. It performs no I/O; out of
// range or non-numeric input is a validation fault.
func ParseArgs(args []string) (Partial, error) {
	var p Partial
	if len(args) > 6 {
		return p, fault.Validation("too many arguments: got %d, expected at most 6 (node endpoint cluster attribute value [url])", len(args))
	}
	order := []field{fieldNode, fieldEndpoint, fieldCluster, fieldAttribute, fieldValue}
	for i, arg := range args {
		if i == 5 {
			p.URL = arg
			break
		}
		v, err := order[i].parse(arg)
		if err != nil {
			return Partial{}, fault.Validation("argument %d: %v", i+1, err)
		}
		switch i {
		case 0:
			id := matter.NodeID(v)
			p.NodeID = &id
		case 1:
			id := matter.EndpointID(v)
			p.Endpoint = &id
		case 2:
			id := matter.ClusterID(v)
			p.Cluster = &id
		case 3:
			id := matter.AttributeID(v)
			p.Attribute = &id
		case 4:
			val := int64(v)
			p.Value = &val
		}
	}
	return p, nil
}

// Resolver asks the operator for missing fields. In and Out are plain
// streams so tests can drive it without a terminal.
type Resolver struct {
	In  io.Reader
	Out io.Writer

	br *bufio.Reader
}

// reader shares one buffer across Resolve and Confirm so a prompt never
// swallows input meant for the next question.
func (r *Resolver) reader() *bufio.Reader {
	if r.br == nil {
		r.br = bufio.NewReader(r.In)
	}
	return r.br
}

func (r *Resolver) readLine() (string, error) {
	line, err := r.reader().ReadString('\n')
	if err != nil {
		if err == io.EOF && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ask prompts for one field until the input parses. A closed input
// stream is a validation fault, not an endless loop.
func (r *Resolver) ask(f field) (uint64, error) {
	for {
		fmt.Fprintf(r.Out, "%s: ", f.prompt)
		line, err := r.readLine()
		if err != nil {
			return 0, fault.Validation("input closed before a %s was provided", f.name)
		}
		if line == "" {
			fmt.Fprintln(r.Out, "Value is required. Please enter a number.")
			continue
		}
		v, perr := f.parse(line)
		if perr != nil {
			fmt.Fprintf(r.Out, "%v. Please try again.\n", perr)
			continue
		}
		return v, nil
	}
}

// Resolve fills the missing fields of p by prompting in the fixed order
// node, endpoint, cluster, attribute, value. Fields already present are
// never asked for. The URL is never prompted; a missing URL resolves from
// configuration later.
func (r *Resolver) Resolve(p Partial) (Resolved, error) {
	res := Resolved{URL: p.URL}

	if p.NodeID != nil {
		res.NodeID = *p.NodeID
	} else {
		v, err := r.ask(fieldNode)
		if err != nil {
			return Resolved{}, err
		}
		res.NodeID = matter.NodeID(v)
	}

	if p.Endpoint != nil {
		res.Endpoint = *p.Endpoint
	} else {
		v, err := r.ask(fieldEndpoint)
		if err != nil {
			return Resolved{}, err
		}
		res.Endpoint = matter.EndpointID(v)
	}

	if p.Cluster != nil {
		res.Cluster = *p.Cluster
	} else {
		v, err := r.ask(fieldCluster)
		if err != nil {
			return Resolved{}, err
		}
		res.Cluster = matter.ClusterID(v)
	}

	if p.Attribute != nil {
		res.Attribute = *p.Attribute
	} else {
		v, err := r.ask(fieldAttribute)
		if err != nil {
			return Resolved{}, err
		}
		res.Attribute = matter.AttributeID(v)
	}

	if p.Value != nil {
		res.Value = *p.Value
	} else {
		v, err := r.ask(fieldValue)
		if err != nil {
			return Resolved{}, err
		}
		res.Value = int64(v)
	}

	return res, nil
}

// Confirm asks the question and returns true only on an explicit yes.
// Enter, EOF, or anything not starting with "y" declines.
func (r *Resolver) Confirm(question string) bool {
	fmt.Fprintf(r.Out, "%s (y/N): ", question)
	line, err := r.readLine()
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(line), "y")
}
