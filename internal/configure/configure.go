// Package configure runs the read, write, wait, verify sequence against
// one attribute of one node.
package configure

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sharaf-n/ha-matter-device-configure/internal/clusters"
	"github.com/sharaf-n/ha-matter-device-configure/internal/fault"
	"github.com/sharaf-n/ha-matter-device-configure/internal/matter"
)

// AttributeClient is the slice of the Matter session the workflow needs.
// *matter.Client satisfies it.
type AttributeClient interface {
	ReadAttribute(ctx context.Context, nodeID matter.NodeID, path matter.AttributePath) (any, error)
	WriteAttribute(ctx context.Context, nodeID matter.NodeID, path matter.AttributePath, value any) error
}

// Reporter receives progress lines for the operator.
type Reporter interface {
	Step(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
}

// Target names one attribute on one node and the value to write there.
type Target struct {
	NodeID matter.NodeID
	Path   matter.AttributePath
	Value  int64
}

// Options tunes the workflow.
type Options struct {
	// SettleDelay is how long to wait between the write and the verify
	// read, giving the device time to apply the change.
	SettleDelay time.Duration

	// StrictVerify makes a verify mismatch fatal instead of a warning.
	StrictVerify bool
}

// Run executes the configuration sequence. Any fault before the write
// aborts the run with the write never attempted; after a successful
// write, a verify mismatch is a warning unless StrictVerify is set.
func Run(ctx context.Context, client AttributeClient, target Target, opts Options, rep Reporter) error {
	label := clusters.Describe(target.Path.Cluster, target.Path.Attribute)

	rep.Step("Reading current value of %s on node %d", label, target.NodeID)
	before, err := client.ReadAttribute(ctx, target.NodeID, target.Path)
	if err != nil {
		return err
	}
	rep.Step("Current value: %v", before)

	rep.Step("Writing %d to %s", target.Value, label)
	if err := client.WriteAttribute(ctx, target.NodeID, target.Path, target.Value); err != nil {
		return err
	}

	if opts.SettleDelay > 0 {
		rep.Step("Waiting %s for the device to apply the change", opts.SettleDelay)
		if err := sleep(ctx, opts.SettleDelay); err != nil {
			return err
		}
	}

	rep.Step("Verifying the change")
	after, err := client.ReadAttribute(ctx, target.NodeID, target.Path)
	if err != nil {
		return err
	}
	if !numericEqual(after, target.Value) {
		if opts.StrictVerify {
			return fault.Verification("attribute %s reads back %v, expected %d", label, after, target.Value)
		}
		rep.Warn("Attribute was written but reads back %v (expected %d)", after, target.Value)
		return nil
	}
	rep.Success("Attribute %s verified at %v", label, after)
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// numericEqual compares a decoded attribute value against the written
// integer. Values arrive as json.Number from the client; plain ints and
// floats are accepted too.
func numericEqual(got any, want int64) bool {
	switch v := got.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i == want
		}
		if f, err := v.Float64(); err == nil {
			return f == float64(want)
		}
	case float64:
		return v == float64(want)
	case int64:
		return v == want
	case int:
		return int64(v) == want
	}
	return false
}
