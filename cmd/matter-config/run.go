package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sharaf-n/ha-matter-device-configure/internal/clusters"
	"github.com/sharaf-n/ha-matter-device-configure/internal/config"
	"github.com/sharaf-n/ha-matter-device-configure/internal/configure"
	"github.com/sharaf-n/ha-matter-device-configure/internal/fault"
	"github.com/sharaf-n/ha-matter-device-configure/internal/matter"
	"github.com/sharaf-n/ha-matter-device-configure/internal/prompt"
	"github.com/sharaf-n/ha-matter-device-configure/internal/report"
)

// errReported marks faults already rendered by the reporter so main does
// not print them a second time.
var errReported = errors.New("reported")

type options struct {
	configPath string
	verbose    bool
	yes        bool

	in  io.Reader
	out io.Writer
}

func newRootCmd() *cobra.Command {
	opts := &options{in: os.Stdin, out: os.Stdout}
	cmd := &cobra.Command{
		Use:   "matter-config [node-id] [endpoint-id] [cluster-id] [attribute-id] [value] [url]",
		Short: "Read, write, and verify one attribute on a Matter device",
		Long: `matter-config sets a single attribute on a Matter device through a running
Matter server and reads the attribute back to verify the change.

All six positional arguments are optional; missing values are asked for
interactively. A missing URL falls back to the configured server.`,
		Example: `  # Interactive mode (prompts for missing values)
  matter-config

  # All positional arguments
  matter-config 3 1 1030 3 30
  matter-config 3 1 1030 3 30 ws://192.168.1.100:5580/ws

  # Partial arguments (prompts for the rest)
  matter-config 3 1 1030`,
		Args:          cobra.MaximumNArgs(6),
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to YAML config file")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func run(ctx context.Context, opts *options, args []string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
	logger := newLogger(cfg)

	rep := report.New(opts.out, cfg.NoColor)

	partial, err := prompt.ParseArgs(args)
	if err != nil {
		rep.Fail(err)
		return errReported
	}

	resolver := &prompt.Resolver{In: opts.in, Out: opts.out}
	resolved, err := resolver.Resolve(partial)
	if err != nil {
		rep.Fail(err)
		return errReported
	}

	url := resolved.URL
	if url == "" {
		url = cfg.ServerURL
	} else if err := config.ValidateServerURL(url); err != nil {
		rep.Fail(fault.Validation("%v", err))
		return errReported
	}

	printSummary(opts.out, resolved, url)
	if c := clusters.Lookup(resolved.Cluster); c != nil {
		if a := c.FindAttribute(resolved.Attribute); a != nil && !a.IsWritable() {
			rep.Warn("%s is read-only in the standard data model; the device will likely refuse the write", a.Name)
		}
	}

	if !opts.yes {
		if !resolver.Confirm(fmt.Sprintf("This will set the attribute to %d. Continue?", resolved.Value)) {
			fmt.Fprintln(opts.out, "Operation cancelled.")
			return nil
		}
	}

	rep.Step("Connecting to Matter server at %s", url)
	client, err := matter.Connect(ctx, matter.Config{
		URL:            url,
		ConnectTimeout: cfg.ConnectTimeout,
		RequestTimeout: cfg.RequestTimeout,
		Logger:         logger,
	})
	if err != nil {
		rep.Fail(err)
		return errReported
	}
	defer client.Close()

	info := client.ServerInfo()
	rep.Step("Connected (fabric %d, SDK %s)", info.FabricID, info.SDKVersion)

	target := configure.Target{NodeID: resolved.NodeID, Path: resolved.Path(), Value: resolved.Value}
	err = configure.Run(ctx, client, target, configure.Options{
		SettleDelay:  cfg.SettleDelay,
		StrictVerify: cfg.StrictVerify(),
	}, rep)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Operation cancelled.")
			return errReported
		}
		rep.Fail(err)
		return errReported
	}

	rep.Success("Configuration completed successfully")
	return nil
}

func printSummary(out io.Writer, r prompt.Resolved, url string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Configuration:")
	fmt.Fprintf(out, "  Server URL: %s\n", url)
	fmt.Fprintf(out, "  Node ID:    %d\n", r.NodeID)
	fmt.Fprintf(out, "  Endpoint:   %d\n", r.Endpoint)
	fmt.Fprintf(out, "  Cluster:    %s (%d)\n", clusters.ClusterName(r.Cluster), uint32(r.Cluster))
	fmt.Fprintf(out, "  Attribute:  %s (%d)\n", clusters.AttributeName(r.Cluster, r.Attribute), uint32(r.Attribute))
	fmt.Fprintf(out, "  New value:  %d\n", r.Value)
	fmt.Fprintln(out)
}
