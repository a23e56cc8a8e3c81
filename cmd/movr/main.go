// Command movr runs trace analyses on JSON documents from a file or stdin.
//
//	movr sessions -f trace.json --gap 600
//	movr flows < sessions.json
//	movr gyration -f points.json
//	movr profile -f trace.json --gap 600 --flow-gap 3600
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/jengzang/movr-go/internal/config"
	"github.com/jengzang/movr-go/internal/logging"
	"github.com/jengzang/movr-go/internal/models"
	"github.com/jengzang/movr-go/internal/service"
)

var version = "dev"

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

type cliFlags struct {
	input   string
	gap     float64
	flowGap float64
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var flags cliFlags
	var svc *service.MobilityService

	root := &cobra.Command{
		Use:          "movr",
		Short:        "Compress movement traces, count flows and measure dispersion",
		SilenceUsage: true,
	}
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logging.Init(logging.Config{Level: cfg.LogLevel, Format: "console", Output: cmd.ErrOrStderr()})
		svc = service.NewMobilityService(service.Options{
			SessionGap: cfg.SessionGap,
			FlowGap:    cfg.FlowGap,
		})
		return nil
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.PersistentFlags().StringVarP(&flags.input, "file", "f", "-", "input JSON file, - for stdin")

	sessions := &cobra.Command{
		Use:   "sessions",
		Short: "Merge consecutive same-location pings into stay sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req models.SessionsRequest
			if err := decode(cmd, flags.input, &req); err != nil {
				return err
			}
			if cmd.Flags().Changed("gap") {
				req.Gap = &flags.gap
			}
			resp, err := svc.Sessions(req)
			if err != nil {
				return err
			}
			return encode(cmd.OutOrStdout(), resp)
		},
	}
	sessions.Flags().Float64Var(&flags.gap, "gap", 0, "session gap threshold in seconds")

	flows := &cobra.Command{
		Use:   "flows",
		Short: "Count directed transitions between time-ordered sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req models.FlowsRequest
			if err := decode(cmd, flags.input, &req); err != nil {
				return err
			}
			if cmd.Flags().Changed("gap") {
				req.Gap = &flags.gap
			}
			resp, err := svc.Flows(req)
			if err != nil {
				return err
			}
			return encode(cmd.OutOrStdout(), resp)
		},
	}
	flows.Flags().Float64Var(&flags.gap, "gap", 0, "flow gap threshold in seconds")

	gyration := &cobra.Command{
		Use:   "gyration",
		Short: "Compute the weighted radius of gyration in kilometers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req models.GyrationRequest
			if err := decode(cmd, flags.input, &req); err != nil {
				return err
			}
			resp, err := svc.Gyration(req)
			if err != nil {
				return err
			}
			return encode(cmd.OutOrStdout(), resp)
		},
	}

	profile := &cobra.Command{
		Use:   "profile",
		Short: "Compress a trace, aggregate its flows and summarize both",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req models.ProfileRequest
			if err := decode(cmd, flags.input, &req); err != nil {
				return err
			}
			if cmd.Flags().Changed("gap") {
				req.SessionGap = &flags.gap
			}
			if cmd.Flags().Changed("flow-gap") {
				req.FlowGap = &flags.flowGap
			}
			resp, err := svc.Profile(req)
			if err != nil {
				return err
			}
			return encode(cmd.OutOrStdout(), resp)
		},
	}
	profile.Flags().Float64Var(&flags.gap, "gap", 0, "session gap threshold in seconds")
	profile.Flags().Float64Var(&flags.flowGap, "flow-gap", 0, "flow gap threshold in seconds")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
	// version needs no config
	versionCmd.PersistentPreRun = func(*cobra.Command, []string) {}

	root.AddCommand(sessions, flows, gyration, profile, versionCmd)
	return root
}

func decode(cmd *cobra.Command, path string, v any) error {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}
	return nil
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
