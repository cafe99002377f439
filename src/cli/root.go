// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/H0llyW00dzZ/loggate/src/logger"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

var (
	thresholdFlag logger.Level
	severityFlag  logger.Level
	backendFlag   string
	outputFlag    string
	configFile    string
	silentFlag    bool
)

// Execute runs the root command, submitting its argument messages (or stdin
// lines when no arguments are given) through a severity gate assembled from
// the configuration file and flags.
func Execute(ctx context.Context, version string) error {
	// Var-bound flags keep their value across Execute calls; reset so
	// repeated invocations (tests) start from the documented defaults.
	thresholdFlag = logger.DefaultLevel
	severityFlag = logger.LevelInfo

	rootCmd := &cobra.Command{
		Use:   "loggate [MESSAGE...]",
		Short: "Severity-gated logging",
		Long: "loggate forwards messages at or above a severity threshold to a log sink\n" +
			"and silently discards the rest. Messages come from the command line or,\n" +
			"when no arguments are given, one per line from stdin.",
		Version:      version,
		RunE:         execRoot,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().VarP(&thresholdFlag, "level", "l", "minimum severity forwarded to the sink (info, warning, error)")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "configuration file (.json, .yaml, .yml)")

	rootCmd.Flags().VarP(&severityFlag, "severity", "s", "severity the message(s) are submitted at")
	rootCmd.Flags().StringVarP(&backendFlag, "backend", "b", "", "sink backend: plain, json, or gologging")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "sink destination: stderr, stdout, or a file path")
	rootCmd.Flags().BoolVar(&silentFlag, "silent", false, "suppress all sink output")

	rootCmd.AddCommand(levelsCmd())

	return rootCmd.ExecuteContext(ctx)
}

// execRoot assembles the gate and pushes every message through it. Messages
// below the threshold are dropped by the gate; that is the tool working as
// intended, not an error, so the command still exits zero.
func execRoot(cmd *cobra.Command, args []string) error {
	gate, closer, err := buildGate(cmd)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	if len(args) > 0 {
		for _, message := range args {
			gate.Admit(severityFlag, message)
		}
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		select {
		case <-cmd.Context().Done():
			return cmd.Context().Err()
		default:
		}
		gate.Admit(severityFlag, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading messages from stdin: %w", err)
	}
	return nil
}

// buildGate loads the configuration file (or defaults) and lets explicitly
// set flags override it, then assembles the gate.
func buildGate(cmd *cobra.Command) (*logger.Gate, io.Closer, error) {
	cfg, err := logger.LoadConfig(configFile)
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("level") {
		cfg.Level = thresholdFlag
	}
	if flags.Changed("backend") {
		cfg.Backend = backendFlag
	}
	if flags.Changed("output") {
		cfg.Output = outputFlag
	}
	if flags.Changed("silent") {
		cfg.Silent = silentFlag
	}

	return cfg.Build()
}

// levelsCmd returns the "levels" subcommand: a markdown table of the
// severities and whether each one is admitted at the chosen threshold.
func levelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "Show severities and admission at the current threshold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var buf strings.Builder
			table := tablewriter.NewTable(&buf,
				tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
			)

			table.Header([]string{"#", "Severity", "Admitted at " + thresholdFlag.String()})

			var rows [][]string
			for _, l := range []logger.Level{logger.LevelInfo, logger.LevelWarning, logger.LevelError} {
				admitted := "no"
				if l >= thresholdFlag {
					admitted = "yes"
				}
				rows = append(rows, []string{
					fmt.Sprintf("%d", int32(l)),
					l.String(),
					admitted,
				})
			}

			table.Bulk(rows)
			table.Render()

			fmt.Fprint(cmd.OutOrStdout(), buf.String())
			return nil
		},
	}
}
