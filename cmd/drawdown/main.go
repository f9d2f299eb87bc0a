package main

import (
	"fmt"
	"os"

	"github.com/retireplan/drawdown-calculator/internal/calculation"
	"github.com/retireplan/drawdown-calculator/internal/config"
	"github.com/retireplan/drawdown-calculator/internal/domain"
	"github.com/retireplan/drawdown-calculator/internal/output"
	"github.com/retireplan/drawdown-calculator/pkg/fileutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var logLevel string

	root := &cobra.Command{
		Use:           "drawdown",
		Short:         "Project multi-decade retirement drawdown plans year by year",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "plan.yaml", "path to plan configuration file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newRunCmd(&configPath, &logLevel))
	root.AddCommand(newAuditCmd(&configPath, &logLevel))
	root.AddCommand(newValidateCmd(&configPath))
	return root
}

func newRunCmd(configPath, logLevel *string) *cobra.Command {
	var format string
	var outPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the projection and write the plan rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, inputs, err := runPlan(*configPath, *logLevel)
			if err != nil {
				return err
			}

			formatter, err := output.ForName(format)
			if err != nil {
				return err
			}
			rendered, err := formatter.Format(rows)
			if err != nil {
				return fmt.Errorf("formatting output: %w", err)
			}

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(rendered)
				return err
			}
			path := outPath
			if path == "auto" {
				path = fileutil.Timestamped("plan", filenameSettings(inputs), formatter.Name())
			}
			if err := os.WriteFile(path, rendered, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", len(rows), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format: console, csv, json")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (empty = stdout, auto = timestamped name)")
	return cmd
}

func newAuditCmd(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Run the projection and verify the row identities",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, _, err := runPlan(*configPath, *logLevel)
			if err != nil {
				return err
			}
			summary := output.AuditRows(rows)
			fmt.Fprintln(cmd.OutOrStdout(), summary.String())
			for _, issue := range summary.Issues {
				fmt.Fprintln(cmd.OutOrStdout(), "  "+issue)
			}
			if !summary.OK() {
				return fmt.Errorf("audit found %d issues", len(summary.Issues))
			}
			return nil
		},
	}
}

func newValidateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load and validate the configuration without running",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.NewInputParser().LoadFromFile(*configPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", *configPath)
			return nil
		},
	}
}

func runPlan(configPath, logLevel string) ([]domain.PlanRow, *domain.PlanInputs, error) {
	inputs, err := config.NewInputParser().LoadFromFile(configPath)
	if err != nil {
		return nil, nil, err
	}

	logger, err := buildLogger(logLevel)
	if err != nil {
		return nil, nil, err
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is harmless

	engine := calculation.NewPlanEngine()
	engine.SetLogger(zapAdapter{logger.Sugar()})
	return engine.RunPlan(inputs), inputs, nil
}

// buildLogger creates a console zap logger at the requested level.
func buildLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	return cfg.Build()
}

// zapAdapter bridges zap's sugared logger onto the engine's Logger interface.
type zapAdapter struct {
	s *zap.SugaredLogger
}

func (z zapAdapter) Debugf(format string, args ...any) { z.s.Debugf(format, args...) }
func (z zapAdapter) Infof(format string, args ...any)  { z.s.Infof(format, args...) }
func (z zapAdapter) Warnf(format string, args ...any)  { z.s.Warnf(format, args...) }
func (z zapAdapter) Errorf(format string, args ...any) { z.s.Errorf(format, args...) }

// filenameSettings summarizes the knobs that most change a plan's shape.
func filenameSettings(in *domain.PlanInputs) []string {
	return []string{
		"draw_" + in.DrawOrder[0].String(),
		"spend_" + in.Spending.TargetSpend.StringFixed(0),
		"brokerage_" + in.Balances.Brokerage.StringFixed(0),
	}
}
