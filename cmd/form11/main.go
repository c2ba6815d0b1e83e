package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/rgehrsitz/form11/internal/calculation"
	"github.com/rgehrsitz/form11/internal/config"
	"github.com/rgehrsitz/form11/internal/handler"
	"github.com/rgehrsitz/form11/internal/logger"
	"github.com/rgehrsitz/form11/internal/output"
	"github.com/rgehrsitz/form11/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "form11 %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "form11",
		Short:         "Self-assessment income tax calculator",
		Long:          "Computes income tax, USC, PRSI and CGT for a self-assessed return, with split-year and company car benefit-in-kind support",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("constants", "", "YAML rate table overriding the built-in 2025 constants")
	root.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")

	root.AddCommand(calculateCmd(), validateCmd(), bikCmd(), constantsCmd(), serveCmd(), exampleCmd(), versionCmd())
	return root
}

// setup resolves the shared flags into a logger and an engine.
func setup(cmd *cobra.Command) (*zap.Logger, *calculation.Engine, error) {
	debugMode, _ := cmd.Flags().GetBool("debug")
	log, err := logger.New(debugMode)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	constantsFile, _ := cmd.Flags().GetString("constants")
	constants, err := config.NewInputParser().ResolveConstants(constantsFile)
	if err != nil {
		return nil, nil, err
	}
	engine := calculation.NewEngine(constants)
	engine.SetLogger(log.Sugar())
	return log, engine, nil
}

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [return-file]",
		Short: "Compute the liability for a return",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, engine, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if asOf, _ := cmd.Flags().GetString("as-of"); asOf != "" {
				at, err := dateutil.ParseISODate(asOf)
				if err != nil {
					return fmt.Errorf("--as-of: %w", err)
				}
				engine.SetClock(func() time.Time { return at })
			}

			input, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			result := engine.Compute(*input)

			format, _ := cmd.Flags().GetString("format")
			f, err := output.LookupFormatter(format)
			if err != nil {
				return err
			}
			outFile, _ := cmd.Flags().GetString("out")
			if outFile == "" && f.Name() != "pdf" {
				data, err := f.Format(&result)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			written, err := output.WriteFormatted(f, &result, outFile)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", written)
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "console", "Output format (console, json, yaml, csv, pdf)")
	cmd.Flags().StringP("out", "o", "", "Write output to file instead of stdout")
	cmd.Flags().String("as-of", "", "Reference date (YYYY-MM-DD) used to resolve the taxpayer's age")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [return-file]",
		Short: "Validate a return file without computing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.NewInputParser().LoadFromFile(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", args[0])
			return nil
		},
	}
}

func bikCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bik",
		Short: "Value a company car benefit-in-kind",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, engine, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			omvFlag, _ := cmd.Flags().GetString("omv")
			kmFlag, _ := cmd.Flags().GetString("km")
			omv, err := decimal.NewFromString(omvFlag)
			if err != nil || omv.IsNegative() {
				return fmt.Errorf("%w: --omv must be a non-negative amount", config.ErrInvalidInput)
			}
			km, err := decimal.NewFromString(kmFlag)
			if err != nil || km.IsNegative() {
				return fmt.Errorf("%w: --km must be a non-negative distance", config.ErrInvalidInput)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Benefit in kind: %s\n", output.FormatCurrency(engine.VehicleBenefitInKind(omv, km)))
			return nil
		},
	}
	cmd.Flags().String("omv", "", "Original market value of the vehicle")
	cmd.Flags().String("km", "0", "Annual business kilometres")
	_ = cmd.MarkFlagRequired("omv")
	return cmd
}

func constantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "constants",
		Short: "Print the active rate table",
		RunE: func(cmd *cobra.Command, args []string) error {
			constantsFile, _ := cmd.Flags().GetString("constants")
			constants, err := config.NewInputParser().ResolveConstants(constantsFile)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			data, err := output.EncodeConstants(constants, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringP("format", "f", "yaml", "Output format (yaml, json)")
	return cmd
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			debugMode, _ := cmd.Flags().GetBool("debug")
			level := "info"
			if debugMode {
				level = "debug"
			}
			log, err := logger.NewWithConfig(logger.Config{Level: level, EnableJSON: true})
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			constantsFile, _ := cmd.Flags().GetString("constants")
			parser := config.NewInputParser()
			constants, err := parser.ResolveConstants(constantsFile)
			if err != nil {
				return err
			}
			engine := calculation.NewEngine(constants)
			engine.SetLogger(log.Sugar())

			e := handler.NewServer(config.NewValidator(), parser, engine, log)
			addr, _ := cmd.Flags().GetString("addr")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			go func() {
				log.Info("listening", zap.String("addr", addr), zap.Int("tax_year", constants.TaxYear))
				if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server stopped", zap.Error(err))
					stop()
				}
			}()

			<-ctx.Done()
			log.Info("shutting down the server")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().String("addr", ":8080", "Listen address")
	return cmd
}

func exampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [output-file]",
		Short: "Write an example return to start from",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.SaveInput(config.NewInputParser().CreateExampleInput(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example return written to %s\n", args[0])
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
