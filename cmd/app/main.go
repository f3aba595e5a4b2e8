package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"prayertimes.app/internal/app"
	"prayertimes.app/internal/config"
	"prayertimes.app/internal/core/prayer"
	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/logger"
	"prayertimes.app/pkg/validation"
)

const (
	shutdownTimeout     = 30 * time.Second
	defaultCycleTimeout = 30 * time.Second
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "prayertimes",
		Short:         "Daily prayer timings for the current location",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if err := godotenv.Load(envFile); err != nil {
				slog.Debug("No .env file found or error loading it", "path", envFile)
			}
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	root.AddCommand(newServeCmd())
	root.AddCommand(newTodayCmd())
	return root
}

// loadApp reads the configuration and wires the application, logging to w
func loadApp(w io.Writer) (*app.Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	base := logger.NewWithWriter(w, logger.ParseLevel(cfg.Logging.Level), cfg.Logging.Format)
	base.SetDefault()

	return app.NewApplication(cfg, base)
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the prayer times HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := loadApp(os.Stdout)
			if err != nil {
				return fmt.Errorf("initialize application: %w", err)
			}

			cfg := application.Config()
			slog.Info("Configuration loaded successfully")
			slog.Info("Server configuration",
				"addr", cfg.Server.Addr(),
				"cache", cfg.Cache.Type.String(),
				"geolocation", cfg.Geolocation.Provider.String())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			slog.Info("Starting Prayer Times API...")
			startErr := application.Start(ctx)

			slog.Info("Received shutdown signal...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := application.Shutdown(shutdownCtx); err != nil {
				slog.Error("Error during graceful shutdown", "error", err)
			}
			return startErr
		},
	}
}

type todayOptions struct {
	lat      float64
	lng      float64
	timezone string
	output   string
	timeout  time.Duration
}

func (o todayOptions) validate(explicit bool) error {
	switch o.output {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q: use table, json or yaml", o.output)
	}
	if explicit && (!validation.IsValidLatitude(o.lat) || !validation.IsValidLongitude(o.lng)) {
		return fmt.Errorf("coordinates out of range: latitude must be within [-90, 90] and longitude within [-180, 180]")
	}
	if o.timezone != "" && !validation.IsValidTimezone(o.timezone) {
		return fmt.Errorf("unknown timezone %q", o.timezone)
	}
	if o.timeout <= 0 {
		return fmt.Errorf("--timeout must be positive")
	}
	return nil
}

func newTodayCmd() *cobra.Command {
	var opts todayOptions

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print today's prayer card",
		RunE: func(cmd *cobra.Command, _ []string) error {
			latSet := cmd.Flags().Changed("lat")
			lngSet := cmd.Flags().Changed("lng")
			if latSet != lngSet {
				return fmt.Errorf("--lat and --lng must be given together")
			}
			if err := opts.validate(latSet); err != nil {
				return err
			}

			application, err := loadApp(cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("initialize application: %w", err)
			}
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := application.Shutdown(shutdownCtx); err != nil {
					slog.Warn("Error during shutdown", "error", err)
				}
			}()

			card, err := runToday(cmd.Context(), application, opts, latSet)
			if err != nil {
				return err
			}
			return writeCard(cmd.OutOrStdout(), card, opts.output)
		},
	}

	cmd.Flags().Float64Var(&opts.lat, "lat", 0, "latitude; skips device geolocation when set with --lng")
	cmd.Flags().Float64Var(&opts.lng, "lng", 0, "longitude; skips device geolocation when set with --lat")
	cmd.Flags().StringVar(&opts.timezone, "timezone", "", "IANA timezone for displayed times (default: detected)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "output format: table|json|yaml")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", defaultCycleTimeout, "how long to wait for the timings")
	return cmd
}

func runToday(ctx context.Context, application *app.Application, opts todayOptions, explicit bool) (prayer.Card, error) {
	manager := application.Manager()

	var cycle *prayer.Cycle
	if explicit {
		lat, lng := opts.lat, opts.lng
		cycle, _ = manager.Refresh(&lat, &lng)
		manager.SetCords(ports.Coordinates{Lat: lat, Lng: lng})
	} else {
		cycle = manager.Mount()
	}
	if cycle == nil {
		return prayer.Card{}, fmt.Errorf("prayer manager is closed")
	}
	if opts.timezone != "" {
		manager.SetTimezone(opts.timezone)
	}

	waitCtx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	result, err := cycle.Wait(waitCtx)
	if err != nil {
		return prayer.Card{}, fmt.Errorf("waiting for prayer timings: %w", err)
	}
	if result.Outcome == prayer.OutcomeTimingsFailed {
		return prayer.Card{}, fmt.Errorf("%s: %w", prayer.GenericErrorMessage, result.Err)
	}
	if result.Outcome.IsFailure() {
		slog.Warn("Prayer card is incomplete", "outcome", result.Outcome, "error", result.Err)
	}

	return prayer.BuildCard(manager.Snapshot(), application.TimezoneDetector().DetectTimezone())
}

func writeCard(w io.Writer, card prayer.Card, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(card)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(card); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return writeCardTable(w, card)
	}
}

func writeCardTable(w io.Writer, card prayer.Card) error {
	location := card.Location
	if strings.TrimSpace(location) == "" {
		location = "Unknown location"
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "%s\n%s\t%s\n\n", location, card.CoordinatesLabel, card.TimezoneLabel)
	for _, entry := range card.SunEvents {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", entry.Name, entry.Time)
	}
	if len(card.SunEvents) > 0 {
		_, _ = fmt.Fprintln(tw)
	}
	for _, entry := range card.Prayers {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", entry.Name, entry.Time)
	}
	return tw.Flush()
}
