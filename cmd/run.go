package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/shapelist/internal/config"
	"github.com/papapumpkin/shapelist/internal/editor"
	"github.com/papapumpkin/shapelist/internal/shapelist"
	"github.com/papapumpkin/shapelist/internal/telemetry"
	"github.com/papapumpkin/shapelist/internal/ui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive shape list editor",
	Args:  cobra.NoArgs,
	RunE:  runRun,
}

func init() {
	runCmd.Flags().String("telemetry", "", "append session events to this JSONL file")
	runCmd.Flags().String("prompt", "", "override the input prompt")
	runCmd.Flags().Bool("no-color", false, "disable ANSI colors")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagOverrides(cmd, &cfg)

	printer := newPrinter(cmd, cfg)

	emitter, err := openTelemetry(cfg.TelemetryPath)
	if err != nil {
		return err
	}
	defer emitter.Close()

	session := &editor.Session{
		Editor:  newEditor(cfg, emitter),
		Printer: printer,
		Emitter: emitter,
		Verbose: cfg.Verbose,
	}

	ctx, cancel := setupSignalContext(printer)
	defer cancel()

	return session.Run(ctx, cmd.InOrStdin())
}

// applyFlagOverrides applies CLI flag values to the loaded config.
// Only flags the user actually set override config file and env values.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if f := cmd.Flag("capacity"); f != nil && f.Changed {
		if v, err := strconv.Atoi(f.Value.String()); err == nil && v >= 0 {
			cfg.Capacity = v
		}
	}
	if f := cmd.Flag("strict"); f != nil && f.Changed {
		cfg.Strict = f.Value.String() == "true"
	}
	if flagValue(cmd, "verbose") == "true" {
		cfg.Verbose = true
	}
	if flagValue(cmd, "no-color") == "true" {
		cfg.Color = false
	}
	if v := flagValue(cmd, "telemetry"); v != "" {
		cfg.TelemetryPath = v
	}
	if v := flagValue(cmd, "prompt"); v != "" {
		cfg.Prompt = v
	}
}

// flagValue returns the string form of a local or inherited flag, or "" when
// the command has no such flag.
func flagValue(cmd *cobra.Command, name string) string {
	if f := cmd.Flag(name); f != nil {
		return f.Value.String()
	}
	return ""
}

// newPrinter builds a printer writing to the command's error stream.
func newPrinter(cmd *cobra.Command, cfg config.Config) *ui.Printer {
	printer := ui.New(cmd.ErrOrStderr())
	printer.SetColor(cfg.Color)
	printer.SetPrompt(cfg.Prompt)
	return printer
}

// newEditor creates an editor over an empty list sized from cfg.
func newEditor(cfg config.Config, emitter *telemetry.Emitter) *editor.Editor {
	return editor.New(
		shapelist.New(cfg.Capacity),
		editor.WithStrict(cfg.Strict),
		editor.WithEmitter(emitter),
	)
}

// openTelemetry returns a nil (no-op) emitter when path is empty.
func openTelemetry(path string) (*telemetry.Emitter, error) {
	if path == "" {
		return nil, nil
	}
	em, err := telemetry.NewEmitter(path)
	if err != nil {
		return nil, err
	}
	em.SetSession(time.Now().UTC().Format("20060102T150405Z"))
	return em, nil
}

// setupSignalContext returns a context that is canceled on SIGINT or SIGTERM.
func setupSignalContext(printer *ui.Printer) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			printer.Info("\nshutting down...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()
	return ctx, cancel
}
