package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/shapelist/internal/config"
	"github.com/papapumpkin/shapelist/internal/telemetry"
	"github.com/papapumpkin/shapelist/internal/tui"
)

// tuiCmd launches the full-screen editor.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the full-screen shape list editor",
	Long: `Launch a full-screen editor with the shape table always visible. Commands
are the same as in the line editor; up/down browse the command history and
esc quits.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().String("telemetry", "", "append session events to this JSONL file")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagOverrides(cmd, &cfg)

	emitter, err := openTelemetry(cfg.TelemetryPath)
	if err != nil {
		return err
	}
	defer emitter.Close()

	ed := newEditor(cfg, emitter)
	_ = emitter.Record(telemetry.KindSessionStart, map[string]any{"capacity": ed.Cap(), "mode": "tui"})
	defer func() {
		_ = emitter.Record(telemetry.KindSessionEnd, map[string]int{"size": ed.Len()})
	}()

	return tui.Run(ed)
}
