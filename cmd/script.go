package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/shapelist/internal/config"
	"github.com/papapumpkin/shapelist/internal/script"
)

var scriptCmd = &cobra.Command{
	Use:   "script <file>...",
	Short: "Run command scripts without prompting",
	Long: `Runs each script file against a fresh shape list. Files ending in .toml are
read as manifests (name, capacity, strict, commands); any other file holds one
command per line, with blank lines and # comments ignored.

By default the first failing command stops the run; --keep-going reports the
error and continues.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScript,
}

func init() {
	scriptCmd.Flags().Bool("keep-going", false, "continue past failing commands")
	scriptCmd.Flags().String("telemetry", "", "append session events to this JSONL file")
	scriptCmd.Flags().Bool("no-color", false, "disable ANSI colors")
	rootCmd.AddCommand(scriptCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagOverrides(cmd, &cfg)
	keepGoing, _ := cmd.Flags().GetBool("keep-going")

	printer := newPrinter(cmd, cfg)

	emitter, err := openTelemetry(cfg.TelemetryPath)
	if err != nil {
		return err
	}
	defer emitter.Close()

	ctx, cancel := setupSignalContext(printer)
	defer cancel()

	var failed int
	for _, path := range args {
		s, err := script.Load(path)
		if err != nil {
			return err
		}

		// Script settings override config unless the flag was given explicitly.
		scriptCfg := cfg
		if f := cmd.Flag("capacity"); f == nil || !f.Changed {
			scriptCfg.Capacity = s.CapacityOr(cfg.Capacity)
		}
		if f := cmd.Flag("strict"); f == nil || !f.Changed {
			scriptCfg.Strict = s.StrictOr(cfg.Strict)
		}

		runner := &script.Runner{
			Editor:    newEditor(scriptCfg, emitter),
			Printer:   printer,
			KeepGoing: keepGoing,
			Echo:      cfg.Verbose,
		}
		res, err := runner.Run(ctx, s)
		printer.ScriptResult(s.Name, res.Executed, res.Failed)
		if err != nil {
			return err
		}
		failed += res.Failed
	}

	if failed > 0 {
		return errors.New("script: one or more commands failed")
	}
	return nil
}
