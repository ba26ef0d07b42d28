package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/shapelist/internal/config"
	"github.com/papapumpkin/shapelist/internal/script"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check that script files parse without running them",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyFlagOverrides(cmd, &cfg)
		printer := newPrinter(cmd, cfg)

		total := 0
		for _, path := range args {
			s, err := script.Load(path)
			if err != nil {
				printer.Error(err.Error())
				total++
				continue
			}
			errs := script.Validate(s, cfg.Strict)
			for _, e := range errs {
				printer.LineError(e.Path, e.Line, e.Err.Error())
			}
			printer.ScriptResult(s.Name, len(s.Lines), len(errs))
			total += len(errs)
		}

		if total > 0 {
			return fmt.Errorf("validate: %d error(s)", total)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().Bool("no-color", false, "disable ANSI colors")
	rootCmd.AddCommand(validateCmd)
}
