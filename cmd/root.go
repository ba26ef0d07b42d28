package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "shapelist",
	Short: "Interactive editor for a bounded list of circles and rectangles",
	Long: `Shapelist keeps a small, capacity-bounded list of circles and rectangles
and edits it through one-line commands: add, move, remove, and sort shapes.

Without a subcommand it starts the interactive editor (same as 'shapelist run').`,
	SilenceUsage: true,
	RunE:         runRun,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .shapelist.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Int("capacity", 0, "maximum number of shapes (default from config, 10)")
	rootCmd.PersistentFlags().Bool("strict", false, "reject non-numeric arguments instead of dropping them")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".shapelist")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("SHAPELIST")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
