package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/latticenoise"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "latticenoise",
	Short: "A seeded gradient-noise field sampler",
	Long: `latticenoise builds a seeded, band-limited gradient-noise field and
prints values sampled from it.

The field is deterministic for a given seed and grid size, wraps
seamlessly on every axis, and supports 1 to 10 dimensions.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().Int64("seed", 0, "Seed for the gradient lattice (omit for a random seed)")
	rootCmd.PersistentFlags().IntSlice("grid", []int{64, 64, 64}, "Cells per axis; the axis count sets the field dimension")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable verbose logging")

	if err := viper.BindPFlag("grid", rootCmd.PersistentFlags().Lookup("grid")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
	if err := viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("LATTICENOISE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// newField builds a NoiseField from the global flags. The seed is only
// pinned when set explicitly via flag or config file; otherwise the
// field draws its own.
func newField(cmd *cobra.Command) (*latticenoise.NoiseField, error) {
	cfg := latticenoise.Config{
		GridSize: viper.GetIntSlice("grid"),
	}
	if cmd.Flags().Changed("seed") || viper.InConfig("seed") {
		seed := viper.GetInt64("seed")
		cfg.Seed = &seed
	}
	return latticenoise.New(cfg)
}
