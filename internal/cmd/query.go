package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query COORDINATE...",
	Short: "Print the noise value at a single point",
	Long: `Query evaluates the field at one point and prints the value.

The number of coordinates must match the field dimension, i.e. the
number of axes given via --grid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	coords, err := parseCoordinates(args)
	if err != nil {
		return err
	}

	field, err := newField(cmd)
	if err != nil {
		return err
	}

	value, err := field.Noise(coords)
	if err != nil {
		return err
	}

	logger.Debug("evaluated point", "seed", field.Seed(), "grid", field.GridSize(), "point", coords)
	fmt.Fprintf(cmd.OutOrStdout(), "%g\n", value)
	return nil
}

// parseCoordinates converts command arguments into a coordinate vector.
func parseCoordinates(args []string) ([]float64, error) {
	coords := make([]float64, len(args))
	for i, arg := range args {
		value, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", arg, err)
		}
		coords[i] = value
	}
	return coords, nil
}
