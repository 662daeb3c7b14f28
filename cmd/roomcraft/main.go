// RoomCraft turns a color-coded floor plan image into a furnished house.
//
// Build:
//
//	go build -o roomcraft ./cmd/roomcraft
//
// Usage:
//
//	roomcraft init .
//	roomcraft furnish plan.png -o out
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "roomcraft",
		Short:        "Floor plan extraction, room typing and furnishing",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(furnishCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a default config and catalog into dir",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(dir)
		},
	}
}

func extractCmd() *cobra.Command {
	var scale float64

	cmd := &cobra.Command{
		Use:   "extract [plan.png]",
		Short: "Extract rooms from a floor plan and print them",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runExtract(args[0], scale)
		},
	}

	cmd.Flags().Float64VarP(&scale, "scale", "s", 0, "world size of one plan cell (default from model)")
	return cmd
}

func furnishCmd() *cobra.Command {
	var opts furnishOptions

	cmd := &cobra.Command{
		Use:   "furnish [plan.png]",
		Short: "Type and furnish every room, then write the configured outputs",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			opts.plan = args[0]
			return runFurnish(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "roomcraft.yaml", "config file")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "output directory (overrides config)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed; 0 uses system randomness")
	cmd.Flags().BoolVar(&opts.compare, "compare", false, "also compare room typing strategies")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log pipeline progress to stderr")
	return cmd
}
