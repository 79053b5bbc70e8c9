package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"print-optimizer-service/internal/config"
	"print-optimizer-service/internal/platform/obs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagJSON      bool
	flagQuiet     bool
	flagMaxVolume float64
	flagMaxItems  int
	flagJobs      []string
	flagLength    int
	flagPrices    []float64
	flagMethod    string
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. cfg supplies flag defaults.
func newRootCmd(cfg config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "printq",
		Short: "Plan 3D print batches and optimize rod cutting",
		Long: `printq groups print jobs into printer batches under volume and item
limits, and finds the most profitable way to cut a rod from a price table.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flagQuiet {
				log.SetOutput(io.Discard)
			}
			cmd.SetContext(obs.WithRunID(cmd.Context()))
			return config.ValidateRodMethod(flagMethod)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVar(&flagQuiet, "quiet", false, "Suppress timing log lines")
	rootCmd.PersistentFlags().Float64Var(&flagMaxVolume, "max-volume", cfg.MaxVolume, "Maximum total volume per batch")
	rootCmd.PersistentFlags().IntVar(&flagMaxItems, "max-items", cfg.MaxItems, "Maximum number of jobs per batch")
	rootCmd.PersistentFlags().StringVar(&flagMethod, "method", cfg.RodMethod, "Rod cutting algorithm: memo, table or both")

	rootCmd.AddCommand(scheduleCmd())
	rootCmd.AddCommand(rodcutCmd())
	rootCmd.AddCommand(demoCmd())

	return rootCmd
}
