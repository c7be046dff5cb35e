package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/f0x-sketch/venice-bar-analyzer/internal/analyzer"
	"github.com/f0x-sketch/venice-bar-analyzer/internal/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "venice-bar-analyzer",
	Short: "Estimates bar capacity and crowd levels from public signals",
	Long: `venice-bar-analyzer collects venue metadata and popular-times curves,
fuses review text, category baselines and popularity signals into capacity
estimates, and streams venue profiles, crowd snapshots and scene statistics
to the configured sink.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := analyzer.New(cfg).Run(ctx); err != nil && ctx.Err() == nil {
			fmt.Fprintf(os.Stderr, "Analysis failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().Int("seed", 42, "Random seed for the synthetic venue source")
	rootCmd.Flags().String("city-name", "Venice", "City the analysis covers")
	rootCmd.Flags().Int("initial-venues", 50, "Number of venues to collect per pass")
	rootCmd.Flags().String("day", "", "Weekday to analyze (defaults to today)")
	rootCmd.Flags().String("output-format", "", "Output format: parquet, json or csv")
	rootCmd.Flags().String("output-path", "", "Output directory (console output if empty)")
	rootCmd.Flags().Bool("kafka-enabled", false, "Enable Kafka output")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().Bool("postgres-enabled", false, "Persist venues and snapshots to Postgres")
	rootCmd.Flags().Bool("continuous", false, "Keep collecting on an interval")
	rootCmd.Flags().String("collection-interval", "1h", "Interval between collection passes")

	viper.BindPFlags(rootCmd.Flags())
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
