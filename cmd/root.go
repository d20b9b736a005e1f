package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/rich-aroma/opening-sim/sim"
)

var (
	// CLI flags for the simulation run
	seed         int64   // Seed controlling all randomness
	days         int     // Number of business days to simulate
	logLevel     string  // Log verbosity level
	openingHour  int     // Hour the shop opens
	closingHour  int     // Hour the shop closes
	cashierSpeed float64 // Cashier items per minute
	baristaSpeed float64 // Barista items per minute
	cookSpeed    float64 // Cook items per minute
	menuPath     string  // Path to the YAML menu file
	scenarioPath string  // Path to an optional YAML scenario file
	topItems     int     // Number of top sellers to report
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "opening-sim",
	Short: "Discrete-event simulator for a café's opening run",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the opening simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := sim.DefaultConfig()
		if scenarioPath != "" {
			scenario, err := LoadScenario(scenarioPath)
			if err != nil {
				logrus.Fatalf("Unable to read scenario file: %v", err)
			}
			scenario.ApplyTo(&cfg)
		}

		// Flags set explicitly on the command line win over the scenario file.
		if cmd.Flags().Changed("days") {
			cfg.Days = days
		}
		if cmd.Flags().Changed("opening-hour") {
			cfg.OpeningHour = openingHour
		}
		if cmd.Flags().Changed("closing-hour") {
			cfg.ClosingHour = closingHour
		}
		if cmd.Flags().Changed("cashier-speed") {
			cfg.Staff.Cashier = cashierSpeed
		}
		if cmd.Flags().Changed("barista-speed") {
			cfg.Staff.Barista = baristaSpeed
		}
		if cmd.Flags().Changed("cook-speed") {
			cfg.Staff.Cook = cookSpeed
		}

		catalog := LoadMenu(menuPath)

		runner, err := sim.NewRunner(cfg, catalog, sim.NewSimulationKey(seed))
		if err != nil {
			logrus.Fatalf("Configuration rejected: %v", err)
		}

		logrus.Infof("Starting simulation: %d days, hours [%d, %d), seed=%d",
			cfg.Days, cfg.OpeningHour, cfg.ClosingHour, seed)
		startTime := time.Now()

		totals := runner.Run()

		PrintReport(os.Stdout, totals, topItems)
		logrus.Infof("Simulation complete in %s.", time.Since(startTime))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed controlling all simulation randomness")
	runCmd.Flags().IntVar(&days, "days", 30, "Number of business days to simulate")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Shop configs
	runCmd.Flags().IntVar(&openingHour, "opening-hour", 7, "Hour the shop opens")
	runCmd.Flags().IntVar(&closingHour, "closing-hour", 17, "Hour the shop closes")
	runCmd.Flags().Float64Var(&cashierSpeed, "cashier-speed", 1.5, "Cashier processing rate (items/minute)")
	runCmd.Flags().Float64Var(&baristaSpeed, "barista-speed", 0.8, "Barista processing rate (items/minute)")
	runCmd.Flags().Float64Var(&cookSpeed, "cook-speed", 0.5, "Cook processing rate (items/minute)")

	// Input files and report shape
	runCmd.Flags().StringVar(&menuPath, "menu", "data/menu.yaml", "Path to the YAML menu file")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Optional YAML scenario file overriding defaults")
	runCmd.Flags().IntVar(&topItems, "top-items", 5, "Number of top-selling items to report")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
