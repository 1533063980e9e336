package cmd

import (
	"os"
	"time"

	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/intersection-sim/intersection-sim/sim"
)

var (
	// CLI flags for the simulated world
	vehicles     int     // Number of vehicles in the population
	lanes        int     // Number of lanes (one light per lane)
	delta        float64 // Step delta in simulated seconds
	maxSteps     int     // Step budget (0 = run until all vehicles crossed)
	seed         uint64  // Random seed (0 = derive from wall clock)
	mode         string  // Population mode: finite or continuous
	scenarioPath string  // Optional YAML scenario file

	// CLI flags for execution and output
	maxWorkers   int    // Upper bound on workers for the parallel phase
	workerPolicy string // Worker-count policy: fixed or green-proportional
	printEvery   int    // Print a state snapshot every k steps (0 = off)
	logLevel     string // Log verbosity level
)

// ValidWorkerPolicies is the set of recognized worker-count policy names.
var ValidWorkerPolicies = map[string]bool{"fixed": true, "green-proportional": true}

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "intersection-sim",
	Short: "Fixed-timestep simulator of vehicles at a signalled intersection",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the intersection simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		logrus.SetFormatter(&easy.Formatter{
			TimestampFormat: "2006-01-02 15:04:05.0000",
			LogFormat:       "[%time%] [%lvl%] %msg%\n",
		})
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
		log := logrus.WithField("run", uuid.NewString())

		if !ValidWorkerPolicies[workerPolicy] {
			log.Fatalf("Unknown worker policy %q", workerPolicy)
		}
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
			log.Infof("Seed not set, using %d", seed)
		}

		cfg := sim.DefaultConfig()
		cfg.Lanes = lanes
		cfg.Population.Size = vehicles
		cfg.Run = sim.RunConfig{
			Delta:      delta,
			MaxSteps:   maxSteps,
			Seed:       seed,
			Mode:       sim.Mode(mode),
			PrintEvery: printEvery,
			MaxWorkers: maxWorkers,
		}
		if scenarioPath != "" {
			sc, err := sim.LoadScenario(scenarioPath)
			if err != nil {
				log.Fatalf("Scenario load failed: %v", err)
			}
			sc.Apply(&cfg)
		}

		s, err := sim.NewSimulator(cfg)
		if err != nil {
			log.Fatalf("Setup failed: %v", err)
		}
		if workerPolicy == "green-proportional" {
			s.SetWorkerPolicy(sim.GreenProportionalWorkers(maxWorkers / cfg.Lanes))
		}
		if printEvery > 0 {
			s.SetReporter(NewConsoleReporter(os.Stdout))
		}

		startTime := time.Now()
		s.Run()
		s.Metrics().Print()
		log.Infof("Wall clock: %.6f s", time.Since(startTime).Seconds())
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
	runCmd.Flags().IntVar(&vehicles, "vehicles", 60, "Number of vehicles")
	runCmd.Flags().IntVar(&lanes, "lanes", 4, "Number of lanes (one light per lane)")
	runCmd.Flags().Float64Var(&delta, "delta", 1.0, "Step delta in simulated seconds")
	runCmd.Flags().IntVar(&maxSteps, "steps", 0, "Step budget (0 = until all vehicles crossed; required in continuous mode)")
	runCmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (0 = derive from wall clock)")
	runCmd.Flags().StringVar(&mode, "mode", "finite", "Population mode (finite, continuous)")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file path")

	runCmd.Flags().IntVar(&maxWorkers, "max-workers", 4, "Upper bound on workers for the vehicle phase")
	runCmd.Flags().StringVar(&workerPolicy, "worker-policy", "fixed", "Worker-count policy (fixed, green-proportional)")
	runCmd.Flags().IntVar(&printEvery, "print-every", 0, "Print a full state snapshot every k steps (0 = off)")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(runCmd)
}
