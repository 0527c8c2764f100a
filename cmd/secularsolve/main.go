// Command secularsolve drives the secular equation solver from a YAML
// coefficient file (cobra command tree adapted from inference-sim's
// cmd/root.go pattern).
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/secular"
)

var (
	coeffsPath string
	logLevel   string
	phaseFlag  string
	digits     int
)

var rootCmd = &cobra.Command{
	Use:   "secularsolve",
	Short: "Find the roots of a secular equation via simultaneous Aberth iteration",
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the equation described by a coefficient file",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := loadCoefficientFile(coeffsPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		initialPhase, err := parseInitialPhase(phaseFlag, cfg.InitialPhase)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		a, b := cfg.complexCoefficients()
		state, err := secular.NewState(a, b, cfg.PrecOut)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		logrus.Infof("solving degree-%d secular equation, prec_out=%d bits, initial phase=%s",
			state.N(), cfg.PrecOut, initialPhase)

		secular.Solve(state, initialPhase)

		logrus.Infof("converged in phase %s", state.LastPhase())
		for i, root := range state.RootStrings(digits) {
			fmt.Printf("root[%d] = %s\n", i, root)
		}
	},
}

// parseInitialPhase resolves the effective starting phase: an explicit
// --phase flag wins, otherwise fall back to the coefficient file's
// initial_phase, defaulting to float.
func parseInitialPhase(flag, fromFile string) (secular.Phase, error) {
	v := flag
	if v == "" {
		v = fromFile
	}
	switch v {
	case "", "float":
		return secular.Float, nil
	case "dpe":
		return secular.Dpe, nil
	case "mp":
		return secular.Phase(0), fmt.Errorf("initial phase %q requires pre-populated mp coefficients; start at float or dpe instead", v)
	default:
		return secular.Phase(0), fmt.Errorf("unknown initial phase %q", v)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	solveCmd.Flags().StringVar(&coeffsPath, "coefficients", "", "path to the YAML coefficient file (required)")
	solveCmd.Flags().StringVar(&logLevel, "log", "info", "log level (debug, info, warn, error)")
	solveCmd.Flags().StringVar(&phaseFlag, "phase", "", "override the coefficient file's initial phase (float, dpe)")
	solveCmd.Flags().IntVar(&digits, "digits", 20, "number of digits after the decimal point to print per root (scientific notation)")
	solveCmd.MarkFlagRequired("coefficients")

	rootCmd.AddCommand(solveCmd)
}

func main() {
	Execute()
}
