package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	cfgpkg "github.com/KaramelBytes/pairstats/internal/config"
	"github.com/spf13/cobra"
)

const version = "1.0"

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

// UsageError reports bad command-line usage.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return "usage: " + e.Msg }

var rootCmd = &cobra.Command{
	Use:   "pairstats [file]",
	Short: "Descriptive statistics for a list of x,y number pairs",
	Long: `pairstats reads comma/whitespace separated real number pairs from a file or
standard input and reports minimum, maximum, mean, median, mode, mean absolute
deviations, population variance and standard deviation, the least squares
regression line and 2x/3x standard deviation outliers for both axes.

Input ends at EOF or at the first alphabetic character.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			return &UsageError{Msg: fmt.Sprintf("too many arguments (%d), expected at most one input file", len(args))}
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAnalyze,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		report(os.Stderr, err)
		os.Exit(1)
	}
}

func report(w io.Writer, err error) {
	fmt.Fprintln(w, "✗ Error:", err)
	var ue *UsageError
	if errors.As(err, &ue) {
		fmt.Fprintln(w, rootCmd.UsageString())
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.pairstats/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = cfgpkg.Default()
	}
	cfg = c
}
