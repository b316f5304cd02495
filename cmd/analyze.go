package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KaramelBytes/pairstats/internal/analysis"
	"github.com/KaramelBytes/pairstats/internal/input"
	"github.com/KaramelBytes/pairstats/internal/logging"
	"github.com/KaramelBytes/pairstats/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	anaFormat     string
	anaPrecision  int
	anaOutputPath string
	anaMaxBytes   int
	anaQuiet      bool
)

const prompt = "Enter a list of comma-separated real number pairs terminated by EOF or non numeric input."

func runAnalyze(cmd *cobra.Command, args []string) error {
	if cfg == nil {
		loadConfig()
	}
	c := *cfg
	f := cmd.Flags()
	if f.Changed("format") {
		c.Format = strings.ToLower(strings.TrimSpace(anaFormat))
	}
	if f.Changed("precision") {
		c.Precision = anaPrecision
	}
	if f.Changed("max-bytes") {
		c.MaxInputBytes = anaMaxBytes
	}
	if anaQuiet {
		c.Banner = false
	}
	if err := c.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cmd.ErrOrStderr(), c.LogLevel, debug)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Warning: %v\n", err)
	}

	src := cmd.InOrStdin()
	name := "stdin"
	var closer io.Closer
	if len(args) == 1 {
		fh, err := input.Open(args[0])
		if err != nil {
			return err
		}
		src, closer, name = fh, fh, args[0]
	}

	out := cmd.OutOrStdout()
	if c.Format == "text" && c.Banner && anaOutputPath == "" {
		fmt.Fprintf(out, "pairstats (%s)\n%s\n", version, prompt)
	}

	raw, err := input.ReadRaw(input.Scanner(src), input.ReadOptions{MaxBytes: c.MaxInputBytes})
	// Release the input before computing.
	if closer != nil {
		_ = closer.Close()
	}
	if err != nil && !errors.Is(err, input.ErrNoInput) {
		return fmt.Errorf("%s: %w", name, err)
	}
	log.WithFields(logrus.Fields{"stage": "read", "source": name, "bytes": len(raw), "commas": input.CountCommas(raw)}).Debug("input collected")

	ds := input.Build(raw).Dataset()
	rep, err := analysis.Analyze(ds, log)
	if err != nil {
		return err
	}
	body, err := rep.Render(c.Format, c.Precision)
	if err != nil {
		return err
	}

	if anaOutputPath != "" {
		if err := utils.SafeWriteFile(anaOutputPath, body); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(out, "✓ Wrote report to %s\n", anaOutputPath)
		return nil
	}
	_, err = out.Write(body)
	return err
}

func init() {
	rootCmd.Flags().StringVarP(&anaFormat, "format", "f", "text", "report format: text|json|yaml (overrides config)")
	rootCmd.Flags().IntVar(&anaPrecision, "precision", 3, "decimals printed in text reports (overrides config)")
	rootCmd.Flags().StringVarP(&anaOutputPath, "output", "o", "", "optional path to write the report")
	rootCmd.Flags().IntVar(&anaMaxBytes, "max-bytes", 0, "maximum input size in bytes (overrides config)")
	rootCmd.Flags().BoolVarP(&anaQuiet, "quiet", "q", false, "suppress the banner and prompt")
}
