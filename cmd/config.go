package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/KaramelBytes/pairstats/internal/config"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set pairstats configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			loadConfig()
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "format: %s\n", cfg.Format)
		fmt.Fprintf(out, "precision: %d\n", cfg.Precision)
		fmt.Fprintf(out, "banner: %t\n", cfg.Banner)
		fmt.Fprintf(out, "max_input_bytes: %d (%s)\n", cfg.MaxInputBytes, humanize.IBytes(uint64(cfg.MaxInputBytes)))
		fmt.Fprintf(out, "log_level: %s\n", cfg.LogLevel)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Long:  "Set a config value and save to disk. Keys: " + strings.Join(cfgpkg.Keys, ", "),
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c, err := cfgpkg.Load(cfgFile)
		if err != nil {
			c = cfgpkg.Default()
		}
		switch key {
		case "format":
			c.Format = strings.ToLower(strings.TrimSpace(val))
		case "precision":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for precision: %w", err)
			}
			c.Precision = i
		case "banner":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for banner: %w", err)
			}
			c.Banner = b
		case "max_input_bytes":
			n, err := humanize.ParseBytes(val)
			if err != nil {
				return fmt.Errorf("invalid size for max_input_bytes: %w", err)
			}
			c.MaxInputBytes = int(n)
		case "log_level":
			c.LogLevel = strings.ToLower(strings.TrimSpace(val))
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := c.Validate(); err != nil {
			return err
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		cfg = c
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pairstats version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pairstats %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
