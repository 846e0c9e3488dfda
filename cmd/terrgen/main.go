// terrgen regenerates the compact CLDR dataset embedded by the cldr
// package from a cldr-json checkout (https://github.com/unicode-org/cldr-json).
//
// The query library never touches raw CLDR data at runtime; this tool is
// the build-time ingestion boundary. A typical run:
//
//	terrgen generate --cldr ~/src/cldr-json --out cldr/data
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
)

var (
	flagConfig  string
	flagCLDR    string
	flagOut     string
	flagLocales []string
	flagVerbose bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "terrgen",
		Short: "Regenerate the embedded CLDR territory dataset",
		Long: `terrgen — dataset generator for the terrkit territory registry.

Reads a cldr-json checkout (cldr-core supplemental data plus
cldr-localenames-full per-locale territory names) and writes the compact
JSON dataset embedded by the cldr package:

  containment.json     parent code → ordered child codes
  info.json            territory code → metadata record
  locales/<loc>.json   per-locale names and subdivision names`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if flagVerbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(
				tint.NewHandler(os.Stderr, &tint.Options{
					Level:      level,
					TimeFormat: time.TimeOnly,
				}),
			))
		},
	}

	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newGenerateCmd(),
		newVersionCmd(),
	)
	return root
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Convert a cldr-json checkout into the embedded dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flagConfig)
			if err != nil {
				return err
			}
			cfg.apply(flagCLDR, flagOut, flagLocales)
			if err := cfg.check(); err != nil {
				return err
			}
			return generate(cfg)
		},
	}
	cmd.Flags().StringVarP(&flagConfig, "config", "c", "", "YAML config file (default terrgen.yaml if present)")
	cmd.Flags().StringVar(&flagCLDR, "cldr", "", "Path to the cldr-json checkout")
	cmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output dataset directory (default cldr/data)")
	cmd.Flags().StringSliceVarP(&flagLocales, "locales", "l", nil, "Locales to include (e.g. en,pt)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("terrgen %s (%s)\n", version, commit)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("terrgen failed", "err", err)
		os.Exit(1)
	}
}
