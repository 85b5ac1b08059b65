package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version = "dev"

	cfgFile         string
	excludePatterns []string
)

var rootCmd = &cobra.Command{
	Use:     "qimgshrink",
	Short:   "Batch image resize and recompress tool",
	Version: Version,
	Long: `qimgshrink resizes and recompresses images in place while preserving
file permissions and ownership. Images whose long side is already within
the configured maximum are left byte-identical.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to config file (default: etc/config.yaml)")
	rootCmd.PersistentFlags().StringArrayVarP(&excludePatterns, "exclude", "e", nil, "Regex patterns to exclude files (can be specified multiple times)")
}
