package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"qimgshrink/internal/config"
	"qimgshrink/internal/convert"
	"qimgshrink/internal/interrupt"
	"qimgshrink/internal/runner"
	"qimgshrink/internal/scan"
)

var (
	maxSize      int
	quality      int
	testMode     bool
	preferMagick bool
)

var runCmd = &cobra.Command{
	Use:   "run [directory]",
	Short: "Resize and recompress images under a directory",
	Long: `Scan a directory tree for images (jpg, jpeg, png, bmp, tif, tiff) and
resize every image whose long side exceeds the configured maximum,
re-encoding it in place. Permissions are preserved; ownership is
restored on a best-effort basis.

The directory argument overrides wrk_dir from the config file, and any
flag set on the command line overrides the corresponding config value.

A SIGINT/SIGTERM stops the batch after the file currently being
converted; the exit status is then 130.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVarP(&maxSize, "max-size", "m", 0, "Maximum pixel size of the longer image side")
	runCmd.Flags().IntVarP(&quality, "quality", "q", 0, "JPEG quality (1-100)")
	runCmd.Flags().BoolVarP(&testMode, "test", "t", false, "Analyze without modifying files")
	runCmd.Flags().BoolVar(&preferMagick, "prefer-magick", false, "Try the ImageMagick backend before the native one")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadEffectiveConfig(cmd, args)
	if err != nil {
		return err
	}

	// Backend selection happens exactly once, before any file is
	// touched. No usable backend is a startup failure (exit 1).
	conv, err := convert.Select(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("Using %s backend\n", conv.Name())

	files, err := scan.DiscoverImages(cfg.WorkDir, excludePatterns)
	if err != nil {
		return fmt.Errorf("failed to discover images: %w", err)
	}
	fmt.Printf("Found %d images in %s\n", len(files), cfg.WorkDir)
	if cfg.TestMode {
		fmt.Println("Test mode - no file will be modified")
	}
	fmt.Println()

	ctrl := interrupt.New()
	defer ctrl.Stop()

	rep := runner.Run(conv, files, ctrl.Signaled, os.Stdout, os.Stderr)
	if rep.Interrupted {
		fmt.Fprintln(os.Stderr, "\nInterrupted - remaining files were left untouched")
		os.Exit(130)
	}
	return nil
}

// loadEffectiveConfig merges the config file, the positional directory
// argument and any flags set on the command line.
func loadEffectiveConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return cfg, err
	}

	if len(args) > 0 {
		cfg.WorkDir = args[0]
	}
	if cmd.Flags().Changed("max-size") {
		cfg.MaxSize = maxSize
	}
	if cmd.Flags().Changed("quality") {
		cfg.Quality = quality
	}
	if cmd.Flags().Changed("test") {
		cfg.TestMode = testMode
	}
	if cmd.Flags().Changed("prefer-magick") {
		cfg.PreferMagick = preferMagick
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
