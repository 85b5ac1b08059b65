package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"qimgshrink/internal/config"
	"qimgshrink/internal/convert"
	"qimgshrink/internal/scan"
)

var scanLong bool

var scanCmd = &cobra.Command{
	Use:   "scan [directory]",
	Short: "List candidate images without converting them",
	Long: `Scan a directory tree and list every image file a run would consider,
together with its size, permissions and ownership. Nothing is modified.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVarP(&scanLong, "long", "l", false, "Show detailed information")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.WorkDir = args[0]
	}

	files, err := scan.DiscoverImages(cfg.WorkDir, excludePatterns)
	if err != nil {
		return fmt.Errorf("failed to discover images: %w", err)
	}

	if len(files) == 0 {
		fmt.Printf("No images found in %s\n", cfg.WorkDir)
		return nil
	}

	fmt.Printf("Images in %s (%d total):\n\n", cfg.WorkDir, len(files))

	if scanLong {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PATH\tSIZE\tMODE\tUID\tGID")
		fmt.Fprintln(w, "----\t----\t----\t---\t---")
		for _, f := range files {
			fmt.Fprintf(w, "%s\t%s\t%o\t%d\t%d\n",
				f.Path,
				convert.FormatSize(f.Size),
				f.Mode,
				f.UID,
				f.GID,
			)
		}
		w.Flush()
	} else {
		for _, f := range files {
			fmt.Printf("  %s\n", f.Path)
		}
	}

	var total int64
	for _, f := range files {
		total += f.Size
	}
	fmt.Printf("\nTotal size: %s\n", convert.FormatSize(total))

	return nil
}
