package runner

import (
	"fmt"
	"io"

	"qimgshrink/internal/convert"
	"qimgshrink/internal/scan"
)

// Report is the outcome of one batch run.
type Report struct {
	Stats       convert.Stats
	Interrupted bool
}

// Run drives the per-file conversion loop in scan order. signaled is
// polled before each file, so a delivered interrupt stops the batch
// between files and never cuts a conversion short. A per-file error is
// logged to errw and counted as failed; it never aborts the batch. The
// final statistics block is printed on every exit path.
func Run(conv convert.Converter, files []scan.ImageFile, signaled func() bool, out, errw io.Writer) Report {
	var rep Report

	for _, f := range files {
		if signaled != nil && signaled() {
			rep.Interrupted = true
			break
		}

		res, err := conv.Convert(f)
		if err != nil {
			rep.Stats.AddFailed()
			fmt.Fprintf(errw, "✗ %s: %v\n", f.Path, err)
			continue
		}

		if res.Resized {
			rep.Stats.AddProcessed(res.SizeBefore, res.SizeAfter)
			fmt.Fprintf(out, "✓ %s (%s -> %s)\n",
				f.Path, convert.FormatSize(res.SizeBefore), convert.FormatSize(res.SizeAfter))
		} else {
			rep.Stats.AddSkipped()
			fmt.Fprintf(out, "⊘ %s: already within limit\n", f.Path)
		}
	}

	printSummary(out, &rep.Stats)
	return rep
}

func printSummary(w io.Writer, s *convert.Stats) {
	fmt.Fprintf(w, "\nConversion complete:\n")
	fmt.Fprintf(w, "  Total files:  %d\n", s.Total())
	fmt.Fprintf(w, "  Processed:    %d\n", s.Processed())
	fmt.Fprintf(w, "  Skipped:      %d (already within limit)\n", s.Skipped())
	fmt.Fprintf(w, "  Failed:       %d\n", s.Failed())
	fmt.Fprintf(w, "  Size before:  %s\n", convert.FormatSize(s.SizeBefore()))
	fmt.Fprintf(w, "  Size after:   %s\n", convert.FormatSize(s.SizeAfter()))
	fmt.Fprintf(w, "  Saved:        %s (%.1f%%)\n", convert.FormatSize(s.Saved()), s.Ratio())
}
