package convert

import "fmt"

// Stats accumulates the per-run conversion counters. Counters only ever
// grow; the batch runner is the single writer. "Skipped" means the
// image was already within the size limit, "failed" means a per-file
// error left it untouched -- the two are deliberately kept apart.
type Stats struct {
	processed  int
	skipped    int
	failed     int
	sizeBefore int64
	sizeAfter  int64
}

// AddProcessed records one converted file and its before/after sizes.
func (s *Stats) AddProcessed(before, after int64) {
	s.processed++
	s.sizeBefore += before
	s.sizeAfter += after
}

// AddSkipped records one file that was already within the size limit.
func (s *Stats) AddSkipped() {
	s.skipped++
}

// AddFailed records one file left untouched because of an error.
func (s *Stats) AddFailed() {
	s.failed++
}

func (s *Stats) Processed() int { return s.processed }
func (s *Stats) Skipped() int   { return s.skipped }
func (s *Stats) Failed() int    { return s.failed }

// Total is the number of files the run looked at.
func (s *Stats) Total() int { return s.processed + s.skipped + s.failed }

func (s *Stats) SizeBefore() int64 { return s.sizeBefore }
func (s *Stats) SizeAfter() int64  { return s.sizeAfter }

// Saved is the cumulative number of bytes the run freed.
func (s *Stats) Saved() int64 { return s.sizeBefore - s.sizeAfter }

// Ratio is the saved share of the original bytes as a percentage. It is
// 0 when nothing was processed.
func (s *Stats) Ratio() float64 {
	if s.sizeBefore == 0 {
		return 0
	}
	return float64(s.Saved()) / float64(s.sizeBefore) * 100
}

// FormatSize renders a byte count for human-readable output.
func FormatSize(size int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case size >= GB:
		return fmt.Sprintf("%.2f GB", float64(size)/GB)
	case size >= MB:
		return fmt.Sprintf("%.2f MB", float64(size)/MB)
	case size >= KB:
		return fmt.Sprintf("%.2f KB", float64(size)/KB)
	default:
		return fmt.Sprintf("%d B", size)
	}
}
