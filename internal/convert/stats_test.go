package convert

import "testing"

func TestStatsCounters(t *testing.T) {
	var s Stats

	s.AddProcessed(1000, 400)
	s.AddProcessed(2000, 600)
	s.AddSkipped()
	s.AddFailed()

	if s.Processed() != 2 {
		t.Errorf("Processed = %d, want 2", s.Processed())
	}
	if s.Skipped() != 1 {
		t.Errorf("Skipped = %d, want 1", s.Skipped())
	}
	if s.Failed() != 1 {
		t.Errorf("Failed = %d, want 1", s.Failed())
	}
	if s.Total() != 4 {
		t.Errorf("Total = %d, want 4", s.Total())
	}
	if s.SizeBefore() != 3000 {
		t.Errorf("SizeBefore = %d, want 3000", s.SizeBefore())
	}
	if s.SizeAfter() != 1000 {
		t.Errorf("SizeAfter = %d, want 1000", s.SizeAfter())
	}
	if s.Saved() != 2000 {
		t.Errorf("Saved = %d, want 2000", s.Saved())
	}

	want := 2000.0 / 3000.0 * 100
	if got := s.Ratio(); got != want {
		t.Errorf("Ratio = %f, want %f", got, want)
	}
}

func TestStatsRatioZeroSizeBefore(t *testing.T) {
	var s Stats
	s.AddSkipped()

	if got := s.Ratio(); got != 0 {
		t.Errorf("Ratio with no processed files = %f, want 0", got)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.00 KB"},
		{5 * 1024 * 1024, "5.00 MB"},
		{3 * 1024 * 1024 * 1024, "3.00 GB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.size); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}
