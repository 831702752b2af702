package cache

import (
	"testing"
	"time"
)

func TestTimeUntilNextMidnight(t *testing.T) {
	t.Parallel()

	tashkent := time.FixedZone("UTC+5", 5*3600)

	tests := []struct {
		name string
		now  time.Time
		loc  *time.Location
		want time.Duration
	}{
		{"mid-afternoon UTC", time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC), time.UTC, 8*time.Hour + 30*time.Minute},
		{"exactly midnight", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), time.UTC, 24 * time.Hour},
		{"one second before", time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC), time.UTC, time.Second},
		{"other zone", time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC), tashkent, 23 * time.Hour},
		{"month end", time.Date(2024, 1, 31, 22, 0, 0, 0, time.UTC), time.UTC, 2 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := TimeUntilNextMidnight(tt.now, tt.loc); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
