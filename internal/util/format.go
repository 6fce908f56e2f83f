package util

import (
	"fmt"
	"math"
	"time"
)

// Countify converts a file index into a progress fraction and an "i/n" label.
// done is the number of files finished so far.
func Countify(done, total int) (float32, string) {
	if total <= 0 {
		return 0, "0/0"
	}
	if done > total {
		done = total
	}
	if done < 0 {
		done = 0
	}
	return float32(done) / float32(total), fmt.Sprintf("%d/%d", done, total)
}

// Timeify converts a duration to "HH:MM:SS", truncated to whole seconds.
func Timeify(d time.Duration) string {
	seconds := int(math.Max(math.Floor(d.Seconds()), 0))
	hours := seconds / 3600
	seconds %= 3600
	minutes := seconds / 60
	seconds %= 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// Sizeify converts bytes to a human-readable string.
func Sizeify(size int64) string {
	switch {
	case size >= int64(TiB):
		return fmt.Sprintf("%.2f TiB", float64(size)/float64(TiB))
	case size >= int64(GiB):
		return fmt.Sprintf("%.2f GiB", float64(size)/float64(GiB))
	case size >= int64(MiB):
		return fmt.Sprintf("%.2f MiB", float64(size)/float64(MiB))
	case size >= int64(KiB):
		return fmt.Sprintf("%.2f KiB", float64(size)/float64(KiB))
	default:
		return fmt.Sprintf("%d B", size)
	}
}

// Plural returns "1 file", "2 files" and so on.
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
