package subtitles

import (
	"fmt"
	"math"
	"strings"
)

// Entry is one subtitle cue with absolute start/end offsets in seconds.
type Entry struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// Build produces one entry per non-blank line of the raw script text,
// dividing totalSeconds evenly across the lines. Entries are contiguous and
// cover [0, totalSeconds] exactly. This is a best-effort approximation, not
// aligned to actual speech boundaries.
func Build(scriptText string, totalSeconds float64) []Entry {
	var lines []string
	for _, ln := range strings.Split(scriptText, "\n") {
		if t := strings.TrimSpace(ln); t != "" {
			lines = append(lines, t)
		}
	}
	if len(lines) == 0 || totalSeconds <= 0 {
		return nil
	}

	per := totalSeconds / float64(len(lines))
	out := make([]Entry, 0, len(lines))
	for i, ln := range lines {
		e := Entry{
			Index: i + 1,
			Start: float64(i) * per,
			End:   float64(i+1) * per,
			Text:  ln,
		}
		if i == len(lines)-1 {
			// Pin the last cue to the probed duration so float accumulation
			// never leaves a gap at the tail.
			e.End = totalSeconds
		}
		out = append(out, e)
	}
	return out
}

// RenderSRT formats entries as an SRT document.
func RenderSRT(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n", e.Index, Timestamp(e.Start), Timestamp(e.End), e.Text)
	}
	return b.String()
}

// Timestamp formats seconds in the SRT HH:MM:SS,mmm form.
func Timestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	ms := int(math.Round(seconds * 1000))
	h := ms / 3600000
	ms -= h * 3600000
	m := ms / 60000
	ms -= m * 60000
	s := ms / 1000
	ms -= s * 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}
