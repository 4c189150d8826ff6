// Package counter computes the eased count-up sequence shown by the home
// page metrics. The browser plays the precomputed frames once when the
// element first scrolls into view.
package counter

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// Duration is the length of one count-up.
	Duration = 900 * time.Millisecond
	// FPS is the frame rate the sequence is sampled at.
	FPS = 60
)

// EaseOutCubic maps progress t in [0,1] to 1-(1-t)^3. Values outside the
// range are clamped.
func EaseOutCubic(t float64) float64 {
	t = clamp(t)
	inv := 1 - t
	return 1 - inv*inv*inv
}

// ValueAt returns the displayed integer after elapsed of a count-up to target.
func ValueAt(target int, elapsed, duration time.Duration) int {
	if duration <= 0 || elapsed >= duration {
		return target
	}
	progress := float64(elapsed) / float64(duration)
	return int(math.Round(float64(target) * EaseOutCubic(progress)))
}

// Frames samples a count-up to target at fps. The first frame is the value
// one frame after start and the last frame is exactly target.
func Frames(target int, duration time.Duration, fps int) []int {
	if fps <= 0 {
		fps = FPS
	}
	if duration <= 0 {
		return []int{target}
	}
	n := int((duration*time.Duration(fps) + time.Second - 1) / time.Second)
	frames := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		elapsed := time.Duration(i) * time.Second / time.Duration(fps)
		if elapsed > duration {
			elapsed = duration
		}
		frames = append(frames, ValueAt(target, elapsed, duration))
	}
	return frames
}

// Metric is one animated statistic.
type Metric struct {
	Label  string
	Value  int
	Suffix string
}

// Encode renders the default frame sequence for m as a comma separated list
// suitable for a data attribute.
func (m Metric) Encode() string {
	frames := Frames(m.Value, Duration, FPS)
	parts := make([]string, len(frames))
	for i, frame := range frames {
		parts[i] = strconv.Itoa(frame)
	}
	return strings.Join(parts, ",")
}

func clamp(t float64) float64 {
	switch {
	case math.IsNaN(t), t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
