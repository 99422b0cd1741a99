package ebiten

import (
	"image/color"
	"math"
	"time"
)

// slide eases a value from one target to the next.
type slide struct {
	from, to float64
	start    time.Time
	set      bool
}

// retarget starts a new transition from the current value towards to. The
// first call jumps straight there.
func (s *slide) retarget(to float64, now time.Time) {
	if !s.set {
		s.from, s.to, s.start, s.set = to, to, now, true
		return
	}
	if to == s.to {
		return
	}
	s.from = s.value(now)
	s.to = to
	s.start = now
}

// value returns the eased position at now.
func (s *slide) value(now time.Time) float64 {
	elapsed := now.Sub(s.start)
	if elapsed >= highlightAnimDuration {
		return s.to
	}
	progress := float64(elapsed) / float64(highlightAnimDuration)
	return s.from + (s.to-s.from)*easeInOut(progress)
}

// easeInOut provides smooth easing for animations (ease-in-out cubic)
func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// pulsing returns base with its brightness oscillating between 50% and 100%
// over a two second period.
func pulsing(base color.RGBA, now time.Time) color.Color {
	const pulsePeriod = 2000.0
	phase := float64(now.UnixMilli()%int64(pulsePeriod)) / pulsePeriod
	pulse := (math.Sin(phase*2*math.Pi) + 1.0) / 2.0

	brightness := 0.5 + 0.5*pulse
	return color.RGBA{
		uint8(float64(base.R) * brightness),
		uint8(float64(base.G) * brightness),
		uint8(float64(base.B) * brightness),
		base.A,
	}
}
