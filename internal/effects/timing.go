// Package effects holds the decorative layers behind the hero section.
// Every function here is a pure function of elapsed seconds and its inputs,
// so the animation can be checked without a window.
package effects

import "math"

// EaseInOut maps t in [0,1] to a sine ease-in-out curve.
func EaseInOut(t float64) float64 {
	t = clamp01(t)
	return 0.5 - 0.5*math.Cos(math.Pi*t)
}

// FadeIn returns the opacity of an element that starts fading in after delay
// seconds and is fully visible duration seconds later.
func FadeIn(elapsed, delay, duration float64) float64 {
	if elapsed <= delay {
		return 0
	}
	if duration <= 0 {
		return 1
	}
	return EaseInOut((elapsed - delay) / duration)
}

// Yoyo plays an eased 0 -> 1 tween, then 1 -> 0, forever.
func Yoyo(elapsed, delay, duration float64) float64 {
	if elapsed <= delay || duration <= 0 {
		return 0
	}
	phase := (elapsed - delay) / duration
	cycle := math.Floor(phase)
	frac := phase - cycle
	if int64(cycle)%2 == 1 {
		frac = 1 - frac
	}
	return EaseInOut(frac)
}

// Blink oscillates between 1 and 0.7 with the given period.
func Blink(elapsed, period float64) float64 {
	if period <= 0 {
		return 1
	}
	return 1 - 0.3*(0.5-0.5*math.Cos(2*math.Pi*elapsed/period))
}

// Pulse oscillates between 1 and 0.5 over two seconds, offset by delay.
func Pulse(elapsed, delay float64) float64 {
	return 0.75 + 0.25*math.Cos(math.Pi*(elapsed-delay))
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 { return Clamp(v, 0, 1) }

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
