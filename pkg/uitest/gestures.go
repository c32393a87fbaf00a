package uitest

import (
	"github.com/ElectronicKiwi/kolibri/pkg/graphics"
	"github.com/ElectronicKiwi/kolibri/pkg/input"
)

// HoverAt pumps a frame with the pointer up at p.
func (t *Tester) HoverAt(p graphics.Point) Result {
	return t.Pump(input.HoverAt(p))
}

// TapAt presses and releases at p over two frames and returns the release
// frame.
func (t *Tester) TapAt(p graphics.Point) Result {
	t.Pump(input.DownAt(p))
	return t.Pump(input.HoverAt(p))
}

// TouchAt presses at p and lifts without a position, the way a resistive
// touch controller reports a release.
func (t *Tester) TouchAt(p graphics.Point) Result {
	t.Pump(input.DownAt(p))
	return t.Pump(input.None())
}

// DragFrom presses at start, moves by delta in steps frames and releases at
// the end point. It returns the results of every frame.
func (t *Tester) DragFrom(start, delta graphics.Point, steps int) []Result {
	if steps < 1 {
		steps = 1
	}
	results := []Result{t.Pump(input.DownAt(start))}
	for i := 1; i <= steps; i++ {
		p := graphics.Pt(start.X+delta.X*i/steps, start.Y+delta.Y*i/steps)
		results = append(results, t.Pump(input.DownAt(p)))
	}
	end := start.Add(delta)
	return append(results, t.Pump(input.HoverAt(end)))
}

// Play pumps one frame per sample and returns all results.
func (t *Tester) Play(samples ...input.Sample) []Result {
	results := make([]Result, 0, len(samples))
	for _, s := range samples {
		results = append(results, t.Pump(s))
	}
	return results
}
