package demo

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"tuikit/internal/plot"
)

const tickHz = 4

// timePlot draws a scrolling sine wave. The app's tick advances the phase.
type timePlot struct {
	*plot.Plot
	phase float64
}

func newTimePlot() *timePlot {
	t := &timePlot{Plot: plot.New()}
	t.SetTitle("Time Domain")
	t.SetXRange(0, 1)
	t.SetYRange(0, 1)
	t.DrawFunc = t.draw
	return t
}

func (t *timePlot) advance() {
	t.phase += 0.25 / tickHz
	if t.phase > 1 {
		t.phase -= 1
	}
}

func (t *timePlot) draw(c *plot.Canvas) {
	c.PushColor("11")
	defer c.PopColor()

	const waves = 3
	dots := c.Cols() * 2
	lastX := 0.0
	lastY := math.Sin(t.phase*2*math.Pi)/2 + 0.5
	for x := 4; x < dots; x += 4 {
		xf := float64(x) / float64(dots)
		y := math.Sin((xf*waves+t.phase)*2*math.Pi)/2 + 0.5
		c.DrawLine(lastX, lastY, xf, y)
		lastX, lastY = xf, y
	}
}

// fftPlot animates between four capture frames, spring-blending each
// transition so the spectrum eases instead of snapping.
type fftPlot struct {
	*plot.Plot
	frames [4][]float64

	prev, next int
	blend      float64
	blendVel   float64
	spring     harmonica.Spring
}

func newFFTPlot() *fftPlot {
	f := &fftPlot{
		Plot:   plot.New(),
		frames: fftFrames(),
		next:   1,
		spring: harmonica.NewSpring(harmonica.FPS(tickHz), 7.0, 0.8),
	}
	f.SetTitle("ADC 1 - 12 Bit")
	f.TitleColor = "12"
	f.SetXRange(0, fftBins)
	f.SetYRange(-120, 0)
	f.SetXLabel("Frequency (GHz)")
	f.XLabelColor = "4"
	f.SetXAxis(plot.Axis{Min: 0, Max: 8, Divisions: 9, Format: "%.2f"})
	f.SetYLabel("Amplitude / dBm")
	f.YLabelColor = "11"
	f.SetYAxis(plot.Axis{Min: 0, Max: -120, Divisions: 7, Format: "%.0f"})
	f.AxisColor = "223"
	f.AddAnnotation(560, -10, "ENOB: 8.2", "11")
	f.AddAnnotation(560, -15, "SNR:  48.7", "11")
	f.DrawFunc = f.draw
	return f
}

// advance moves the blend toward the next frame; when it settles the next
// frame becomes current and the cycle continues.
func (f *fftPlot) advance() {
	f.blend, f.blendVel = f.spring.Update(f.blend, f.blendVel, 1)
	if f.blend > 0.98 {
		f.prev = f.next
		f.next = (f.next + 1) % len(f.frames)
		f.blend, f.blendVel = 0, 0
	}
}

func (f *fftPlot) bin(i int) float64 {
	a, b := f.frames[f.prev][i], f.frames[f.next][i]
	return a + f.blend*(b-a)
}

// Bins that change the trace color while sweeping left to right.
var (
	fftHarmonicBins = map[int]bool{860: true, 1290: true, 1760: true}
	fftSpurBins     = map[int]bool{610: true, 1040: true, 1160: true}
)

func (f *fftPlot) draw(c *plot.Canvas) {
	popBins := map[int]bool{fftSignalBin + 40: true}
	for b := range fftHarmonicBins {
		popBins[b+35] = true
	}
	for b := range fftSpurBins {
		popBins[b+35] = true
	}

	c.PushColor("244")
	lastX, lastY := 0.0, f.bin(0)
	for x := 0; x < fftBins; x++ {
		switch {
		case x == fftSignalBin:
			c.PushColor("10")
		case popBins[x]:
			c.PopColor()
		case fftHarmonicBins[x]:
			c.PushColor("12")
		case fftSpurBins[x]:
			c.PushColor("9")
		}
		y := f.bin(x)
		c.DrawLine(lastX, lastY, float64(x), y)
		lastX, lastY = float64(x), y
	}
	c.PopColor()
}
