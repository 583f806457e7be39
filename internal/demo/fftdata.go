package demo

// Synthesized ADC capture spectra for the FFT tab. Four frames of the same
// signal with per-frame noise so the animation shimmers the way a live
// analyzer does.

const (
	fftBins      = 2048
	fftNoiseFl   = -97.0
	fftSignalBin = 420
)

type fftPeak struct {
	bin   int
	amp   float64 // dBm at the peak
	skirt float64 // dB lost per bin moving away
}

var fftPeaks = []fftPeak{
	{bin: fftSignalBin, amp: -3, skirt: 9},
	{bin: 860, amp: -62, skirt: 7},
	{bin: 1290, amp: -68, skirt: 7},
	{bin: 1760, amp: -74, skirt: 7},
	{bin: 610, amp: -78, skirt: 6},
	{bin: 1040, amp: -82, skirt: 6},
	{bin: 1160, amp: -85, skirt: 6},
}

// fftNoise is a cheap deterministic hash in [-1, 1), so the frames are stable
// across runs without shipping data files.
func fftNoise(frame, bin int) float64 {
	h := uint32(frame*73856093) ^ uint32(bin*19349663)
	h ^= h >> 13
	h *= 0x5bd1e995
	h ^= h >> 15
	return float64(h%2000)/1000 - 1
}

func fftFrame(frame int) []float64 {
	out := make([]float64, fftBins)
	for bin := range out {
		v := fftNoiseFl + 5*fftNoise(frame, bin)
		for _, p := range fftPeaks {
			d := bin - p.bin
			if d < 0 {
				d = -d
			}
			if d > 12 {
				continue
			}
			peak := p.amp - p.skirt*float64(d) + fftNoise(frame, bin)/2
			if peak > v {
				v = peak
			}
		}
		if v < -120 {
			v = -120
		}
		out[bin] = v
	}
	return out
}

func fftFrames() [4][]float64 {
	var frames [4][]float64
	for f := range frames {
		frames[f] = fftFrame(f)
	}
	return frames
}
