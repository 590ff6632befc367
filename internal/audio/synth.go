package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone is a sine oscillator with a linear attack and release.
type tone struct {
	freq      float64
	phase     float64
	pos       int
	total     int
	attack    int
	release   int
	rate      beep.SampleRate
	square    bool
	amplitude float64
}

func newTone(freq float64, d time.Duration, square bool, amplitude float64, rate beep.SampleRate) *tone {
	total := rate.N(d)
	return &tone{
		freq:      freq,
		total:     total,
		attack:    min(rate.N(5*time.Millisecond), total/4),
		release:   total / 3,
		rate:      rate,
		square:    square,
		amplitude: amplitude,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		var val float64
		if t.square {
			val = 1
			if t.phase >= 0.5 {
				val = -1
			}
		} else {
			val = math.Sin(2 * math.Pi * t.phase)
		}

		vol := t.amplitude
		if t.attack > 0 && t.pos < t.attack {
			vol *= float64(t.pos) / float64(t.attack)
		}
		if remaining := t.total - t.pos; t.release > 0 && remaining < t.release {
			vol *= float64(remaining) / float64(t.release)
		}

		samples[i][0] = val * vol
		samples[i][1] = val * vol

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// note is one step of a synthesized melody; freq 0 is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

// render plays notes back to back into a buffer.
func render(notes []note, square bool, amplitude float64, format beep.Format) *beep.Buffer {
	buf := beep.NewBuffer(format)
	for _, n := range notes {
		if n.freq == 0 {
			buf.Append(beep.Silence(format.SampleRate.N(n.dur)))
			continue
		}
		buf.Append(newTone(n.freq, n.dur, square, amplitude, format.SampleRate))
	}
	return buf
}

// brickHitSound is a short high blip.
func brickHitSound(format beep.Format) *beep.Buffer {
	return render([]note{
		{freq: 880, dur: 40 * time.Millisecond},
		{freq: 1320, dur: 50 * time.Millisecond},
	}, true, 0.25, format)
}

// winSound is a rising major arpeggio.
func winSound(format beep.Format) *beep.Buffer {
	return render([]note{
		{freq: 523.25, dur: 120 * time.Millisecond},
		{freq: 659.25, dur: 120 * time.Millisecond},
		{freq: 783.99, dur: 120 * time.Millisecond},
		{freq: 1046.50, dur: 400 * time.Millisecond},
	}, false, 0.6, format)
}

// backgroundMusic is a quiet bass line meant to loop.
func backgroundMusic(format beep.Format) *beep.Buffer {
	const step = 250 * time.Millisecond
	line := []float64{110, 0, 130.81, 0, 146.83, 0, 130.81, 0, 98, 0, 110, 0, 130.81, 146.83, 130.81, 0}
	notes := make([]note, len(line))
	for i, f := range line {
		notes[i] = note{freq: f, dur: step}
	}
	return render(notes, false, 0.15, format)
}
