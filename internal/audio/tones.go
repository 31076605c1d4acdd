package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const sampleRate = beep.SampleRate(44100)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// oscillator produces a fixed-length tone.
type oscillator struct {
	freq     float64
	phase    float64
	position int
	length   int
	wave     Wave
	rate     beep.SampleRate
}

func newOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, length: rate.N(d), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		default:
			v = math.Sin(2 * math.Pi * o.phase)
		}
		samples[i][0], samples[i][1] = v, v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a streamer in over attack and out over the final release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release {
			vol = math.Max(float64(remaining)/float64(e.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales a streamer linearly; vol <= 0 silences it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// chimeNotes are the rising steps of the line-clear chime (C6 E6 G6 C7).
var chimeNotes = []float64{1046.50, 1318.51, 1567.98, 2093.00}

const (
	chimeNote = 90 * time.Millisecond
	buzzTone  = 450 * time.Millisecond
)

// Chime plays one rising note per cleared row.
func Chime(rows int, vol float64) beep.Streamer {
	rows = min(max(rows, 1), len(chimeNotes))
	notes := make([]beep.Streamer, 0, rows)
	for i := range rows {
		osc := newOscillator(chimeNotes[i], chimeNote, WaveSine, sampleRate)
		notes = append(notes, newEnvelope(osc, chimeNote, 5*time.Millisecond, 40*time.Millisecond, sampleRate))
	}
	return withVolume(beep.Seq(notes...), vol)
}

// Buzz is the low game-over tone.
func Buzz(vol float64) beep.Streamer {
	low := newEnvelope(newOscillator(110, buzzTone, WaveSquare, sampleRate), buzzTone, 10*time.Millisecond, 200*time.Millisecond, sampleRate)
	sub := newEnvelope(newOscillator(55, buzzTone, WaveSine, sampleRate), buzzTone, 10*time.Millisecond, 200*time.Millisecond, sampleRate)
	return withVolume(beep.Mix(withVolume(low, 0.3), withVolume(sub, 0.7)), vol)
}
