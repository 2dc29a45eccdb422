package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator is a fixed-length tone, optionally sweeping in frequency.
type oscillator struct {
	freq, endFreq float64
	phase         float64
	duration      int
	position      int
	wave          WaveType
	rate          beep.SampleRate
	rng           *rand.Rand
}

// NewOscillator creates a steady tone of the given shape.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates a tone whose frequency glides linearly from freq to endFreq.
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack ramp and a release ramp.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is a shaped oscillator at one frequency.
func tone(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// catchSound is a short rising bubble pop.
func catchSound(rate beep.SampleRate) beep.Streamer {
	d := 120 * time.Millisecond
	return NewEnvelope(NewSweep(400, 900, d, WaveSine, rate), d, 5*time.Millisecond, 60*time.Millisecond, rate)
}

// newSpeciesSound is a two-note bell for the first catch of a species.
func newSpeciesSound(rate beep.SampleRate) beep.Streamer {
	d1, d2 := 90*time.Millisecond, 250*time.Millisecond
	first := beep.Mix(
		newVolume(tone(987.77, d1, 2*time.Millisecond, 40*time.Millisecond, WaveSine, rate), 0.7),
		newVolume(tone(1975.5, d1, 2*time.Millisecond, 30*time.Millisecond, WaveSine, rate), 0.3),
	)
	second := beep.Mix(
		newVolume(tone(1318.51, d2, 2*time.Millisecond, 200*time.Millisecond, WaveSine, rate), 0.7),
		newVolume(tone(2637.0, d2, 2*time.Millisecond, 120*time.Millisecond, WaveSine, rate), 0.3),
	)
	return beep.Seq(first, second)
}

// biteSound is a harsh low buzz with a noise crunch on top.
func biteSound(rate beep.SampleRate) beep.Streamer {
	d := 180 * time.Millisecond
	return beep.Mix(
		newVolume(tone(90, d, 3*time.Millisecond, 100*time.Millisecond, WaveSaw, rate), 0.6),
		newVolume(tone(0, d/2, time.Millisecond, 60*time.Millisecond, WaveNoise, rate), 0.3),
	)
}

// boostDepletedSound is a falling whoosh.
func boostDepletedSound(rate beep.SampleRate) beep.Streamer {
	d := 300 * time.Millisecond
	return beep.Mix(
		newVolume(NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 20*time.Millisecond, 200*time.Millisecond, rate), 0.3),
		newVolume(NewEnvelope(NewSweep(300, 120, d, WaveSine, rate), d, 10*time.Millisecond, 150*time.Millisecond, rate), 0.4),
	)
}

// splashSound is a burst of noise for crossing the water line.
func splashSound(rate beep.SampleRate) beep.Streamer {
	d := 250 * time.Millisecond
	return newVolume(NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 5*time.Millisecond, 220*time.Millisecond, rate), 0.4)
}

// gameOverSound is a slow descending minor triad.
func gameOverSound(rate beep.SampleRate) beep.Streamer {
	d := 350 * time.Millisecond
	return beep.Seq(
		tone(440, d, 10*time.Millisecond, 150*time.Millisecond, WaveSquare, rate),
		tone(349.23, d, 10*time.Millisecond, 150*time.Millisecond, WaveSquare, rate),
		tone(293.66, 2*d, 10*time.Millisecond, 500*time.Millisecond, WaveSquare, rate),
	)
}

// victorySound is a rising major arpeggio.
func victorySound(rate beep.SampleRate) beep.Streamer {
	d := 140 * time.Millisecond
	var notes []beep.Streamer
	for _, f := range []float64{523.25, 659.25, 783.99, 1046.5} {
		notes = append(notes, tone(f, d, 5*time.Millisecond, 60*time.Millisecond, WaveSquare, rate))
	}
	notes = append(notes, tone(1046.5, 4*d, 5*time.Millisecond, 400*time.Millisecond, WaveSine, rate))
	return beep.Seq(notes...)
}
