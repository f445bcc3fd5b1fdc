package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Effect lengths.
const (
	laserLength     = 120 * time.Millisecond
	explosionLength = 450 * time.Millisecond
	damageLength    = 600 * time.Millisecond
)

// sweepGenerator is a sine whose frequency slides from start to end Hz.
type sweepGenerator struct {
	sr         beep.SampleRate
	start, end float64
	total      int
	pos        int
	phase      float64
}

// newLaserStreamer creates the short descending "pew".
func newLaserStreamer(sr beep.SampleRate) beep.Streamer {
	return &sweepGenerator{
		sr:    sr,
		start: 1400,
		end:   300,
		total: sr.N(laserLength),
	}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.total)
		freq := g.start + (g.end-g.start)*progress

		// Linear fade out
		sample := 0.4 * (1 - progress) * math.Sin(2*math.Pi*g.phase)

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error {
	return nil
}

// noiseGenerator produces exponentially decaying noise mixed with a low rumble.
type noiseGenerator struct {
	sr    beep.SampleRate
	total int
	pos   int
	decay float64
	rng   *rand.Rand
}

// newExplosionStreamer creates a crackling burst.
func newExplosionStreamer(sr beep.SampleRate, seed int64) beep.Streamer {
	return &noiseGenerator{
		sr:    sr,
		total: sr.N(explosionLength),
		decay: 7,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (g *noiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)

		// Envelope - quick attack, slower decay
		envelope := math.Exp(-t * g.decay)
		noise := g.rng.Float64()*2 - 1
		rumble := 0.3 * math.Sin(2*math.Pi*70*t)
		sample := envelope * (0.5*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *noiseGenerator) Err() error {
	return nil
}

// buzzGenerator generates a low-pitch buzz with harmonics.
type buzzGenerator struct {
	sr    beep.SampleRate
	freq  float64
	total int
	pos   int
}

// newDamageStreamer creates the harsh hit buzz.
func newDamageStreamer(sr beep.SampleRate) beep.Streamer {
	return &buzzGenerator{
		sr:    sr,
		freq:  110,
		total: sr.N(damageLength),
	}
}

func (g *buzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)

		sample := 0.5 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.25 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.125 * math.Sin(2*math.Pi*g.freq*3*t)

		// Envelope to fade in/out
		attack := math.Min(t/0.02, 1.0)
		release := 1 - float64(g.pos)/float64(g.total)
		sample *= attack * release * 0.6

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *buzzGenerator) Err() error {
	return nil
}
