package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockdrop/internal/session"
)

// drain streams s to completion and returns every sample produced.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for range 10000 {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func peak(samples [][2]float64) float64 {
	p := 0.0
	for _, s := range samples {
		p = math.Max(p, math.Max(math.Abs(s[0]), math.Abs(s[1])))
	}
	return p
}

func TestChimeLengthFollowsRows(t *testing.T) {
	one := len(drain(t, Chime(1, 1)))
	two := len(drain(t, Chime(2, 1)))
	four := len(drain(t, Chime(4, 1)))

	assert.Equal(t, sampleRate.N(chimeNote), one)
	assert.Equal(t, 2*one, two)
	assert.Equal(t, four, len(drain(t, Chime(9, 1))), "more than four rows caps at four notes")
	assert.Equal(t, one, len(drain(t, Chime(0, 1))), "zero rows still plays one note")
}

func TestTonesStayInRange(t *testing.T) {
	for name, s := range map[string]beep.Streamer{
		"chime": Chime(4, 1),
		"buzz":  Buzz(1),
	} {
		samples := drain(t, s)
		require.NotEmpty(t, samples, name)
		assert.LessOrEqual(t, peak(samples), 1.0, name)
		assert.Greater(t, peak(samples), 0.0, name)
	}
}

func TestVolumeScalesOutput(t *testing.T) {
	full := peak(drain(t, Chime(1, 1)))
	half := peak(drain(t, Chime(1, 0.5)))
	assert.InDelta(t, full/2, half, 1e-9)

	assert.Zero(t, peak(drain(t, Buzz(0))), "zero volume is silent")
}

func TestManagerWithoutDevice(t *testing.T) {
	m := NewManager(0.5)
	assert.NotPanics(t, func() {
		m.LineClear(2)
		m.GameOver()
		m.Close()
	})
}

func TestManagerInitialize(t *testing.T) {
	m := NewManager(0.5)
	if err := m.Initialize(); err != nil {
		t.Skipf("no audio device: %v", err)
	}
	require.NoError(t, m.Initialize(), "second initialize is a no-op")
	m.LineClear(1)
	m.Close()
}

func TestManagerImplementsCues(t *testing.T) {
	var c session.Cues = NewManager(0.5)
	assert.NotPanics(t, func() {
		c.LineClear(4)
		c.GameOver()
	}, "cues before Initialize do nothing")
}
