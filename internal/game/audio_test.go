package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestADSR_Envelope(t *testing.T) {
	t.Parallel()
	assert.InDelta(t, 0.0, adsr(0, 0.1, 0.2, 0.5, 0.2), 1e-9)
	assert.InDelta(t, 1.0, adsr(0.1, 0.1, 0.2, 0.5, 0.2), 1e-9)
	assert.InDelta(t, 0.5, adsr(0.5, 0.1, 0.2, 0.5, 0.2), 1e-9, "sustain plateau")
	assert.InDelta(t, 0.0, adsr(1.0, 0.1, 0.2, 0.5, 0.2), 1e-9, "silent at the end")
}

func TestSoftSat_Bounded(t *testing.T) {
	t.Parallel()
	for _, x := range []float64{-100, -2, -1, -0.5, 0, 0.5, 1, 2, 100} {
		y := softSat(x)
		assert.LessOrEqual(t, y, 1.0, "input %g", x)
		assert.GreaterOrEqual(t, y, -1.0, "input %g", x)
	}
	assert.Zero(t, softSat(0))
}

func TestLCG_Range(t *testing.T) {
	t.Parallel()
	seed := uint64(1)
	for i := 0; i < 1000; i++ {
		v := lcg(&seed)
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestPutStereoF32_Roundtrip(t *testing.T) {
	t.Parallel()
	buf := makeBuf(2)
	putStereoF32(buf, 0, 0.5)
	putStereoF32LR(buf, 1, -0.25, 0.75)

	read := func(off int) float64 {
		bits := uint32(buf[off]) | uint32(buf[off+1])<<8 |
			uint32(buf[off+2])<<16 | uint32(buf[off+3])<<24
		return float64(math.Float32frombits(bits))
	}
	assert.InDelta(t, 0.5, read(0), 1e-6)
	assert.InDelta(t, 0.5, read(4), 1e-6)
	assert.InDelta(t, -0.25, read(8), 1e-6)
	assert.InDelta(t, 0.75, read(12), 1e-6)
}

func TestGenerateSound_AllKinds(t *testing.T) {
	t.Parallel()
	kinds := []SoundKind{
		SoundBoost, SoundSlow, SoundTrap, SoundDizzy, SoundLaunch,
		SoundHint, SoundWin, SoundNewMaze, SoundDenied,
	}
	for _, kind := range kinds {
		buf := generateSound(kind)
		require.NotEmpty(t, buf, "kind %d", kind)
		assert.Zero(t, len(buf)%8, "whole stereo float32 frames")

		// Every sample decodes to a sane amplitude.
		for off := 0; off+3 < len(buf); off += 4 {
			bits := uint32(buf[off]) | uint32(buf[off+1])<<8 |
				uint32(buf[off+2])<<16 | uint32(buf[off+3])<<24
			v := math.Float32frombits(bits)
			if v < -1.0 || v > 1.0 || math.IsNaN(float64(v)) {
				t.Fatalf("kind %d sample at %d out of range: %v", kind, off, v)
			}
		}
	}
}

func TestAmbientReader_FillsBuffer(t *testing.T) {
	t.Parallel()
	r := &ambientReader{seed: 42}
	buf := make([]byte, 4096)
	n, err := r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n, "ambient loop never ends")

	silent := true
	for _, b := range buf {
		if b != 0 {
			silent = false
			break
		}
	}
	assert.False(t, silent, "pad should produce signal")
}
