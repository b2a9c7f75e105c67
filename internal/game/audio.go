package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundBoost SoundKind = iota
	SoundSlow
	SoundTrap
	SoundDizzy
	SoundLaunch
	SoundHint
	SoundWin
	SoundNewMaze
	SoundDenied
)

// AudioSystem manages procedural sound effects.
type AudioSystem struct {
	ctx           *oto.Context
	ready         chan struct{}
	ambientPlayer oto.Player
}

var globalAudio *AudioSystem

var sfxVolume float64 = 0.55
var ambientVolume float64 = 0.10

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a procedurally generated sound effect.
func PlaySound(kind SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

func SetSFXVolume(vol float64) {
	sfxVolume = clampF(vol, 0, 1)
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// putStereoF32LR writes independent left/right samples in [-1,1].
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

// softSat applies gentle tanh-like saturation so stacked voices never clip hard.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundBoost:
		return genBoost()
	case SoundSlow:
		return genSlow()
	case SoundTrap:
		return genTrap()
	case SoundDizzy:
		return genDizzy()
	case SoundLaunch:
		return genLaunch()
	case SoundHint:
		return genHint()
	case SoundWin:
		return genWin()
	case SoundNewMaze:
		return genNewMaze()
	case SoundDenied:
		return genDenied()
	}
	return nil
}

// genBoost: rising FM whoosh, pitch sweeping up with the speed surge.
func genBoost() []byte {
	n := int(0.18 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.05, 0.3, 0.4, 0.3)
		freq := 300 + 900*p*p
		s := fm(t, freq, 2.0, 2.5*env) * env * 0.45
		s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genSlow: drooping low tone, like wading into mud.
func genSlow() []byte {
	n := int(0.25 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.04, 0.4, 0.3, 0.3)
		freq := 260 - 170*p
		s := fm(t, freq, 0.5, 1.6*(1-p)) * env * 0.48
		s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.12
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genTrap: harsh descending buzz + thud for the reset trap.
func genTrap() []byte {
	n := int(0.35 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(24601)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.3, 0.35, 0.35)
		freq := 440 * math.Pow(0.25, p)
		buzz := fm(t, freq, 1.5, 4.0*(1-p)) * env * 0.42
		lp = lp*0.85 + lcg(&seed)*0.15
		rumble := lp * math.Exp(-p*5) * 0.2
		thump := math.Sin(2*math.Pi*60*t) * math.Exp(-p*12) * 0.3
		putStereoF32(buf, i, softSat(buzz+rumble+thump))
	}
	return buf
}

// genDizzy: wobbling vibrato spiral for the turn trap.
func genDizzy() []byte {
	n := int(0.40 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.03, 0.2, 0.5, 0.35)
		wob := 1 + 0.12*math.Sin(2*math.Pi*(6+8*p)*t)
		freq := (520 - 180*p) * wob
		s := fm(t, freq, 1.41, 2.2) * env * 0.4
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genLaunch: fast upward sweep + airy noise tail.
func genLaunch() []byte {
	n := int(0.45 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(31337)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.25, 0.4, 0.4)
		freq := 150 * math.Pow(8, p)
		sweep := fm(t, freq, 2.0, 1.8*env) * env * 0.38
		lp = lp*0.7 + lcg(&seed)*0.3
		air := lp * p * env * 0.22
		putStereoF32(buf, i, softSat(sweep+air))
	}
	return buf
}

// genHint: two soft ascending bell tones.
func genHint() []byte {
	freqs := []float64{659.25, 987.77} // E5 B5
	noteLen := SampleRate * 90 / 1000
	tail := int(0.20 * SampleRate)
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)
	for fi, freq := range freqs {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.005, 0.5, 0.05, 0.4)
			mix[start+j] += fm(t, freq, 2.756, 4.0*env) * env * 0.35
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genWin: ascending major arpeggio, each note ringing over the next.
func genWin() []byte {
	notes := []float64{523.25, 659.25, 783.99, 1046.5, 1318.5} // C5 E5 G5 C6 E6
	noteStep := int(0.11 * SampleRate)
	total := len(notes)*noteStep + int(0.4*SampleRate)
	mix := make([]float64, total)
	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.6, 0.05, 0.3)
			s := fm(t, freq, 3.5, 5.0*env) * env * 0.26
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genNewMaze: quick neutral double blip.
func genNewMaze() []byte {
	n := int(0.14 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.4, 0.1, 0.2)
		freq := 700.0
		if p > 0.5 {
			freq = 900.0
		}
		s := fm(t, freq, 1.0, 0.8) * env * 0.35
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genDenied: flat low buzz for an out-of-hints press.
func genDenied() []byte {
	n := int(0.16 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.2, 0.6, 0.3)
		s := fm(t, 180, 1.0, 1.2) * env * 0.34
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// ---- Ambient loop --------------------------------------------------------

// ambientReader streams an endless garden pad: slow detuned chords with a
// soft wind-noise bed. Stateless per sample apart from the clock and filter.
type ambientReader struct {
	t    float64
	seed uint64
	lp   float64
}

var ambientChords = [][]float64{
	{261.63, 329.63, 392.00}, // C
	{220.00, 261.63, 329.63}, // Am
	{174.61, 220.00, 261.63}, // F
	{196.00, 246.94, 293.66}, // G
}

func (m *ambientReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	if samples == 0 {
		return 0, nil
	}
	const chordLen = 6.0 // seconds per chord
	for i := 0; i < samples && i*8+7 < len(p); i++ {
		m.t += 1.0 / SampleRate
		idx := int(m.t/chordLen) % len(ambientChords)
		chord := ambientChords[idx]
		prog := math.Mod(m.t, chordLen) / chordLen
		// Crossfade chord edges to avoid clicks.
		env := clampF(prog*8, 0, 1) * clampF((1-prog)*8, 0, 1)

		s := 0.0
		for _, freq := range chord {
			for _, d := range []float64{-0.003, 0.002} {
				f := freq * (1 + d)
				vib := 1 + 0.002*math.Sin(2*math.Pi*0.2*m.t)
				s += fm(m.t, f*vib*0.5, 1.5, 0.6) * 0.05
			}
		}
		m.lp = m.lp*0.995 + lcg(&m.seed)*0.005
		wind := m.lp * (0.5 + 0.5*math.Sin(2*math.Pi*0.07*m.t)) * 0.6
		s = softSat((s*env + wind) * 0.9)

		pan := 0.08 * math.Sin(2*math.Pi*0.05*m.t)
		putStereoF32LR(p, i, softSat(s*(1-pan)), softSat(s*(1+pan)))
	}
	return len(p), nil
}

// StartAmbient begins the background garden loop. Safe to call when audio
// failed to initialize.
func StartAmbient() {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	if globalAudio.ambientPlayer != nil {
		globalAudio.ambientPlayer.Close()
	}
	reader := &ambientReader{seed: uint64(time.Now().UnixNano())}
	player := globalAudio.ctx.NewPlayer(reader)
	player.SetVolume(ambientVolume)
	globalAudio.ambientPlayer = player
	player.Play()
}

func SetAmbientVolume(vol float64) {
	ambientVolume = clampF(vol, 0, 1)
	if globalAudio != nil && globalAudio.ambientPlayer != nil {
		globalAudio.ambientPlayer.SetVolume(ambientVolume)
	}
}
