//go:build !(android && audio_stub)

package game

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"fingermaze/internal/host"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// AudioSystem plays procedural sound effects.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

var sfxVolume = 0.5

// activeSounds caps overlapping players; fast pointer drags can emit
// several cues per frame.
var activeSounds int32

const maxActiveSounds = 3

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// SetSFXVolume sets the effect volume in [0,1].
func SetSFXVolume(vol float64) { sfxVolume = clampF(vol, 0, 1) }

// PlaySound plays a procedurally generated sound effect. It is a no-op
// until InitAudio succeeded and the device is ready.
func PlaySound(kind host.SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	if atomic.AddInt32(&activeSounds, 1) > maxActiveSounds {
		atomic.AddInt32(&activeSounds, -1)
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		atomic.AddInt32(&activeSounds, -1)
		return
	}
	go func() {
		defer atomic.AddInt32(&activeSounds, -1)
		player := globalAudio.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
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
	for c := 0; c < ChannelCount; c++ {
		o := i*8 + c*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat applies gentle tanh-like saturation.
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
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

func generateSound(kind host.SoundKind) []byte {
	switch kind {
	case host.SoundStart:
		return genSweep(0.09, 480, 720, 2.0, 3.5)
	case host.SoundSelect:
		return genClick(1400, 700)
	case host.SoundCopy:
		return genClick(1800, -400)
	case host.SoundWarn:
		return genWarn()
	case host.SoundFail:
		return genFail()
	case host.SoundLifted:
		return genSweep(0.16, 320, -220, 1.5, 2.8)
	case host.SoundSolved:
		return genSolved()
	}
	return nil
}

// genSweep: FM tone gliding from freq by span Hz over dur seconds.
func genSweep(dur, freq, span, ratio, depth float64) []byte {
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.1, 0.2)
		f := freq + span*p
		s := fm(t, f, ratio, depth*env) * env * 0.5
		s += math.Sin(2*math.Pi*f*2*t) * env * 0.08
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genClick: crisp click + brief tone.
func genClick(freq, drop float64) []byte {
	n := SampleRate * 65 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		s := fm(t, freq-drop*p, 1.0, 0.6) * env * 0.38
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genWarn: two short identical blips.
func genWarn() []byte {
	blip := int(0.06 * SampleRate)
	gap := int(0.05 * SampleRate)
	n := 2*blip + gap
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		j := i
		if j >= blip+gap {
			j -= blip + gap
		} else if j >= blip {
			continue
		}
		t := float64(j) / SampleRate
		env := adsr(float64(j)/float64(blip), 0.05, 0.4, 0.3, 0.3)
		s := fm(t, 660, 1.0, 1.2) * env * 0.35
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genFail: slow descending minor chord, staggered.
func genFail() []byte {
	dur := 0.6
	n := int(dur * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.10}, // C4
		{220.00, 0.20}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.3
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1
			mix[i] += s
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genSolved: ascending FM bell staircase, each note rings over the next.
func genSolved() []byte {
	notes := []float64{440, 554.37, 659.25, 880, 1108.73}
	noteStep := int(0.09 * SampleRate)
	total := len(notes)*noteStep + int(0.25*SampleRate)
	mix := make([]float64, total)

	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.003, 0.65, 0.04, 0.28)
			s := fm(t, freq, 3.5, 5.5*env) * env * 0.28
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
