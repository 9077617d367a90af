package assets

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

// SoundBank plays short embedded effects from sounds/<name>.wav. Players are
// decoded on first use and reused afterwards.
type SoundBank struct {
	ctx     *audio.Context
	players map[string]*audio.Player
	volume  float64
	muted   bool
}

// NewSoundBank creates a bank on the process audio context. Ebitengine allows
// only one context, so a bank should be created once.
func NewSoundBank(volume float64) *SoundBank {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &SoundBank{
		ctx:     ctx,
		players: make(map[string]*audio.Player),
		volume:  volume,
	}
}

// SetMuted silences every later Play call.
func (b *SoundBank) SetMuted(muted bool) {
	b.muted = muted
}

// Play restarts the named effect. Missing or broken sounds are logged and
// skipped.
func (b *SoundBank) Play(name string) {
	if b == nil || b.muted {
		return
	}
	p, err := b.player(name)
	if err != nil {
		log.Printf("assets: sound %s: %v", name, err)
		return
	}
	p.SetVolume(b.volume)
	if err := p.Rewind(); err != nil {
		log.Printf("assets: rewind %s: %v", name, err)
		return
	}
	p.Play()
}

func (b *SoundBank) player(name string) (*audio.Player, error) {
	if p, ok := b.players[name]; ok {
		return p, nil
	}
	data, err := LoadFile("sounds/" + name + ".wav")
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(b.ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	p, err := b.ctx.NewPlayer(stream)
	if err != nil {
		return nil, err
	}
	b.players[name] = p
	return p, nil
}
