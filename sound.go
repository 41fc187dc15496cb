package main

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

var sampleRate = beep.SampleRate(44100)

type soundEffect struct {
	buffer *beep.Buffer
	volume float64
}

type soundBoard struct {
	effects map[string]*soundEffect
}

// prepareTone renders a short sine blip with a linear fade out.
func prepareTone(freq float64, duration time.Duration) *beep.Buffer {
	buffer := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})

	n := sampleRate.N(duration)
	i := 0
	tone := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for j := range samples {
			if i >= n {
				return j, j > 0
			}
			fade := 1 - float64(i)/float64(n)
			v := math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * fade
			samples[j][0], samples[j][1] = v, v
			i++
		}
		return len(samples), true
	})
	buffer.Append(tone)

	return buffer
}

func newSoundBoard(enabled bool) *soundBoard {
	if !enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("[Sound] audio disabled: %v", err)
		return nil
	}

	board := &soundBoard{effects: map[string]*soundEffect{}}
	board.effects["sort/on"] = &soundEffect{buffer: prepareTone(880, 90*time.Millisecond), volume: -0.9}
	board.effects["sort/off"] = &soundEffect{buffer: prepareTone(440, 90*time.Millisecond), volume: -0.9}
	board.effects["scene/generate"] = &soundEffect{buffer: prepareTone(660, 160*time.Millisecond), volume: -0.8}
	board.effects["colors/cycle"] = &soundEffect{buffer: prepareTone(990, 60*time.Millisecond), volume: -1.2}
	board.effects["scene/pause"] = &soundEffect{buffer: prepareTone(330, 120*time.Millisecond), volume: -1.0}
	return board
}

func (board *soundBoard) PlaySound(soundName string) {
	if board == nil {
		return
	}

	soundEffect, ok := board.effects[soundName]
	if !ok {
		errorString := fmt.Sprintf("Unknown sound: %s", soundName)
		panic(errorString)
	}

	sound := soundEffect.buffer.Streamer(0, soundEffect.buffer.Len())

	volume := &effects.Volume{
		Streamer: sound,
		Base:     10,
		Volume:   soundEffect.volume,
		Silent:   false,
	}

	speaker.Play(volume)
}
