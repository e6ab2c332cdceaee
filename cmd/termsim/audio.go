package main

import (
	"hash/fnv"
	"log"
	"time"

	"github.com/decker502/hollow/pkg/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	toneSampleRate = 44100
	toneLength     = 80 * time.Millisecond
	// 音高范围 [minToneHz, minToneHz+toneSpanHz)
	minToneHz  = 220
	toneSpanHz = 660
)

// beepAudio 终端版音效：每个 cue 播放一段合成的正弦音
//
// cue 是否存在以及时长仍以 audio.yaml 为准。
type beepAudio struct {
	resources  *game.ResourceManager
	sampleRate beep.SampleRate
	enabled    bool
}

// newBeepAudio 初始化扬声器；失败或静音时仍返回可用的实例（只是不发声）
func newBeepAudio(rm *game.ResourceManager, mute bool) *beepAudio {
	a := &beepAudio{resources: rm, sampleRate: beep.SampleRate(toneSampleRate)}
	if mute {
		return a
	}
	if err := speaker.Init(a.sampleRate, a.sampleRate.N(time.Second/10)); err != nil {
		log.Printf("[TermAudio] Warning: speaker init failed: %v (running silent)", err)
		return a
	}
	a.enabled = true
	return a
}

// PlayCue 播放 cue 对应的提示音
func (a *beepAudio) PlayCue(cueID string) bool {
	if _, ok := a.resources.LookupSound(cueID); !ok || !a.enabled {
		return false
	}
	sine, err := generators.SineTone(a.sampleRate, cueFrequency(cueID))
	if err != nil {
		log.Printf("[TermAudio] Warning: tone for %s: %v", cueID, err)
		return false
	}
	speaker.Play(beep.Take(a.sampleRate.N(toneLength), sine))
	return true
}

// CueDuration 返回 audio.yaml 中声明的时长
func (a *beepAudio) CueDuration(cueID string) float64 {
	if sound, ok := a.resources.LookupSound(cueID); ok {
		return sound.Duration
	}
	return 0
}

// Close 关闭扬声器
func (a *beepAudio) Close() {
	if a.enabled {
		speaker.Close()
		a.enabled = false
	}
}

// cueFrequency 由 cue ID 决定音高，同一 cue 总是同一音高
func cueFrequency(cueID string) float64 {
	h := fnv.New32a()
	h.Write([]byte(cueID))
	return float64(minToneHz + h.Sum32()%toneSpanHz)
}
