package systems

import (
	"log"
	"math/rand/v2"
)

// FootstepPicker 脚步声选择器
//
// 池的第 0 位始终是上一次播放的音效；每次从 [1, n) 中随机选一个，
// 播放后与第 0 位交换，因此 n >= 2 时不会连续两次选到同一个音效。
type FootstepPicker struct {
	pool []string
	rng  *rand.Rand
}

// NewFootstepPicker 创建脚步声选择器（复制传入的切片）
func NewFootstepPicker(cues []string, rng *rand.Rand) *FootstepPicker {
	pool := make([]string, len(cues))
	copy(pool, cues)
	return &FootstepPicker{pool: pool, rng: rng}
}

// Next 选出下一次要播放的脚步声
// 池为空时返回 false；只有一个音效时总是返回它
func (p *FootstepPicker) Next() (string, bool) {
	switch len(p.pool) {
	case 0:
		log.Printf("[FootstepPicker] Warning: footstep pool is empty")
		return "", false
	case 1:
		return p.pool[0], true
	}

	n := 1 + p.rng.IntN(len(p.pool)-1)
	picked := p.pool[n]
	p.pool[n] = p.pool[0]
	p.pool[0] = picked
	return picked, true
}

// Len 池大小
func (p *FootstepPicker) Len() int {
	return len(p.pool)
}
