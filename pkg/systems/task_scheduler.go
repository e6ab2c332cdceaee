package systems

import (
	"log"
	"sort"
)

// scheduledTask 一个延时回调
type scheduledTask struct {
	deadline float64
	callback func()
	seq      int
}

// TaskScheduler 延时任务调度器
//
// 用 (截止时间, 回调) 列表代替协程式的 "等待 N 秒后继续"。
// 每个任务占用一个命名槽位，同一槽位同时最多只有一个任务：
//   - Schedule: 槽位忙时拒绝（防止重入）
//   - Replace: 取代槽位中已有的任务
//
// 回调在 Update 中按截止时间顺序执行，且只执行一次。
type TaskScheduler struct {
	now   float64
	seq   int
	slots map[string]*scheduledTask
}

// NewTaskScheduler 创建调度器
func NewTaskScheduler() *TaskScheduler {
	return &TaskScheduler{
		slots: make(map[string]*scheduledTask),
	}
}

// Now 返回调度器内部时间（秒），只在 Update 中前进
func (s *TaskScheduler) Now() float64 {
	return s.now
}

// Schedule 在 delay 秒后执行 fn
// 槽位已有未执行的任务时返回 false，且不修改已有任务
func (s *TaskScheduler) Schedule(slot string, delay float64, fn func()) bool {
	if _, busy := s.slots[slot]; busy {
		return false
	}
	s.put(slot, delay, fn)
	return true
}

// Replace 在 delay 秒后执行 fn，取代槽位中已有的任务
func (s *TaskScheduler) Replace(slot string, delay float64, fn func()) {
	s.put(slot, delay, fn)
}

// Cancel 取消槽位中的任务，返回是否确实取消了任务
func (s *TaskScheduler) Cancel(slot string) bool {
	if _, ok := s.slots[slot]; !ok {
		return false
	}
	delete(s.slots, slot)
	return true
}

// Busy 槽位是否有未执行的任务
func (s *TaskScheduler) Busy(slot string) bool {
	_, ok := s.slots[slot]
	return ok
}

// Pending 未执行的任务数
func (s *TaskScheduler) Pending() int {
	return len(s.slots)
}

// Clear 丢弃所有任务（场景卸载时调用）
func (s *TaskScheduler) Clear() {
	s.slots = make(map[string]*scheduledTask)
}

// Update 推进时间并执行到期任务
// 回调中新安排的任务最早在下一次 Update 执行
func (s *TaskScheduler) Update(deltaTime float64) {
	s.now += deltaTime

	type due struct {
		slot string
		task *scheduledTask
	}
	var ready []due
	for slot, task := range s.slots {
		if task.deadline <= s.now {
			ready = append(ready, due{slot, task})
		}
	}
	if len(ready) == 0 {
		return
	}

	sort.Slice(ready, func(i, j int) bool {
		if ready[i].task.deadline != ready[j].task.deadline {
			return ready[i].task.deadline < ready[j].task.deadline
		}
		return ready[i].task.seq < ready[j].task.seq
	})

	for _, d := range ready {
		// 被先执行的回调取消或取代的任务不再执行
		if s.slots[d.slot] != d.task {
			continue
		}
		delete(s.slots, d.slot)
		d.task.callback()
	}
}

func (s *TaskScheduler) put(slot string, delay float64, fn func()) {
	if fn == nil {
		log.Printf("[TaskScheduler] Warning: nil callback for slot %s ignored", slot)
		return
	}
	if delay < 0 {
		delay = 0
	}
	s.seq++
	s.slots[slot] = &scheduledTask{deadline: s.now + delay, callback: fn, seq: s.seq}
}
