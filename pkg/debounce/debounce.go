// Package debounce 提供事件防抖工具
package debounce

import (
	"sync"
	"time"
)

// Debouncer 将密集触发的事件合并为空闲窗口后的一次执行
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	duration time.Duration
}

// New 创建指定窗口时长的防抖器
func New(duration time.Duration) *Debouncer {
	return &Debouncer{
		duration: duration,
	}
}

// Do 在防抖窗口结束后执行 fn，窗口内的后续调用会重置计时并丢弃之前的 fn
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.duration, fn)
}

// Cancel 取消尚未执行的防抖调用
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Immediate 立即执行 fn，并取消任何待执行的防抖调用
func (d *Debouncer) Immediate(fn func()) {
	d.Cancel()
	fn()
}
