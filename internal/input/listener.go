package input

import (
	"log"
	"sync"

	hook "github.com/robotn/gohook"
)

// UI 线程来不及处理时最多攒这么多，满了直接丢
const queueSize = 64

// Listener 全局键盘监听
// 在自己的协程里跑 gohook，把每次按键分类后发给 UI
type Listener struct {
	out   chan Hand
	quit  chan struct{}
	done  chan struct{}
	start func() chan hook.Event
	end   func()

	startOnce sync.Once
	stopOnce  sync.Once
	started   bool
}

// NewListener 创建监听器，还没有安装钩子
func NewListener() *Listener {
	return &Listener{
		out:   make(chan Hand, queueSize),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
		start: func() chan hook.Event { return hook.Start() },
		end:   hook.End,
	}
}

// Start 安装全局钩子，返回分类结果的 channel
func (l *Listener) Start() <-chan Hand {
	l.startOnce.Do(func() {
		l.started = true
		go l.run()
	})
	return l.out
}

// Stop 卸载钩子并等后台协程退出，可以重复调用
func (l *Listener) Stop() {
	l.stopOnce.Do(func() {
		if !l.started {
			return
		}
		close(l.quit)
		l.end()
		<-l.done
	})
}

func (l *Listener) run() {
	defer close(l.done)
	// 钩子装不上只影响键盘监听，宠物照常显示
	defer func() {
		if r := recover(); r != nil {
			log.Printf("input: keyboard hook failed: %v", r)
		}
	}()

	events := l.start()
	for {
		select {
		case <-l.quit:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			// gohook 的 KeyDown 只在输入字符时触发，KeyHold 才是物理按下
			if ev.Kind != hook.KeyHold {
				continue
			}
			l.emit(Classify(KeyName(ev)))
		}
	}
}

// emit 不阻塞地发给 UI
func (l *Listener) emit(h Hand) {
	select {
	case l.out <- h:
	default:
	}
}

var (
	namesOnce sync.Once
	names     map[uint16]string
)

// KeyName 取按键的名字，比如 "a"、"space"、"enter"
func KeyName(ev hook.Event) string {
	namesOnce.Do(func() {
		names = make(map[uint16]string, len(hook.Keycode))
		for name, code := range hook.Keycode {
			// 同一个键码可能有多个别名，取最短的，长度一样取字典序小的
			if old, ok := names[code]; ok {
				if len(old) < len(name) || (len(old) == len(name) && old < name) {
					continue
				}
			}
			names[code] = name
		}
	})
	if name, ok := names[ev.Keycode]; ok {
		return name
	}
	return hook.RawcodetoKeychar(ev.Rawcode)
}
