package entity

import "time"

// ClipID 动画片段的名字
type ClipID string

const (
	ClipDefault ClipID = "default" // 待机
	ClipClick   ClipID = "click"   // 被按住
	ClipLeft    ClipID = "left"    // 左手打字
	ClipRight   ClipID = "right"   // 右手打字
)

// Clips 全部四个片段，加载资源时按这个顺序
var Clips = []ClipID{ClipDefault, ClipClick, ClipLeft, ClipRight}

// State 宠物当前所处的状态
type State int

const (
	Idle State = iota
	Typing
	Dragging
)

func (s State) String() string {
	switch s {
	case Typing:
		return "typing"
	case Dragging:
		return "dragging"
	default:
		return "idle"
	}
}

// Pet 宠物的全部可变状态
// 只在 UI 协程里修改，所以不需要锁
type Pet struct {
	Clip  ClipID    // 当前显示的片段
	Since time.Time // 当前片段从什么时候开始播放 (用来算第几帧)

	Width  int // 窗口宽度 (像素)
	Height int // 窗口高度 (像素)

	TypingDelay time.Duration // 打字动画多久后恢复待机

	dragging bool
	grabX    int // 按下时鼠标相对于窗口左上角的偏移
	grabY    int

	resetAt time.Time // 一次性计时器，零值表示没有待触发的计时
}

// NewPet 创建一只处于待机状态的宠物
func NewPet(delay time.Duration, now time.Time) *Pet {
	p := &Pet{TypingDelay: delay}
	p.show(ClipDefault, now)
	return p
}

// State 根据当前片段推导状态
func (p *Pet) State() State {
	switch {
	case p.dragging:
		return Dragging
	case p.Clip == ClipLeft || p.Clip == ClipRight:
		return Typing
	default:
		return Idle
	}
}

// IsDragging 鼠标左键是否正按着宠物
func (p *Pet) IsDragging() bool {
	return p.dragging
}

// Pending 是否有还没触发的恢复计时
func (p *Pet) Pending() bool {
	return !p.resetAt.IsZero()
}

// Type 收到一次按键分类：切到对应的打字动画，并重新开始计时
// 拖拽中忽略按键，点击动画一直保持到松开
func (p *Pet) Type(clip ClipID, now time.Time) {
	if p.dragging {
		return
	}
	if clip != ClipLeft && clip != ClipRight {
		return
	}
	p.show(clip, now)
	p.resetAt = now.Add(p.TypingDelay)
}

// Press 鼠标左键按下
// cursor 是鼠标在屏幕上的绝对坐标，win 是窗口左上角坐标
func (p *Pet) Press(cursorX, cursorY, winX, winY int, now time.Time) {
	p.grabX = cursorX - winX
	p.grabY = cursorY - winY
	p.dragging = true
	p.show(ClipClick, now)
}

// Drag 返回窗口应该移动到的位置
// 新窗口位置 = 鼠标屏幕绝对位置 - 按下时的偏移量
func (p *Pet) Drag(cursorX, cursorY int) (x, y int, ok bool) {
	if !p.dragging {
		return 0, 0, false
	}
	return cursorX - p.grabX, cursorY - p.grabY, true
}

// Release 松开鼠标：立刻回到待机，不管计时器还剩多少
func (p *Pet) Release(now time.Time) {
	p.dragging = false
	p.resetAt = time.Time{}
	p.show(ClipDefault, now)
}

// Tick 每一帧调用一次，计时到了就恢复待机
func (p *Pet) Tick(now time.Time) {
	if p.resetAt.IsZero() || now.Before(p.resetAt) {
		return
	}
	p.resetAt = time.Time{}
	if !p.dragging {
		p.show(ClipDefault, now)
	}
}

// show 切换片段并从第一帧重新播放
func (p *Pet) show(clip ClipID, now time.Time) {
	p.Clip = clip
	p.Since = now
}
