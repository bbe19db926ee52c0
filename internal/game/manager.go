package game

import (
	"fmt"
	"time"

	"github.com/yakiooo/desk-pet/config"
	"github.com/yakiooo/desk-pet/internal/assets"
	"github.com/yakiooo/desk-pet/internal/entity"
	"github.com/yakiooo/desk-pet/internal/input"
	"github.com/yakiooo/desk-pet/internal/sprite"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 有交互时的逻辑帧率
const activeTPS = 60

// animation 一个片段的时间轴和对应的 GPU 贴图
type animation struct {
	clip   *sprite.Clip
	frames []*ebiten.Image
}

type Manager struct {
	MyPet *entity.Pet
	Keys  <-chan input.Hand // 键盘监听协程发来的左右手

	clips   map[entity.ClipID]*animation
	idleTPS int
	now     func() time.Time
}

// NewManager 加载四段动画，窗口大小取最大的那段
func NewManager(cfg *config.Config, set *assets.Set) (*Manager, error) {
	g := &Manager{
		clips:   make(map[entity.ClipID]*animation, len(entity.Clips)),
		idleTPS: cfg.IdleTPS,
		now:     time.Now,
	}
	g.MyPet = entity.NewPet(cfg.TypingDelay(), g.now())

	for _, id := range entity.Clips {
		clip, err := sprite.Load(set.Paths[id], cfg.Scale)
		if err != nil {
			return nil, fmt.Errorf("load %s clip: %w", id, err)
		}
		anim := &animation{clip: clip}
		for _, f := range clip.Frames {
			anim.frames = append(anim.frames, ebiten.NewImageFromImage(f.Image))
		}
		g.clips[id] = anim

		if clip.Width > g.MyPet.Width {
			g.MyPet.Width = clip.Width
		}
		if clip.Height > g.MyPet.Height {
			g.MyPet.Height = clip.Height
		}
	}
	return g, nil
}

// Init 设置窗口尺寸，并把窗口放到屏幕正中间
func (g *Manager) Init() {
	ebiten.SetWindowSize(g.MyPet.Width, g.MyPet.Height)

	sw, sh := ebiten.Monitor().Size()
	ebiten.SetWindowPosition((sw-g.MyPet.Width)/2, (sh-g.MyPet.Height)/2)
}

func (g *Manager) Update() error {
	now := g.now()

	// 1. 取出键盘协程攒下的事件，按顺序处理
	g.drainKeys(now)

	// 2. 拖拽逻辑
	// Ebiten 只给鼠标相对窗口的坐标，屏幕绝对位置 = 窗口位置 + 相对位置
	mx, my := ebiten.CursorPosition()
	wx, wy := ebiten.WindowPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.MyPet.Press(wx+mx, wy+my, wx, wy, now)
	case g.MyPet.IsDragging() && !pressed:
		// 松开 (包括在窗口外松开)
		g.MyPet.Release(now)
	case g.MyPet.IsDragging():
		if x, y, ok := g.MyPet.Drag(wx+mx, wy+my); ok && (x != wx || y != wy) {
			ebiten.SetWindowPosition(x, y)
		}
	}

	// 3. 打字动画计时
	g.MyPet.Tick(now)

	// 4. 动态调整 TPS
	// 有交互时 60 帧，没人理它时省电
	isHover := mx >= 0 && mx <= g.MyPet.Width && my >= 0 && my <= g.MyPet.Height
	if isHover || pressed || g.MyPet.State() != entity.Idle {
		ebiten.SetTPS(activeTPS)
	} else {
		ebiten.SetTPS(g.idleTPS)
	}

	// 5. ESC 关闭程序
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *Manager) drainKeys(now time.Time) {
	for {
		select {
		case h, ok := <-g.Keys:
			if !ok {
				g.Keys = nil
				return
			}
			g.MyPet.Type(entity.ClipID(h), now)
		default:
			return
		}
	}
}

func (g *Manager) Draw(screen *ebiten.Image) {
	anim := g.clips[g.MyPet.Clip]
	idx := anim.clip.FrameAt(g.now().Sub(g.MyPet.Since))

	// 尺寸不一样的片段底部居中对齐
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(
		float64((g.MyPet.Width-anim.clip.Width)/2),
		float64(g.MyPet.Height-anim.clip.Height),
	)
	screen.DrawImage(anim.frames[idx], op)
}

func (g *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	// 告诉 Ebiten 画布大小就是窗口大小
	return g.MyPet.Width, g.MyPet.Height
}
