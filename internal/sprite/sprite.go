package sprite

import (
	"fmt"
	"image"
	"image/gif"
	"io"
	"math"
	"os"
	"time"

	"golang.org/x/image/draw"
)

// 很多 GIF 把帧间隔写成 0 或 1 (百分之一秒)，浏览器统一按 100ms 播放，这里也一样
const defaultDelay = 100 * time.Millisecond

// Frame 一帧完整画面 (已经合成好，不依赖前一帧)
type Frame struct {
	Image image.Image
	Delay time.Duration
}

// Clip 一段循环播放的动画
type Clip struct {
	Frames []Frame
	Width  int
	Height int
	total  time.Duration
}

// Load 从文件读取一段 GIF 动画
func Load(path string, scale float64) (*Clip, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	clip, err := Decode(file, scale)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return clip, nil
}

// Decode 解码 GIF，把每一帧按 disposal 规则合成到完整画布上，再按 scale 缩放
func Decode(r io.Reader, scale float64) (*Clip, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, err
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("gif has no frames")
	}

	// 1. 画布尺寸：优先用逻辑屏幕大小，没写的话取所有帧的并集
	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = image.Rectangle{}
		for _, p := range g.Image {
			bounds = bounds.Union(p.Bounds())
		}
	}

	// 2. 逐帧合成
	canvas := image.NewRGBA(bounds)
	clip := &Clip{}
	for i, p := range g.Image {
		disposal := byte(0)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}

		var previous *image.RGBA
		if disposal == gif.DisposalPrevious {
			previous = cloneRGBA(canvas)
		}

		draw.Draw(canvas, p.Bounds(), p, p.Bounds().Min, draw.Over)

		delay := defaultDelay
		if i < len(g.Delay) && g.Delay[i] > 1 {
			delay = time.Duration(g.Delay[i]) * 10 * time.Millisecond
		}
		clip.Frames = append(clip.Frames, Frame{
			Image: resize(cloneRGBA(canvas), scale),
			Delay: delay,
		})
		clip.total += delay

		// 3. 为下一帧处理 disposal
		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, p.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}

	size := clip.Frames[0].Image.Bounds().Size()
	clip.Width, clip.Height = size.X, size.Y
	return clip, nil
}

// Duration 播放一轮的总时长
func (c *Clip) Duration() time.Duration {
	return c.total
}

// FrameAt 根据已经播放的时间算出当前是第几帧 (循环播放)
func (c *Clip) FrameAt(elapsed time.Duration) int {
	if len(c.Frames) <= 1 || c.total <= 0 {
		return 0
	}
	if elapsed < 0 {
		elapsed = 0
	}
	t := elapsed % c.total
	for i, f := range c.Frames {
		if t < f.Delay {
			return i
		}
		t -= f.Delay
	}
	return len(c.Frames) - 1
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

// resize 按倍数缩放，1 倍直接返回原图
// 输出画布从 (0, 0) 开始
func resize(src *image.RGBA, scale float64) image.Image {
	b := src.Bounds()
	if scale == 1 && b.Min == (image.Point{}) {
		return src
	}
	w := int(math.Round(float64(b.Dx()) * scale))
	h := int(math.Round(float64(b.Dy()) * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
