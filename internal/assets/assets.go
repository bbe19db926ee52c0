package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yakiooo/desk-pet/internal/entity"
)

// ErrMissing 资源文件不存在
var ErrMissing = errors.New("asset file missing")

// Files 每个片段对应的文件名
var Files = map[entity.ClipID]string{
	entity.ClipDefault: "default.gif",
	entity.ClipClick:   "click.gif",
	entity.ClipLeft:    "left_typing.gif",
	entity.ClipRight:   "right_typing.gif",
}

// Set 四个动画文件的绝对路径
type Set struct {
	Dir   string
	Paths map[entity.ClipID]string
}

// BaseDir 找资源目录
// 顺序：配置里写的目录 > 可执行文件所在目录 (打包发布) > 当前工作目录 (开发环境)
func BaseDir(configured string) string {
	if configured != "" {
		return configured
	}
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		if exists(filepath.Join(dir, Files[entity.ClipDefault])) {
			return dir
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// Resolve 检查四个文件都在，缺一个就报错 (错误里带完整路径)
func Resolve(dir string) (*Set, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	set := &Set{Dir: abs, Paths: make(map[entity.ClipID]string, len(Files))}
	for _, id := range entity.Clips {
		path := filepath.Join(abs, Files[id])
		if !exists(path) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, path)
		}
		set.Paths[id] = path
	}
	return set, nil
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
