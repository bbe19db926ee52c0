package main

import (
	"fmt"
	"log"

	"github.com/yakiooo/desk-pet/config"
	"github.com/yakiooo/desk-pet/internal/assets"
	"github.com/yakiooo/desk-pet/internal/game"
	"github.com/yakiooo/desk-pet/internal/input"
	"github.com/yakiooo/desk-pet/internal/instance"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// 启动阶段的任何 panic 都在这里兜住，打印后退出
	defer func() {
		if r := recover(); r != nil {
			fail(fmt.Errorf("程序错误: %v", r))
		}
	}()

	// 1. 确保程序单例运行
	if running, err := instance.AlreadyRunning(); err != nil {
		log.Printf("无法检查是否已有实例: %v", err)
	} else if running {
		log.Fatal("已经有一只宠物在运行了")
	}

	// 2. 读取配置和资源
	cfg, err := config.Load("config.json")
	if err != nil {
		fail(err)
	}
	set, err := assets.Resolve(assets.BaseDir(cfg.AssetDir))
	if err != nil {
		fail(err)
	}

	// 3. 基础窗口设置
	ebiten.SetWindowDecorated(false) // 无边框
	ebiten.SetWindowFloating(true)   // 始终置顶
	ebiten.SetWindowTitle("desk-pet")

	mgr, err := game.NewManager(cfg, set)
	if err != nil {
		fail(err)
	}
	mgr.Init() // 这里面会计算并重新 SetWindowSize

	// 4. 启动键盘监听 (后台协程)
	listener := input.NewListener()
	mgr.Keys = listener.Start()

	// 5. 启动
	err = ebiten.RunGameWithOptions(mgr, &ebiten.RunGameOptions{
		ScreenTransparent: true, // 透明背景
		SkipTaskbar:       true,
	})
	// 窗口关了先卸载全局钩子再退出
	listener.Stop()
	if err != nil {
		log.Fatal(err)
	}
}
