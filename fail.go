package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"
)

// fail 打印错误并退出
// 双击运行时控制台会一闪而过，所以有终端的话先等用户按回车
func fail(err error) {
	log.Print(err)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Print("按回车键退出...")
		bufio.NewReader(os.Stdin).ReadString('\n')
	}
	os.Exit(1)
}
