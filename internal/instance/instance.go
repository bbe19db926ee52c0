package instance

import (
	"os"

	"github.com/shirou/gopsutil/v3/process"
)

// proc 进程列表里我们关心的两项
type proc struct {
	pid  int32
	name string
}

// AlreadyRunning 检查是否已经有另一只宠物在跑 (同名可执行文件)
// 用 gopsutil 自己的进程名做比较，Linux 下名字会被截断成 15 个字符，两边截断一致
func AlreadyRunning() (bool, error) {
	self := int32(os.Getpid())
	me, err := process.NewProcess(self)
	if err != nil {
		return false, err
	}
	name, err := me.Name()
	if err != nil {
		return false, err
	}

	all, err := process.Processes()
	if err != nil {
		return false, err
	}
	procs := make([]proc, 0, len(all))
	for _, p := range all {
		// 进程可能刚好退出，取不到名字就跳过
		n, err := p.Name()
		if err != nil {
			continue
		}
		procs = append(procs, proc{pid: p.Pid, name: n})
	}
	return hasOther(self, name, procs), nil
}

func hasOther(self int32, name string, procs []proc) bool {
	for _, p := range procs {
		if p.pid != self && p.name == name {
			return true
		}
	}
	return false
}
