package config

import (
	"encoding/json"
	"log"
	"os"
	"time"
)

// Config 结构体：对应 config.json 的内容
// 配置文件只读，程序从不写回
type Config struct {
	AssetDir      string  `json:"asset_dir"`       // 动画资源目录，空字符串表示自动查找
	TypingDelayMS int     `json:"typing_delay_ms"` // 打字动画持续多久后恢复 (毫秒)
	Scale         float64 `json:"scale"`           // 精灵缩放倍数
	IdleTPS       int     `json:"idle_tps"`        // 空闲时每秒逻辑帧数
}

// NewDefault 生成一份默认配置
// 当找不到配置文件，或者读取失败时，用这个“保底”
func NewDefault() *Config {
	return &Config{
		AssetDir:      "",
		TypingDelayMS: 100,
		Scale:         1.0,
		IdleTPS:       10,
	}
}

// Load 从硬盘读取配置
func Load(filename string) (*Config, error) {
	// 1. 尝试打开文件
	file, err := os.Open(filename)
	if err != nil {
		// 如果文件不存在，直接返回默认配置，不算报错
		if os.IsNotExist(err) {
			return NewDefault(), nil
		}
		return nil, err
	}
	defer file.Close()

	// 2. 解析 JSON
	// 在默认值上解码，文件里没写的字段保持默认
	cfg := NewDefault()
	if err := json.NewDecoder(file).Decode(cfg); err != nil {
		// 如果 JSON 格式坏了，也返回默认配置
		log.Printf("config: %s 格式错误，使用默认配置: %v", filename, err)
		return NewDefault(), nil
	}

	cfg.normalize()
	return cfg, nil
}

// TypingDelay 返回打字动画的持续时间
func (c *Config) TypingDelay() time.Duration {
	return time.Duration(c.TypingDelayMS) * time.Millisecond
}

// normalize 把不合法的数值改回默认值
func (c *Config) normalize() {
	def := NewDefault()
	if c.TypingDelayMS <= 0 {
		c.TypingDelayMS = def.TypingDelayMS
	}
	if c.Scale <= 0 {
		c.Scale = def.Scale
	}
	if c.IdleTPS <= 0 {
		c.IdleTPS = def.IdleTPS
	}
}
