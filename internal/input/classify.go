package input

import "strings"

// Hand 按键属于哪只手
type Hand string

const (
	Left  Hand = "left"
	Right Hand = "right"
)

// 左手区的 15 个键，其他键一律算右手
var leftKeys = map[string]struct{}{
	"q": {}, "w": {}, "e": {}, "r": {}, "t": {},
	"a": {}, "s": {}, "d": {}, "f": {}, "g": {},
	"z": {}, "x": {}, "c": {}, "v": {}, "b": {},
}

// Classify 按键名 -> 左手 / 右手
func Classify(name string) Hand {
	if _, ok := leftKeys[strings.ToLower(name)]; ok {
		return Left
	}
	return Right
}
