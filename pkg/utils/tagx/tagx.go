package tagx

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// MaxTagLength 单个标签最大长度（按字符计），超出部分截断
const MaxTagLength = 32

// Parse 将用户输入的标签文本解析为标签列表
//
// 以逗号、顿号或空白分隔，去除首尾空白与重复项，保持输入顺序
func Parse(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '，' || r == '、' || unicode.IsSpace(r)
	})
	tags := lo.Map(fields, func(f string, _ int) string {
		if runes := []rune(f); len(runes) > MaxTagLength {
			return string(runes[:MaxTagLength])
		}
		return f
	})
	return lo.Uniq(tags)
}

// Join 将标签列表还原为文本（编辑页回显）
func Join(tags []string) string {
	return strings.Join(tags, ", ")
}
