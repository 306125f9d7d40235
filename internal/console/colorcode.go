package console

import "strings"

// ColorCode is a legacy Minecraft formatting code written as "&<code>".
type ColorCode struct {
	Code rune
	Name string
}

var Palette = []ColorCode{
	{'0', "黑色"}, {'1', "深蓝色"}, {'2', "深绿色"}, {'3', "湖蓝色"},
	{'4', "深红色"}, {'5', "紫色"}, {'6', "金色"}, {'7', "灰色"},
	{'8', "深灰色"}, {'9', "蓝色"}, {'a', "绿色"}, {'b', "天蓝色"},
	{'c', "红色"}, {'d', "粉红色"}, {'e', "黄色"}, {'f', "白色"},
	{'k', "随机字符"}, {'l', "粗体"}, {'m', "删除线"}, {'n', "下划线"},
	{'o', "斜体"}, {'r', "重置"},
}

func (c ColorCode) Token() string {
	return "&" + string(c.Code)
}

// LookupColor matches codes case-insensitively, as the server does.
func LookupColor(r rune) (ColorCode, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	for _, c := range Palette {
		if c.Code == r {
			return c, true
		}
	}
	return ColorCode{}, false
}

// Insert places token at the caret, or over the selection when selStart and
// selEnd differ. Positions are rune offsets and are clamped to the text.
// The returned caret sits just after the inserted token.
func Insert(text string, selStart, selEnd int, token string) (string, int) {
	runes := []rune(text)
	clamp := func(i int) int {
		if i < 0 {
			return 0
		}
		if i > len(runes) {
			return len(runes)
		}
		return i
	}
	selStart, selEnd = clamp(selStart), clamp(selEnd)
	if selStart > selEnd {
		selStart, selEnd = selEnd, selStart
	}

	var b strings.Builder
	b.WriteString(string(runes[:selStart]))
	b.WriteString(token)
	b.WriteString(string(runes[selEnd:]))
	return b.String(), selStart + len([]rune(token))
}

// StripColor drops every "&<code>" pair from s.
func StripColor(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	runes := []rune(s)
	var b strings.Builder
	for i := 0; i < len(runes); i++ {
		if runes[i] == '&' && i+1 < len(runes) {
			if _, ok := LookupColor(runes[i+1]); ok {
				i++
				continue
			}
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}
