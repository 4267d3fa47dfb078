package load

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// 注释标记
const (
	tokenCommentHash = "#"  // # 注释
	tokenCommentLine = "//" // // 行注释
)

// token 参数文件中的单个词
type token struct {
	Text string // 内容
	Line int    // 行号
}

// tokenList 顺序读取的词列表
type tokenList struct {
	list []token
	pos  int
}

// scanTokens 按行读取并拆分为词，跳过空行和注释
func scanTokens(r io.Reader) (*tokenList, error) {
	ts := &tokenList{}
	scanner := bufio.NewScanner(r)
	// 参数文件不要求换行，整个文件可能只有一行
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt32)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		for _, mark := range []string{tokenCommentHash, tokenCommentLine} {
			if i := strings.Index(text, mark); i >= 0 {
				text = text[:i]
			}
		}
		for _, field := range strings.Fields(text) {
			ts.list = append(ts.list, token{Text: field, Line: line})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", line+1, err)
	}
	return ts, nil
}

// next 读取下一个词，what 用于错误信息
func (ts *tokenList) next(what string) (token, error) {
	if ts.pos >= len(ts.list) {
		line := 0
		if n := len(ts.list); n > 0 {
			line = ts.list[n-1].Line
		}
		return token{}, fmt.Errorf("line %d: unexpected end of input, expected %s", line, what)
	}
	t := ts.list[ts.pos]
	ts.pos++
	return t, nil
}

// float 读取一个浮点数
func (ts *tokenList) float(what string) (float64, error) {
	t, err := ts.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(t.Text, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid %s %q", t.Line, what, t.Text)
	}
	return v, nil
}

// integer 读取一个整数
func (ts *tokenList) integer(what string) (int, error) {
	t, err := ts.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(t.Text)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid %s %q", t.Line, what, t.Text)
	}
	return v, nil
}

// remaining 剩余未读取的词数
func (ts *tokenList) remaining() int { return len(ts.list) - ts.pos }

// rest 剩余未读取的词
func (ts *tokenList) rest() []token { return ts.list[ts.pos:] }
