package scoring

import (
	"strconv"
	"strings"
)

// AnswerSelection maps a question id (scoped to its instrument) to the raw
// option string the respondent chose, e.g. "A. 经常 (5分)".
type AnswerSelection map[int]string

// ParsePointValue extracts the embedded point value from an option string.
// Options carry their score in parentheses ("A. 经常 (5分)"); fullwidth
// parentheses are accepted. A false return means the answer contributes
// nothing; callers tally it as a parse warning instead of failing.
func ParsePointValue(option string) (int, bool) {
	s := strings.ReplaceAll(option, "（", "(")
	open := strings.Index(s, "(")
	if open < 0 {
		return 0, false
	}
	rest := s[open+1:]
	mark := strings.Index(rest, "分")
	if mark < 0 {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(rest[:mark]))
	if err != nil {
		return 0, false
	}
	return v, true
}

func splitGuide(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return []string{}
	}
	if strings.Contains(text, "|") {
		return strings.Split(text, "|")
	}
	return strings.Split(text, "/")
}
