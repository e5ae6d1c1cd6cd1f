// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package markup

import (
	"regexp"
	"strings"
	"unicode"
)

// Delimiter tokens returned by LocateNext for double brackets.
const (
	OpenBrackets  = "[["
	CloseBrackets = "]]"
)

// emptyTag is the token reported for `<>`. It can never be closed, so the
// balance checker rejects it.
const emptyTag = "<>"

var (
	// An angle tag with no other delimiter characters inside it, preceded by
	// text that contains no '<'.
	angleDelimiter = regexp.MustCompile(`^[^<]*?<([^<>\[\]]*?)>`)
	// The earliest "[[" or "]]".
	bracketDelimiter = regexp.MustCompile(`(?s)^.*?(\[\[|\]\])`)
)

// LocateNext finds the next structurally significant delimiter in text and
// returns it together with the text that follows it.
//
// Opening tags are returned as their name truncated at the first whitespace
// (`<a href=x>` yields "a"), closing tags as "/name", and double brackets as
// OpenBrackets or CloseBrackets. When no delimiter is left both results are
// empty. If an angle tag and a double bracket are both present, the match that
// ends first wins; on an exact tie the angle tag wins.
func LocateNext(text string) (token string, rest string) {
	if text == "" {
		return "", ""
	}

	angle := angleDelimiter.FindStringSubmatchIndex(text)
	bracket := bracketDelimiter.FindStringSubmatchIndex(text)

	switch {
	case angle == nil && bracket == nil:
		return "", ""
	case bracket == nil || (angle != nil && angle[1] <= bracket[1]):
		return tagToken(text[angle[2]:angle[3]]), text[angle[1]:]
	default:
		return text[bracket[2]:bracket[3]], text[bracket[1]:]
	}
}

// tagToken reduces the raw content of an angle tag to its name.
func tagToken(raw string) string {
	name := strings.TrimLeftFunc(raw, unicode.IsSpace)
	if i := strings.IndexFunc(name, unicode.IsSpace); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return emptyTag
	}
	return name
}
