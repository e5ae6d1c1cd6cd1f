// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package markup

import (
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// bracketedText matches the first complete "<name>inner</name>" span. The
// closing tag must repeat the captured name, which needs a backreference.
var bracketedText = regexp2.MustCompile(`^(.*?)<([a-zA-Z0-9 ]+)>(.*?)</\2>`, regexp2.Singleline)

// ExtractNext splits text around its first complete tag span.
//
// lead is the text before the opening tag, tag the tag name, inner the text
// between the tags and trail everything after the closing tag. When text
// holds no complete span the whole input is returned as lead and the other
// results are empty.
func ExtractNext(text string) (lead, tag, inner, trail string) {
	m, err := bracketedText.FindStringMatch(text)
	if err != nil || m == nil {
		return text, "", "", ""
	}

	// regexp2 reports positions in runes, counting each invalid UTF-8 byte as
	// one rune. Slicing text by byte offsets keeps the input bytes intact.
	span := func(g *regexp2.Group) string {
		start := byteOffset(text, 0, g.Index)
		return text[start:byteOffset(text, start, g.Length)]
	}
	lead = span(m.GroupByNumber(1))
	tag = span(m.GroupByNumber(2))
	inner = span(m.GroupByNumber(3))
	trail = text[byteOffset(text, 0, m.Index+m.Length):]
	return lead, tag, inner, trail
}

// byteOffset advances n runes from the byte offset from in text.
func byteOffset(text string, from, n int) int {
	off := from
	for ; n > 0 && off < len(text); n-- {
		_, size := utf8.DecodeRuneInString(text[off:])
		off += size
	}
	return off
}

// Block is one top-level tag span of a document.
type Block struct {
	Tag  string
	Body string
}

// SplitBlocks returns the top-level tag spans of doc in order, without
// resolving their contents. Text outside complete spans is dropped.
func SplitBlocks(doc string) []Block {
	var blocks []Block
	for doc != "" {
		_, tag, inner, trail := ExtractNext(doc)
		if tag == "" {
			break
		}
		blocks = append(blocks, Block{Tag: tag, Body: inner})
		doc = trail
	}
	return blocks
}
