package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/mailassembler/internal/attributes"
	"github.com/specialistvlad/mailassembler/internal/markup"
)

// Template block names.
const (
	BlockSelect     = "select"
	BlockHeader     = "header"
	BlockValue      = "value"
	BlockEmailBody  = "email body"
	BlockOutputFile = "inputFileName"
)

// ErrTemplateStructure is wrapped by errors about missing or misplaced blocks.
var ErrTemplateStructure = errors.New("malformed template")

// TemplateError reports a required template block that was not found where
// it was expected.
type TemplateError struct {
	Block string
	// Found is the tag that was found instead, if any.
	Found string
}

func (e *TemplateError) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("template has no <%s> block", e.Block)
	}
	return fmt.Sprintf("template: expected <%s> block, found <%s>", e.Block, e.Found)
}

// Unwrap makes errors.Is(err, ErrTemplateStructure) hold.
func (e *TemplateError) Unwrap() error {
	return ErrTemplateStructure
}

// Selection is the column and expected value that choose recipients. The
// header is kept normalized; the value may be empty.
type Selection struct {
	Header string
	Value  string
}

// Template is a parsed template document.
type Template struct {
	Selection Selection
	// Body is the raw substitution text.
	Body string
	// OutputFile overrides the batch file name when non-empty.
	OutputFile string
}

// ParseTemplate validates doc and extracts its blocks. The <select> block
// must come first; <email body> must follow it. An <inputFileName> block may
// appear anywhere after <select>.
func ParseTemplate(doc string) (*Template, error) {
	if err := markup.CheckBalance(doc); err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}

	blocks := markup.SplitBlocks(doc)
	if len(blocks) == 0 {
		return nil, &TemplateError{Block: BlockSelect}
	}
	if !isBlock(blocks[0], BlockSelect) {
		return nil, &TemplateError{Block: BlockSelect, Found: blocks[0].Tag}
	}

	selection, err := parseSelection(blocks[0].Body)
	if err != nil {
		return nil, err
	}
	tmpl := &Template{Selection: selection}

	foundBody := false
	for _, block := range blocks[1:] {
		switch {
		case isBlock(block, BlockEmailBody) && !foundBody:
			tmpl.Body = block.Body
			foundBody = true
		case isBlock(block, BlockOutputFile):
			tmpl.OutputFile = strings.TrimSpace(block.Body)
		case !foundBody:
			return nil, &TemplateError{Block: BlockEmailBody, Found: block.Tag}
		}
	}
	if !foundBody {
		return nil, &TemplateError{Block: BlockEmailBody}
	}
	return tmpl, nil
}

func parseSelection(body string) (Selection, error) {
	_, tag, header, rest := markup.ExtractNext(body)
	if !strings.EqualFold(tag, BlockHeader) {
		return Selection{}, &TemplateError{Block: BlockHeader, Found: tag}
	}
	_, tag, value, _ := markup.ExtractNext(rest)
	if !strings.EqualFold(tag, BlockValue) {
		return Selection{}, &TemplateError{Block: BlockValue, Found: tag}
	}
	return Selection{
		Header: strings.ToLower(strings.TrimSpace(header)),
		Value:  strings.TrimSpace(value),
	}, nil
}

func isBlock(b markup.Block, name string) bool {
	return attributes.NormalizeKey(b.Tag) == attributes.NormalizeKey(name)
}
