package config

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/specialistvlad/mailassembler/internal/ctxlog"
)

// ParmLoader reads the legacy parameters.txt format: one key=value pair per
// line, '#' comments and blank lines ignored. Keys are compared ignoring case
// and spaces.
type ParmLoader struct{}

// parmKeys maps normalized keys to the field they set. The long names are
// the ones the report generator's parameter file already uses.
var parmKeys = map[string]func(*Parameters, string){
	"programanalyzerreportsdir": func(p *Parameters, v string) { p.ReportsDir = v },
	"reportsdir":                func(p *Parameters, v string) { p.ReportsDir = v },
	"pmatemplatefile":           func(p *Parameters, v string) { p.TemplateFile = v },
	"templatefile":              func(p *Parameters, v string) { p.TemplateFile = v },
	"mailformat":                func(p *Parameters, v string) { p.MailFormat = v },
	"outputfile":                func(p *Parameters, v string) { p.OutputFile = v },
}

// Load implements Loader.
func (ParmLoader) Load(ctx context.Context, path string) (*Parameters, error) {
	logger := ctxlog.FromContext(ctx)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parameter file: %w", err)
	}
	defer file.Close()

	params := &Parameters{}
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%s:%d: expected key=value, got %q", path, lineNo, line)
		}
		set, known := parmKeys[normalizeKey(key)]
		if !known {
			logger.Debug("Ignoring unknown parameter.", "file", path, "line", lineNo, "key", strings.TrimSpace(key))
			continue
		}
		set(params, unquote(strings.TrimSpace(value)))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read parameter file %s: %w", path, err)
	}
	return params, nil
}

func normalizeKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' && s[len(s)-1] == '"' || s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
