package domain

import (
	"runtime"
	"strings"
)

// NotePlaceholder is replaced by the document path in a build command
// template.
const NotePlaceholder = "{{note}}"

// DefaultCommand is the build command used when nothing else is configured.
const DefaultCommand = "latexmk -pdf " + NotePlaceholder

// RenderCommand substitutes every placeholder in template with the quoted
// source path. A template without a placeholder runs as is for every unit.
func RenderCommand(template, source string) string {
	if !strings.Contains(template, NotePlaceholder) {
		return template
	}

	return strings.ReplaceAll(template, NotePlaceholder, shellQuote(source))
}

func shellQuote(s string) string {
	if s != "" && strings.IndexFunc(s, needsQuoting) < 0 {
		return s
	}

	if runtime.GOOS == "windows" {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}

	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func needsQuoting(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case strings.ContainsRune("-_./+=:,@%", r):
		return false
	}

	return true
}
