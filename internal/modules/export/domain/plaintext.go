package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// FormatPlainText is served by the built-in exporter, so exporting works
// with no plugins configured.
const FormatPlainText = "txt"

var (
	markdownInline = strings.NewReplacer("**", "", "__", "", "`", "", "*", "", "_", "")
	markdownLink   = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
)

// StripMarkdown flattens explanation markdown into plain text lines.
// Headings lose their hashes, emphasis markers disappear, bullets are
// normalised and code fences are dropped.
func StripMarkdown(md string) []string {
	lines := strings.Split(md, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			trimmed = strings.TrimLeft(trimmed, "#")
			trimmed = strings.TrimSpace(trimmed)
			out = append(out, trimmed)
			continue
		}
		bullet := false
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			bullet = true
			trimmed = strings.TrimSpace(trimmed[2:])
		}
		trimmed = markdownLink.ReplaceAllString(trimmed, "$1")
		trimmed = markdownInline.Replace(trimmed)
		if bullet {
			trimmed = "- " + trimmed
		}
		out = append(out, trimmed)
	}
	return out
}

// RenderPlainText is the built-in txt rendering.
func RenderPlainText(doc Document) Rendering {
	var b strings.Builder
	b.WriteString(doc.Title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", utf8.RuneCountInString(doc.Title)))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(StripMarkdown(doc.Markdown), "\n"))
	b.WriteString("\n")
	return Rendering{Content: b.String(), Extension: FormatPlainText}
}
