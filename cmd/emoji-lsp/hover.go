package main

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.lsp.dev/protocol"

	"github.com/signadot/emoji-format/go-emoji/catalog"
	"github.com/signadot/emoji-format/go-emoji/tone"
)

// Hover describes the emoji under the cursor: label, applied tones,
// tone support, keywords and the underlying scalars.
func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, ok := s.docs.get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}
	lines := strings.Split(doc.content, "\n")
	if int(params.Position.Line) >= len(lines) {
		return nil, nil
	}
	line := lines[params.Position.Line]
	target := emojiAt(line, byteColumn(line, int(params.Position.Character)))
	if target == "" {
		return nil, nil
	}
	text := s.hoverText(target)
	if text == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

func (s *Server) hoverText(target string) string {
	e, ok := s.resolver.Find(target)
	if !ok {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", target)
	if label, ok := s.notes.Label(e.Base); ok {
		sb.WriteString("**" + label + "**")
		if tones := tone.Extract(target); len(tones) > 0 {
			names := make([]string, 0, len(tones))
			for _, t := range tones {
				names = append(names, t.String())
			}
			sb.WriteString(" (" + strings.Join(names, ", ") + ")")
		}
		sb.WriteString("\n\n")
	}
	if e.ToneSupport != catalog.ToneNone {
		fmt.Fprintf(&sb, "skin tones: %s\n\n", e.ToneSupport)
	}
	if kw := s.notes.Keywords(e.Base); len(kw) > 0 {
		fmt.Fprintf(&sb, "keywords: %s\n\n", strings.Join(kw, ", "))
	}
	sb.WriteString(scalars(target))
	return sb.String()
}

// emojiAt returns the maximal run of non-ASCII runes covering the byte
// offset, or "" when the offset is on ASCII text. ZWJ, VS16 and tone
// scalars are all non-ASCII, so joined sequences stay in one run.
func emojiAt(line string, offset int) string {
	if len(line) == 0 {
		return ""
	}
	if offset >= len(line) {
		offset = len(line) - 1
	}
	for offset > 0 && !utf8.RuneStart(line[offset]) {
		offset--
	}
	if r, _ := utf8.DecodeRuneInString(line[offset:]); r < utf8.RuneSelf {
		return ""
	}
	start := offset
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(line[:start])
		if r < utf8.RuneSelf {
			break
		}
		start -= size
	}
	end := offset
	for end < len(line) {
		r, size := utf8.DecodeRuneInString(line[end:])
		if r < utf8.RuneSelf {
			break
		}
		end += size
	}
	return line[start:end]
}

// scalars renders s in U+ notation, one element per code point.
func scalars(s string) string {
	parts := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		parts = append(parts, fmt.Sprintf("U+%04X", r))
	}
	return strings.Join(parts, " ")
}
