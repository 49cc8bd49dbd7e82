package main

import (
	"context"
	"strings"

	"go.lsp.dev/protocol"
)

// Completion completes ":word" shortcodes against the annotation set.
// Each item replaces the shortcode, colon included, with the emoji.
func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc, ok := s.docs.get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}
	lines := strings.Split(doc.content, "\n")
	if int(params.Position.Line) >= len(lines) {
		return nil, nil
	}
	line := lines[params.Position.Line]
	cursor := byteColumn(line, int(params.Position.Character))
	start, word, ok := shortcodeAt(line, cursor)
	if !ok {
		return nil, nil
	}

	items := []protocol.CompletionItem{}
	for _, base := range s.notes.Search(word) {
		label, _ := s.notes.Label(base)
		items = append(items, protocol.CompletionItem{
			Label:      base + " " + label,
			Kind:       protocol.CompletionItemKindText,
			Detail:     strings.Join(s.notes.Keywords(base), ", "),
			FilterText: ":" + label,
			TextEdit: &protocol.TextEdit{
				Range: protocol.Range{
					Start: protocol.Position{
						Line:      params.Position.Line,
						Character: utf16Column(line, start),
					},
					End: params.Position,
				},
				NewText: base,
			},
		})
	}
	return &protocol.CompletionList{Items: items}, nil
}

// shortcodeAt scans back from cursor for a ":" introducing a
// shortcode. It returns the byte offset of the colon and the partial
// word typed after it. Whitespace ends the scan.
func shortcodeAt(line string, cursor int) (int, string, bool) {
	if cursor > len(line) {
		cursor = len(line)
	}
	for i := cursor - 1; i >= 0; i-- {
		switch line[i] {
		case ':':
			return i, line[i+1 : cursor], true
		case ' ', '\t':
			return 0, "", false
		}
	}
	return 0, "", false
}

// byteColumn converts a 0-based UTF-16 column to a byte offset in line.
func byteColumn(line string, col int) int {
	units := 0
	for i, r := range line {
		if units >= col {
			return i
		}
		units++
		if r > 0xFFFF {
			units++
		}
	}
	return len(line)
}

// utf16Column converts a byte offset in line to a 0-based UTF-16 column.
func utf16Column(line string, offset int) uint32 {
	units := uint32(0)
	for i, r := range line {
		if i >= offset {
			break
		}
		units++
		if r > 0xFFFF {
			units++
		}
	}
	return units
}
