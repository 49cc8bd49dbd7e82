package main

import (
	"context"
	"errors"
	"math"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/signadot/emoji-format/go-emoji/catalog"
	"github.com/signadot/emoji-format/go-emoji/debug"
)

// publishDiagnostics parses the document as a catalog and reports the
// first error, if any.  An empty list clears previous diagnostics.
func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	if s.conn == nil {
		return
	}
	if !strings.HasSuffix(uri, ".catalog") {
		return
	}
	doc, ok := s.docs.get(uri)
	if !ok {
		return
	}

	diagnostics := []protocol.Diagnostic{}
	// parse with an unbounded ceiling so version gating never masks errors
	if _, err := catalog.Parse(doc.content, math.Inf(1)); err != nil {
		line := uint32(0)
		var pe *catalog.ParseError
		if errors.As(err, &pe) && pe.Line > 0 {
			line = uint32(pe.Line - 1)
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: 0},
				End:   protocol.Position{Line: line + 1, Character: 0},
			},
			Severity: protocol.DiagnosticSeverityError,
			Source:   "emoji",
			Message:  err.Error(),
		})
	}

	if debug.LSP() {
		debug.Logf("diagnostics %s: %d", uri, len(diagnostics))
	}
	if err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(uri),
		Diagnostics: diagnostics,
	}); err != nil && debug.LSP() {
		debug.Logf("publish diagnostics: %v", err)
	}
}
