// Package lsp serves diagnostics and completion for pattern files: plain
// text files with one password template per line. Lines starting with # are
// comments.
package lsp

import (
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/pafw/generate"
	"github.com/dhamidi/pafw/pattern"
)

const lsName = "pafw"

type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string

	mu    sync.Mutex
	files map[string]string
}

func NewServer(version string) *Server {
	s := &Server{
		version: version,
		files:   make(map[string]string),
	}

	s.handler = protocol.Handler{
		Initialize:             s.initialize,
		Initialized:            s.initialized,
		Shutdown:               s.shutdown,
		SetTrace:               s.setTrace,
		TextDocumentDidOpen:    s.textDocumentDidOpen,
		TextDocumentDidChange:  s.textDocumentDidChange,
		TextDocumentDidClose:   s.textDocumentDidClose,
		TextDocumentDidSave:    s.textDocumentDidSave,
		TextDocumentCompletion: s.textDocumentCompletion,
	}

	s.server = server.NewServer(&s.handler, lsName, false)

	return s
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{"{", "+"},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.updateFile(params.TextDocument.URI, params.TextDocument.Text)
	s.publishDiagnostics(ctx, params.TextDocument.URI)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			s.updateFile(params.TextDocument.URI, textChange.Text)
			s.publishDiagnostics(ctx, params.TextDocument.URI)
		}
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.mu.Lock()
	delete(s.files, params.TextDocument.URI)
	s.mu.Unlock()
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		s.updateFile(params.TextDocument.URI, *params.Text)
		s.publishDiagnostics(ctx, params.TextDocument.URI)
	}
	return nil
}

func (s *Server) updateFile(uri, content string) {
	s.mu.Lock()
	s.files[uri] = content
	s.mu.Unlock()
}

func (s *Server) publishDiagnostics(ctx *glsp.Context, uri string) {
	s.mu.Lock()
	content := s.files[uri]
	s.mu.Unlock()

	diagnostics := Diagnose(content)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// Diagnose validates each template line of a pattern file and reports one
// error diagnostic per broken line. The returned slice is never nil, so
// publishing it clears stale diagnostics.
func Diagnose(content string) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	severity := protocol.DiagnosticSeverityError
	source := lsName

	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		err := pattern.Check(line)
		if err == nil {
			continue
		}

		message := err.Error()
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: protocol.UInteger(i), Character: 0},
				End:   protocol.Position{Line: protocol.UInteger(i), Character: protocol.UInteger(len(line))},
			},
			Severity: &severity,
			Source:   &source,
			Message:  message,
		})
	}

	return diagnostics
}

func (s *Server) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	s.mu.Lock()
	content, ok := s.files[params.TextDocument.URI]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}

	line := int(params.Position.Line)
	col := int(params.Position.Character)

	trigger := triggerAt(content, line, col)
	if trigger == 0 {
		return nil, nil
	}

	names := generate.BuiltinNames()
	kind := protocol.CompletionItemKindFunction
	if trigger == '+' {
		names = generate.ModifierNames()
		kind = protocol.CompletionItemKindMethod
	}

	var items []protocol.CompletionItem
	for _, name := range names {
		items = append(items, protocol.CompletionItem{
			Label: name,
			Kind:  &kind,
		})
	}
	return items, nil
}

// triggerAt reports the completion trigger character just before the cursor,
// or 0 when the cursor does not follow one.
func triggerAt(content string, line, col int) byte {
	lines := strings.Split(content, "\n")
	if line < 0 || line >= len(lines) {
		return 0
	}

	text := lines[line]
	if col-1 < 0 || col-1 >= len(text) {
		return 0
	}

	switch text[col-1] {
	case '{', '+':
		return text[col-1]
	}
	return 0
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
