// Package lsp is a language server that reports the syntax and semantic
// diagnostics of Kite documents as they are edited.
package lsp

import (
	"bytes"
	"net/url"
	"path/filepath"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/kitejava/compile"
	"github.com/dhamidi/kitejava/config"
	"github.com/dhamidi/kitejava/diag"
	"github.com/dhamidi/kitejava/resolve"
)

const lsName = "kite"

var log = commonlog.GetLogger("kite.lsp")

type Server struct {
	workspace *Workspace
	handler   protocol.Handler
	server    *server.Server
	version   string
}

func NewServer(version string) *Server {
	ls := &Server{
		version: version,
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	ls.workspace = NewWorkspace(rootDir, workspaceOptions(rootDir))

	capabilities := ls.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

// workspaceOptions reads the project configuration under rootDir. A broken
// configuration falls back to the defaults so editing still works.
func workspaceOptions(rootDir string) compile.Options {
	cfg, err := config.Find(rootDir)
	if err != nil {
		log.Warningf("ignoring configuration: %s", err)
		return compile.Options{}
	}
	opts := compile.Options{WarningsAsErrors: cfg.WarningsAsErrors}
	if entries := cfg.SearchPathEntries(); len(entries) > 0 {
		sp, err := resolve.New(entries...)
		if err != nil {
			log.Warningf("ignoring search path: %s", err)
		} else {
			opts.SearchPath = sp
		}
	}
	return opts
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Infof("serving %s", ls.workspace.RootDir())
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	doc := ls.workspace.Update(path, params.TextDocument.Version, []byte(params.TextDocument.Text))
	ls.publish(ctx, params.TextDocument.URI, doc)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			doc := ls.workspace.Update(path, params.TextDocument.Version, []byte(textChange.Text))
			ls.publish(ctx, params.TextDocument.URI, doc)
		}
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.workspace.Remove(path)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	var doc *Document
	if params.Text != nil {
		var version int32
		if prev := ls.workspace.Get(path); prev != nil {
			version = prev.Version
		}
		doc = ls.workspace.Update(path, version, []byte(*params.Text))
	} else if doc, err = ls.workspace.Reload(path); err != nil {
		log.Warningf("reloading %s: %s", path, err)
		return nil
	}
	ls.publish(ctx, params.TextDocument.URI, doc)
	return nil
}

func (ls *Server) publish(ctx *glsp.Context, uri protocol.DocumentUri, doc *Document) {
	version := protocol.UInteger(doc.Version)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Version:     &version,
		Diagnostics: toProtocolDiagnostics(doc.Content, doc.Diagnostics),
	})
}

// toProtocolDiagnostics converts positions to LSP ranges. Columns are byte
// offsets in the source and UTF-16 code units on the wire.
func toProtocolDiagnostics(content []byte, diags []diag.Diagnostic) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, len(diags))
	source := lsName
	lines := bytes.Split(content, []byte("\n"))
	for _, d := range diags {
		severity := toProtocolSeverity(d.Severity)
		var start protocol.Position
		width := protocol.UInteger(1)
		if d.Pos.IsValid() {
			start.Line = protocol.UInteger(d.Pos.Line - 1)
			start.Character, width = utf16Column(lines, d.Pos.Line, d.Pos.Column)
		}
		end := start
		end.Character += width
		out = append(out, protocol.Diagnostic{
			Range:    protocol.Range{Start: start, End: end},
			Severity: &severity,
			Source:   &source,
			Message:  d.Message,
		})
	}
	return out
}

// utf16Column returns the UTF-16 offset of a byte column and the width of
// the character found there. Columns past the known text count one unit
// per byte.
func utf16Column(lines [][]byte, line, col int) (protocol.UInteger, protocol.UInteger) {
	if line < 1 || line > len(lines) {
		return protocol.UInteger(col), 1
	}
	text := lines[line-1]
	units := 0
	i := 0
	for i < col && i < len(text) {
		r, size := utf8.DecodeRune(text[i:])
		units += runeUnits(r)
		i += size
	}
	units += col - i
	if col < 0 || col >= len(text) {
		return protocol.UInteger(max(units, 0)), 1
	}
	r, _ := utf8.DecodeRune(text[col:])
	return protocol.UInteger(units), protocol.UInteger(runeUnits(r))
}

func runeUnits(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}

func toProtocolSeverity(s diag.Severity) protocol.DiagnosticSeverity {
	switch s {
	case diag.Warning:
		return protocol.DiagnosticSeverityWarning
	default:
		return protocol.DiagnosticSeverityError
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
