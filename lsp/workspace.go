package lsp

import (
	"os"
	"sync"

	"github.com/dhamidi/kitejava/compile"
	"github.com/dhamidi/kitejava/diag"
)

// Workspace tracks the open documents and their latest diagnostics.
type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	options compile.Options
	docs    map[string]*Document
}

type Document struct {
	Path        string
	Content     []byte
	Version     int32
	Diagnostics []diag.Diagnostic

	// Err is set when the document could not be analyzed at all.
	Err error
}

func NewWorkspace(rootDir string, opts compile.Options) *Workspace {
	return &Workspace{
		rootDir: rootDir,
		options: opts,
		docs:    make(map[string]*Document),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

// Update analyzes content as the new text of path and returns the
// resulting document.
func (w *Workspace) Update(path string, version int32, content []byte) *Document {
	doc := &Document{Path: path, Content: content, Version: version}
	_, doc.Diagnostics, doc.Err = compile.Analyze(path, content, w.options)
	if doc.Err != nil {
		log.Errorf("analyzing %s: %s", path, doc.Err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.docs[path] = doc
	return doc
}

// Reload reads path from disk, keeping the last known version.
func (w *Workspace) Reload(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var version int32
	if doc := w.Get(path); doc != nil {
		version = doc.Version
	}
	return w.Update(path, version, content), nil
}

func (w *Workspace) Remove(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.docs, path)
}

func (w *Workspace) Get(path string) *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.docs[path]
}

func (w *Workspace) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.docs)
}
