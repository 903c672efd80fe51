// Package resolve finds the files that define a type name on a
// classpath-like search path of directories and .jar or .zip archives.
package resolve

import (
	"archive/zip"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/tidwall/btree"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("kite.resolve")

// Kind is the kind of artifact a type was found in. Lower kinds win when
// one search path entry holds several artifacts for the same name.
type Kind int

const (
	KiteSource Kind = iota
	JavaSource
	ClassFile
)

func (k Kind) String() string {
	switch k {
	case KiteSource:
		return "kite"
	case JavaSource:
		return "java"
	case ClassFile:
		return "class"
	}
	return "unknown"
}

var extensions = map[string]Kind{
	".kite":  KiteSource,
	".java":  JavaSource,
	".class": ClassFile,
}

// Location says where a type is defined. Entry is set when the type lives
// inside an archive at Path.
type Location struct {
	Name  string
	Kind  Kind
	Path  string
	Entry string
}

func (l Location) String() string {
	if l.Entry != "" {
		return l.Path + "!/" + l.Entry
	}
	return l.Path
}

// SearchPath is an ordered list of directories and archives. The first
// entry defining a name wins.
type SearchPath struct {
	entries []string
	index   btree.Map[string, Location]
}

// New indexes the given entries. Missing entries are skipped with a
// warning; an unreadable archive is an error.
func New(entries ...string) (*SearchPath, error) {
	sp := &SearchPath{}
	for _, entry := range entries {
		if err := sp.add(entry); err != nil {
			return nil, err
		}
	}
	log.Debugf("indexed %d types from %d entries", sp.index.Len(), len(sp.entries))
	return sp, nil
}

// Entries returns the indexed entries in search order.
func (sp *SearchPath) Entries() []string {
	return sp.entries
}

func (sp *SearchPath) add(entry string) error {
	info, err := os.Stat(entry)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warningf("search path entry %s does not exist", entry)
			return nil
		}
		return fmt.Errorf("stat search path entry: %w", err)
	}
	sp.entries = append(sp.entries, entry)

	found := map[string]Location{}
	if info.IsDir() {
		err = indexDir(entry, found)
	} else {
		switch strings.ToLower(filepath.Ext(entry)) {
		case ".jar", ".zip":
			err = indexArchive(entry, found)
		default:
			return fmt.Errorf("search path entry %s: not a directory, .jar or .zip", entry)
		}
	}
	if err != nil {
		return err
	}

	for name, loc := range found {
		if _, ok := sp.index.Get(name); !ok {
			sp.index.Set(name, loc)
		}
	}
	return nil
}

func indexDir(root string, found map[string]Location) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		record(found, filepath.ToSlash(rel), Location{Path: p})
		return nil
	})
}

func indexArchive(archive string, found map[string]Location) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		record(found, f.Name, Location{Path: archive, Entry: f.Name})
	}
	return nil
}

// record adds the artifact at the slash separated relative path rel when
// it names a type. Nested class files (Outer$Inner.class) and module or
// package descriptors are skipped.
func record(found map[string]Location, rel string, loc Location) {
	kind, ok := extensions[path.Ext(rel)]
	if !ok {
		return
	}
	base := strings.TrimSuffix(path.Base(rel), path.Ext(rel))
	if base == "module-info" || base == "package-info" || strings.Contains(base, "$") {
		return
	}
	name := strings.ReplaceAll(strings.TrimSuffix(rel, path.Ext(rel)), "/", ".")
	loc.Name, loc.Kind = name, kind
	if prev, ok := found[name]; ok && prev.Kind <= kind {
		return
	}
	found[name] = loc
}

// Resolve looks up a fully qualified type name such as java.util.List.
func (sp *SearchPath) Resolve(name string) (Location, bool) {
	return sp.index.Get(name)
}

// Package lists the types directly inside pkg, ordered by name.
func (sp *SearchPath) Package(pkg string) []Location {
	prefix := pkg + "."
	if pkg == "" {
		prefix = ""
	}
	var out []Location
	iter := sp.index.Iter()
	for ok := iter.Seek(prefix); ok; ok = iter.Next() {
		name := iter.Key()
		if !strings.HasPrefix(name, prefix) {
			break
		}
		if !strings.Contains(name[len(prefix):], ".") {
			out = append(out, iter.Value())
		}
	}
	return out
}

// Len is the number of indexed type names.
func (sp *SearchPath) Len() int {
	return sp.index.Len()
}

// Walk calls fn for every indexed type in name order until fn returns
// false.
func (sp *SearchPath) Walk(fn func(Location) bool) {
	sp.index.Scan(func(_ string, loc Location) bool {
		return fn(loc)
	})
}
