// Package project loads project documents and the targets they import.
package project

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/msb/internal/adapters/xmldoc"
	"go.trai.ch/msb/internal/core/domain"
	"go.trai.ch/msb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectLoader = (*Loader)(nil)

// Loader implements ports.ProjectLoader on top of an fs.FS.
//
// Import paths are resolved relative to the directory of the importing file.
// Targets pulled in through an import are marked imported and are read-only.
type Loader struct {
	fsys   fs.FS
	rooted bool
	log    ports.Logger
}

// NewLoader creates a Loader reading from the host filesystem.
// Paths passed to Load may be absolute or relative to the working directory.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{fsys: os.DirFS("/"), rooted: true, log: log}
}

// NewFSLoader creates a Loader reading slash-separated paths from fsys.
func NewFSLoader(fsys fs.FS, log ports.Logger) *Loader {
	return &Loader{fsys: fsys, log: log}
}

// Load parses the project at p and every document it imports.
func (l *Loader) Load(p string) (*domain.Project, error) {
	name, err := l.name(p)
	if err != nil {
		return nil, err
	}

	doc, err := l.parse(name)
	if err != nil {
		return nil, err
	}

	project, err := domain.NewProject(doc.Root())
	if err != nil {
		return nil, zerr.With(err, "path", name)
	}

	w := &walker{loader: l, targets: project.Targets(), seen: map[string]bool{name: true}}
	if err := w.walk(doc.Root(), []string{name}, false); err != nil {
		return nil, err
	}

	l.log.Debug("project loaded", "path", name, "targets", project.Targets().Count(), "imports", len(w.seen)-1)
	return project, nil
}

func (l *Loader) name(p string) (string, error) {
	if p == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "project path is required"), "argument", "path")
	}

	if l.rooted {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to resolve project path"), "path", p)
		}
		p = strings.TrimPrefix(filepath.ToSlash(abs), "/")
	}

	name := path.Clean(filepath.ToSlash(p))
	if !fs.ValidPath(name) {
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "invalid project path"), "path", p)
	}
	return name, nil
}

func (l *Loader) parse(name string) (*xmldoc.Document, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open project file"), "path", name)
	}
	defer func() { _ = f.Close() }()

	doc, err := xmldoc.Parse(f)
	if err != nil {
		return nil, zerr.With(err, "path", name)
	}
	return doc, nil
}

// walker collects targets in document order, inlining imports at the
// position of their <Import> element.
type walker struct {
	loader  *Loader
	targets *domain.TargetCollection
	seen    map[string]bool
}

func (w *walker) walk(root domain.Node, chain []string, imported bool) error {
	current := chain[len(chain)-1]

	for _, child := range root.Children() {
		switch child.Tag() {
		case domain.TargetElement:
			target, err := domain.NewTarget(child, imported)
			if err != nil {
				return zerr.With(err, "path", current)
			}
			if err := w.targets.Add(target); err != nil {
				return err
			}
		case domain.ImportElement:
			if err := w.importProject(child.Attr(domain.AttrProject), chain); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *walker) importProject(ref string, chain []string) error {
	current := chain[len(chain)-1]
	if ref == "" {
		err := zerr.With(zerr.Wrap(domain.ErrMalformedDocument, "import has no project"), "missing_attribute", domain.AttrProject)
		return zerr.With(err, "path", current)
	}

	names, wildcard, err := w.resolve(current, ref)
	if err != nil {
		return err
	}

	for _, name := range names {
		if slices.Contains(chain, name) {
			if wildcard {
				continue
			}
			err := zerr.With(zerr.Wrap(domain.ErrImportCycle, "project imports itself"), "path", name)
			return zerr.With(err, "chain", strings.Join(append(slices.Clone(chain), name), " -> "))
		}
		if w.seen[name] {
			w.loader.log.Warn("project imported more than once, skipping", "path", name, "importer", current)
			continue
		}
		w.seen[name] = true

		doc, err := w.loader.parse(name)
		if err != nil {
			return zerr.With(err, "importer", current)
		}
		if tag := doc.Root().Tag(); tag != domain.ProjectElement {
			err := zerr.With(zerr.Wrap(domain.ErrMalformedDocument, "unexpected root element"), "element", tag)
			return zerr.With(err, "path", name)
		}

		if err := w.walk(doc.Root(), append(slices.Clone(chain), name), true); err != nil {
			return err
		}
	}
	return nil
}

// resolve turns an import reference into file names. Wildcard references
// expand to the sorted matches, may match nothing, and never match a file
// that is currently being loaded.
func (w *walker) resolve(importer, ref string) ([]string, bool, error) {
	ref = strings.ReplaceAll(ref, `\`, "/")

	var name string
	if path.IsAbs(ref) {
		if !w.loader.rooted {
			return nil, false, zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "absolute import outside of filesystem root"), "import", ref)
		}
		name = path.Clean(strings.TrimPrefix(ref, "/"))
	} else {
		name = path.Join(path.Dir(importer), ref)
	}

	if !fs.ValidPath(name) {
		err := zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "import escapes filesystem root"), "import", ref)
		return nil, false, zerr.With(err, "importer", importer)
	}

	if !strings.ContainsAny(name, "*?[") {
		return []string{name}, false, nil
	}

	matches, err := fs.Glob(w.loader.fsys, name)
	if err != nil {
		err := zerr.With(zerr.Wrap(err, "invalid import pattern"), "import", ref)
		return nil, false, zerr.With(err, "importer", importer)
	}
	slices.Sort(matches)
	return matches, true, nil
}
