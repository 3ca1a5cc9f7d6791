package codefmt

import (
	"go/types"
	"io"

	"github.com/emirpasic/gods/maps/treemap"
	"golang.org/x/tools/go/packages"
)

// Writer is a writer for generated code. Packages referred by types written
// through the writer are recorded to be imported.
type Writer struct {
	w       io.Writer
	pkg     *packages.Package
	fmt     Formatter
	imports *imports
	ns      NS
}

// imports is shared by all copies of a [Writer].
type imports struct {
	byPath *treemap.Map // path -> Import, sorted by path
	byName map[string]string
}

// NewWriter creates a new [Writer]. It does not initialize the namespace. To
// specify a namespace, use [Writer.WithNS].
func NewWriter(w io.Writer, pkg *packages.Package) *Writer {
	wr := &Writer{
		w:   w,
		pkg: pkg,
		imports: &imports{
			byPath: treemap.NewWithStringComparator(),
			byName: make(map[string]string),
		},
		ns: nil,
	}
	wr.fmt = New(pkg)
	wr.fmt.Qualifier = wr.qualify
	return wr
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.w.Write(p)
}

// Printf writes a formatted string to the underlying writer using
// [Formatter.Fprintf]. Types formatted by %t or %q are qualified by their
// import names.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return w.fmt.Fprintf(w.w, format, args...)
}

// Sprintf creates a formatted string using [Formatter.Sprintf].
func (w *Writer) Sprintf(format string, args ...any) string {
	return w.fmt.Sprintf(format, args...)
}

// Type returns the code of the given type and records its packages to import.
func (w *Writer) Type(typ types.Type) string {
	return w.fmt.Type(typ)
}

// Reserve marks a name as used in the namespace of the writer. Imports
// recorded later avoid the name. It panics if the writer has no namespace.
func (w *Writer) Reserve(name string) bool {
	return w.ns.Reserve(name)
}

// NS returns a copy of the namespace of the writer. Names reserved in the
// copy do not affect the writer.
func (w *Writer) NS() NS {
	if w.ns == nil {
		return make(NS)
	}
	return w.ns.Clone()
}

// WithNS copies the writer and sets a new namespace.
func (w *Writer) WithNS(ns NS) *Writer {
	cp := *w
	cp.ns = ns
	return &cp
}

// Import describes a package imported by the generated code.
type Import struct {
	Path string
	Name string

	// HasAlias indicates that the import needs an explicit name.
	HasAlias bool
}

// Imports returns the collected imports sorted by path.
func (w *Writer) Imports() []Import {
	imps := make([]Import, 0, w.imports.byPath.Size())
	it := w.imports.byPath.Iterator()
	for it.Next() {
		imps = append(imps, it.Value().(Import))
	}
	return imps
}

// qualify is the [types.Qualifier] of the writer. It records the package to
// import and returns its name in the generated file.
func (w *Writer) qualify(pkg *types.Package) string {
	if pkg.Path() == w.pkg.PkgPath {
		return ""
	}
	return w.Import(pkg.Path(), pkg.Name())
}

// Import adds an import for the package with the given path and name. It
// returns the name of the imported package. The name might be different if it
// has tried to resolve name conflicts.
//
//	// fmtName can be used to refer to the "fmt" package without any name conflict.
//	fmtName := w.Import("fmt", "fmt")
//	w.Printf("%s.Sprintf(\"Hello, World!\")", fmtName)
//
// Call [Writer.Imports] to retrieve the recorded imports.
func (w *Writer) Import(path, name string) string {
	if imp, ok := w.imports.byPath.Get(path); ok {
		return imp.(Import).Name
	}

	for alias := range DisambiguateName(name) {
		if _, ok := w.imports.byName[alias]; ok {
			continue
		}
		if w.taken(alias) {
			continue
		}
		w.imports.byName[alias] = path
		w.imports.byPath.Put(path, Import{Path: path, Name: alias, HasAlias: alias != name})
		return alias
	}

	panic("unreachable")
}

// taken reports whether an import name would conflict with a package-level
// name. Without a namespace, the package scope is looked up.
func (w *Writer) taken(name string) bool {
	if w.ns != nil {
		return w.ns.Has(name)
	}
	return w.pkg.Types != nil && w.pkg.Types.Scope().Lookup(name) != nil
}
