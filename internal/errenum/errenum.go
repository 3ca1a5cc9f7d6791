package errenuminternal

import (
	"bytes"
	"fmt"
	"go/format"
	"go/types"
	"io"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/errenum/internal/codefmt"
	"github.com/sublee/errenum/internal/errenum/emit"
	"github.com/sublee/errenum/internal/errenum/parse"
	"github.com/sublee/errenum/internal/errenum/plan"
)

// DefaultOutFile is the default name of the generated file in each package.
const DefaultOutFile = "errenum_gen.go"

// Errenum generates enum code for the target package. Call [Errenum.Build]
// and then [Errenum.Generate] to get the generated code. All potential errors
// are returned by [Errenum.Build]. Once it succeeds, [Errenum.Generate] never
// fails.
type Errenum struct {
	p   *parse.Parser
	buf *bytes.Buffer
	w   *codefmt.Writer

	enums []*parse.Enum
}

// New creates a new [Errenum] for the given package. The package must have
// its Syntax, Types and TypesInfo. Type errors in the package are tolerated
// because the package may refer to declarations which are not generated yet.
// outFile is the base name of the generated file, whose declarations are
// ignored.
func New(pkg *packages.Package, outFile string) (*Errenum, error) {
	parser, err := parse.New(pkg, outFile)
	if err != nil {
		return nil, err
	}

	// Declarations in the generated file are going to be replaced. Their
	// names are free to use.
	ns := codefmt.NewNS(pkg.Types.Scope(), func(obj types.Object) bool {
		return parser.IsOutFile(obj.Pos())
	})

	var buf bytes.Buffer
	return &Errenum{
		p:   parser,
		buf: &buf,
		w:   codefmt.NewWriter(&buf, pkg).WithNS(ns),
	}, nil
}

// Build reads and validates the enum declarations in the package. All
// potential errors are returned by this method. It must be called before
// [Errenum.Generate].
func (eg *Errenum) Build() error {
	enums, err := eg.p.Parse()
	if err != nil {
		return err
	}
	eg.enums = enums
	return nil
}

// Enums returns the enums found by [Errenum.Build].
func (eg *Errenum) Enums() []*parse.Enum { return eg.enums }

// Generate generates the code of the enums. It must be called after
// [Errenum.Build] succeeds. It returns nil if the package declares no enums.
func (eg *Errenum) Generate() []byte {
	if len(eg.enums) == 0 {
		return nil
	}
	// Imports must not collide with the generated declarations.
	for _, enum := range eg.enums {
		for _, name := range enum.DeclNames() {
			eg.w.Reserve(name)
		}
	}
	for _, enum := range eg.enums {
		emit.Enum(eg.w, enum, plan.Resolve(enum))
	}
	return eg.frameCode()
}

func (eg *Errenum) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by github.com/sublee/errenum%s. DO NOT EDIT.\n\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n\n", eg.p.Pkg().Name)

	if imports := eg.w.Imports(); len(imports) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for _, imp := range imports {
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", imp.Name, imp.Path)
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path)
			}
		}
		fmt.Fprintf(&buf, ")\n\n")
	}

	_, _ = io.Copy(&buf, eg.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
