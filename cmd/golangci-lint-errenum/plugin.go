// golangcilinterrenum package provides a plugin for golangci-lint to integrate
// the errenum analyzer. To build a custom golangci-lint binary with this
// plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-errenum binary reporting malformed errenum
// directives and stale generated files.
package golangcilinterrenum

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/errenum/pkg/errenumanalysis"
)

func init() {
	register.Plugin("errenum", New)
}

// Settings is the configuration of the plugin in .golangci.yml:
//
//	linters-settings:
//	  custom:
//	    errenum:
//	      type: module
//	      settings:
//	        out: errenum_gen.go
type Settings struct {
	Out string `json:"out"`
}

func New(settings any) (register.LinterPlugin, error) {
	s, err := register.DecodeSettings[Settings](settings)
	if err != nil {
		return nil, err
	}
	return ErrenumLinter{settings: s}, nil
}

type ErrenumLinter struct {
	settings Settings
}

func (l ErrenumLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	if l.settings.Out != "" {
		if err := errenumanalysis.Analyzer.Flags.Set("out", l.settings.Out); err != nil {
			return nil, err
		}
	}
	return []*analysis.Analyzer{errenumanalysis.Analyzer}, nil
}

// GetLoadMode requires type information because payload types are resolved
// by the type checker.
func (ErrenumLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
