package generator

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/ardanlabs/glwrapgen/config"
	"github.com/ardanlabs/glwrapgen/parser"
)

var preambleTmpl = template.Must(template.New("preamble").Parse("" +
	"{{range .Banner}}// {{.}}\n{{end}}" +
	"\n" +
	"// This is a generated file\n" +
	"\n" +
	"// No header guards\n" +
	"{{range .Required}}" +
	"\n" +
	"#ifndef {{.}}\n" +
	"\t#error \"You must define {{.}} before including this file\"\n" +
	"#endif\n" +
	"{{end}}" +
	"\n"))

type Generator struct {
	profile config.Profile
}

func New(profile config.Profile) *Generator {
	return &Generator{
		profile: profile,
	}
}

// Line renders the wrapper macro invocation for one prototype.
func (g *Generator) Line(proto parser.Prototype) string {
	args := make([]string, 0, len(proto.Params)+1)
	args = append(args, g.profile.DeviceType+" "+g.profile.DeviceName)

	params := make([]string, 0, len(proto.Params))

	for _, p := range proto.Params {
		args = append(args, p.Decl())
		params = append(params, p.CallName())
	}

	pfn := "PFN" + strings.ToUpper(proto.Name) + "PROC"
	argList := strings.Join(args, ", ")
	paramList := strings.Join(params, ", ")

	if proto.ReturnType == "void" {
		return fmt.Sprintf("%s(%s, (%s), (%s), %s)",
			g.profile.WrapperMacro, proto.Name, argList, paramList, pfn)
	}

	return fmt.Sprintf("%s(%s, %s, (%s), (%s), %s)",
		g.profile.WrapperRetMacro, proto.ReturnType, proto.Name, argList, paramList, pfn)
}

// Lines renders every prototype, keeping the order of protos.
func (g *Generator) Lines(protos *parser.Prototypes) []string {
	lines := make([]string, 0, protos.Len())
	for _, proto := range protos.All() {
		lines = append(lines, g.Line(proto))
	}

	return lines
}

// Render writes the preamble followed by one line per prototype.
func (g *Generator) Render(w io.Writer, protos *parser.Prototypes) error {
	err := preambleTmpl.Execute(w, map[string]any{
		"Banner":   g.profile.Banner,
		"Required": []string{g.profile.WrapperRetMacro, g.profile.WrapperMacro},
	})
	if err != nil {
		return fmt.Errorf("writing preamble: %w", err)
	}

	for _, line := range g.Lines(protos) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return fmt.Errorf("writing wrapper lines: %w", err)
		}
	}

	return nil
}
