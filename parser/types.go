package parser

import (
	"strings"

	"github.com/ardanlabs/glwrapgen/orderedmap"
)

// Param is one entry of a prototype's parameter list. Name is kept as
// written, including any pointer declarator glued to it.
type Param struct {
	Type string
	Name string
}

// Decl renders the parameter the way it appears in a declaration.
func (p Param) Decl() string {
	return p.Type + " " + p.Name
}

// CallName is the name with pointer declarators removed, e.g. "*ptr" -> "ptr".
func (p Param) CallName() string {
	return p.Name[strings.LastIndex(p.Name, "*")+1:]
}

type Prototype struct {
	Name       string
	ReturnType string
	Params     []Param

	// Line is the 1-based header line the prototype was read from.
	Line int
}

// Prototypes maps a function name to its prototype, keeping the order in
// which names were declared in the macro source.
type Prototypes = orderedmap.OrderedMap[string, Prototype]
