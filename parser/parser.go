// Package parser extracts wrapped function names from a macro source and
// resolves their prototypes from a C header.
//
// Matching is line oriented on purpose. A prototype must sit on a single
// line and end with ");". Multi-line declarations, comments mentioning a
// name and typedef lines never match, and are skipped without error.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/ardanlabs/glwrapgen/config"
	"github.com/ardanlabs/glwrapgen/orderedmap"
)

const maxLineSize = 1 << 20

const declRe = `^(.*?)\s*\b%[1]s\b\s*\((.*?)\);`

// ExtractNames returns the function names declared in r, in order of
// appearance. Names declared more than once are returned more than once.
func ExtractNames(r io.Reader, p config.Profile) ([]string, error) {
	single := regexp.MustCompile(`^` + regexp.QuoteMeta(p.FunctionMacro) + `\((\w+),.*\)`)
	dual := regexp.MustCompile(`^` + regexp.QuoteMeta(p.DualFunctionMacro) + `\(.*?,.*?, (\w+),.*\)`)

	var names []string

	err := scanLines(r, func(line string) {
		m := single.FindStringSubmatch(line)
		if m == nil {
			m = dual.FindStringSubmatch(line)
		}
		if m != nil {
			names = append(names, m[1])
		}
	})
	if err != nil {
		return nil, fmt.Errorf("scanning macro source: %w", err)
	}

	return names, nil
}

// ExtractNamesFile is ExtractNames over the file at path.
func ExtractNamesFile(path string, p config.Profile) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names, err := ExtractNames(f, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return names, nil
}

type matcher struct {
	name string
	word *regexp.Regexp
	decl *regexp.Regexp
}

func newMatcher(name string) matcher {
	q := regexp.QuoteMeta(name)
	return matcher{
		name: name,
		word: regexp.MustCompile(`\b` + q + `\b`),
		decl: regexp.MustCompile(fmt.Sprintf(declRe, q)),
	}
}

func (m matcher) match(line string, decorations []string) (Prototype, bool) {
	if !m.word.MatchString(line) {
		return Prototype{}, false
	}

	sub := m.decl.FindStringSubmatch(line)
	if sub == nil {
		return Prototype{}, false
	}

	return Prototype{
		Name:       m.name,
		ReturnType: normalizeReturnType(sub[1], decorations),
		Params:     parseParams(sub[2]),
	}, true
}

// ResolvePrototypes scans the header in r once and returns the first
// matching prototype of every name. The result is ordered like names;
// names without a prototype are left out.
func ResolvePrototypes(names []string, r io.Reader, p config.Profile) (*Prototypes, error) {
	seen := make(map[string]bool, len(names))
	matchers := make([]matcher, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		matchers = append(matchers, newMatcher(name))
	}

	found := make(map[string]Prototype, len(matchers))
	lineNo := 0

	err := scanLines(r, func(line string) {
		lineNo++
		for _, m := range matchers {
			if _, ok := found[m.name]; ok {
				continue
			}
			if proto, ok := m.match(line, p.Decorations); ok {
				proto.Line = lineNo
				found[m.name] = proto
				break
			}
		}
	})
	if err != nil {
		return nil, fmt.Errorf("scanning header: %w", err)
	}

	protos := orderedmap.New[string, Prototype]()
	for _, m := range matchers {
		if proto, ok := found[m.name]; ok {
			protos.Set(m.name, proto)
		}
	}

	return protos, nil
}

// ResolvePrototypesFile is ResolvePrototypes over the header at path.
func ResolvePrototypesFile(names []string, path string, p config.Profile) (*Prototypes, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	protos, err := ResolvePrototypes(names, f, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return protos, nil
}

func normalizeReturnType(s string, decorations []string) string {
	for _, d := range decorations {
		s = strings.ReplaceAll(s, d, "")
	}

	return strings.TrimSpace(s)
}

// parseParams splits on ", " only. Commas nested inside a parameter are
// not supported.
func parseParams(text string) []Param {
	var params []Param

	for _, arg := range strings.Split(text, ", ") {
		tokens := strings.Fields(arg)
		if len(tokens) == 0 {
			continue
		}

		name := tokens[len(tokens)-1]
		if name == "void" {
			continue
		}

		params = append(params, Param{
			Type: strings.Join(tokens[:len(tokens)-1], " "),
			Name: name,
		})
	}

	return params
}

func scanLines(r io.Reader, fn func(line string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for sc.Scan() {
		fn(sc.Text())
	}

	return sc.Err()
}
