// Command gentuple writes the fixed-arity composite folders of package octree.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

const (
	minArity = 2
	maxArity = 12
)

type arity struct {
	N       int
	Members []int
}

func (a arity) Sums() string {
	names := make([]string, 0, len(a.Members))
	for _, i := range a.Members {
		names = append(names, fmt.Sprintf("S%d", i))
	}
	return strings.Join(names, ", ")
}

var fileTemplate = template.Must(template.New("tuple").Parse(`// Code generated by gentuple; DO NOT EDIT.

package octree
{{range .}}
// Tuple{{.N}} is the Sum of a Folder{{.N}}.
type Tuple{{.N}}[{{.Sums}} any] struct {
{{- range .Members}}
	V{{.}} S{{.}}
{{- end}}
}

// Folder{{.N}} runs {{.N}} folders over the same items in a single traversal.
type Folder{{.N}}[Item, K, {{.Sums}} any] struct {
{{- range .Members}}
	F{{.}} Folder[Item, K, S{{.}}]
{{- end}}
}

// Compose{{.N}} combines {{.N}} folders into a Folder{{.N}}.
func Compose{{.N}}[Item, K, {{.Sums}} any](
{{- range .Members}}
	f{{.}} Folder[Item, K, S{{.}}],
{{- end}}
) Folder{{.N}}[Item, K, {{.Sums}}] {
	return Folder{{.N}}[Item, K, {{.Sums}}]{
{{- range .Members}}
		F{{.}}: f{{.}},
{{- end}}
	}
}

// Gather gathers the item with every member folder.
func (f Folder{{.N}}[Item, K, {{.Sums}}]) Gather(key K, item Item) Tuple{{.N}}[{{.Sums}}] {
	return Tuple{{.N}}[{{.Sums}}]{
{{- range .Members}}
		V{{.}}: f.F{{.}}.Gather(key, item),
{{- end}}
	}
}

// Fold unzips the children's tuples and folds each member independently.
func (f Folder{{.N}}[Item, K, {{.Sums}}]) Fold(sums []Tuple{{.N}}[{{.Sums}}]) Tuple{{.N}}[{{.Sums}}] {
	checkFoldArity(len(sums))
	var (
{{- range .Members}}
		s{{.}} [MaxChildren]S{{.}}
{{- end}}
	)
	for i, s := range sums {
{{- range .Members}}
		s{{.}}[i] = s.V{{.}}
{{- end}}
	}
	n := len(sums)
	return Tuple{{.N}}[{{.Sums}}]{
{{- range .Members}}
		V{{.}}: f.F{{.}}.Fold(s{{.}}[:n]),
{{- end}}
	}
}
{{end}}`))

func generate() ([]byte, error) {
	arities := make([]arity, 0, maxArity-minArity+1)
	for n := minArity; n <= maxArity; n++ {
		a := arity{N: n}
		for i := 0; i < n; i++ {
			a.Members = append(a.Members, i)
		}
		arities = append(arities, a)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, arities); err != nil {
		return nil, errors.Wrap(err, "executing template")
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "formatting generated source")
	}
	return src, nil
}

func main() {
	out := flag.String("o", "folder_tuple.go", "output file")
	flag.Parse()

	src, err := generate()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	//nolint:gosec
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
