// genexp generates exponent marker types for package bfp.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"text/template"
)

var markerTmpl = template.Must(template.New("markers").Parse(`// Code generated by genexp; DO NOT EDIT.

package {{.Pkg}}

// Exp0 is the marker for exponent 0.
type Exp0 struct{}

// Exponent returns 0.
func (Exp0) Exponent() int32 { return 0 }
{{range .Exps}}
// ExpN{{.}} is the marker for exponent -{{.}}.
type ExpN{{.}} struct{}

// Exponent returns -{{.}}.
func (ExpN{{.}}) Exponent() int32 { return -{{.}} }

// ExpP{{.}} is the marker for exponent {{.}}.
type ExpP{{.}} struct{}

// Exponent returns {{.}}.
func (ExpP{{.}}) Exponent() int32 { return {{.}} }
{{end}}`))

type params struct {
	Pkg  string
	Exps []int
}

func generate(pkg string, n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("bad marker count %d", n)
	}
	p := params{Pkg: pkg}
	for i := 1; i <= n; i++ {
		p.Exps = append(p.Exps, i)
	}
	var b bytes.Buffer
	if err := markerTmpl.Execute(&b, p); err != nil {
		return nil, err
	}
	return format.Source(b.Bytes())
}

func main() {
	out := flag.String("o", "exp_gen.go", "output file")
	n := flag.Int("n", 32, "generate markers for exponents in [-n, n]")
	pkg := flag.String("pkg", "bfp", "package name")
	flag.Parse()

	src, err := generate(*pkg, *n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "genexp: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "genexp: %v\n", err)
		os.Exit(1)
	}
}
