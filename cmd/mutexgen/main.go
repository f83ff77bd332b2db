// Command mutexgen writes the fixed-arity composition helpers of package
// mutex: TupleN, JoinN, LockN and TryLockN for every N up to -max.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

var (
	maxArity = flag.Int("max", 16, "Largest arity to generate")
	pkgName  = flag.String("pkg", "mutex", "Package name of the generated file")
	outPath  = flag.String("out", "tuple_gen.go", "Output file, - for stdout")
)

const src = `// Code generated by mutexgen; DO NOT EDIT.

package {{.Package}}

import "context"
{{range .Arities}}
// {{.TupleDoc}}
type Tuple{{.N}}[{{.TypeParams}} any] struct {
{{- range .Idx}}
	M{{.}} Mutex[A{{.}}]
{{- end}}
}

// {{.JoinDoc}}
func Join{{.N}}[{{.TypeParams}} any]({{.MutexParams}}) Tuple{{.N}}[{{.TypeParams}}] {
	return Tuple{{.N}}[{{.TypeParams}}]{ {{- .FieldInits -}} }
}

// {{.LockDoc}}
func (t Tuple{{.N}}[{{.TypeParams}}]) Lock(f func({{.PtrTypes}})) {
{{.LockBody}}}

// {{.LockNDoc}}
func Lock{{.N}}[{{.TypeParams}}, R any]({{.MutexParams}}, f func({{.PtrTypes}}) R) R {
	var r R
	Join{{.N}}({{.Args}}).Lock(func({{.DataParams}}) {
		r = f({{.DataArgs}})
	})
	return r
}
{{if gt .N 1}}
// TryLock{{.N}} tries {{.N}} mutexes left-to-right. If one fails, f is not
// invoked, the members already held are released and the error is returned.
func TryLock{{.N}}[{{.TypeParams}}, R any](ctx context.Context, {{.TryParams}}, f func({{.PtrTypes}}) R) (R, error) {
	var (
		r   R
		err error
	)
{{.TryBody}}	return r, err
}
{{end}}
{{- end}}`

type arity struct {
	N           int
	Idx         []int
	TupleDoc    string
	JoinDoc     string
	LockDoc     string
	LockNDoc    string
	TypeParams  string
	MutexParams string
	TryParams   string
	FieldInits  string
	PtrTypes    string
	Args        string
	DataParams  string
	DataArgs    string
	LockBody    string
	TryBody     string
}

func list(n int, format string) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = strings.ReplaceAll(format, "#", fmt.Sprint(i+1))
	}
	return strings.Join(parts, ", ")
}

// nest opens one closure per member, innermost call last.
func nest(n int, open, inner, closeTail func(i int) string) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		b.WriteString(strings.Repeat("\t", i))
		b.WriteString(open(i))
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("\t", n+1))
	b.WriteString(inner(n))
	b.WriteString("\n")
	for i := n; i >= 1; i-- {
		for _, line := range strings.Split(closeTail(i), "\n") {
			b.WriteString(strings.Repeat("\t", i))
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func newArity(n int) arity {
	a := arity{
		N:           n,
		TypeParams:  list(n, "A#"),
		MutexParams: list(n, "m# Mutex[A#]"),
		TryParams:   list(n, "m# TryMutex[A#]"),
		FieldInits:  list(n, "M#: m#"),
		PtrTypes:    list(n, "*A#"),
		Args:        list(n, "m#"),
		DataParams:  list(n, "d# *A#"),
		DataArgs:    list(n, "d#"),
	}
	for i := 1; i <= n; i++ {
		a.Idx = append(a.Idx, i)
	}
	if n == 1 {
		a.TupleDoc = "Tuple1 wraps a single mutex so it composes like the wider tuples."
		a.JoinDoc = "Join1 builds a Tuple1."
		a.LockDoc = "Lock acquires M1, runs f with its data and releases it."
		a.LockNDoc = "Lock1 locks a single mutex and returns the result of f."
	} else {
		a.TupleDoc = fmt.Sprintf("Tuple%d is an ordered collection of %d mutexes locked as one.", n, n)
		a.JoinDoc = fmt.Sprintf("Join%d builds a Tuple%d; the argument order is the locking order.", n, n)
		a.LockDoc = fmt.Sprintf("Lock acquires M1 through M%d in order, runs f with their data and\n// releases them in reverse order.", n)
		a.LockNDoc = fmt.Sprintf("Lock%d locks %d mutexes left-to-right and returns the result of f.", n, n)
	}
	a.LockBody = nest(n,
		func(i int) string { return fmt.Sprintf("t.M%d.Lock(func(d%d *A%d) {", i, i, i) },
		func(int) string { return "f(" + a.DataArgs + ")" },
		func(int) string { return "})" },
	)
	a.TryBody = nest(n,
		func(i int) string { return fmt.Sprintf("if e := m%d.TryLock(ctx, func(d%d *A%d) {", i, i, i) },
		func(int) string { return "r = f(" + a.DataArgs + ")" },
		func(int) string { return "}); e != nil {\n\terr = e\n}" },
	)
	return a
}

func generate(pkg string, maxN int) ([]byte, error) {
	if maxN < 1 {
		return nil, fmt.Errorf("mutexgen: -max must be at least 1, got %d", maxN)
	}
	data := struct {
		Package string
		Arities []arity
	}{Package: pkg}
	for n := 1; n <= maxN; n++ {
		data.Arities = append(data.Arities, newArity(n))
	}
	tmpl, err := template.New("tuple").Parse(src)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

func main() {
	flag.Parse()
	out, err := generate(*pkgName, *maxArity)
	if err != nil {
		log.Fatal(err)
	}
	if *outPath == "-" {
		_, err = os.Stdout.Write(out)
	} else {
		err = os.WriteFile(*outPath, out, 0o644)
	}
	if err != nil {
		log.Fatal(err)
	}
}
