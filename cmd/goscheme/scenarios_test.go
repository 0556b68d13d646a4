package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/txtar"

	"github.com/pkelchte/goscheme/interp"
	"github.com/pkelchte/goscheme/reader"
)

// scenario is one bundled input.scm + output.txt pair, the shape every
// fixture under testdata/ follows.
type scenario struct {
	name   string
	source string
	want   string
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	paths, err := filepath.Glob("testdata/*.txtar")
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no testdata fixtures found")
	}
	var out []scenario
	for _, p := range paths {
		ar, err := txtar.ParseFile(p)
		if err != nil {
			t.Fatalf("parse %s: %v", p, err)
		}
		var src, want string
		for _, f := range ar.Files {
			switch f.Name {
			case "input.scm":
				src = string(f.Data)
			case "output.txt":
				want = strings.TrimSuffix(string(f.Data), "\n")
			}
		}
		out = append(out, scenario{name: p, source: src, want: want})
	}
	return out
}

// TestScenarios runs every bundled fixture concurrently, each against its
// own Interpreter instance, demonstrating that independent interpreters
// (independent symbol tables, independent global environments) never
// interfere with one another.
func TestScenarios(t *testing.T) {
	scenarios := loadScenarios(t)

	results := make([]string, len(scenarios))
	errs := make([]error, len(scenarios))

	g, _ := errgroup.WithContext(context.Background())
	for i, sc := range scenarios {
		i, sc := i, sc
		g.Go(func() error {
			var out bytes.Buffer
			lines := strings.Split(sc.source, "\n")
			in := interp.New(&reader.StringLineSource{Lines: lines}, &out)
			errs[i] = loadAll(in)
			results[i] = out.String()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	for i, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			if errs[i] != nil {
				t.Fatalf("%s: %v", sc.name, errs[i])
			}
			if results[i] != sc.want {
				t.Errorf("%s: output = %q, want %q", sc.name, results[i], sc.want)
			}
		})
	}
}
