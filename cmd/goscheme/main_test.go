package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestReplPromptsAndEchoesResults(t *testing.T) {
	stdin := strings.NewReader("(+ 1 2)\n(define x 5)\nx\n")
	var stdout bytes.Buffer

	if err := run(nil, stdin, &stdout); err != nil {
		t.Fatal(err)
	}

	got := stdout.String()
	for _, want := range []string{"> ", "3", "5", "Goodbye"} {
		if !strings.Contains(got, want) {
			t.Errorf("REPL transcript missing %q; got:\n%s", want, got)
		}
	}
	if strings.Contains(got, "#<none>") {
		t.Errorf("REPL must never print NONE's internal representation:\n%s", got)
	}
}

func TestRunSingleFileArgumentLoadsAndExits(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/prog.scm"
	if err := os.WriteFile(path, []byte("(display (+ 40 2))\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	if err := run([]string{path}, strings.NewReader(""), &stdout); err != nil {
		t.Fatal(err)
	}
	if stdout.String() != "42" {
		t.Errorf("batch-load output = %q, want %q", stdout.String(), "42")
	}
}

func TestRunTrailingDashResumesRepl(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/prog.scm"
	if err := os.WriteFile(path, []byte("(define x 10)\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	stdin := strings.NewReader("(+ x 1)\n")
	if err := run([]string{path, "-"}, stdin, &stdout); err != nil {
		t.Fatal(err)
	}
	if got := stdout.String(); !strings.Contains(got, "11") {
		t.Errorf("expected the REPL to see x from the loaded file, got:\n%s", got)
	}
}
