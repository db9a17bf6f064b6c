package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestDoMainDefaultWhitespaceFields(t *testing.T) {
	var stdout, stderr bytes.Buffer
	status := doMain(strings.NewReader("foo bar baz\none two\n"), &stdout, &stderr, nil)
	if status != 0 {
		t.Fatalf("got status %d, stderr %q", status, stderr.String())
	}
	want := "foo | bar | baz\none | two\n"
	if stdout.String() != want {
		t.Fatalf("got stdout %q, want %q", stdout.String(), want)
	}
}

func TestDoMainWithFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	status := doMain(strings.NewReader("12 34\n56 78\n"), &stdout, &stderr, []string{"-format", "{} {}", "-sep", "-"})
	if status != 0 {
		t.Fatalf("got status %d, stderr %q", status, stderr.String())
	}
	want := "12-34\n56-78\n"
	if stdout.String() != want {
		t.Fatalf("got stdout %q, want %q", stdout.String(), want)
	}
}

func TestDoMainReportsPerLineErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	status := doMain(strings.NewReader("1,2\nnope\n"), &stdout, &stderr, []string{"-format", "{},{}"})
	if status != 1 {
		t.Fatalf("got status %d, want 1", status)
	}
	if !strings.Contains(stderr.String(), "line 2") {
		t.Fatalf("got stderr %q, want it to mention line 2", stderr.String())
	}
}

func TestDoMainEmptyLineYieldsBlankOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	status := doMain(strings.NewReader("\n"), &stdout, &stderr, nil)
	if status != 0 {
		t.Fatalf("got status %d, stderr %q", status, stderr.String())
	}
	if stdout.String() != "\n" {
		t.Fatalf("got stdout %q, want a single blank line", stdout.String())
	}
}
