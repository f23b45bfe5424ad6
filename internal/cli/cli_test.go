package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var b bytes.Buffer
	cmd.SetOut(&b)
	cmd.SetErr(&b)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return b.String(), err
}

func TestFormatCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "default format", args: []string{"format", "2024-03-05", "2024-12-25"}, want: "03/05/2024\n12/25/2024\n"},
		{name: "pattern and locale", args: []string{"format", "2024-03-05", "--pattern", "DD, d MM yy", "--locale", "es"}, want: "martes, 5 marzo 2024\n"},
		{name: "global date format", args: []string{"format", "2024-03-05", "-f", "d M y", "-l", "de"}, want: "5 Mär 24\n"},
		{name: "template", args: []string{"format", "2024-03-05", "--template", `{{format_date .Date "d M"}} / {{format_iso .Date}}`}, want: "5 Mar / 2024-03-05\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if got != tt.want {
				t.Fatalf("output = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestFormatCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no dates", args: []string{"format"}},
		{name: "not iso", args: []string{"format", "03/05/2024"}},
		{name: "bad mode", args: []string{"format", "2024-03-05", "--mode", "sometimes"}},
		{name: "bad template", args: []string{"format", "2024-03-05", "--template", "{{"}},
		{name: "missing config", args: []string{"format", "2024-03-05", "--config", filepath.Join(t.TempDir(), "nope.toml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestFormatCommandConfigFile(t *testing.T) {
	got, err := execute(t, "format", "2024-03-05", "--config", filepath.Join("..", "..", "testdata", "picker.toml"))
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got != "05/03/2024\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestTokensCommand(t *testing.T) {
	got, err := execute(t, "tokens", "dd [de] MM")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"KIND", `"dd"`, `" de "`, `"MM"`, "literal"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestParseCommand(t *testing.T) {
	got, err := execute(t, "parse", "5 marzo 2024", "--pattern", "d MM yy", "--locale", "es")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(got, "2024-03-05") {
		t.Fatalf("output missing parsed date:\n%s", got)
	}

	got, err = execute(t, "parse", "03/05/2024, 03/09/2024", "--multi")
	if err != nil {
		t.Fatalf("execute multi: %v", err)
	}
	if !strings.Contains(got, "2024-03-05") || !strings.Contains(got, "2024-03-09") {
		t.Fatalf("multi output:\n%s", got)
	}

	if _, err := execute(t, "parse", "13/45/2024", "--strict"); err == nil {
		t.Fatal("expected strict parse error")
	}

	got, err = execute(t, "parse", "05 Xyz 2024", "--pattern", "dd M yy")
	if err == nil {
		t.Fatal("expected error for unknown month name")
	}
	if strings.Contains(got, "2024-01-05") {
		t.Fatalf("unknown month produced a date:\n%s", got)
	}
}

func TestMonthCommand(t *testing.T) {
	got, err := execute(t, "month", "2024-02-10", "--today", "2024-02-20", "--select", "2024-02-14")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"February 2024", "[14]", "(20)", "Su", "29"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}

	got, err = execute(t, "month", "2024-02-10", "--view", "year")
	if err != nil {
		t.Fatalf("execute year: %v", err)
	}
	if !strings.Contains(got, "2024") || !strings.Contains(got, "Feb") || strings.Contains(got, "Su") {
		t.Fatalf("year output:\n%s", got)
	}

	if _, err := execute(t, "month", "--view", "century"); err == nil {
		t.Fatal("expected view error")
	}
}

func TestNavCommands(t *testing.T) {
	t.Setenv("DATEPICKER_SESSION_PATH", t.TempDir())

	got, err := execute(t, "nav", "show", "--today", "2024-03-15")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.HasPrefix(got, "applied\n") || !strings.Contains(got, "March 2024") {
		t.Fatalf("show output:\n%s", got)
	}

	got, err = execute(t, "nav", "next", "--today", "2024-03-15")
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if !strings.Contains(got, "April 2024") {
		t.Fatalf("next output:\n%s", got)
	}

	got, err = execute(t, "nav", "pick", "2024-04-09", "--today", "2024-03-15")
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if !strings.HasPrefix(got, "applied\n") || !strings.HasSuffix(got, "value: 04/09/2024\n") {
		t.Fatalf("pick output:\n%s", got)
	}

	got, err = execute(t, "nav", "pick", "2024-04-10", "--max", "2024-04-09")
	if err != nil {
		t.Fatalf("pick out of bounds: %v", err)
	}
	if !strings.HasPrefix(got, "suppressed\n") {
		t.Fatalf("pick out of bounds output:\n%s", got)
	}

	got, err = execute(t, "nav", "value")
	if err != nil || got != "04/09/2024\n" {
		t.Fatalf("value = %q, %v", got, err)
	}

	got, err = execute(t, "nav", "value", "--id", "other")
	if err != nil || got != "\n" {
		t.Fatalf("value(other) = %q, %v", got, err)
	}

	if _, err := execute(t, "nav", "reset"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	got, err = execute(t, "nav", "value")
	if err != nil || got != "\n" {
		t.Fatalf("value after reset = %q, %v", got, err)
	}

	if _, err := execute(t, "nav", "show", "--id", "../x"); err == nil {
		t.Fatal("expected invalid id error")
	}
	if _, err := execute(t, "nav", "move", "two"); err == nil {
		t.Fatal("expected delta error")
	}
}

func TestLocalesCommand(t *testing.T) {
	got, err := execute(t, "locales")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"CODE", "ar-SY", "Español", "ene feb mar", "Deutsch"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	for _, args := range [][]string{{"version"}, {"version", "--short"}, {"version", "-o", "yaml"}} {
		got, err := execute(t, args...)
		if err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		if !strings.Contains(got, "dev") {
			t.Fatalf("%v output = %q", args, got)
		}
	}
}
