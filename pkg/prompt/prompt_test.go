package prompt

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func newTestAsker(input string) (*StdioAsker, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &StdioAsker{In: strings.NewReader(input), Out: out}, out
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		def   bool
		want  bool
	}{
		{"\n", false, false},
		{"\n", true, true},
		{"y\n", false, true},
		{"yes\n", false, true},
		{"n\n", true, false},
		{"NO\n", true, false},
		{"maybe\ny\n", false, true},
	}

	for _, tt := range tests {
		asker, _ := newTestAsker(tt.input)
		got, err := asker.Confirm("Continue?", tt.def)
		if err != nil {
			t.Fatalf("Confirm(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Confirm(%q, def=%v) = %v, want %v", tt.input, tt.def, got, tt.want)
		}
	}
}

func TestInput_DefaultOnEmpty(t *testing.T) {
	asker, _ := newTestAsker("\n")
	got, err := asker.Input("Version:", "1.0.0", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "1.0.0" {
		t.Errorf("expected default, got %q", got)
	}
}

func TestInput_ValidatorReasks(t *testing.T) {
	nonEmpty := func(s string) error {
		if s == "" {
			return fmt.Errorf("cannot be empty")
		}
		return nil
	}

	asker, out := newTestAsker("\nmyapp\n")
	got, err := asker.Input("Package name:", "", nonEmpty)
	if err != nil {
		t.Fatal(err)
	}
	if got != "myapp" {
		t.Errorf("expected myapp, got %q", got)
	}
	if !strings.Contains(out.String(), "Invalid answer") {
		t.Error("expected invalid-answer message on rejected input")
	}
}

func TestSelect_OnlyEnumeratedChoices(t *testing.T) {
	options := []string{"ISC", "MIT", "Apache-2.0"}

	asker, _ := newTestAsker("WTFPL\nMIT\n")
	got, err := asker.Select("License:", options, "ISC")
	if err != nil {
		t.Fatal(err)
	}
	if got != "MIT" {
		t.Errorf("expected MIT, got %q", got)
	}
}

func TestSelect_DefaultOnEmpty(t *testing.T) {
	asker, _ := newTestAsker("\n")
	got, err := asker.Select("License:", []string{"ISC", "MIT"}, "ISC")
	if err != nil {
		t.Fatal(err)
	}
	if got != "ISC" {
		t.Errorf("expected ISC, got %q", got)
	}
}

func TestDefaultAsker(t *testing.T) {
	asker := DefaultAsker{}

	ok, err := asker.Confirm("Install?", true)
	if err != nil || !ok {
		t.Errorf("Confirm = %v, %v", ok, err)
	}

	s, err := asker.Input("Version:", "1.0.0", nil)
	if err != nil || s != "1.0.0" {
		t.Errorf("Input = %q, %v", s, err)
	}

	l, err := asker.Select("License:", []string{"ISC", "MIT"}, "ISC")
	if err != nil || l != "ISC" {
		t.Errorf("Select = %q, %v", l, err)
	}
}
