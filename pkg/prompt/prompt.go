// Package prompt is the answer provider for the generator: every
// interactive question goes through the Asker interface so the pipeline
// can run against a terminal or a scripted set of answers.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

type Asker interface {
	// Confirm asks a yes/no question. Empty input takes the default.
	Confirm(question string, def bool) (bool, error)
	// Input asks for free text. Empty input takes the default; the
	// validator, when set, is applied to the effective answer and the
	// question is re-asked until it passes.
	Input(question, def string, validate func(string) error) (string, error)
	// Select asks for one of options. The answer is always a member of
	// options; anything else is re-asked.
	Select(question string, options []string, def string) (string, error)
}

// StdioAsker reads line-oriented answers from In and writes questions
// to Out.
type StdioAsker struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

func NewStdioAsker() *StdioAsker {
	return &StdioAsker{In: os.Stdin, Out: os.Stdout}
}

func (a *StdioAsker) readLine() (string, error) {
	if a.reader == nil {
		a.reader = bufio.NewReader(a.In)
	}

	line, err := a.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *StdioAsker) Confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	for {
		fmt.Fprintf(a.Out, "%s (%s) ", question, hint)
		answer, err := a.readLine()
		if err != nil {
			return false, fmt.Errorf("failed to read answer: %w", err)
		}

		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

func (a *StdioAsker) Input(question, def string, validate func(string) error) (string, error) {
	for {
		if def != "" {
			fmt.Fprintf(a.Out, "%s (%s) ", question, def)
		} else {
			fmt.Fprintf(a.Out, "%s ", question)
		}

		answer, err := a.readLine()
		if err != nil {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}

		if answer == "" {
			answer = def
		}

		if validate != nil {
			if err := validate(answer); err != nil {
				fmt.Fprintf(a.Out, "Invalid answer: %v\n", err)
				continue
			}
		}

		return answer, nil
	}
}

func (a *StdioAsker) Select(question string, options []string, def string) (string, error) {
	for {
		fmt.Fprintf(a.Out, "%s [%s] (%s) ", question, strings.Join(options, ", "), def)
		answer, err := a.readLine()
		if err != nil {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}

		if answer == "" {
			answer = def
		}

		for _, opt := range options {
			if answer == opt {
				return opt, nil
			}
		}

		fmt.Fprintf(a.Out, "Please choose one of: %s\n", strings.Join(options, ", "))
	}
}

// DefaultAsker answers every question with its default without reading
// input. Used for --yes runs.
type DefaultAsker struct{}

func (DefaultAsker) Confirm(question string, def bool) (bool, error) {
	return def, nil
}

func (DefaultAsker) Input(question, def string, validate func(string) error) (string, error) {
	if validate != nil {
		if err := validate(def); err != nil {
			return "", err
		}
	}
	return def, nil
}

func (DefaultAsker) Select(question string, options []string, def string) (string, error) {
	return def, nil
}
