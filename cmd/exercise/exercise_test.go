package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"
)

var errNoAnswer = errors.New("no scripted answer left")

// prompt records one question asked of fakePrompter.
type prompt struct {
	kind    string
	message string
	def     string
}

// fakePrompter replays scripted answers in order and records every prompt.
type fakePrompter struct {
	answers []any
	asked   []prompt
}

func (f *fakePrompter) next(p prompt) (any, error) {
	f.asked = append(f.asked, p)
	if len(f.answers) == 0 {
		return nil, fmt.Errorf("%s %q: %w", p.kind, p.message, errNoAnswer)
	}
	a := f.answers[0]
	f.answers = f.answers[1:]
	return a, nil
}

func (f *fakePrompter) Input(message, def string, validate func(string) error) (string, error) {
	a, err := f.next(prompt{kind: "input", message: message, def: def})
	if err != nil {
		return "", err
	}
	s, _ := a.(string)
	if validate != nil {
		if err := validate(s); err != nil {
			return "", err
		}
	}
	return s, nil
}

func (f *fakePrompter) Password(message string) (string, error) {
	a, err := f.next(prompt{kind: "password", message: message})
	if err != nil {
		return "", err
	}
	s, _ := a.(string)
	return s, nil
}

func (f *fakePrompter) Select(message string, _ []string, def string) (string, error) {
	a, err := f.next(prompt{kind: "select", message: message, def: def})
	if err != nil {
		return "", err
	}
	s, _ := a.(string)
	return s, nil
}

func (f *fakePrompter) Confirm(message string, _ bool) (bool, error) {
	a, err := f.next(prompt{kind: "confirm", message: message})
	if err != nil {
		return false, err
	}
	b, _ := a.(bool)
	return b, nil
}

// execute runs the root command with args against p and returns stdout.
func execute(t *testing.T, p prompter, args ...string) (string, error) {
	t.Helper()
	t.Setenv("APP_PROFILE", "")

	var out bytes.Buffer
	root := newRootCmd(p)
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.Execute()
	return out.String(), err
}
