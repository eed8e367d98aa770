package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/exercise-kit/internal/domain/registration"
)

func validAnswers() []any {
	return []any{"John", "Doe", "john@example.com", "secret1", "1 Main St"}
}

func TestRegister_Success(t *testing.T) {
	p := &fakePrompter{answers: validAnswers()}

	out, err := execute(t, p, "register")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Registration Successful!\nName: John Doe\nEmail: john@example.com\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	var kinds []string
	for _, a := range p.asked {
		kinds = append(kinds, a.kind)
	}
	if diff := cmp.Diff([]string{"input", "input", "input", "password", "input"}, kinds); diff != "" {
		t.Errorf("prompt kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestRegister_RetryKeepsPreviousAnswers(t *testing.T) {
	answers := []any{"Jo", "Doe", "john@example.com", "secret1", "1 Main St", true}
	// Second attempt: fix the first name, accept the other defaults by
	// answering with them, and leave the password blank to keep it.
	answers = append(answers, "John", "Doe", "john@example.com", "", "1 Main St")
	p := &fakePrompter{answers: answers}

	out, err := execute(t, p, "register")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(out, registration.ReasonFirstName+"\n") {
		t.Errorf("output = %q, want first-name rejection first", out)
	}
	if !strings.Contains(out, "Name: John Doe") {
		t.Errorf("output = %q, want success message", out)
	}

	second := p.asked[6:]
	gotDefaults := []string{second[0].def, second[1].def, second[2].def, second[4].def}
	wantDefaults := []string{"Jo", "Doe", "john@example.com", "1 Main St"}
	if diff := cmp.Diff(wantDefaults, gotDefaults); diff != "" {
		t.Errorf("second attempt defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestRegister_ClearEmptiesDefaults(t *testing.T) {
	answers := []any{"John", "Doe", "bad-email", "secret1", "1 Main St", true}
	answers = append(answers, validAnswers()...)
	p := &fakePrompter{answers: answers}

	out, err := execute(t, p, "register", "--clear")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, registration.ReasonEmail+"\n") {
		t.Errorf("output = %q, want email rejection first", out)
	}

	for _, a := range p.asked[6:] {
		if a.def != "" {
			t.Errorf("prompt %q default = %q, want empty after --clear", a.message, a.def)
		}
	}
}

func TestRegister_DeclineRetryReturnsReason(t *testing.T) {
	answers := []any{"John", "Doe", "john@example.com", "short", "1 Main St", false}
	p := &fakePrompter{answers: answers}

	out, err := execute(t, p, "register")

	var failure *registration.ValidationFailure
	if !errors.As(err, &failure) {
		t.Fatalf("error = %v, want *registration.ValidationFailure", err)
	}
	if failure.Reason != registration.ReasonPassword {
		t.Errorf("Reason = %q, want %q", failure.Reason, registration.ReasonPassword)
	}
	if out != registration.ReasonPassword+"\n" {
		t.Errorf("output = %q, want only the rejection reason", out)
	}
}

func TestRegister_PromptErrorStops(t *testing.T) {
	p := &fakePrompter{answers: []any{"John"}}

	_, err := execute(t, p, "register")
	if !errors.Is(err, errNoAnswer) {
		t.Fatalf("error = %v, want errNoAnswer", err)
	}
}
