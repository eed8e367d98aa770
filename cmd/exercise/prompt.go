package main

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// errAborted is returned when the user interrupts a prompt.
var errAborted = errors.New("aborted")

// prompter asks the user for input. Commands depend on it so they can run
// against a scripted fake in tests.
type prompter interface {
	// Input asks for one line of text. A nil validate accepts anything.
	Input(message, def string, validate func(string) error) (string, error)
	Password(message string) (string, error)
	Select(message string, options []string, def string) (string, error)
	Confirm(message string, def bool) (bool, error)
}

// surveyPrompter prompts on the terminal.
type surveyPrompter struct{}

func (surveyPrompter) Input(message, def string, validate func(string) error) (string, error) {
	var out string
	var opts []survey.AskOpt
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans any) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}
	err := survey.AskOne(&survey.Input{Message: message, Default: def}, &out, opts...)
	return out, translateSurveyErr(err)
}

func (surveyPrompter) Password(message string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Password{Message: message}, &out)
	return out, translateSurveyErr(err)
}

func (surveyPrompter) Select(message string, options []string, def string) (string, error) {
	var out string
	prompt := &survey.Select{Message: message, Options: options}
	if def != "" {
		prompt.Default = def
	}
	err := survey.AskOne(prompt, &out)
	return out, translateSurveyErr(err)
}

func (surveyPrompter) Confirm(message string, def bool) (bool, error) {
	var out bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &out)
	return out, translateSurveyErr(err)
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errAborted
	}
	return err
}
