package main

import (
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/exercise-kit/internal/adapters/notify"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/registration"
)

var fieldLabels = map[registration.FieldName]string{
	registration.FieldFirstName: "First name",
	registration.FieldLastName:  "Last name",
	registration.FieldEmail:     "Email",
	registration.FieldPassword:  "Password",
	registration.FieldAddress:   "Address",
}

func newRegisterCmd(c *cli) *cobra.Command {
	var clearFields bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Fill in and submit the registration form",
		Long: `Prompt for the five registration fields and submit them. A rejected
form prints the reason and offers another attempt with the previous
answers as defaults; --clear starts each attempt from an empty form.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			notifier := notify.NewWriter(cmd.OutOrStdout(), "", c.logger)
			form := registration.NewController(notifier,
				registration.WithSuccessMessage(c.cfg.Registration.SuccessMessage))

			for {
				if err := c.fillForm(form); err != nil {
					return err
				}

				res := form.Submit(cmd.Context())
				if res.Valid() {
					return nil
				}

				again, err := c.prompter.Confirm("Try again?", true)
				if err != nil {
					return err
				}
				if !again {
					return res.Err()
				}
				if clearFields {
					form.Reset()
				}
			}
		},
	}

	cmd.Flags().BoolVar(&clearFields, "clear", false, "clear every field before re-prompting")
	return cmd
}

// fillForm prompts for each field in validation order, offering the
// current value as the default. An empty password answer keeps the
// previous password.
func (c *cli) fillForm(form *registration.Controller) error {
	for _, name := range registration.FieldNames() {
		current, err := form.Fields().Get(name)
		if err != nil {
			return err
		}

		var answer string
		if name == registration.FieldPassword {
			answer, err = c.prompter.Password(fieldLabels[name])
			if answer == "" {
				answer = current
			}
		} else {
			answer, err = c.prompter.Input(fieldLabels[name], current, nil)
		}
		if err != nil {
			return err
		}

		if _, err := form.SetField(name, answer); err != nil {
			return err
		}
	}
	return nil
}
