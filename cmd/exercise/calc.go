package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/exercise-kit/internal/app"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/calculator"
)

func newCalcCmd(c *cli) *cobra.Command {
	var left, op, right string

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Apply +, -, * or / to two numbers",
		Long: `Apply one arithmetic operator to two numbers and print the result.
Operands and operator not given as flags are prompted for.`,
		Example: "  exercise calc --left 6 --op / --right 3",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := c.operand(left, "First number")
			if err != nil {
				return err
			}
			o, err := c.operator(op)
			if err != nil {
				return err
			}
			r, err := c.operand(right, "Second number")
			if err != nil {
				return err
			}

			result, err := app.NewCalculatorService(c.logger).Calculate(cmd.Context(), l, o, r)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s = %s\n",
				calculator.Format(l), o, calculator.Format(r), calculator.Format(result))
			return err
		},
	}

	cmd.Flags().StringVar(&left, "left", "", "first operand")
	cmd.Flags().StringVar(&op, "op", "", "operator: + - * /")
	cmd.Flags().StringVar(&right, "right", "", "second operand")
	return cmd
}

func (c *cli) operand(raw, message string) (float64, error) {
	if raw == "" {
		var err error
		raw, err = c.prompter.Input(message, "", func(s string) error {
			_, err := calculator.ParseOperand(s)
			return err
		})
		if err != nil {
			return 0, err
		}
	}
	return calculator.ParseOperand(raw)
}

func (c *cli) operator(raw string) (calculator.Operator, error) {
	if raw != "" {
		return calculator.Operator(raw), nil
	}

	ops := calculator.Operators()
	options := make([]string, len(ops))
	for i, o := range ops {
		options[i] = o.String()
	}
	answer, err := c.prompter.Select("Operator", options, calculator.OpAdd.String())
	if err != nil {
		return "", err
	}
	return calculator.Operator(answer), nil
}
