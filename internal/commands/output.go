package commands

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func success(cmd *cobra.Command, format string, args ...any) {
	pterm.Success.WithWriter(cmd.OutOrStdout()).Printfln(format, args...)
}

func warning(cmd *cobra.Command, format string, args ...any) {
	pterm.Warning.WithWriter(cmd.OutOrStdout()).Printfln(format, args...)
}

func info(cmd *cobra.Command, format string, args ...any) {
	pterm.Info.WithWriter(cmd.OutOrStdout()).Printfln(format, args...)
}

// table renders rows with the first row as header.
func table(cmd *cobra.Command, rows pterm.TableData) error {
	return pterm.DefaultTable.WithHasHeader().WithWriter(cmd.OutOrStdout()).WithData(rows).Render()
}

// confirm asks a yes/no question unless yes is already set.
func confirm(yes bool, message string) (bool, error) {
	if yes {
		return true, nil
	}
	ok := false
	prompt := &survey.Confirm{Message: message}
	if err := survey.AskOne(prompt, &ok, survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	})); err != nil {
		return false, err
	}
	return ok, nil
}
