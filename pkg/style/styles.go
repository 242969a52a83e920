// Package style holds the terminal look of relaygen: lipgloss styles for
// headings and messages, pterm styles for line outcomes.
package style

import (
	stderrors "errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/marioIncandeza/relay-settings/pkg/errors"
	"github.com/marioIncandeza/relay-settings/pkg/rdb"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)

	CodeStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)
)

// OutcomeStyle returns the pterm style used for a line outcome count
func OutcomeStyle(o rdb.Outcome) *pterm.Style {
	switch o {
	case rdb.Matched:
		return pterm.NewStyle(pterm.FgGreen)
	case rdb.Cleared:
		return pterm.NewStyle(pterm.FgYellow)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// FormatError renders an error for the terminal, leading with its code when
// it carries one
func FormatError(err error) string {
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		return fmt.Sprintf("%s %s",
			ErrorStyle.Render("Error ["+string(code)+"]:"),
			errorMessage(err))
	}
	return ErrorStyle.Render("Error: ") + err.Error()
}

func errorMessage(err error) string {
	var re *errors.RelayError
	if stderrors.As(err, &re) {
		if re.Wrapped != nil {
			return re.Message + ": " + re.Wrapped.Error()
		}
		return re.Message
	}
	return err.Error()
}
