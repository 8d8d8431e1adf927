// Where: internal/app/spinner.go
// What: Progress spinner wrapper.
// Why: Show activity during the remote project creation call.
package app

import (
	"github.com/charmbracelet/huh/spinner"
	"github.com/wefthq/create-weft-app/internal/interaction"
)

// runSpinner displays a spinner while action runs. Without a terminal the
// action simply runs inline.
func runSpinner(title string, action func()) error {
	if !interaction.StdinIsTerminal() {
		action()
		return nil
	}
	return spinner.New().Title(title).Action(action).Run()
}
