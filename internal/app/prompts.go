// Where: internal/app/prompts.go
// What: Interactive project questions.
// Why: Collect the directory name and installation type when flags left them open.
package app

import (
	"fmt"
	"strings"

	"github.com/wefthq/create-weft-app/internal/generator"
	"github.com/wefthq/create-weft-app/internal/interaction"
)

// Installation types offered by the install-type question.
const (
	installQuickstart = "quickstart"
	installCustom     = "custom"
)

// askDirectory prompts for the project directory name. A cancelled prompt
// propagates as a fatal error; there are no retries.
func askDirectory(deps Dependencies) (string, error) {
	if !deps.IsTerminal() {
		return "", fmt.Errorf("please specify the <directory> of your project")
	}
	name, err := deps.Prompter.Input("What would you like to name your project?", "my-weft-project")
	if err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("please specify the <directory> of your project")
	}
	return name, nil
}

// askInstallType asks for quickstart versus custom installation. Without a
// terminal the default installation is used.
func askInstallType(deps Dependencies) (string, error) {
	if !deps.IsTerminal() {
		return installQuickstart, nil
	}
	return deps.Prompter.SelectValue("Choose your installation type", []interaction.SelectOption{
		{Label: "Quickstart (recommended)", Value: installQuickstart},
		{Label: "Custom (manual settings)", Value: installCustom},
	})
}

// applyInstallType merges the installation-type answer into the options.
// Database flags always win over the answer.
func applyInstallType(opts generator.Options, installType string) generator.Options {
	opts.Quickstart = installType == installQuickstart && !hasDatabaseOptions(opts)
	return opts
}
