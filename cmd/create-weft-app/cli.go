// Where: cmd/create-weft-app/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/wefthq/create-weft-app/internal/app"
	"github.com/wefthq/create-weft-app/internal/generator"
	"github.com/wefthq/create-weft-app/internal/interaction"
)

var (
	getwd        = os.Getwd
	newGenerator = func() generator.Generator { return generator.NewExecGenerator() }
)

// buildDependencies constructs all runtime dependencies required by the CLI.
// Cloud collaborators are left zero; app.Run fills in production defaults.
func buildDependencies() app.Dependencies {
	return app.Dependencies{
		Out:       os.Stdout,
		Prompter:  interaction.HuhPrompter{},
		Generator: newGenerator(),
		Getwd:     getwd,
	}
}
