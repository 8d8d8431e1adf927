// Where: internal/app/new.go
// What: The project creation sequence.
// Why: Sequence validation, prompting, provisioning, and generation.
package app

import (
	"context"
	"io"
	"path/filepath"

	"github.com/wefthq/create-weft-app/internal/ui"
)

// runNew drives one creation run end to end. Flags were already parsed;
// this finalizes the options, resolves the directory, provisions the cloud
// project when wanted, and hands off to the generator.
func runNew(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)
	console.Debug = cli.Debug

	opts, err := optionsFromCLI(cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx := context.Background()

	if opts.Directory == "" {
		directory, err := askDirectory(deps)
		if err != nil {
			return exitWithError(out, err)
		}
		opts.Directory = directory
	}

	installPath, err := resolveInstallPath(deps, opts.Directory)
	if err != nil {
		return exitWithError(out, err)
	}
	projectName := filepath.Base(installPath)

	if err := deps.Generator.CheckInstallPath(ctx, installPath); err != nil {
		return exitWithError(out, err)
	}

	if !opts.SkipCloud {
		if err := provisionCloudProject(ctx, projectName, installPath, deps, console); err != nil {
			return exitWithError(out, err)
		}
	}

	if !opts.Quickstart && !hasDatabaseOptions(opts) {
		installType, err := askInstallType(deps)
		if err != nil {
			return exitWithError(out, err)
		}
		opts = applyInstallType(opts, installType)
	}

	if err := deps.Generator.CheckRequirements(ctx); err != nil {
		return exitWithError(out, err)
	}

	console.Header("🚀", "Creating your application at {bold}"+opts.Directory+"{/bold}")
	console.Item("Directory", installPath)
	if opts.Template != "" {
		console.Item("Template", opts.Template)
	}
	if opts.TypeScript {
		console.Item("Language", "TypeScript")
	}
	if err := deps.Generator.GenerateNewApp(ctx, projectName, opts); err != nil {
		return exitWithError(out, err)
	}
	return 0
}

// resolveInstallPath turns the directory argument into an absolute path
// under the current working directory.
func resolveInstallPath(deps Dependencies, directory string) (string, error) {
	if filepath.IsAbs(directory) {
		return filepath.Clean(directory), nil
	}
	wd, err := deps.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, directory), nil
}
