// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable run sequence for project creation.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/wefthq/create-weft-app/internal/cloud"
	"github.com/wefthq/create-weft-app/internal/config"
	"github.com/wefthq/create-weft-app/internal/envutil"
	"github.com/wefthq/create-weft-app/internal/generator"
	"github.com/wefthq/create-weft-app/internal/interaction"
	"github.com/wefthq/create-weft-app/internal/meta"
	"github.com/wefthq/create-weft-app/internal/ui"
	"github.com/wefthq/create-weft-app/internal/version"
)

// CLI defines the command-line interface structure parsed by Kong.
// A single implicit command: create a project in [directory].
type CLI struct {
	Directory string `arg:"" optional:"" help:"Directory name for the new project"`

	NoRun      bool `name:"no-run" help:"Do not start the application after it is created"`
	UseNPM     bool `name:"use-npm" help:"Force npm as the package manager"`
	Debug      bool `help:"Display extra error and debugging detail"`
	Quickstart bool `help:"Use the default database and skip the interactive prompts"`
	SkipCloud  bool `name:"skip-cloud" help:"Skip cloud login and project provisioning"`

	DBClient   string `name:"dbclient" help:"Database client"`
	DBHost     string `name:"dbhost" help:"Database host"`
	DBPort     string `name:"dbport" help:"Database port"`
	DBName     string `name:"dbname" help:"Database name"`
	DBUsername string `name:"dbusername" help:"Database username"`
	DBPassword string `name:"dbpassword" help:"Database password"`
	DBSSL      bool   `name:"dbssl" help:"Connect to the database over SSL"`
	DBFile     string `name:"dbfile" help:"Database file path, for file-backed clients"`
	DBForce    bool   `name:"dbforce" help:"Allow overwriting existing database content"`

	Template   string `help:"URL of a project template to use"`
	TypeScript bool   `name:"typescript" help:"Generate a TypeScript project"`
	TS         bool   `name:"ts" hidden:"" help:"Shorthand for --typescript"`

	Version bool `short:"V" help:"Show version information"`
}

// CloudDeps groups the injected collaborators of the cloud provisioner.
type CloudDeps struct {
	APIBase            string
	NewClient          func(baseURL string) *cloud.Client
	NewClientWithToken func(baseURL, token string) *cloud.Client
	Tokens             cloud.TokenStore
	Login              func(ctx context.Context, client *cloud.Client, announce func(cloud.DeviceAuth)) (string, error)
	SaveProject        func(installPath string, entry config.ProjectEntry) error
	Spin               func(title string, action func()) error
}

// Dependencies holds all injected dependencies required for the run.
// This structure enables dependency injection for testing.
type Dependencies struct {
	Out        io.Writer
	Prompter   interaction.Prompter
	Generator  generator.Generator
	Cloud      CloudDeps
	Getwd      func() (string, error)
	IsTerminal func() bool
}

// Run is the main entry point. It parses the command line, finalizes the
// options, and drives prompting, provisioning, and generation.
// Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	if deps.Getwd == nil {
		deps.Getwd = os.Getwd
	}
	if deps.IsTerminal == nil {
		deps.IsTerminal = interaction.StdinIsTerminal
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description("Create a new Weft application."),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	if _, err := parser.Parse(args); err != nil {
		return exitWithError(out, err)
	}

	if cli.Version {
		fmt.Fprintln(out, version.GetVersion())
		return 0
	}

	loadDotenv(out)

	if err := config.EnsureGlobalConfig(); err != nil {
		return exitWithError(out, err)
	}

	deps.Cloud = fillCloudDeps(deps.Cloud)

	return runNew(cli, deps, out)
}

// loadDotenv loads .env from the working directory when present.
// Failures are non-fatal warnings.
func loadDotenv(out io.Writer) {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
	}
}

// fillCloudDeps substitutes production defaults for any unset cloud
// collaborator.
func fillCloudDeps(deps CloudDeps) CloudDeps {
	if deps.APIBase == "" {
		deps.APIBase = cloudAPIBase()
	}
	if deps.NewClient == nil {
		deps.NewClient = cloud.New
	}
	if deps.NewClientWithToken == nil {
		deps.NewClientWithToken = cloud.NewWithToken
	}
	if deps.Tokens.Load == nil {
		deps.Tokens = cloud.NewTokenStore()
	}
	if deps.Login == nil {
		deps.Login = cloud.Login
	}
	if deps.SaveProject == nil {
		deps.SaveProject = config.SaveProjectEntry
	}
	if deps.Spin == nil {
		deps.Spin = runSpinner
	}
	return deps
}

// cloudAPIBase resolves the cloud API base URL, honoring WEFT_CLOUD_API.
func cloudAPIBase() string {
	if override := envutil.GetHostEnv("CLOUD_API"); override != "" {
		return override
	}
	return meta.DefaultCloudAPI
}

// exitWithError prints the error and returns the failure exit code.
func exitWithError(out io.Writer, err error) int {
	console := ui.New(out)
	console.Error(err.Error())
	return 1
}
