// Where: internal/app/options.go
// What: Finalized options construction and flag validation.
// Why: Turn parsed flags into the explicit record handed to the generator.
package app

import (
	"fmt"
	"strings"

	"github.com/wefthq/create-weft-app/internal/generator"
)

// FlagNames enumerates every declared flag, without dashes. Used to detect
// a --template value that collides with a flag.
func FlagNames() []string {
	return []string{
		"no-run",
		"use-npm",
		"debug",
		"quickstart",
		"skip-cloud",
		"dbclient",
		"dbhost",
		"dbport",
		"dbname",
		"dbusername",
		"dbpassword",
		"dbssl",
		"dbfile",
		"dbforce",
		"template",
		"typescript",
		"ts",
		"version",
		"help",
	}
}

// databaseFlagsSet returns the dashed names of every database flag present
// on the command line, in declaration order.
func databaseFlagsSet(cli CLI) []string {
	var set []string
	appendIf := func(present bool, name string) {
		if present {
			set = append(set, "--"+name)
		}
	}
	appendIf(cli.DBClient != "", "dbclient")
	appendIf(cli.DBHost != "", "dbhost")
	appendIf(cli.DBPort != "", "dbport")
	appendIf(cli.DBName != "", "dbname")
	appendIf(cli.DBUsername != "", "dbusername")
	appendIf(cli.DBPassword != "", "dbpassword")
	appendIf(cli.DBSSL, "dbssl")
	appendIf(cli.DBFile != "", "dbfile")
	appendIf(cli.DBForce, "dbforce")
	return set
}

// validateTemplate rejects a --template value that names one of our own
// flags, with or without leading dashes.
func validateTemplate(value string) error {
	trimmed := strings.TrimLeft(strings.TrimSpace(value), "-")
	if trimmed == "" {
		return nil
	}
	for _, name := range FlagNames() {
		if trimmed == name {
			return fmt.Errorf("invalid template %q: value conflicts with the --%s flag", value, name)
		}
	}
	return nil
}

// optionsFromCLI validates the parsed flags and produces the options record.
// Any database flag forces quickstart off.
func optionsFromCLI(cli CLI) (generator.Options, error) {
	if err := validateTemplate(cli.Template); err != nil {
		return generator.Options{}, err
	}

	dbFlags := databaseFlagsSet(cli)
	if cli.Quickstart && len(dbFlags) > 0 {
		return generator.Options{}, fmt.Errorf(
			"--quickstart cannot be combined with database options: %s",
			strings.Join(dbFlags, ", "),
		)
	}
	if cli.Quickstart && strings.TrimSpace(cli.Directory) == "" {
		return generator.Options{}, fmt.Errorf("please specify the <directory> of your project when using --quickstart")
	}

	opts := generator.Options{
		Directory:  strings.TrimSpace(cli.Directory),
		Quickstart: cli.Quickstart && len(dbFlags) == 0,
		Template:   strings.TrimSpace(cli.Template),
		TypeScript: cli.TypeScript || cli.TS,
		NoRun:      cli.NoRun,
		UseNPM:     cli.UseNPM,
		Debug:      cli.Debug,
		SkipCloud:  cli.SkipCloud,
		Database: generator.DatabaseOptions{
			Client:   cli.DBClient,
			Host:     cli.DBHost,
			Port:     cli.DBPort,
			Name:     cli.DBName,
			Username: cli.DBUsername,
			Password: cli.DBPassword,
			File:     cli.DBFile,
			SSL:      cli.DBSSL,
			Force:    cli.DBForce,
		},
	}
	return opts, nil
}

// hasDatabaseOptions reports whether any database parameter was supplied.
func hasDatabaseOptions(opts generator.Options) bool {
	db := opts.Database
	return db.Client != "" || db.Host != "" || db.Port != "" || db.Name != "" ||
		db.Username != "" || db.Password != "" || db.File != "" || db.SSL || db.Force
}
