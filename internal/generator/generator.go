// Where: internal/generator/generator.go
// What: Contract of the external project generator.
// Why: Keep generation itself out of this tool; we only sequence calls to it.
package generator

import "context"

// Options is the finalized record handed to the external generator.
// Fields map one-to-one to the command-line flags.
type Options struct {
	Directory  string          `json:"directory"`
	Quickstart bool            `json:"quickstart"`
	Template   string          `json:"template,omitempty"`
	TypeScript bool            `json:"typescript"`
	NoRun      bool            `json:"noRun"`
	UseNPM     bool            `json:"useNpm"`
	Debug      bool            `json:"debug"`
	SkipCloud  bool            `json:"skipCloud"`
	Database   DatabaseOptions `json:"database"`
}

// DatabaseOptions carries the database connection parameters.
type DatabaseOptions struct {
	Client   string `json:"client,omitempty"`
	Host     string `json:"host,omitempty"`
	Port     string `json:"port,omitempty"`
	Name     string `json:"name,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	File     string `json:"file,omitempty"`
	SSL      bool   `json:"ssl,omitempty"`
	Force    bool   `json:"force,omitempty"`
}

// Generator is the external collaborator that produces the project files.
// CheckInstallPath owns the directory-usable check; it is not reimplemented
// here.
type Generator interface {
	CheckInstallPath(ctx context.Context, path string) error
	CheckRequirements(ctx context.Context) error
	GenerateNewApp(ctx context.Context, name string, opts Options) error
}
