// Where: internal/generator/exec.go
// What: Exec adapter for the weft-generate binary.
// Why: Bridge the Generator contract onto the external tool.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// GenerateBinary is the external generator invoked for all file generation.
const GenerateBinary = "weft-generate"

// CommandRunner executes an external command. Extracted for tests.
type CommandRunner interface {
	Run(ctx context.Context, stdin []byte, name string, args ...string) error
}

// ExecRunner runs commands on the host, streaming output through.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, stdin []byte, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// ExecGenerator shells out to weft-generate for every operation.
type ExecGenerator struct {
	Binary string
	Runner CommandRunner
}

// NewExecGenerator returns a Generator backed by the weft-generate binary.
func NewExecGenerator() ExecGenerator {
	return ExecGenerator{
		Binary: GenerateBinary,
		Runner: ExecRunner{},
	}
}

func (g ExecGenerator) binary() string {
	if strings.TrimSpace(g.Binary) != "" {
		return g.Binary
	}
	return GenerateBinary
}

// CheckInstallPath asks the generator whether the target directory is usable.
func (g ExecGenerator) CheckInstallPath(ctx context.Context, path string) error {
	if err := g.Runner.Run(ctx, nil, g.binary(), "check-path", path); err != nil {
		return fmt.Errorf("install path check failed for %s: %w", path, err)
	}
	return nil
}

// CheckRequirements asks the generator to verify host prerequisites.
func (g ExecGenerator) CheckRequirements(ctx context.Context) error {
	if err := g.Runner.Run(ctx, nil, g.binary(), "check-requirements"); err != nil {
		return fmt.Errorf("requirements check failed: %w", err)
	}
	return nil
}

// GenerateNewApp invokes the generator with the finalized options record,
// passed as JSON on stdin.
func (g ExecGenerator) GenerateNewApp(ctx context.Context, name string, opts Options) error {
	payload, err := json.Marshal(opts)
	if err != nil {
		return err
	}
	if err := g.Runner.Run(ctx, payload, g.binary(), "new", name, "--options-stdin"); err != nil {
		return fmt.Errorf("generate %s: %w", name, err)
	}
	return nil
}
