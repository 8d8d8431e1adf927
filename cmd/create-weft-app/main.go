// Where: cmd/create-weft-app/main.go
// What: CLI entrypoint.
// Why: Create a new Weft application with configured dependencies.
package main

import (
	"os"

	"github.com/wefthq/create-weft-app/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}
