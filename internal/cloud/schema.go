// Where: internal/cloud/schema.go
// What: JSON schema validation for the remote service config.
// Why: Reject malformed config payloads before they reach provisioning.
package cloud

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed config_schema.json
var configSchemaDoc []byte

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

func loadConfigSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("config_schema.json", bytes.NewReader(configSchemaDoc)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("config_schema.json")
	})
	return compiledSchema, schemaErr
}

// ValidateServiceConfig checks a raw config payload against the schema.
func ValidateServiceConfig(raw []byte) error {
	sch, err := loadConfigSchema()
	if err != nil {
		return err
	}

	var document any
	if err := json.Unmarshal(raw, &document); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return sch.Validate(document)
}
