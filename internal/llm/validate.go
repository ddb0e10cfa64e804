package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchemas caches compilation by schema name; the tool uses a
// small fixed set of schemas, each compiled once.
var compiledSchemas sync.Map

// validateResponse checks raw against schema. A nil schema always
// passes; any failure comes back as *ErrInvalidResponse carrying the
// offending bytes.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("not JSON: %w", err)}
	}

	compiled, err := compileSchema(schema)
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}
	if err := compiled.Validate(value); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}
	return nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	if c, ok := compiledSchemas.Load(schema.Name); ok {
		return c.(*jsonschema.Schema), nil
	}

	// The compiler wants a decoded JSON value; round-trip the map to
	// normalize types like []string vs []any.
	encoded, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("encode schema %q: %w", schema.Name, err)
	}
	var decoded any
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		return nil, fmt.Errorf("decode schema %q: %w", schema.Name, err)
	}

	url := "schema://" + schema.Name + ".json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, decoded); err != nil {
		return nil, fmt.Errorf("register schema %q: %w", schema.Name, err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	compiledSchemas.Store(schema.Name, compiled)
	return compiled, nil
}
