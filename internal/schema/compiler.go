// Package schema turns form templates into compiled JSON Schemas and
// validates answer sets against them. Type mismatches (a string where a
// rating belongs) are rejected here; the friendlier required-field gate
// lives with the classifier so its message reaches the submitter first.
package schema

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	js "github.com/santhosh-tekuri/jsonschema/v5"

	"studioops/internal/model"
)

type Compiler struct {
	compiler *js.Compiler
	cache    *expirable.LRU[string, *js.Schema]
}

// NewCompiler creates a compiler with an hour-lived LRU keyed by form
// template id. Catalog templates never change at runtime, so the TTL only
// bounds memory for ad-hoc (builder-generated) templates.
func NewCompiler(maxSize int) *Compiler {
	c := js.NewCompiler()
	c.ExtractAnnotations = true

	return &Compiler{
		compiler: c,
		cache:    expirable.NewLRU[string, *js.Schema](maxSize, nil, time.Hour),
	}
}

// SchemaFor builds the JSON Schema document for a form template. Every field
// is optional at this layer; the property types constrain what an answer may
// look like when present.
func SchemaFor(t model.FormTemplate) map[string]interface{} {
	props := map[string]interface{}{}
	for _, sec := range t.Sections {
		for _, f := range sec.Fields {
			props[f.ID] = propertyFor(f)
		}
	}
	return map[string]interface{}{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
}

func propertyFor(f model.Field) map[string]interface{} {
	switch f.Type {
	case model.FieldRating:
		return map[string]interface{}{
			"type":    "number",
			"minimum": 1,
			"maximum": f.RatingMax(),
		}
	case model.FieldNumber:
		p := map[string]interface{}{"type": "number"}
		if f.Min != nil {
			p["minimum"] = *f.Min
		}
		if f.Max != nil {
			p["maximum"] = *f.Max
		}
		return p
	case model.FieldCheckbox:
		return map[string]interface{}{"type": "boolean"}
	case model.FieldSelect:
		p := map[string]interface{}{"type": "string"}
		if len(f.Options) > 0 {
			opts := make([]interface{}, len(f.Options))
			for i, o := range f.Options {
				opts[i] = o
			}
			p["enum"] = opts
		}
		return p
	case model.FieldVoice:
		// Voice answers arrive as storage object keys.
		return map[string]interface{}{"type": "string"}
	default:
		// text, textarea, date
		return map[string]interface{}{"type": "string"}
	}
}

// Prepare compiles and caches the schema for a template.
func (c *Compiler) Prepare(ctx context.Context, t model.FormTemplate) (*js.Schema, error) {
	if compiled, ok := c.cache.Get(t.ID); ok {
		return compiled, nil
	}

	doc := SchemaFor(t)
	schemaBytes, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	resourceURL := fmt.Sprintf("mem://forms/%s.json", t.ID)
	if err := c.compiler.AddResource(resourceURL, bytes.NewReader(schemaBytes)); err != nil {
		return nil, fmt.Errorf("failed to add resource: %w", err)
	}

	compiled, err := c.compiler.Compile(resourceURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	c.cache.Add(t.ID, compiled)
	return compiled, nil
}

// Validate checks an answer set against a template's compiled schema.
func (c *Compiler) Validate(ctx context.Context, t model.FormTemplate, answers model.Answers) error {
	compiled, err := c.Prepare(ctx, t)
	if err != nil {
		return err
	}

	// Round-trip through JSON so the validator sees only plain types.
	raw, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("failed to unmarshal answers: %w", err)
	}

	if err := compiled.Validate(value); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
