package schema

import (
	"context"
	"testing"

	"studioops/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTemplate() model.FormTemplate {
	max := 5.0
	return model.FormTemplate{
		ID: "test-form",
		Sections: []model.Section{{
			ID: "s1",
			Fields: []model.Field{
				{ID: "rating", Label: "Rating", Type: model.FieldRating, Max: &max},
				{ID: "format", Label: "Format", Type: model.FieldSelect, Options: []string{"Barre", "Cycle"}},
				{ID: "notes", Label: "Notes", Type: model.FieldTextarea},
				{ID: "attended", Label: "Attended", Type: model.FieldCheckbox},
			},
		}},
	}
}

func TestSchemaFor_PropertyTypes(t *testing.T) {
	doc := SchemaFor(testTemplate())
	props := doc["properties"].(map[string]interface{})

	rating := props["rating"].(map[string]interface{})
	assert.Equal(t, "number", rating["type"])
	assert.EqualValues(t, 1, rating["minimum"])
	assert.EqualValues(t, 5.0, rating["maximum"])

	format := props["format"].(map[string]interface{})
	assert.Equal(t, "string", format["type"])
	assert.Len(t, format["enum"], 2)

	notes := props["notes"].(map[string]interface{})
	assert.Equal(t, "string", notes["type"])

	attended := props["attended"].(map[string]interface{})
	assert.Equal(t, "boolean", attended["type"])
}

func TestValidate_AcceptsWellTypedAnswers(t *testing.T) {
	c := NewCompiler(8)
	err := c.Validate(context.Background(), testTemplate(), model.Answers{
		"rating":   float64(4),
		"format":   "Barre",
		"notes":    "good",
		"attended": true,
	})
	assert.NoError(t, err)
}

func TestValidate_RejectsWrongTypes(t *testing.T) {
	c := NewCompiler(8)

	err := c.Validate(context.Background(), testTemplate(), model.Answers{
		"rating": "five",
	})
	require.Error(t, err)

	err = c.Validate(context.Background(), testTemplate(), model.Answers{
		"rating": float64(9),
	})
	require.Error(t, err)

	err = c.Validate(context.Background(), testTemplate(), model.Answers{
		"format": "Yoga",
	})
	require.Error(t, err)
}

func TestValidate_RejectsUnknownFields(t *testing.T) {
	c := NewCompiler(8)
	err := c.Validate(context.Background(), testTemplate(), model.Answers{
		"surprise": "value",
	})
	assert.Error(t, err)
}

func TestPrepare_CachesByTemplateID(t *testing.T) {
	c := NewCompiler(8)
	tpl := testTemplate()

	first, err := c.Prepare(context.Background(), tpl)
	require.NoError(t, err)

	second, err := c.Prepare(context.Background(), tpl)
	require.NoError(t, err)

	assert.Same(t, first, second)
}
