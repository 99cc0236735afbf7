package parser

import (
	"strings"
	"testing"
	"unicode/utf8"

	"studioops/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RejectsShortConversationalInput(t *testing.T) {
	suggestion, ok := Parse("hey can you make me a template for client complaints")
	assert.False(t, ok)
	assert.Nil(t, suggestion)
}

func TestParse_ChecksboxesAloneAreEnough(t *testing.T) {
	input := "□ Towels restocked\n□ Mirrors cleaned\n□ Sound system checked"
	suggestion, ok := Parse(input)
	require.True(t, ok)
	require.Len(t, suggestion.Fields, 3)

	assert.Equal(t, "field-0", suggestion.Fields[0].ID)
	assert.Equal(t, "Towels restocked", suggestion.Fields[0].Label)
	assert.Equal(t, model.FieldCheckbox, suggestion.Fields[0].Type)
}

func TestParse_SectionsCollectFollowingFields(t *testing.T) {
	input := strings.Join([]string{
		"Studio Opening Checklist",
		"━━━━━━━━━━",
		"FRONT DESK",
		"Member Name: [text]",
		"□ Waiver signed",
		"EQUIPMENT",
		"Bike Count: [number of bikes]",
	}, "\n")

	suggestion, ok := Parse(input)
	require.True(t, ok)

	// The divider line dissolves entirely, so it opens no section; the first
	// real section is the uppercase FRONT DESK header.
	require.Len(t, suggestion.Sections, 2)
	frontDesk := suggestion.Sections[0]
	assert.Equal(t, "FRONT DESK", frontDesk.Title)
	require.Len(t, frontDesk.Fields, 2)
	assert.Equal(t, "Member Name", frontDesk.Fields[0].Label)
	assert.Equal(t, model.FieldCheckbox, frontDesk.Fields[1].Type)

	equipment := suggestion.Sections[1]
	assert.Equal(t, "EQUIPMENT", equipment.Title)
	require.Len(t, equipment.Fields, 1)

	// Ungrouped fields stay empty once a section is open.
	assert.Empty(t, suggestion.Fields)
}

func TestParse_FieldIDsNeverCollideAcrossSections(t *testing.T) {
	input := strings.Join([]string{
		"SECTION ONE",
		"First: [text]",
		"SECTION TWO",
		"Second: [text]",
	}, "\n")

	suggestion, ok := Parse(input)
	require.True(t, ok)

	seen := map[string]bool{}
	for _, sec := range suggestion.Sections {
		for _, f := range sec.Fields {
			assert.False(t, seen[f.ID], "duplicate field id %s", f.ID)
			seen[f.ID] = true
		}
	}
}

func TestParse_TypeInference(t *testing.T) {
	cases := []struct {
		line string
		want model.FieldType
	}{
		{"Visit Date: [date of visit]", model.FieldDate},
		{"Issue: [describe the problem]", model.FieldTextarea},
		{"Class Format: [Barre/Cycle/Strength]", model.FieldSelect},
		{"Member Name: [text]", model.FieldText},
		// A slash-formatted placeholder classifies as select unless the
		// label carries a date hint.
		{"Joining Date: [DD/MM/YYYY]", model.FieldDate},
	}

	for _, tc := range cases {
		suggestion, ok := Parse(tc.line + "\nFiller: [x]\nMore: [y]\nYet: [z]\nLast: [w]")
		require.True(t, ok, tc.line)
		require.NotEmpty(t, suggestion.Fields, tc.line)
		assert.Equal(t, tc.want, suggestion.Fields[0].Type, tc.line)
	}
}

func TestParse_SelectOptionsSplit(t *testing.T) {
	suggestion, ok := Parse("Format: [Barre/Cycle/Strength]\nA: [1]\nB: [2]\nC: [3]\nD: [4]")
	require.True(t, ok)
	require.NotEmpty(t, suggestion.Fields)

	f := suggestion.Fields[0]
	require.Equal(t, model.FieldSelect, f.Type)
	assert.Equal(t, []string{"Barre", "Cycle", "Strength"}, f.Options)
}

func TestParse_RequiredMarkers(t *testing.T) {
	suggestion, ok := Parse("Name (REQUIRED): [text]\nNotes: [text]\nA: [1]\nB: [2]\nC: [3]")
	require.True(t, ok)
	require.GreaterOrEqual(t, len(suggestion.Fields), 2)

	assert.True(t, suggestion.Fields[0].Required)
	assert.Equal(t, "Name", suggestion.Fields[0].Label)
	assert.False(t, suggestion.Fields[1].Required)
}

func TestParse_NameDerivation(t *testing.T) {
	suggestion, ok := Parse("New Client Intake Form!\nName: [text]\nPhone: [text]")
	require.True(t, ok)
	assert.Equal(t, "New Client Intake Form", suggestion.Name)
	assert.Equal(t, "[New Client Intake Form] - [Details]", suggestion.SuggestedTitle)
	assert.Equal(t, []string{"custom", "ai-generated"}, suggestion.Tags)
}

func TestGeneric_Fallback(t *testing.T) {
	prompt := strings.Repeat("complaint handling ", 10)
	suggestion := Generic(prompt)

	require.Len(t, suggestion.Fields, 3)
	assert.Equal(t, "Subject", suggestion.Fields[0].Label)
	assert.True(t, suggestion.Fields[0].Required)
	assert.Equal(t, model.FieldTextarea, suggestion.Fields[1].Type)
	assert.Equal(t, model.FieldDate, suggestion.Fields[2].Type)
	assert.Equal(t, prompt, suggestion.SuggestedDescription)
	assert.LessOrEqual(t, len(suggestion.Description), 100)
	assert.Equal(t, []string{"custom"}, suggestion.Tags)
}

func TestGeneric_TruncatesDescriptionOnRuneBoundary(t *testing.T) {
	prompt := strings.Repeat("スタジオ", 40)
	suggestion := Generic(prompt)

	assert.True(t, utf8.ValidString(suggestion.Description))
	assert.Equal(t, 100, utf8.RuneCountInString(suggestion.Description))
	assert.Equal(t, prompt, suggestion.SuggestedDescription)
}
