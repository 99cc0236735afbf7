// Package parser converts pasted, form-like plain text into a structured
// template suggestion. Line rules are evaluated in fixed priority order and
// each line is consumed by the first rule that matches; prose that matches no
// rule is ignored rather than treated as an error.
package parser

import (
	"fmt"
	"regexp"
	"strings"

	"studioops/internal/model"
)

var (
	headerCapsRe    = regexp.MustCompile(`^[A-Z]{2,}`)
	headerBoldRe    = regexp.MustCompile(`^\*\*.*\*\*$`)
	headerGlyphRe   = regexp.MustCompile(`[━\-=*]`)
	checkboxLeadRe  = regexp.MustCompile(`^[□\[\]x\s]+`)
	labeledFieldRe  = regexp.MustCompile(`^[•\-*]?\s*([^:\[\]]+):\s*\[?([^\]]*)\]?$`)
	requiredMarkRe  = regexp.MustCompile(`\(REQUIRED\)|\*`)
	optionSplitRe   = regexp.MustCompile(`[/|,]`)
	nonAlphabeticRe = regexp.MustCompile(`[^a-zA-Z\s]`)
)

// Parse runs the structure heuristics over text. The second return value is
// false when no form-like structure was detected at all; callers then fall
// back to free-form handling. A true result with FieldCount() == 0 is still
// a failed parse by the acceptance rule.
func Parse(input string) (*model.TemplateSuggestion, bool) {
	var lines []string
	for _, l := range strings.Split(input, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}

	hasCheckboxes := strings.Contains(input, "□") ||
		strings.Contains(input, "[ ]") ||
		strings.Contains(input, "[x]")
	hasSections := false
	hasFieldLabels := false
	for _, l := range lines {
		if strings.Contains(l, "━") || strings.Contains(l, "---") || strings.Contains(l, "===") {
			hasSections = true
		}
		if strings.Contains(l, ":") || strings.Contains(l, "•") {
			hasFieldLabels = true
		}
	}

	// Short conversational input with no markers is not a form.
	if !hasCheckboxes && !hasSections && !hasFieldLabels && len(lines) < 5 {
		return nil, false
	}

	var fields []model.Field
	var sections []model.Section
	var current *model.Section
	fieldSeq := 0

	appendField := func(f model.Field) {
		if current != nil {
			current.Fields = append(current.Fields, f)
		} else {
			fields = append(fields, f)
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Section header: heavy divider, leading uppercase run, or **bold**.
		if strings.Contains(trimmed, "━━") || headerCapsRe.MatchString(trimmed) || headerBoldRe.MatchString(trimmed) {
			title := strings.TrimSpace(headerGlyphRe.ReplaceAllString(trimmed, ""))
			if title != "" {
				sections = append(sections, model.Section{
					ID:    fmt.Sprintf("section-%d", len(sections)),
					Title: title,
				})
				current = &sections[len(sections)-1]
			}
			continue
		}

		// Checkbox field.
		if strings.HasPrefix(trimmed, "□") || strings.HasPrefix(trimmed, "[ ]") || strings.HasPrefix(trimmed, "[x]") {
			label := strings.TrimSpace(checkboxLeadRe.ReplaceAllString(trimmed, ""))
			appendField(model.Field{
				ID:    fmt.Sprintf("field-%d", fieldSeq),
				Label: label,
				Type:  model.FieldCheckbox,
			})
			fieldSeq++
			continue
		}

		// Labeled field: "[bullet]? label : [optional bracketed placeholder]".
		if m := labeledFieldRe.FindStringSubmatch(trimmed); m != nil {
			label, placeholder := m[1], m[2]
			required := strings.Contains(label, "REQUIRED") || strings.Contains(label, "*")
			cleanLabel := strings.TrimSpace(requiredMarkRe.ReplaceAllString(label, ""))

			f := model.Field{
				ID:          fmt.Sprintf("field-%d", fieldSeq),
				Label:       cleanLabel,
				Type:        inferFieldType(cleanLabel, placeholder),
				Required:    required,
				Placeholder: placeholder,
			}
			if f.Type == model.FieldSelect {
				for _, opt := range optionSplitRe.Split(placeholder, -1) {
					f.Options = append(f.Options, strings.TrimSpace(opt))
				}
			}
			appendField(f)
			fieldSeq++
		}
		// Anything else is ignored.
	}

	name := deriveName(lines)

	return &model.TemplateSuggestion{
		Name:                 name,
		Description:          "Auto-generated template from pasted form structure",
		Category:             "Custom",
		Priority:             model.PriorityMedium,
		SuggestedTitle:       fmt.Sprintf("[%s] - [Details]", name),
		SuggestedDescription: input,
		Fields:               fields,
		Sections:             sections,
		Tags:                 []string{"custom", "ai-generated"},
	}, true
}

// inferFieldType applies the placeholder/label heuristics in fixed order:
// date beats textarea beats select. A slash in the placeholder always means
// select, so "DD/MM/YYYY" style placeholders classify as select rather than
// date when the label carries no date hint.
func inferFieldType(label, placeholder string) model.FieldType {
	lp := strings.ToLower(placeholder)
	ll := strings.ToLower(label)
	switch {
	case strings.Contains(lp, "date") || strings.Contains(ll, "date"):
		return model.FieldDate
	case strings.Contains(lp, "describe") || strings.Contains(ll, "description"):
		return model.FieldTextarea
	case strings.Contains(placeholder, "/") || strings.Contains(placeholder, "|"):
		return model.FieldSelect
	default:
		return model.FieldText
	}
}

// deriveName takes the first non-divider line longer than 3 characters and
// strips everything non-alphabetic from it.
func deriveName(lines []string) string {
	for _, l := range lines {
		if strings.Contains(l, "━") || strings.Contains(l, "---") {
			continue
		}
		if len(strings.TrimSpace(l)) <= 3 {
			continue
		}
		if name := strings.TrimSpace(nonAlphabeticRe.ReplaceAllString(l, "")); name != "" {
			return name
		}
		break
	}
	return "Custom Template"
}

// Generic returns the three-field fallback suggestion used when neither the
// parser nor the AI boundary produced a usable template.
func Generic(prompt string) *model.TemplateSuggestion {
	desc := prompt
	if r := []rune(desc); len(r) > 100 {
		desc = string(r[:100])
	}
	return &model.TemplateSuggestion{
		Name:                 "New Template",
		Description:          desc,
		Category:             "General",
		Priority:             model.PriorityMedium,
		SuggestedTitle:       "[Template Title]",
		SuggestedDescription: prompt,
		Fields: []model.Field{
			{ID: "f1", Label: "Subject", Type: model.FieldText, Required: true},
			{ID: "f2", Label: "Description", Type: model.FieldTextarea, Required: true},
			{ID: "f3", Label: "Date", Type: model.FieldDate},
		},
		Tags: []string{"custom"},
	}
}
