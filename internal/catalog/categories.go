package catalog

import "studioops/internal/model"

var feedbackCategories = []model.FeedbackCategory{
	{ID: "quarterly", Name: "Quarterly Assessment"},
	{ID: "barre", Name: "Barre Feedback"},
	{ID: "powercycle", Name: "PowerCycle Feedback"},
	{ID: "general", Name: "General Feedback"},
}

// FeedbackCategories lists the selectable feedback kinds in display order.
func FeedbackCategories() []model.FeedbackCategory {
	out := make([]model.FeedbackCategory, len(feedbackCategories))
	copy(out, feedbackCategories)
	return out
}

// CategoryLabel resolves a category id to its display name, defaulting to
// "General" for unknown ids.
func CategoryLabel(id string) string {
	for _, c := range feedbackCategories {
		if c.ID == id {
			return c.Name
		}
	}
	return "General"
}

// KnownCategory reports whether id names a registered feedback category.
func KnownCategory(id string) bool {
	_, ok := formTemplates[id]
	return ok
}
