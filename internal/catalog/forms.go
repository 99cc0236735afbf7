package catalog

import "studioops/internal/model"

// Form schema registry: one immutable template per feedback category,
// constructed once at package init and never mutated.

func fp(v float64) *float64 { return &v }

var centerOptions = []string{
	"Supreme HQ, Bandra",
	"Kwality House, Kemps Corner",
	"The Mews, Bandra",
	"Bangalore Studio",
}

var powerCycleTemplate = model.FormTemplate{
	ID:          "powercycle",
	Name:        "PowerCycle Feedback",
	Description: "Comprehensive evaluation form for PowerCycle class trainers",
	Category:    "powercycle",
	Sections: []model.Section{
		{
			ID:    "basic-info",
			Title: "Basic Information",
			Fields: []model.Field{
				{ID: "dateTime", Label: "Date & Time", Type: model.FieldDatetime, Required: true, Placeholder: "Select date and time"},
				{ID: "level", Label: "Level", Type: model.FieldSelect, Required: true, Options: []string{"Studio powerCycle", "powerCycle 45", "powerCycle Express", "powerCycle Endurance"}},
				{ID: "evaluatedBy", Label: "Evaluated By", Type: model.FieldText, Required: true, Placeholder: "Your name"},
				{ID: "trainerName", Label: "Trainer Name", Type: model.FieldText, Required: true, Placeholder: "Trainer being evaluated"},
				{ID: "center", Label: "Center", Type: model.FieldSelect, Required: true, Options: centerOptions},
			},
		},
		{
			ID:                      "pre-class",
			Title:                   "Pre-Class Evaluation",
			Description:             "Evaluate the trainer's preparation and communication before class",
			AllowAdditionalComments: true,
			AllowFileUpload:         true,
			Fields: []model.Field{
				{ID: "preClassSetup", Label: "Pre-class set-up", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5), Description: "Rate the trainer's equipment and room preparation"},
				{ID: "preClassCommunication", Label: "Pre-class communication and connection", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5), Description: "Rate how well the trainer connected with students before class"},
				{ID: "preClassSOP", Label: "Pre-class SOP", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5), Description: "Rate adherence to standard operating procedures"},
			},
		},
		{
			ID:                      "class-delivery",
			Title:                   "Class Delivery & Engagement",
			Description:             "Evaluate the trainer's performance during the class",
			AllowAdditionalComments: true,
			AllowFileUpload:         true,
			Fields: []model.Field{
				{ID: "overallEnergy", Label: "Overall class Energy, Motivation, USP integration", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5)},
				{ID: "mindfulMoment", Label: "Mindful moment, FUN FACTOR", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5)},
				{ID: "music", Label: "Music", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5)},
				{ID: "useOfNames", Label: "Use of Names", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5)},
				{ID: "timeManagement", Label: "Time Management", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5)},
			},
		},
		{
			ID:                      "technical-skills",
			Title:                   "Technical Skills",
			Description:             "Evaluate the trainer's technical teaching abilities",
			AllowAdditionalComments: true,
			AllowFileUpload:         true,
			Fields: []model.Field{
				{ID: "vocals", Label: "Vocals", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5)},
				{ID: "choreography", Label: "Choreography and Sequencing", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5)},
				{ID: "programming", Label: "Programming Appropriation", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5)},
				{ID: "teachingStyles", Label: "Teaching styles", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5)},
			},
		},
		{
			ID:          "voice-message",
			Title:       "Additional Feedback",
			Description: "Add any voice notes or additional observations",
			Fields: []model.Field{
				{ID: "voiceMessage", Label: "Add a Voice Message", Type: model.FieldVoice, Description: "Record any additional verbal feedback"},
				{ID: "additionalNotes", Label: "Additional Notes", Type: model.FieldTextarea, Placeholder: "Any other observations or recommendations..."},
			},
		},
	},
}

var barreTemplate = model.FormTemplate{
	ID:          "barre",
	Name:        "Barre Feedback",
	Description: "Comprehensive evaluation form for Barre class trainers",
	Category:    "barre",
	Sections: []model.Section{
		{
			ID:    "basic-info",
			Title: "Basic Information",
			Fields: []model.Field{
				{ID: "dateTime", Label: "Date & Time", Type: model.FieldDatetime, Required: true},
				{ID: "level", Label: "Level", Type: model.FieldSelect, Required: true, Options: []string{"Studio Barre 57", "Barre 57 Express", "Barre Sculpt", "Advanced Barre"}},
				{ID: "evaluatedBy", Label: "Evaluated By", Type: model.FieldText, Required: true},
				{ID: "trainerName", Label: "Trainer Name", Type: model.FieldText, Required: true},
				{ID: "center", Label: "Center", Type: model.FieldSelect, Required: true, Options: centerOptions},
			},
		},
		{
			ID:                      "pre-class",
			Title:                   "Pre-Class Evaluation",
			AllowAdditionalComments: true,
			AllowFileUpload:         true,
			Fields: []model.Field{
				{ID: "preClassSetup", Label: "Pre-class set-up", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5)},
				{ID: "preClassCommunication", Label: "Pre-class communication and connection", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5)},
				{ID: "preClassSOP", Label: "Pre-class SOP", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5)},
			},
		},
		{
			ID:                      "class-delivery",
			Title:                   "Class Delivery & Engagement",
			AllowAdditionalComments: true,
			AllowFileUpload:         true,
			Fields: []model.Field{
				{ID: "overallEnergy", Label: "Overall class Energy, Motivation, USP integration", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5)},
				{ID: "mindfulMoment", Label: "Mindful moment, FUN FACTOR", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5)},
				{ID: "music", Label: "Music", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5)},
				{ID: "useOfNames", Label: "Use of Names", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5)},
				{ID: "timeManagement", Label: "Time Management", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5)},
			},
		},
		{
			ID:                      "technical-skills",
			Title:                   "Technical Skills",
			AllowAdditionalComments: true,
			AllowFileUpload:         true,
			Fields: []model.Field{
				{ID: "vocals", Label: "Vocals", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5)},
				{ID: "choreography", Label: "Choreography and Sequencing", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5)},
				{ID: "programming", Label: "Programming Appropriation", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5)},
				{ID: "handsOnCorrections", Label: "Hands-on Corrections", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5)},
				{ID: "teachingStyles", Label: "Teaching styles", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5)},
			},
		},
	},
}

var quarterlyTemplate = model.FormTemplate{
	ID:          "quarterly",
	Name:        "Quarterly Assessment",
	Description: "Quarterly trainer performance review with weighted categories",
	Category:    "quarterly",
	Sections: []model.Section{
		{
			ID:    "basic-info",
			Title: "Assessment Information",
			Fields: []model.Field{
				{ID: "reviewPeriod", Label: "Review Period", Type: model.FieldSelect, Required: true, Options: []string{"Q1 2024", "Q2 2024", "Q3 2024", "Q4 2024", "Q1 2025", "Q2 2025", "Q3 2025", "Q4 2025"}},
				{ID: "trainerName", Label: "Trainer Name", Type: model.FieldText, Required: true},
				{ID: "evaluatedBy", Label: "Evaluated By", Type: model.FieldText, Required: true},
				{ID: "primaryLocation", Label: "Primary Location", Type: model.FieldSelect, Required: true, Options: []string{"Kemps Corner", "Bandra Mews", "Supreme HQ", "Bangalore"}},
			},
		},
		{
			ID:                      "client-metrics",
			Title:                   "Client Metrics (Weight: 50%)",
			Description:             "Performance metrics related to client attendance and retention",
			AllowAdditionalComments: true,
			Fields: []model.Field{
				{ID: "clientAttendance", Label: "Client Attendance (12.5%)", Type: model.FieldNumber, Required: true, Min: fp(0), Max: fp(12.5), Step: fp(0.5), Description: "Score based on average class attendance vs target"},
				{ID: "clientRetention", Label: "Client Retention (12.5%)", Type: model.FieldNumber, Required: true, Min: fp(0), Max: fp(12.5), Step: fp(0.5), Description: "Conversion rate and client return percentage"},
				{ID: "clientConnection", Label: "Client Connection & Communication (12.5%)", Type: model.FieldNumber, Required: true, Min: fp(0), Max: fp(12.5), Step: fp(0.5), Description: "Pre and post class interaction, interpersonal skills"},
				{ID: "clientFeedback", Label: "Client Feedback (12.5%)", Type: model.FieldNumber, Required: true, Min: fp(0), Max: fp(12.5), Step: fp(0.5), Description: "Overall client satisfaction and feedback scores"},
			},
		},
		{
			ID:                      "teaching-skills",
			Title:                   "Teaching Skills (Weight: 40%)",
			Description:             "Technical and delivery skills evaluation",
			AllowAdditionalComments: true,
			Fields: []model.Field{
				{ID: "mindfulMoment", Label: "Mindful Moment/USP Integration/Motivation (8%)", Type: model.FieldNumber, Required: true, Min: fp(0), Max: fp(8), Step: fp(0.5)},
				{ID: "musicality", Label: "Musicality (8%)", Type: model.FieldNumber, Required: true, Min: fp(0), Max: fp(8), Step: fp(0.5)},
				{ID: "energyVocals", Label: "Energy & Vocals (8%)", Type: model.FieldNumber, Required: true, Min: fp(0), Max: fp(8), Step: fp(0.5), Description: "Inflection, intonation, enunciation"},
				{ID: "choreography", Label: "Choreography & Sequencing (8%)", Type: model.FieldNumber, Required: true, Min: fp(0), Max: fp(8), Step: fp(0.5)},
				{ID: "learningStyles", Label: "Learning Styles & Use of Names (8%)", Type: model.FieldNumber, Required: true, Min: fp(0), Max: fp(8), Step: fp(0.5), Description: "Kinesthetic, visual, auditory teaching"},
			},
		},
		{
			ID:                      "professionalism",
			Title:                   "Professionalism (Weight: 10%)",
			Description:             "Work ethics and professional conduct",
			AllowAdditionalComments: true,
			Fields: []model.Field{
				{ID: "attendanceWorkshops", Label: "Classes, Workshops, Meetings Attended (5%)", Type: model.FieldNumber, Required: true, Min: fp(0), Max: fp(5), Step: fp(0.5)},
				{ID: "workEthics", Label: "Work Ethics & Core Values (5%)", Type: model.FieldNumber, Required: true, Min: fp(0), Max: fp(5), Step: fp(0.5)},
			},
		},
		{
			ID:    "summary",
			Title: "Summary & Goals",
			Fields: []model.Field{
				{ID: "totalScore", Label: "Total Score (out of 100)", Type: model.FieldNumber, Min: fp(0), Max: fp(100), Step: fp(0.5)},
				{ID: "highlights", Label: "Highlights", Type: model.FieldTextarea, Placeholder: "Key achievements and positive observations"},
				{ID: "focusPoints", Label: "Focus Points for Next Quarter", Type: model.FieldTextarea, Placeholder: "Areas for improvement and development"},
				{ID: "goals", Label: "Goals for Next Quarter", Type: model.FieldTextarea, Placeholder: "Specific, measurable goals"},
			},
		},
	},
}

var generalTemplate = model.FormTemplate{
	ID:          "general",
	Name:        "General Feedback",
	Description: "General trainer feedback for any class type",
	Category:    "general",
	Sections: []model.Section{
		{
			ID:    "basic-info",
			Title: "Basic Information",
			Fields: []model.Field{
				{ID: "dateTime", Label: "Date & Time", Type: model.FieldDatetime, Required: true},
				{ID: "classType", Label: "Class Type", Type: model.FieldText, Required: true, Placeholder: "e.g., Yoga, Pilates, HIIT"},
				{ID: "trainerName", Label: "Trainer Name", Type: model.FieldText, Required: true},
				{ID: "evaluatedBy", Label: "Evaluated By", Type: model.FieldText, Required: true},
				{ID: "center", Label: "Center", Type: model.FieldSelect, Required: true, Options: centerOptions},
			},
		},
		{
			ID:    "overall-rating",
			Title: "Overall Rating",
			Fields: []model.Field{
				{ID: "overallRating", Label: "Overall Performance", Type: model.FieldRating, Required: true, Min: fp(1), Max: fp(5)},
				{ID: "recommendation", Label: "Would you recommend this trainer?", Type: model.FieldSelect, Required: true, Options: []string{"Highly Recommend", "Recommend", "Neutral", "Do Not Recommend"}},
			},
		},
		{
			ID:    "feedback",
			Title: "Detailed Feedback",
			Fields: []model.Field{
				{ID: "strengths", Label: "Strengths", Type: model.FieldTextarea, Placeholder: "What did the trainer do well?"},
				{ID: "improvements", Label: "Areas for Improvement", Type: model.FieldTextarea, Placeholder: "What could be better?"},
				{ID: "additionalComments", Label: "Additional Comments", Type: model.FieldTextarea, Placeholder: "Any other observations..."},
			},
		},
	},
}

var formTemplates = map[string]model.FormTemplate{
	"powercycle": powerCycleTemplate,
	"barre":      barreTemplate,
	"quarterly":  quarterlyTemplate,
	"general":    generalTemplate,
}

// Form order for listings, matching the category selector.
var formOrder = []string{"quarterly", "barre", "powercycle", "general"}

// FormTemplate returns the schema for a feedback category, falling back to
// the general template for unknown categories.
func FormTemplate(category string) model.FormTemplate {
	if t, ok := formTemplates[category]; ok {
		return t
	}
	return generalTemplate
}

// FormTemplates lists all registered schemas in selector order.
func FormTemplates() []model.FormTemplate {
	out := make([]model.FormTemplate, 0, len(formOrder))
	for _, id := range formOrder {
		out = append(out, formTemplates[id])
	}
	return out
}
