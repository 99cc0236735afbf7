package model

// Priority classifies a ticket's urgency, derived from the submission's
// average rating.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// FeedbackType is the human-readable classification shown in ticket titles.
type FeedbackType string

const (
	FeedbackPositive FeedbackType = "Positive"
	FeedbackNeutral  FeedbackType = "Neutral"
	FeedbackConcern  FeedbackType = "Concern"
)

// TicketStatus represents ticket lifecycle state. This service only ever
// creates tickets in StatusNew; later transitions belong to the ticketing
// system.
type TicketStatus string

const (
	StatusNew      TicketStatus = "new"
	StatusOpen     TicketStatus = "open"
	StatusResolved TicketStatus = "resolved"
	StatusClosed   TicketStatus = "closed"
)

// FieldType enumerates the input kinds a form field can declare.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldDate     FieldType = "date"
	FieldDatetime FieldType = "datetime"
	FieldNumber   FieldType = "number"
	FieldCheckbox FieldType = "checkbox"
	FieldRating   FieldType = "rating"
	FieldFile     FieldType = "file"
	FieldVoice    FieldType = "voice"
)

// Field is one labeled input unit within a form section.
type Field struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required"`
	Placeholder string    `json:"placeholder,omitempty"`
	Options     []string  `json:"options,omitempty"`
	Min         *float64  `json:"min,omitempty"`
	Max         *float64  `json:"max,omitempty"`
	Step        *float64  `json:"step,omitempty"`
	Description string    `json:"description,omitempty"`
}

// RatingMax returns the scale ceiling for a rating field, defaulting to 5.
func (f Field) RatingMax() float64 {
	if f.Max != nil {
		return *f.Max
	}
	return 5
}

// Section is an ordered, titled group of fields. Order is significant for
// both rendering and description serialization.
type Section struct {
	ID                      string  `json:"id"`
	Title                   string  `json:"title"`
	Description             string  `json:"description,omitempty"`
	Fields                  []Field `json:"fields"`
	AllowAdditionalComments bool    `json:"allowAdditionalComments,omitempty"`
	AllowFileUpload         bool    `json:"allowFileUpload,omitempty"`
}

// FormTemplate is the full schema for one feedback category. Templates are
// immutable after catalog construction.
type FormTemplate struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Sections    []Section `json:"sections"`
}

// Field looks up a field by id across all sections.
func (t FormTemplate) Field(id string) (Field, bool) {
	for _, sec := range t.Sections {
		for _, f := range sec.Fields {
			if f.ID == id {
				return f, true
			}
		}
	}
	return Field{}, false
}

// Answers maps field id to a submitted value. Values are JSON-typed: string,
// float64, bool, or []interface{}. One Answers set belongs to exactly one
// in-progress submission.
type Answers map[string]interface{}

// TemplateSuggestion is a parser- or AI-proposed schema pending acceptance.
type TemplateSuggestion struct {
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	Category             string    `json:"category"`
	Priority             Priority  `json:"priority"`
	SuggestedTitle       string    `json:"suggestedTitle"`
	SuggestedDescription string    `json:"suggestedDescription"`
	Fields               []Field   `json:"fields"`
	Sections             []Section `json:"sections"`
	Tags                 []string  `json:"tags"`
}

// FieldCount counts ungrouped plus section fields. A parse is only accepted
// when this is greater than zero.
func (s TemplateSuggestion) FieldCount() int {
	n := len(s.Fields)
	for _, sec := range s.Sections {
		n += len(sec.Fields)
	}
	return n
}

// AIInsights is the sentiment analysis result attached to a ticket.
type AIInsights struct {
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"score"`
	Insights  string  `json:"insights,omitempty"`
}

// Ticket is a persisted feedback submission. Created once on submit; this
// service never mutates it afterwards except to attach AI insights.
type Ticket struct {
	ID               string                 `json:"id"`
	TicketNumber     string                 `json:"ticketNumber"`
	Title            string                 `json:"title"`
	Description      string                 `json:"description"`
	CategoryID       *string                `json:"categoryId,omitempty"`
	StudioID         *string                `json:"studioId,omitempty"`
	Priority         Priority               `json:"priority"`
	Status           TicketStatus           `json:"status"`
	Source           string                 `json:"source"`
	Tags             []string               `json:"tags"`
	ReportedBy       *string                `json:"reportedByUserId,omitempty"`
	DynamicFieldData map[string]interface{} `json:"dynamicFieldData"`
	CreatedAt        string                 `json:"createdAt,omitempty"`
	UpdatedAt        string                 `json:"updatedAt,omitempty"`
}

// Trainer is a member of the training staff feedback can target.
type Trainer struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
}

// Category is a ticketing category row from the lookup collection.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// Studio is a studio location row from the lookup collection.
type Studio struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MessageTemplate is a static outreach message body tied to a playbook step.
type MessageTemplate struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Step is one touchpoint within an outreach phase. Template ids may
// reference templates absent from the catalog; those are skipped on
// resolution.
type Step struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Timeline  string   `json:"timeline"`
	Action    string   `json:"action"`
	Comms     string   `json:"comms"`
	Logic     string   `json:"logic"`
	Templates []string `json:"templates,omitempty"`
}

// Phase is an ordered stage of the outreach playbook.
type Phase struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Timeline    string `json:"timeline"`
	Description string `json:"description"`
	Steps       []Step `json:"steps"`
}

// FeedbackCategory labels one of the selectable feedback form kinds.
type FeedbackCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
