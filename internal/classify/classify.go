// Package classify derives the priority and sentiment summary for a
// completed answer set and renders it into the persistable ticket form.
package classify

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"studioops/internal/model"
)

// NeutralRating is the fallback mean used when a submission carries no
// in-range rating values at all. Deliberate midpoint default, not an error.
const NeutralRating = 3.0

// AverageRating collects every numeric answer within [1,5] inclusive and
// returns the arithmetic mean, or NeutralRating when none qualify. Numeric
// answers outside the gate (percent scores, weighted points) are excluded.
func AverageRating(answers model.Answers) float64 {
	var sum float64
	var n int
	for _, v := range answers {
		f, ok := numeric(v)
		if !ok {
			continue
		}
		if f < 1 || f > 5 {
			continue
		}
		sum += f
		n++
	}
	if n == 0 {
		return NeutralRating
	}
	return sum / float64(n)
}

// PriorityFor maps an average rating to ticket priority. Low ratings mean
// urgent attention.
func PriorityFor(avg float64) model.Priority {
	switch {
	case avg <= 2:
		return model.PriorityHigh
	case avg >= 4:
		return model.PriorityLow
	default:
		return model.PriorityMedium
	}
}

// FeedbackTypeFor classifies the same thresholds into a human-readable label.
func FeedbackTypeFor(avg float64) model.FeedbackType {
	switch {
	case avg >= 4:
		return model.FeedbackPositive
	case avg <= 2:
		return model.FeedbackConcern
	default:
		return model.FeedbackNeutral
	}
}

// Title composes the ticket title shown in the ticketing system.
func Title(categoryLabel, trainerName string, ft model.FeedbackType) string {
	return fmt.Sprintf("%s - %s - %s", categoryLabel, trainerName, ft)
}

// TicketNumber builds the human-facing identifier: TKT-YYMMDD-NNNN with a
// 4-digit random suffix. There is no collision check here; the tickets table
// enforces uniqueness.
func TicketNumber(now time.Time, rng *rand.Rand) string {
	suffix := rng.Intn(10000)
	return fmt.Sprintf("TKT-%s-%04d", now.Format("060102"), suffix)
}

// MissingRequired returns the labels of required fields without a usable
// answer, in schema order. Empty strings, false checkboxes and zero numbers
// all count as unanswered for the validation gate.
func MissingRequired(t model.FormTemplate, answers model.Answers) []string {
	var missing []string
	for _, sec := range t.Sections {
		for _, f := range sec.Fields {
			if f.Required && !answeredForGate(answers[f.ID]) {
				missing = append(missing, f.Label)
			}
		}
	}
	return missing
}

// MissingFieldsMessage names the first three missing fields and counts the
// rest, keeping the rejection message short.
func MissingFieldsMessage(missing []string) string {
	shown := missing
	if len(shown) > 3 {
		shown = shown[:3]
	}
	msg := "Please fill in: " + strings.Join(shown, ", ")
	if rest := len(missing) - len(shown); rest > 0 {
		msg += fmt.Sprintf(" and %d more", rest)
	}
	return msg
}

// Submission carries everything the description renderer needs.
type Submission struct {
	Template        model.FormTemplate
	Trainer         model.Trainer
	CategoryLabel   string
	Answers         model.Answers
	SectionComments map[string]string
	Insights        *model.AIInsights
}

// RenderDescription walks the schema's sections in declared order and emits
// a "label: value" line per answered field, rating values as value/max,
// followed by any per-section comment, a blank line between sections, and an
// AI analysis block when insights are attached.
func RenderDescription(sub Submission) string {
	var b strings.Builder

	fmt.Fprintf(&b, "**%s**\n\n", sub.Template.Name)
	fmt.Fprintf(&b, "**Trainer:** %s\n", sub.Trainer.Name)
	fmt.Fprintf(&b, "**Specialization:** %s\n", sub.Trainer.Specialization)
	fmt.Fprintf(&b, "**Feedback Type:** %s\n\n", sub.CategoryLabel)

	for _, sec := range sub.Template.Sections {
		fmt.Fprintf(&b, "**%s**\n", sec.Title)
		for _, f := range sec.Fields {
			v, ok := sub.Answers[f.ID]
			if !ok || v == nil {
				continue
			}
			if s, isStr := v.(string); isStr && s == "" {
				continue
			}
			if f.Type == model.FieldRating {
				fmt.Fprintf(&b, "- %s: %s/%s\n", f.Label, FormatValue(v), FormatValue(f.RatingMax()))
			} else {
				fmt.Fprintf(&b, "- %s: %s\n", f.Label, FormatValue(v))
			}
		}
		if c := sub.SectionComments[sec.ID]; c != "" {
			fmt.Fprintf(&b, "- Additional Comments: %s\n", c)
		}
		b.WriteString("\n")
	}

	b.WriteString(RenderInsightsBlock(sub.Insights))

	return b.String()
}

// RenderInsightsBlock renders the AI analysis appendix, or nothing when no
// insights are attached. Also used when insights arrive after ticket
// creation and get appended to the stored description.
func RenderInsightsBlock(ai *model.AIInsights) string {
	if ai == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n**AI Analysis:**\n")
	fmt.Fprintf(&b, "- Sentiment: %s\n", ai.Sentiment)
	fmt.Fprintf(&b, "- Score: %s/100\n", FormatValue(ai.Score))
	if ai.Insights != "" {
		fmt.Fprintf(&b, "- Insights: %s\n", ai.Insights)
	}
	return b.String()
}

// FormatValue renders an answer value the way it appeared in the form:
// whole-number floats without a decimal point, slices comma-joined.
func FormatValue(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		if x == math.Trunc(x) && !math.IsInf(x, 0) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case []interface{}:
		parts := make([]string, 0, len(x))
		for _, e := range x {
			parts = append(parts, FormatValue(e))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", x)
	}
}

func numeric(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	default:
		return 0, false
	}
}

// answeredForGate mirrors the form's notion of "filled in": absent values,
// empty strings, unchecked boxes and zero numbers fail a required field.
func answeredForGate(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0
	case int:
		return x != 0
	case int64:
		return x != 0
	default:
		return true
	}
}
