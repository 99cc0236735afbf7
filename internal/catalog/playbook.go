package catalog

import "studioops/internal/model"

// The outreach playbook: eight phases of the Tier 1 lead journey, fixed at
// build time. Step template ids are resolved against the message template
// catalog; ids with no catalog entry are skipped, not errors.

var outreachPhases = []model.Phase{
	{
		ID:          "phase-0",
		Title:       "Lead Ingestion & Instant Triage",
		Timeline:    "Instantaneous",
		Description: "Lightning-fast lead classification and routing for immediate response",
		Steps: []model.Step{
			{
				ID:       "step-0-1",
				Title:    "Automated Notification",
				Timeline: "Instant",
				Action:   "CRM notification triggered for new Tier 1 lead",
				Comms:    "Internal System",
				Logic:    "Speed is paramount - move from lead creation to outreach in under 5 minutes",
			},
			{
				ID:        "step-0-2",
				Title:     "Triage & Classification",
				Timeline:  "1-5 minutes",
				Action:    "Classify lead by source, format interest, and communication preference",
				Comms:     "Internal CRM",
				Logic:     "Personalized approach from first contact - prevents generic outreach",
				Templates: []string{"classification-template"},
			},
		},
	},
	{
		ID:          "phase-1",
		Title:       "Immediate Engagement & Rapport",
		Timeline:    "0-6 Hours",
		Description: "Capitalize on peak interest with warm, personalized welcome messages",
		Steps: []model.Step{
			{
				ID:        "step-1-1",
				Title:     "First Touchpoint",
				Timeline:  "Within 5 minutes",
				Action:    "Send personalized welcome message based on interest",
				Comms:     "WhatsApp/Email",
				Logic:     "Strike while iron is hot - lead is actively thinking about fitness",
				Templates: []string{"barre-welcome", "cycle-welcome", "general-welcome"},
			},
			{
				ID:        "step-1-2",
				Title:     "First Follow-Up",
				Timeline:  "6 hours if no response",
				Action:    "Send social proof message with member story",
				Comms:     "WhatsApp/Email",
				Logic:     "Gentle reminder with credibility building - makes brand feel accessible",
				Templates: []string{"social-proof-followup"},
			},
		},
	},
	{
		ID:          "phase-2",
		Title:       "Discovery & Value Building",
		Timeline:    "24-48 Hours",
		Description: "Deepen connection through discovery calls and value-driven content",
		Steps: []model.Step{
			{
				ID:        "step-2-1",
				Title:     "Discovery Call / Value Message",
				Timeline:  "Day 2",
				Action:    "Initiate phone call or send pattern-interrupting video message",
				Comms:     "Phone/WhatsApp Video",
				Logic:     "Voice builds rapport - move from salesperson to trusted advisor",
				Templates: []string{"discovery-call-script", "video-message"},
			},
		},
	},
	{
		ID:          "phase-3",
		Title:       "The Experience - Trial & Conversion",
		Timeline:    "Event-Driven",
		Description: "Curate flawless trial experience and capitalize on post-workout high",
		Steps: []model.Step{
			{
				ID:        "step-3-1",
				Title:     "Pre-Trial Optimization",
				Timeline:  "T-24h & T-2h",
				Action:    "Send prep checklist and final encouragement",
				Comms:     "WhatsApp",
				Logic:     "Reduce no-shows and build excitement - shows premium care",
				Templates: []string{"pre-trial-24h", "pre-trial-2h"},
			},
			{
				ID:        "step-3-2",
				Title:     "In-Studio Experience",
				Timeline:  "Day of Trial",
				Action:    "VIP welcome, tour, and instructor handoff",
				Comms:     "In-Person",
				Logic:     "First 5 minutes set entire brand perception - feel like family",
				Templates: []string{"in-studio-checklist"},
			},
			{
				ID:        "step-3-3",
				Title:     "Post-Trial Conversion",
				Timeline:  "Within 5 minutes of class end",
				Action:    "Capitalize on endorphin high for conversion",
				Comms:     "In-Person",
				Logic:     "Peak receptivity moment - connect feeling to membership benefits",
				Templates: []string{"post-trial-script"},
			},
		},
	},
	{
		ID:          "phase-4",
		Title:       "Educational Nurture & Urgency",
		Timeline:    "Day 4-7",
		Description: "Address rational objections with educational content and clear CTAs",
		Steps: []model.Step{
			{
				ID:        "step-4-1",
				Title:     "Value-Driven Email",
				Timeline:  "Day 4-5",
				Action:    "Send educational content about method effectiveness",
				Comms:     "Email + WhatsApp nudge",
				Logic:     "Address logical objections with scientific proof and authority",
				Templates: []string{"science-email", "whatsapp-nudge"},
			},
		},
	},
	{
		ID:          "phase-5",
		Title:       "The Final Invitation",
		Timeline:    "Day 10-14",
		Description: "Honest, direct approach with irresistible risk-free offers",
		Steps: []model.Step{
			{
				ID:        "step-5-1",
				Title:     "Honest & Direct Offer",
				Timeline:  "Day 10-12",
				Action:    "Heartfelt message addressing hesitation with guarantee",
				Comms:     "WhatsApp",
				Logic:     "Cut through sales-speak - vulnerable approach removes all risk",
				Templates: []string{"honest-offer"},
			},
			{
				ID:        "step-5-2",
				Title:     "Time-Bound Offer",
				Timeline:  "If positive response",
				Action:    "Deploy specific urgency offer based on lead temperature",
				Comms:     "WhatsApp/Phone",
				Logic:     "Final push with compelling reason to act now",
				Templates: []string{"founders-circle", "last-call", "trial-guarantee"},
			},
			{
				ID:        "step-5-3",
				Title:     "Final Call",
				Timeline:  "48 hours if no response",
				Action:    "Direct phone call to understand objections",
				Comms:     "Phone Call",
				Logic:     "Highest-effort touchpoint for definitive yes/no closure",
				Templates: []string{"final-call-script"},
			},
		},
	},
	{
		ID:          "phase-6",
		Title:       "Conversion & Seamless Onboarding",
		Timeline:    "Immediate upon purchase",
		Description: "Effortless transaction process with celebratory welcome experience",
		Steps: []model.Step{
			{
				ID:        "step-6-1",
				Title:     "Purchase Process",
				Timeline:  "Immediate",
				Action:    "Simple payment + structured welcome process",
				Comms:     "In-Person/Email",
				Logic:     "Smooth transaction validates decision and reduces buyer remorse",
				Templates: []string{"welcome-email", "membership-guide"},
			},
		},
	},
	{
		ID:          "phase-7",
		Title:       "Long-Term Nurture",
		Timeline:    "14+ Days",
		Description: "Stay top-of-mind with value-driven content for future conversions",
		Steps: []model.Step{
			{
				ID:        "step-7-1",
				Title:     "Nurture Sequence",
				Timeline:  "Ongoing",
				Action:    "Monthly newsletter, seasonal offers, quarterly check-ins",
				Comms:     "Email/WhatsApp",
				Logic:     "\"No for now\" doesn't mean \"no forever\" - maintain relationship",
				Templates: []string{"monthly-newsletter", "seasonal-offers", "quarterly-checkin"},
			},
		},
	},
	{
		ID:          "phase-8",
		Title:       "Post-Purchase Engagement & Growth",
		Timeline:    "Ongoing from Day 1",
		Description: "Nurture new members into loyal advocates with structured touchpoints",
		Steps: []model.Step{
			{
				ID:        "step-8-1",
				Title:     "Member Journey",
				Timeline:  "First 30 days",
				Action:    "Check-ins, milestone celebrations, community integration",
				Comms:     "In-Person/Email/WhatsApp",
				Logic:     "Transform customer into loyal advocate - identify growth opportunities",
				Templates: []string{"30-day-checkin", "milestone-celebration", "referral-request"},
			},
		},
	},
}

// Phases returns the full playbook in journey order.
func Phases() []model.Phase {
	out := make([]model.Phase, len(outreachPhases))
	copy(out, outreachPhases)
	return out
}

// Step looks up a single playbook step by id.
func Step(id string) (model.Step, bool) {
	for _, p := range outreachPhases {
		for _, s := range p.Steps {
			if s.ID == id {
				return s, true
			}
		}
	}
	return model.Step{}, false
}

// PhaseForStep returns the phase containing the given step.
func PhaseForStep(stepID string) (model.Phase, bool) {
	for _, p := range outreachPhases {
		for _, s := range p.Steps {
			if s.ID == stepID {
				return p, true
			}
		}
	}
	return model.Phase{}, false
}

// ResolveTemplates joins a step's template ids against the message catalog.
// Unknown ids are silently dropped.
func ResolveTemplates(step model.Step) []model.MessageTemplate {
	var out []model.MessageTemplate
	for _, id := range step.Templates {
		if t, ok := MessageTemplateByID(id); ok {
			out = append(out, t)
		}
	}
	return out
}
