package domain

import "time"

// NarrativeEntry is the privacy-reduced projection of one log sent to the text generator.
type NarrativeEntry struct {
	Habit       string    `json:"habit"`
	Archetype   Archetype `json:"archetype,omitempty"`
	Date        string    `json:"date"`
	Completed   bool      `json:"completed"`
	EnergyLevel *int      `json:"energy_level,omitempty"`
}

// NarrativeProtocol names a configured protocol for the text generator.
type NarrativeProtocol struct {
	Name      string    `json:"name"`
	Archetype Archetype `json:"archetype"`
}

// NarrativeContext is the input handed to the text generator.
type NarrativeContext struct {
	WindowDays int                 `json:"window_days"`
	Protocols  []NarrativeProtocol `json:"protocols"`
	History    []NarrativeEntry    `json:"history"`
}

// NarrativeResponse is the response for the narrative endpoint.
// @Description Short advisory status report.
type NarrativeResponse struct {
	Narrative string `json:"narrative" example:"STRATEGIC_OVERVIEW: Physical protocols holding steady..."`
	// True when the text generator was unavailable and a fixed message was returned
	Fallback    bool      `json:"fallback" example:"false"`
	GeneratedAt time.Time `json:"generated_at"`
	// Trace ID for feedback (only present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
}

// NarrativeFeedbackRequest is the request body for narrative feedback.
// @Description User rating of a previous narrative.
type NarrativeFeedbackRequest struct {
	TraceID string `json:"trace_id" validate:"required" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
	Score   int    `json:"score" validate:"required,min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	Comment string `json:"comment,omitempty" validate:"omitempty,max=1000" example:"Spot on"`
}
