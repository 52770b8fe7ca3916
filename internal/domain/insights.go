package domain

// CoachCommentary contains the structured output from the LLM.
// @Description LLM-generated coaching commentary.
type CoachCommentary struct {
	// Summary of the client's current plan and trend (2-3 sentences)
	Summary string `json:"summary" example:"Your intake target of 2181 kcal puts you in a moderate deficit..."`
	// Observations about the recommendation and tracking trend (3-6 items)
	Observations []string `json:"observations" example:"[\"Weight trend is down 0.4 kg/week, in line with the selected deficit speed\"]"`
	// Actionable guidance (3-5 items)
	Guidance []string `json:"guidance" example:"[\"Keep protein near the 180 g target on training days\"]"`
}

// CommentaryContext is the context object sent to the LLM.
// @Description Context data for commentary generation.
type CommentaryContext struct {
	Client      ClientResponse          `json:"client"`
	Calculation EnergyCalculationResult `json:"calculation"`
	// Human-readable reasoning lines from the expert system
	Reasoning []string `json:"reasoning"`
	// Recent tracking entries, oldest first
	RecentEntries []TrackingEntryResponse `json:"recent_entries"`
	Projection    ProjectionResult        `json:"projection"`
}

// CommentaryResponse is the response for the insights endpoint.
type CommentaryResponse struct {
	Client      ClientResponse          `json:"client"`
	Calculation EnergyCalculationResult `json:"calculation"`
	Commentary  CoachCommentary         `json:"commentary"`
}
