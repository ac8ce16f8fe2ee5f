package models

// Request/response shapes of the AI analysis endpoints. Field names follow
// the gateway's wire format and must not be renamed.

// AnalyzeTextRequest asks the gateway to scan free text (a dish, recipe or
// menu) for allergen risks relative to the caller's known allergens.
type AnalyzeTextRequest struct {
	Text          string   `json:"text"`
	UserAllergens []string `json:"userAllergens"`
}

// DetectedAllergen is one finding of a text analysis.
type DetectedAllergen struct {
	AllergenID string `json:"allergenId"`
	Name       string `json:"name"`
	// Type classifies the finding, e.g. "Direct Match", "High Probability"
	// or "Cross-Reactivity".
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

// AnalysisResult is the structured outcome of a text analysis.
type AnalysisResult struct {
	DetectedAllergens   []DetectedAllergen `json:"detected_allergens"`
	OverallRiskSummary  string             `json:"overall_risk_summary"`
	ClarifyingQuestions []string           `json:"clarifying_questions"`
}

// AnalyzeTextResponse wraps the analysis result exactly as the gateway
// returns it.
type AnalyzeTextResponse struct {
	AnalysisResult AnalysisResult `json:"analysis_result"`
}

// PredictiveInsights is the response of the predictive-analytics endpoint:
// recurring patterns and actionable suggestions derived from the caller's
// own logs.
type PredictiveInsights struct {
	Patterns       []string `json:"patterns"`
	Suggestions    []string `json:"suggestions"`
	GeminiInsights string   `json:"gemini_insights,omitempty"`
}

// PredictedAllergen is one possible allergen inferred from log history.
type PredictedAllergen struct {
	Allergen  string `json:"allergen"`
	Reasoning string `json:"reasoning"`
}

// AllergenPrediction is the response of the predict-allergen endpoint.
type AllergenPrediction struct {
	PredictedAllergens []PredictedAllergen `json:"predicted_allergens"`
	GeminiMessage      string              `json:"gemini_message,omitempty"`
}

// Alert is a recall or contamination notice relevant to some allergens.
type Alert struct {
	ID                string   `json:"id"`
	Type              string   `json:"type"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	RelevantAllergens []string `json:"relevantAllergens,omitempty"`
}
