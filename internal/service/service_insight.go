package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/internal/policy"
	"github.com/safebite/safebite/internal/store"
	"github.com/safebite/safebite/models"
)

// StructuredGenerator is the slice of the Gemini client the insight service
// needs: one structured, schema-constrained completion per call.
type StructuredGenerator interface {
	GenerateStructured(ctx context.Context, prompt string, schema any, out any) error
}

// insightService implements the three AI analysis operations. Each one
// reads only the caller's own stored documents (gated by the same policy as
// the plain read endpoints), derives a prompt, and performs a single
// generateContent call. Nothing is ever written: a failed analysis leaves
// all stored state untouched.
type insightService struct {
	logRepository     store.LogRepository
	catalogRepository store.CatalogRepository
	generator         StructuredGenerator

	logger *logger.Logger
}

func NewInsightService(logRepository store.LogRepository, catalogRepository store.CatalogRepository, generator StructuredGenerator, logger *logger.Logger) InsightService {
	return &insightService{
		logRepository:     logRepository,
		catalogRepository: catalogRepository,
		generator:         generator,
		logger:            logger,
	}
}

// AnalyzeText scans free text for allergen risks relative to the caller's
// known allergens, with the full allergen catalog supplied as context so
// the model recognises hidden sources and cross-reactive foods.
func (s *insightService) AnalyzeText(ctx context.Context, callerID string, req models.AnalyzeTextRequest) (models.AnalyzeTextResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return models.AnalyzeTextResponse{}, ErrInvalidDataProvided
	}
	if err := policy.Authorize(policy.Identity(callerID), policy.CollectionAllergens, policy.OpRead); err != nil {
		return models.AnalyzeTextResponse{}, err
	}

	catalog, err := s.catalogRepository.GetAllergens(ctx)
	if err != nil {
		return models.AnalyzeTextResponse{}, fmt.Errorf("load allergen catalog: %w", err)
	}

	catalogJSON, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return models.AnalyzeTextResponse{}, fmt.Errorf("encode allergen catalog: %w", err)
	}

	prompt := fmt.Sprintf(`Analyze the following food item, recipe, or menu text for potential food allergy risks.
The user has allergies to the following specific allergen IDs: %s.
Here is a list of known uncommon allergens from our database, including their common names, hidden sources, and cross-reactive foods:
%s

Text to analyze: %q

Your task is to:
1. Identify any specific allergens present in the text that match the user's known allergies or are highly likely to be present. For each identified allergen, state if it's a direct match or a high probability.
2. Identify any potential hidden sources or cross-reactive foods from the text that relate to the user's allergies or the known uncommon allergens.
3. Provide a concise, overall risk assessment summary.
4. Suggest any clarifying questions if the text is ambiguous.`,
		strings.Join(req.UserAllergens, ", "), catalogJSON, req.Text)

	var result models.AnalysisResult
	if err = s.generator.GenerateStructured(ctx, prompt, analysisResultSchema, &result); err != nil {
		return models.AnalyzeTextResponse{}, err
	}

	return models.AnalyzeTextResponse{AnalysisResult: result}, nil
}

// PredictiveAnalytics derives recurring patterns and actionable suggestions
// from the caller's complete log history.
func (s *insightService) PredictiveAnalytics(ctx context.Context, callerID string) (models.PredictiveInsights, error) {
	entries, err := s.ownLogs(ctx, callerID)
	if err != nil {
		return models.PredictiveInsights{}, err
	}

	if len(entries) == 0 {
		return models.PredictiveInsights{
			Patterns:       []string{},
			Suggestions:    []string{},
			GeminiInsights: "No sufficient log data available yet to generate predictive insights. Please log more entries!",
		}, nil
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("Date: %s, Food: %s, Symptoms: %s, Severity: %s, Source: %s",
			entry.OccurredAt().Format("2006-01-02T15:04:05"),
			orNA(entry.FoodIntakeText),
			strings.Join(entry.SymptomsExperienced, ", "),
			orNA(entry.Severity),
			orNA(entry.PotentialExposureSource)))
	}
	linesJSON, _ := json.MarshalIndent(lines, "", "  ")

	prompt := fmt.Sprintf(`Analyze the following food allergy symptom and exposure logs for a user.
Identify any recurring patterns, potential triggers, or correlations between food intake, symptoms, severity, and exposure sources.
Based on these patterns, provide actionable suggestions for the user.

Here are the user's logs:
%s

Provide your analysis as "patterns" (a list of strings describing insights) and "suggestions" (a list of actionable advice strings).`, linesJSON)

	var insights models.PredictiveInsights
	if err = s.generator.GenerateStructured(ctx, prompt, predictiveInsightsSchema, &insights); err != nil {
		return models.PredictiveInsights{}, err
	}
	insights.GeminiInsights = "Analysis completed successfully."

	return insights, nil
}

// PredictAllergen infers possible allergens from the chronological sequence
// of food intake and symptom entries.
func (s *insightService) PredictAllergen(ctx context.Context, callerID string) (models.AllergenPrediction, error) {
	entries, err := s.ownLogs(ctx, callerID)
	if err != nil {
		return models.AllergenPrediction{}, err
	}

	if len(entries) == 0 {
		return models.AllergenPrediction{
			PredictedAllergens: []models.PredictedAllergen{},
			GeminiMessage:      "No log data available yet to predict possible allergens. Please log more entries!",
		}, nil
	}

	// chronological context matters for cause/effect inference
	models.SortLogsChronologically(entries)

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		switch entry.Type {
		case models.LogTypeFoodIntake:
			lines = append(lines, fmt.Sprintf("Food Intake on %s at %s: %s",
				entry.FoodIntakeDate, entry.FoodIntakeTime, orNA(entry.FoodIntakeText)))
		case models.LogTypeSymptom:
			if entry.NoSymptoms() {
				lines = append(lines, fmt.Sprintf("Symptoms on %s at %s: No symptoms reported (Nil).",
					entry.SymptomDate, entry.SymptomTime))
			} else {
				lines = append(lines, fmt.Sprintf("Symptoms on %s at %s: Symptoms: %s, Severity: %s, Source: %s",
					entry.SymptomDate, entry.SymptomTime,
					strings.Join(entry.SymptomsExperienced, ", "),
					orNA(entry.Severity), orNA(entry.PotentialExposureSource)))
			}
		}
	}
	linesJSON, _ := json.MarshalIndent(lines, "", "  ")

	prompt := fmt.Sprintf(`You are an AI assistant specialized in analyzing dietary logs and predicting possible food allergens.
Analyze the following chronological log entries, which include food intake and symptom occurrences.
Based on the patterns you observe (e.g. specific foods consumed before symptoms, consistency of symptoms),
identify the most likely uncommon food allergens that might be causing the reactions.
Consider cross-reactivity and hidden sources if implied by the data.

Focus on providing a list of *possible* allergens, not definitive diagnoses.
For each predicted allergen, provide a brief, clear reasoning based on the provided logs.
If no clear patterns or allergens can be predicted, return an empty array.

User's chronological logs:
%s`, linesJSON)

	var predicted []models.PredictedAllergen
	if err = s.generator.GenerateStructured(ctx, prompt, predictedAllergensSchema, &predicted); err != nil {
		return models.AllergenPrediction{}, err
	}

	if len(predicted) == 0 {
		return models.AllergenPrediction{
			PredictedAllergens: []models.PredictedAllergen{},
			GeminiMessage:      "No clear patterns or possible allergens could be predicted from your current logs. Please log more data for better insights.",
		}, nil
	}

	return models.AllergenPrediction{
		PredictedAllergens: predicted,
		GeminiMessage:      "Analysis complete. Here are possible allergens based on your logs.",
	}, nil
}

// ownLogs reads the caller's own log collection through the standard policy
// gate.
func (s *insightService) ownLogs(ctx context.Context, callerID string) ([]models.LogEntry, error) {
	if err := policy.Authorize(policy.Identity(callerID), models.LogsTopic(callerID), policy.OpRead); err != nil {
		return nil, err
	}

	entries, err := s.logRepository.GetLogs(ctx, callerID, "")
	if err != nil {
		return nil, fmt.Errorf("load caller logs: %w", err)
	}

	return entries, nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// Response schemas sent alongside each prompt, in Gemini's schema dialect.
var (
	analysisResultSchema = map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"detected_allergens": map[string]any{
				"type": "ARRAY",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"allergenId": map[string]any{"type": "STRING"},
						"name":       map[string]any{"type": "STRING"},
						"type":       map[string]any{"type": "STRING"},
						"reason":     map[string]any{"type": "STRING"},
					},
					"required": []string{"allergenId", "name", "type", "reason"},
				},
			},
			"overall_risk_summary": map[string]any{"type": "STRING"},
			"clarifying_questions": map[string]any{
				"type":  "ARRAY",
				"items": map[string]any{"type": "STRING"},
			},
		},
		"required": []string{"detected_allergens", "overall_risk_summary", "clarifying_questions"},
	}

	predictiveInsightsSchema = map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"patterns": map[string]any{
				"type":  "ARRAY",
				"items": map[string]any{"type": "STRING"},
			},
			"suggestions": map[string]any{
				"type":  "ARRAY",
				"items": map[string]any{"type": "STRING"},
			},
		},
		"required": []string{"patterns", "suggestions"},
	}

	predictedAllergensSchema = map[string]any{
		"type": "ARRAY",
		"items": map[string]any{
			"type": "OBJECT",
			"properties": map[string]any{
				"allergen":  map[string]any{"type": "STRING"},
				"reasoning": map[string]any{"type": "STRING"},
			},
			"required": []string{"allergen", "reasoning"},
		},
	}
)
