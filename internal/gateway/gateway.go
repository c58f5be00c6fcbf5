// ABOUTME: The five gateway operations: report, food, meals, drinks, chat.
// ABOUTME: Fail-fast, single attempt; no partial results on any failure.
package gateway

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"

	openai "github.com/sashabaranov/go-openai"

	"github.com/sehatsense/sehat/internal/models"
)

// imageSearchEndpoint is the template a suggestion's image search term is
// encoded into. Pure string transform, never fetched by the gateway.
const imageSearchEndpoint = "https://source.unsplash.com/500x300/?"

// AnalyzeReport sends a report image or PDF to the multimodal model,
// parses the returned "Key: Value" lines into lab values, and derives
// condition flags. Fails with ErrExtraction when nothing could be read.
func (g *Gateway) AnalyzeReport(ctx context.Context, blob []byte, mimeType string) (models.ReportData, []models.Condition, error) {
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(blob))

	messages := []openai.ChatCompletionMessage{{
		Role: openai.ChatMessageRoleUser,
		MultiContent: []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: reportPrompt},
			{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: dataURL}},
		},
	}}

	text, err := g.complete(ctx, "report analysis", g.visionModel, messages, 0)
	if err != nil {
		return nil, nil, err
	}

	data := parseReportLines(text)
	if len(data) == 0 {
		g.log.Debugw("report extraction found no fields", "response", text)
		return nil, nil, ErrExtraction
	}
	return data, DeriveConditions(data), nil
}

// AnalyzeFood asks the model to assess a described meal against the
// profile and returns the validated analysis.
func (g *Gateway) AnalyzeFood(ctx context.Context, description string, p *models.UserProfile) (*models.FoodAnalysis, error) {
	messages := []openai.ChatCompletionMessage{{
		Role:    openai.ChatMessageRoleUser,
		Content: foodAnalysisPrompt(description, p),
	}}

	text, err := g.complete(ctx, "food analysis", g.textModel, messages, 0.4)
	if err != nil {
		return nil, err
	}

	span, ok := extractJSONObject(text)
	if !ok {
		g.log.Warnw("food analysis response had no JSON object", "response", text)
		return nil, &ParseError{What: "food analysis", Raw: text}
	}

	var analysis models.FoodAnalysis
	if err := json.Unmarshal([]byte(span), &analysis); err != nil {
		g.log.Warnw("food analysis JSON did not decode", "error", err, "response", text)
		return nil, &ParseError{What: "food analysis", Raw: text}
	}
	if err := analysis.Validate(); err != nil {
		g.log.Warnw("food analysis failed shape validation", "error", err, "response", text)
		return nil, &ParseError{What: "food analysis", Raw: text}
	}
	return &analysis, nil
}

// MealIdeas requests three personalized meal suggestions. Each parsed
// suggestion's image search term is encoded into an image URL.
func (g *Gateway) MealIdeas(ctx context.Context, p *models.UserProfile, filters models.MealFilters) ([]models.MealSuggestion, error) {
	messages := []openai.ChatCompletionMessage{{
		Role:    openai.ChatMessageRoleUser,
		Content: mealIdeasPrompt(p, filters),
	}}

	text, err := g.complete(ctx, "meal ideas", g.textModel, messages, 0.7)
	if err != nil {
		return nil, err
	}

	span, ok := extractJSONArray(text)
	if !ok {
		g.log.Warnw("meal ideas response had no JSON array", "response", text)
		return nil, &ParseError{What: "meal suggestion list", Raw: text}
	}

	var suggestions []models.MealSuggestion
	if err := json.Unmarshal([]byte(span), &suggestions); err != nil {
		g.log.Warnw("meal ideas JSON did not decode", "error", err, "response", text)
		return nil, &ParseError{What: "meal suggestion list", Raw: text}
	}
	if len(suggestions) == 0 {
		return nil, &ParseError{What: "meal suggestion list", Raw: text}
	}

	for i := range suggestions {
		suggestions[i].Image = imageSearchEndpoint + url.QueryEscape(suggestions[i].ImageSearchTerm)
	}
	return suggestions, nil
}

// DrinkIdeas requests six personalized drink suggestions.
func (g *Gateway) DrinkIdeas(ctx context.Context, p *models.UserProfile, filters models.DrinkFilters) ([]models.DrinkSuggestion, error) {
	messages := []openai.ChatCompletionMessage{{
		Role:    openai.ChatMessageRoleUser,
		Content: drinkIdeasPrompt(p, filters),
	}}

	text, err := g.complete(ctx, "drink ideas", g.textModel, messages, 0.7)
	if err != nil {
		return nil, err
	}

	span, ok := extractJSONArray(text)
	if !ok {
		g.log.Warnw("drink ideas response had no JSON array", "response", text)
		return nil, &ParseError{What: "drink suggestion list", Raw: text}
	}

	var suggestions []models.DrinkSuggestion
	if err := json.Unmarshal([]byte(span), &suggestions); err != nil {
		g.log.Warnw("drink ideas JSON did not decode", "error", err, "response", text)
		return nil, &ParseError{What: "drink suggestion list", Raw: text}
	}
	if len(suggestions) == 0 {
		return nil, &ParseError{What: "drink suggestion list", Raw: text}
	}
	return suggestions, nil
}

// Chat sends one coaching turn with the persona instruction and prior
// history replayed, and returns the raw text reply.
func (g *Gateway) Chat(ctx context.Context, message string, p *models.UserProfile, history []models.ChatMessage) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: chatSystemInstruction(p),
	})
	for _, msg := range history {
		role := openai.ChatMessageRoleAssistant
		if msg.Sender == models.SenderUser {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: msg.Text})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	return g.complete(ctx, "chat", g.textModel, messages, 0.7)
}
