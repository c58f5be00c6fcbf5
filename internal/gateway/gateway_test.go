// ABOUTME: Tests for the five gateway operations against a fake transport.
// ABOUTME: Verifies prompts, parsing failures, and error classification.
package gateway

import (
	"context"
	"errors"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/sehatsense/sehat/internal/models"
	"github.com/sehatsense/sehat/pkg/logger"
)

// fakeCompleter replays a canned response and records the last request.
type fakeCompleter struct {
	response string
	err      error
	lastReq  openai.ChatCompletionRequest
}

func (f *fakeCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.response}},
		},
	}, nil
}

func testGateway(t *testing.T, response string, err error) (*Gateway, *fakeCompleter) {
	t.Helper()
	fake := &fakeCompleter{response: response, err: err}
	return newWithCompleter(fake, logger.NewNop()), fake
}

func gatewayProfile() *models.UserProfile {
	p := &models.UserProfile{
		Name:              "Asha",
		Age:               34,
		Gender:            models.GenderFemale,
		Conditions:        []models.Condition{models.ConditionFattyLiver, models.ConditionWeightLossGoal},
		DietaryPreference: models.DietVegetarian,
		Allergies:         []string{"peanuts"},
		CurrentWeight:     70,
		TargetWeight:      62,
		Height:            165,
		WaterIntake:       3,
		ActivityLevel:     models.ActivityModerate,
		SleepHours:        7,
	}
	p.Normalize()
	return p
}

const analysisJSON = `{
  "overallScore": 72,
  "calories": 420, "protein": 18, "carbs": 52, "fats": 12, "fiber": 8,
  "bloodSugarImpact": {"level": "moderate", "explanation": "e", "tip": "t"},
  "liverHealth": {"score": 7, "explanation": "e", "tip": "t"},
  "cholesterolImpact": {"effect": "neutral", "explanation": "e", "tip": "t"},
  "weightLossAlignment": {"percentage": 85, "explanation": "e", "tip": "t"},
  "smartSuggestions": ["drink water"]
}`

func TestAnalyzeFood(t *testing.T) {
	g, fake := testGateway(t, "Sure! Here is the analysis:\n"+analysisJSON+"\nHope that helps.", nil)

	analysis, err := g.AnalyzeFood(context.Background(), "2 rotis with dal", gatewayProfile())
	if err != nil {
		t.Fatalf("AnalyzeFood failed: %v", err)
	}
	if analysis.OverallScore != 72 {
		t.Errorf("OverallScore = %d, want 72", analysis.OverallScore)
	}
	if analysis.BloodSugarImpact.Level != models.ImpactModerate {
		t.Errorf("Level = %s, want moderate", analysis.BloodSugarImpact.Level)
	}

	prompt := fake.lastReq.Messages[0].Content
	for _, fragment := range []string{
		`FOOD EATEN: "2 rotis with dal"`,
		"Name: Asha, Age: 34, Gender: female",
		"Conditions: fatty liver, weight loss goal",
		"Allergies: peanuts",
		"Primary Goal: Weight Loss (Target: 62kg)",
	} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}
}

func TestAnalyzeFoodParseError(t *testing.T) {
	g, _ := testGateway(t, "I'm sorry, I can't analyze that.", nil)

	_, err := g.AnalyzeFood(context.Background(), "mystery meal", gatewayProfile())
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.Raw == "" {
		t.Error("raw response should be retained for logs")
	}
}

func TestAnalyzeFoodRejectsInvalidShape(t *testing.T) {
	bad := strings.Replace(analysisJSON, `"level": "moderate"`, `"level": "catastrophic"`, 1)
	g, _ := testGateway(t, bad, nil)

	_, err := g.AnalyzeFood(context.Background(), "meal", gatewayProfile())
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("invalid enum should be a ParseError, got %v", err)
	}
}

func TestAnalyzeFoodServiceError(t *testing.T) {
	g, _ := testGateway(t, "", errors.New("connection refused"))

	_, err := g.AnalyzeFood(context.Background(), "meal", gatewayProfile())
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ServiceError, got %v", err)
	}
}

func TestAnalyzeReport(t *testing.T) {
	g, fake := testGateway(t, "HbA1c: 6.6\nLDL: 140\nSGPT: 10\nVitamin D: Not found", nil)

	data, conditions, err := g.AnalyzeReport(context.Background(), []byte("fake-image"), "image/png")
	if err != nil {
		t.Fatalf("AnalyzeReport failed: %v", err)
	}
	if len(data) != 3 {
		t.Errorf("expected 3 fields, got %v", data)
	}
	if !hasCondition(conditions, models.ConditionDiabetes) ||
		!hasCondition(conditions, models.ConditionHighCholesterol) {
		t.Errorf("unexpected conditions: %v", conditions)
	}
	if len(conditions) != 2 {
		t.Errorf("expected exactly diabetes and high_cholesterol, got %v", conditions)
	}

	parts := fake.lastReq.Messages[0].MultiContent
	if len(parts) != 2 {
		t.Fatalf("expected text + image parts, got %d", len(parts))
	}
	if parts[1].ImageURL == nil || !strings.HasPrefix(parts[1].ImageURL.URL, "data:image/png;base64,") {
		t.Error("image should be sent as a base64 data URL with its mime type")
	}
}

func TestAnalyzeReportExtractionError(t *testing.T) {
	g, _ := testGateway(t, "HbA1c: Not found\nLDL: Not found", nil)

	_, _, err := g.AnalyzeReport(context.Background(), []byte("blurry"), "image/jpeg")
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}
}

func TestMealIdeas(t *testing.T) {
	response := `[
	  {"name": "Moong Dal Cheela", "imageSearchTerm": "moong dal chilla", "description": "d",
	   "healthScores": [{"condition": "bloodSugar", "score": 9}],
	   "nutrition": {"calories": 180, "protein": 12, "carbs": 22, "fats": 5},
	   "prepTime": "15 minutes", "difficulty": "Easy",
	   "ingredients": ["dal"], "recipe": ["cook"], "whyItsGood": "w"}
	]`
	g, fake := testGateway(t, response, nil)

	ideas, err := g.MealIdeas(context.Background(), gatewayProfile(), models.MealFilters{
		MealType: "Lunch", Time: "Moderate (20-30 min)", Cuisine: "North Indian",
	})
	if err != nil {
		t.Fatalf("MealIdeas failed: %v", err)
	}
	if len(ideas) != 1 {
		t.Fatalf("expected 1 idea, got %d", len(ideas))
	}
	if ideas[0].Image != "https://source.unsplash.com/500x300/?moong+dal+chilla" {
		t.Errorf("unexpected image URL: %s", ideas[0].Image)
	}

	if !strings.Contains(fake.lastReq.Messages[0].Content, `"mealType":"Lunch"`) {
		t.Error("filters should be embedded in the prompt")
	}
}

func TestMealIdeasParseError(t *testing.T) {
	g, _ := testGateway(t, "no array in sight", nil)

	_, err := g.MealIdeas(context.Background(), gatewayProfile(), models.MealFilters{})
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestDrinkIdeas(t *testing.T) {
	response := `[{"name": "Amla Shot", "perfectFor": ["Fatty Liver"], "calories": 25,
	  "sugar": "4g", "keyNutrients": "Vitamin C", "whyItWorks": "w",
	  "ingredients": ["amla"], "prepTime": "5 mins", "bestTime": "Morning",
	  "recipe": "blend", "warnings": ""}]`
	g, fake := testGateway(t, response, nil)

	drinks, err := g.DrinkIdeas(context.Background(), gatewayProfile(), models.DrinkFilters{
		DrinkType: "all", TimeOfDay: "any",
	})
	if err != nil {
		t.Fatalf("DrinkIdeas failed: %v", err)
	}
	if len(drinks) != 1 || drinks[0].Name != "Amla Shot" {
		t.Errorf("unexpected drinks: %v", drinks)
	}

	if !strings.Contains(fake.lastReq.Messages[0].Content, "Drink type: all, Time of day: any") {
		t.Error("filters should be embedded in the prompt")
	}
}

func TestDrinkIdeasParseError(t *testing.T) {
	g, _ := testGateway(t, "{\"not\": \"an array\"}", nil)

	_, err := g.DrinkIdeas(context.Background(), gatewayProfile(), models.DrinkFilters{})
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestChat(t *testing.T) {
	g, fake := testGateway(t, "Bahut accha! Keep it up.", nil)

	history := []models.ChatMessage{
		models.NewChatMessage(models.SenderUser, "What should I eat for breakfast?"),
		models.NewChatMessage(models.SenderAI, "Try poha with vegetables."),
	}
	reply, err := g.Chat(context.Background(), "And for lunch?", gatewayProfile(), history)
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if reply != "Bahut accha! Keep it up." {
		t.Errorf("unexpected reply: %q", reply)
	}

	msgs := fake.lastReq.Messages
	if len(msgs) != 4 {
		t.Fatalf("expected system + 2 history + 1 new, got %d", len(msgs))
	}
	if msgs[0].Role != "system" || !strings.Contains(msgs[0].Content, "SehatSense") {
		t.Error("first message should be the persona instruction")
	}
	if msgs[1].Role != "user" || msgs[2].Role != "assistant" {
		t.Errorf("history roles mapped wrong: %s, %s", msgs[1].Role, msgs[2].Role)
	}
	if msgs[3].Role != "user" || msgs[3].Content != "And for lunch?" {
		t.Error("new message should be last")
	}
}
