// ABOUTME: MCP tool implementations for the food diary and profile.
// ABOUTME: log_meal runs the full analyze-then-store pipeline.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sehatsense/sehat/internal/models"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_profile",
		Description: "Get the user's health profile (conditions, goals, lifestyle)",
	}, s.handleGetProfile)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_meal",
		Description: "Analyze a described meal against the user's health profile and add it to the diary",
	}, s.handleLogMeal)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_meals",
		Description: "List logged meals, optionally for a single date (YYYY-MM-DD)",
	}, s.handleListMeals)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_meal",
		Description: "Delete a logged meal by ID",
	}, s.handleDeleteMeal)
}

// Tool input/output types

type logMealInput struct {
	Description string `json:"description" jsonschema:"description=What the user ate in their own words,required"`
	MealType    string `json:"meal_type,omitempty" jsonschema:"description=Breakfast, Lunch, Dinner, or Snack (default Lunch)"`
}

type logMealOutput struct {
	ID           string  `json:"id"`
	OverallScore int     `json:"overall_score"`
	Calories     float64 `json:"calories"`
	Message      string  `json:"message"`
}

type listMealsInput struct {
	Date string `json:"date,omitempty" jsonschema:"description=Limit to one local calendar date (YYYY-MM-DD)"`
}

type deleteMealInput struct {
	ID string `json:"id" jsonschema:"description=Meal ID,required"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleGetProfile(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	p := s.store.Profile()
	if p == nil {
		return nil, map[string]any{"message": "No profile set up yet."}, nil
	}
	return nil, p, nil
}

func (s *Server) handleLogMeal(ctx context.Context, req *mcp.CallToolRequest, input logMealInput) (*mcp.CallToolResult, logMealOutput, error) {
	if s.gw == nil {
		return nil, logMealOutput{}, fmt.Errorf("no AI API key configured; cannot analyze meals")
	}
	profile := s.store.Profile()
	if profile == nil {
		return nil, logMealOutput{}, fmt.Errorf("no profile exists yet; run setup first")
	}

	mealType := models.MealLunch
	if input.MealType != "" {
		if !models.IsValidMealType(input.MealType) {
			return nil, logMealOutput{}, fmt.Errorf("unknown meal type: %s", input.MealType)
		}
		mealType = models.MealType(input.MealType)
	}

	analysis, err := s.gw.AnalyzeFood(ctx, input.Description, profile)
	if err != nil {
		return nil, logMealOutput{}, fmt.Errorf("failed to analyze meal: %w", err)
	}

	meal := models.NewLoggedMeal(input.Description, mealType, *analysis)
	if err := s.store.AddMeal(meal); err != nil {
		return nil, logMealOutput{}, fmt.Errorf("failed to log meal: %w", err)
	}

	return nil, logMealOutput{
		ID:           meal.ID,
		OverallScore: analysis.OverallScore,
		Calories:     analysis.Calories,
		Message:      fmt.Sprintf("Logged %s (score %d/100, %.0f kcal)", input.Description, analysis.OverallScore, analysis.Calories),
	}, nil
}

func (s *Server) handleListMeals(ctx context.Context, req *mcp.CallToolRequest, input listMealsInput) (*mcp.CallToolResult, any, error) {
	log := s.store.FoodLog()

	if input.Date != "" {
		meals, ok := log[input.Date]
		if !ok {
			return nil, map[string]any{"message": "No meals logged on " + input.Date}, nil
		}
		return nil, meals, nil
	}

	if len(log) == 0 {
		return nil, map[string]any{"message": "No meals logged yet."}, nil
	}
	return nil, log, nil
}

func (s *Server) handleDeleteMeal(ctx context.Context, req *mcp.CallToolRequest, input deleteMealInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.store.DeleteMeal(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete meal: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted meal: %s", input.ID)}, nil
}
