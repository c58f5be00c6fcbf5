// ABOUTME: Prompt construction from profile state.
// ABOUTME: The context block is shared by analysis, planning, and chat.
package gateway

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sehatsense/sehat/internal/models"
)

// buildUserContext renders the profile as the context block every
// personalized prompt embeds.
func buildUserContext(p *models.UserProfile) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Name: %s, Age: %d, Gender: %s\n", p.Name, p.Age, p.Gender)
	fmt.Fprintf(&sb, "Height: %g cm, Weight: %g kg\n", p.Height, p.CurrentWeight)

	conditions := make([]string, 0, len(p.Conditions))
	for _, c := range p.Conditions {
		conditions = append(conditions, strings.ReplaceAll(string(c), "_", " "))
	}
	fmt.Fprintf(&sb, "Conditions: %s\n", joinOr(conditions, "None specified"))
	fmt.Fprintf(&sb, "Allergies: %s\n", joinOr(p.Allergies, "None"))
	fmt.Fprintf(&sb, "Dietary Preference: %s\n", p.DietaryPreference)
	fmt.Fprintf(&sb, "Activity Level: %s\n", p.ActivityLevel)
	fmt.Fprintf(&sb, "Average Sleep: %g hours/night\n", p.SleepHours)
	fmt.Fprintf(&sb, "Daily Water Intake: %d liters\n", p.WaterIntake)

	if p.WeightLossGoal {
		fmt.Fprintf(&sb, "Primary Goal: Weight Loss (Target: %gkg)\n", p.TargetWeight)
	}
	return sb.String()
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

const reportPrompt = "Extract ALL medical test values from this blood report image. " +
	"Find and return ONLY the numerical values for: HbA1c (%), Fasting Glucose (mg/dL), " +
	"LDL Cholesterol (mg/dL), HDL Cholesterol (mg/dL), Triglycerides (mg/dL), " +
	"Total Cholesterol (mg/dL), Vitamin D (ng/mL), Vitamin B12 (pg/mL), SGPT/ALT (U/L), " +
	"SGOT/AST (U/L). If any value is not found in the image, write 'Not found'. " +
	"Return as simple key-value pairs. Example: HbA1c: 6.2"

const foodAnalysisShape = `{
  "overallScore": 85,
  "calories": 420,
  "protein": 18,
  "carbs": 52,
  "fats": 12,
  "fiber": 8,
  "bloodSugarImpact": { "level": "moderate", "explanation": "The rice and roti will raise blood sugar moderately.", "tip": "Replace half the rice with extra dal for slower sugar release." },
  "liverHealth": { "score": 7, "explanation": "Low fat cooking method is good. Paneer adds protein which supports liver repair.", "tip": "Use hung curd instead of paneer to reduce saturated fat." },
  "cholesterolImpact": { "effect": "neutral", "explanation": "No high saturated fat detected. This meal won't negatively impact cholesterol.", "tip": "Add a teaspoon of flax seeds for omega-3." },
  "weightLossAlignment": { "percentage": 85, "explanation": "This meal fits a 1500 calorie goal well. Good protein-to-carb ratio.", "tip": "Remove 1 roti to save 70 calories while staying satisfied." },
  "smartSuggestions": [ "Add a side of cucumber salad for volume and hydration.", "Swap refined oil for ghee (1 tsp) for better fat quality.", "Drink a glass of water 20 mins before this meal." ]
}`

func foodAnalysisPrompt(description string, p *models.UserProfile) string {
	return "You are a nutrition expert analyzing food for someone with specific health conditions.\n" +
		"USER PROFILE:\n" + buildUserContext(p) + "\n" +
		"FOOD EATEN: \"" + description + "\"\n\n" +
		"Provide a comprehensive analysis in this EXACT JSON format, with no other text or markdown:\n" +
		foodAnalysisShape
}

const mealIdeaShape = `{
  "name": "Protein-Packed Moong Dal Cheela",
  "imageSearchTerm": "moong dal chilla",
  "description": "A savory pancake perfect for a filling, low-glycemic breakfast.",
  "healthScores": [
    {"condition": "bloodSugar", "score": 9},
    {"condition": "weightLoss", "score": 9},
    {"condition": "liver", "score": 8}
  ],
  "nutrition": {"calories": 180, "protein": 12, "carbs": 22, "fats": 5},
  "prepTime": "15 minutes",
  "difficulty": "Easy",
  "ingredients": ["1 cup moong dal (soaked)", "1 small onion, chopped", "Green chili, coriander", "Spices"],
  "recipe": ["Grind soaked dal to a paste.", "Mix in veggies and spices.", "Cook on a pan like a pancake."],
  "whyItsGood": "Moong dal has a low glycemic index, preventing blood sugar spikes. It's high in protein and fiber, keeping you full and supporting weight loss."
}`

func mealIdeasPrompt(p *models.UserProfile, filters models.MealFilters) string {
	prefs, _ := json.Marshal(filters)
	return "Generate 3 personalized meal ideas for the user below.\n" +
		"USER PROFILE: " + buildUserContext(p) + "\n" +
		"PREFERENCES: " + string(prefs) + "\n\n" +
		"Return a valid JSON array of 3 objects. Each object must have this structure:\n" +
		mealIdeaShape
}

const drinkIdeaShape = `[{
  "name": "Amla-Ginger Immunity Shot",
  "perfectFor": ["Fatty Liver (Detoxifying)", "Immunity boost"],
  "calories": 25,
  "sugar": "4g",
  "keyNutrients": "Vitamin C: 300% DV",
  "whyItWorks": "Amla supports liver detox and reduces inflammation. Ginger improves insulin sensitivity.",
  "ingredients": ["2 fresh amla", "1 inch ginger", "1 tsp honey (optional)"],
  "prepTime": "5 mins",
  "bestTime": "Morning on empty stomach",
  "recipe": "Blend amla and ginger with a little water, strain, and drink.",
  "warnings": ""
}]`

func drinkIdeasPrompt(p *models.UserProfile, filters models.DrinkFilters) string {
	return "You are a nutrition expert. Generate 6 personalized healthy drink recommendations for this user:\n" +
		"USER PROFILE:\n" + buildUserContext(p) + "\n" +
		"PREFERENCES:\n" +
		"Drink type: " + filters.DrinkType + ", Time of day: " + filters.TimeOfDay + "\n\n" +
		"Return response as a valid JSON array of 6 objects, with this exact structure:\n" +
		drinkIdeaShape
}

func chatSystemInstruction(p *models.UserProfile) string {
	return "You are SehatSense, a warm, supportive AI Health Coach for Indians. Your user's profile is:\n" +
		buildUserContext(p) +
		"Use a friendly, conversational tone, mixing in simple Hindi-English naturally " +
		"(e.g., \"Try adding jeera to your dal\"). Give practical, India-specific advice. " +
		"Be encouraging, never judgmental. Keep responses concise."
}
