// ABOUTME: Interactive onboarding wizard building the user profile.
// ABOUTME: Four validated steps; saving replaces the profile and resets the diary.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sehatsense/sehat/internal/models"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create or replace your health profile",
	Long: `Walk through the onboarding wizard to create your health profile.

The wizard collects personal details, health conditions and goals, body
measurements, and lifestyle habits in four steps. Replacing an existing
profile starts a fresh food diary, since prior meal scores were computed
against the old profile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(os.Stdin)

		if st.Profile() != nil {
			color.Yellow("A profile already exists. Saving a new one will clear your food diary.")
			if !confirm(reader, "Continue?") {
				fmt.Println("Setup cancelled.")
				return nil
			}
		}

		p := &models.UserProfile{}

		steps := []func(*bufio.Reader, *models.UserProfile){
			collectPersonalDetails,
			collectConditions,
			collectBodyMeasurements,
			collectLifestyle,
		}
		for i, collect := range steps {
			for {
				color.Cyan("\nStep %d of %d", i+1, models.SetupSteps)
				collect(reader, p)
				if err := p.ValidateSetupStep(i + 1); err == nil {
					break
				} else {
					color.Red("%v", err)
				}
			}
		}

		if err := st.SetProfile(p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		saved := st.Profile()
		color.Green("\nProfile saved. Welcome, %s!", saved.Name)
		if saved.BMI > 0 {
			fmt.Printf("Your BMI: %.1f\n", saved.BMI)
		}
		return nil
	},
}

func collectPersonalDetails(reader *bufio.Reader, p *models.UserProfile) {
	p.Name = prompt(reader, "Your name")
	p.Age = promptInt(reader, "Age")
	g := promptChoice(reader, "Gender", []string{"male", "female", "other"})
	p.Gender = models.Gender(g)
}

func collectConditions(reader *bufio.Reader, p *models.UserProfile) {
	fmt.Println("Which of these apply to you? (comma-separated numbers)")
	for i, c := range models.AllConditions {
		detail := models.ConditionDetails[c]
		fmt.Printf("  %d. %s - %s\n", i+1, detail.Label, detail.Description)
	}

	p.Conditions = nil
	for _, part := range strings.Split(prompt(reader, "Selection"), ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || idx < 1 || idx > len(models.AllConditions) {
			continue
		}
		p.AddConditions(models.AllConditions[idx-1])
	}
}

func collectBodyMeasurements(reader *bufio.Reader, p *models.UserProfile) {
	p.Height = promptFloat(reader, "Height (cm)")
	p.CurrentWeight = promptFloat(reader, "Current weight (kg)")
	if p.HasCondition(models.ConditionWeightLossGoal) {
		p.TargetWeight = promptFloat(reader, "Target weight (kg)")
	}
}

func collectLifestyle(reader *bufio.Reader, p *models.UserProfile) {
	d := promptChoice(reader, "Dietary preference", []string{"vegetarian", "non-vegetarian", "vegan", "eggetarian"})
	p.DietaryPreference = models.DietaryPreference(d)

	allergies := prompt(reader, "Allergies (comma-separated, empty for none)")
	p.Allergies = nil
	for _, a := range strings.Split(allergies, ",") {
		if a = strings.TrimSpace(a); a != "" {
			p.Allergies = append(p.Allergies, a)
		}
	}

	p.WaterIntake = promptInt(reader, "Daily water intake (liters)")
	a := promptChoice(reader, "Activity level", []string{"sedentary", "light", "moderate", "active"})
	p.ActivityLevel = models.ActivityLevel(a)
	p.SleepHours = promptFloat(reader, "Average sleep (hours, 4-10)")
}

// Input helpers

func prompt(reader *bufio.Reader, label string) string {
	fmt.Printf("%s: ", label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptInt(reader *bufio.Reader, label string) int {
	v, _ := strconv.Atoi(prompt(reader, label))
	return v
}

func promptFloat(reader *bufio.Reader, label string) float64 {
	v, _ := strconv.ParseFloat(prompt(reader, label), 64)
	return v
}

func promptChoice(reader *bufio.Reader, label string, options []string) string {
	answer := strings.ToLower(prompt(reader, fmt.Sprintf("%s (%s)", label, strings.Join(options, "/"))))
	for _, opt := range options {
		if answer == opt {
			return opt
		}
	}
	return ""
}

func confirm(reader *bufio.Reader, label string) bool {
	answer := strings.ToLower(prompt(reader, label+" [y/N]"))
	return answer == "y" || answer == "yes"
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
