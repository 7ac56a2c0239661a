package diagnose

import (
	"fmt"
	"strings"

	"crop-doctor/api/internal/lang"
)

// UserContext is the questionnaire a farmer fills in alongside the photo.
// Every field is optional free text; the prompt renders missing answers as
// an explicit placeholder so the model sees the full questionnaire shape.
type UserContext struct {
	LeafDiscoloration    string `json:"leaf_discoloration"`
	WiltingDropping      string `json:"wilting_dropping"`
	RecentWeather        string `json:"recent_weather"`
	TemperatureCondition string `json:"temperature_condition"`
	RecentFertilizer     string `json:"recent_fertilizer"`
	PreviousPesticide    string `json:"previous_pesticide"`
	InsectsObserved      string `json:"insects_observed"`
	EvidenceOfDamage     string `json:"evidence_of_damage"`
	WateringFrequency    string `json:"watering_frequency"`
	PlantAgeGrowth       string `json:"plant_age_growth"`

	// Lang is carried for callers that tuck the selection into the
	// questionnaire; it is never rendered into the prompt body.
	Lang string `json:"lang,omitempty"`
}

const notSpecified = "Not specified."

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return notSpecified
	}
	return s
}

// BuildPrompt renders the full instruction for the report model. Output is
// byte-identical for identical inputs: fixed field order, no timestamps.
func BuildPrompt(diseaseName string, uc UserContext, code lang.Code) string {
	name := strings.ReplaceAll(diseaseName, "_", " ")
	langName := lang.DisplayName(code)

	var b strings.Builder
	b.WriteString("Act as an expert agronomist and plant pathologist for a user in India.\n")
	fmt.Fprintf(&b, "IMPORTANT: Write the entire response in %s.\n", langName)
	b.WriteString("Use clear markdown headings and bullet points. Bold key actions and key warnings.\n")
	b.WriteString("\n")
	b.WriteString("*Primary Diagnosis from Image Analysis:*\n")
	fmt.Fprintf(&b, "The image analysis model has identified the plant disease as: %q.\n", name)
	b.WriteString("\n")
	b.WriteString("*Additional Context from the User (Detailed Questionnaire):*\n")
	b.WriteString("- Plant Symptoms:\n")
	fmt.Fprintf(&b, "    - Leaf discoloration observed: %q\n", orPlaceholder(uc.LeafDiscoloration))
	fmt.Fprintf(&b, "    - Wilting or dropping: %q\n", orPlaceholder(uc.WiltingDropping))
	b.WriteString("- Environmental Conditions:\n")
	fmt.Fprintf(&b, "    - Recent weather: %q\n", orPlaceholder(uc.RecentWeather))
	fmt.Fprintf(&b, "    - Temperature condition: %q\n", orPlaceholder(uc.TemperatureCondition))
	b.WriteString("- Treatment History:\n")
	fmt.Fprintf(&b, "    - Recent fertilizer application: %q\n", orPlaceholder(uc.RecentFertilizer))
	fmt.Fprintf(&b, "    - Previous pesticide use: %q\n", orPlaceholder(uc.PreviousPesticide))
	b.WriteString("- Pest Observations:\n")
	fmt.Fprintf(&b, "    - Insects observed: %q\n", orPlaceholder(uc.InsectsObserved))
	fmt.Fprintf(&b, "    - Evidence of pest damage: %q\n", orPlaceholder(uc.EvidenceOfDamage))
	b.WriteString("- Plant Management:\n")
	fmt.Fprintf(&b, "    - Watering frequency: %q\n", orPlaceholder(uc.WateringFrequency))
	fmt.Fprintf(&b, "    - Plant age/growth stage: %q\n", orPlaceholder(uc.PlantAgeGrowth))
	b.WriteString("\n")
	b.WriteString("*Your Task:*\n")
	b.WriteString("Based on all the information above, provide a comprehensive and actionable report. Structure your response with the following sections using clear markdown:\n")
	b.WriteString("\n")
	b.WriteString("1. *Integrated Diagnosis*\n")
	b.WriteString("2. *Immediate Action Plan (Organic)*\n")
	b.WriteString("3. *Immediate Action Plan (Chemical)*\n")
	b.WriteString("4. *Long-Term Prevention Strategy*\n")
	b.WriteString("5. *Local Agricultural Support (India)*\n")
	return b.String()
}
