// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/lifehub/backend/internal/application/adapter"
)

// GeminiAssistant implements the adapter.AssistantService using Google Gemini.
// It maps free-text messages (typically from WhatsApp) to structured commands
// against the user's goals and habits.
type GeminiAssistant struct {
	apiKey    string
	modelName string
}

// NewGeminiAssistant creates a new Gemini assistant instance. An empty model
// name falls back to the default.
func NewGeminiAssistant(apiKey, modelName string) *GeminiAssistant {
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}
	return &GeminiAssistant{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the assistant model is configured.
func (s *GeminiAssistant) IsAvailable() bool {
	return s.apiKey != ""
}

// Parse maps a free-text message to a structured command.
func (s *GeminiAssistant) Parse(ctx context.Context, request *adapter.AssistantParseRequest) (*adapter.AssistantCommand, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini assistant is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	command, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return command, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiAssistant) buildPrompt(request *adapter.AssistantParseRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are the command parser for a personal life-tracking assistant. A user sends short free-text messages about their goals and habits. Your task is to map each message to exactly one structured command.

SUPPORTED INTENTS:
- "log_progress": the user reports progress toward a goal (e.g. "read 30 pages", "saved 200 today"). Requires a target goal and a positive numeric delta.
- "toggle_checkin": the user reports completing (or undoing) a habit today (e.g. "went for a run", "skipped meditation, undo it").
- "unknown": the message does not clearly match any goal or habit, or asks for something unsupported.

RULES:
- Match the message against the candidate lists below by name, loosely (synonyms and partial names are fine), but only when the match is unambiguous.
- If the message could refer to more than one candidate, or to none, use "unknown".
- delta_value must be positive for log_progress. Infer it from the message; when the message clearly implies completion of a single unit, use 1.
- Keep the note short, preserving any detail the user gave beyond target and amount.
- reply is a short friendly confirmation in the user's language.

GOAL CANDIDATES:
`)

	writeTargets(&sb, request.Goals)

	sb.WriteString("\nHABIT CANDIDATES:\n")
	writeTargets(&sb, request.Habits)

	sb.WriteString(fmt.Sprintf(`
MESSAGE:
%q

Respond with a single JSON object:
{
  "intent": "log_progress" | "toggle_checkin" | "unknown",
  "target_id": "uuid of the matched goal or habit, or empty",
  "delta_value": number (0 unless log_progress),
  "note": "string",
  "reply": "string"
}

RESPONSE FORMAT: return only the JSON object, no additional text.
`, request.Message))

	return sb.String()
}

func writeTargets(sb *strings.Builder, targets []adapter.AssistantTarget) {
	if len(targets) == 0 {
		sb.WriteString("(none)\n")
		return
	}
	for _, t := range targets {
		if t.Unit != "" {
			fmt.Fprintf(sb, "- ID: %s, Name: %q, Unit: %s\n", t.ID, t.Name, t.Unit)
		} else {
			fmt.Fprintf(sb, "- ID: %s, Name: %q\n", t.ID, t.Name)
		}
	}
}

// geminiCommand represents the raw response from Gemini.
type geminiCommand struct {
	Intent     string  `json:"intent"`
	TargetID   string  `json:"target_id"`
	DeltaValue float64 `json:"delta_value"`
	Note       string  `json:"note"`
	Reply      string  `json:"reply"`
}

// parseResponse parses the Gemini response into an AssistantCommand.
func (s *GeminiAssistant) parseResponse(resp *genai.GenerateContentResponse) (*adapter.AssistantCommand, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}
	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Strip markdown code fences if present
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var raw geminiCommand
	if err := json.Unmarshal([]byte(textContent), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	command := &adapter.AssistantCommand{
		TargetID:   raw.TargetID,
		DeltaValue: raw.DeltaValue,
		Note:       raw.Note,
		Reply:      raw.Reply,
	}

	switch adapter.AssistantIntent(raw.Intent) {
	case adapter.IntentLogProgress:
		command.Intent = adapter.IntentLogProgress
	case adapter.IntentToggleCheckin:
		command.Intent = adapter.IntentToggleCheckin
	default:
		command.Intent = adapter.IntentUnknown
	}

	return command, nil
}
