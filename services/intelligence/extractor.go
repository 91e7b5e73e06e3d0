package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"scheduly/models"
	"scheduly/utils"

	"github.com/kaptinlin/jsonrepair"
	"go.uber.org/zap"
)

const promptTemplate = `You are a smart calendar assistant.

From the user's input message:
"%s"

Respond with ONLY a **valid JSON object**, in one of the following formats:

{
    "title": "Meeting title here",
    "summary": "Brief summary here",
    "start": "YYYY-MM-DDTHH:MM:SS+05:30",
    "end": "YYYY-MM-DDTHH:MM:SS+05:30"
}

{
    "Suggested time slots": "10:00-11:00, 12:30-13:30, 15:00-16:00"
}

Rules:
- If no date is mentioned, use today's date: "%s".
- Use 24-hour format with ` + "`+05:30`" + ` timezone.
- If only a start time is mentioned, set end time to 1 hour later.
- If no time is mentioned, set both start and end to "unknown".
- Return **ONLY JSON**, no explanations.
`

var (
	fencedJSONRe = regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```")
	braceRe      = regexp.MustCompile(`(?s)\{.*\}`)
)

// IntentExtractor turns a free-text message into a ParsedIntent via the
// language model.
type IntentExtractor struct {
	completer Completer
}

func NewIntentExtractor(completer Completer) *IntentExtractor {
	return &IntentExtractor{completer: completer}
}

// ExtractIntent prompts the model and parses its reply. A nil intent with a
// nil error means the model answered but no JSON object could be recovered;
// the caller then falls back to local time parsing. A non-nil error means
// the model service itself failed, which must not fall through to fallback.
func (e *IntentExtractor) ExtractIntent(ctx context.Context, message, currentDate string) (*models.ParsedIntent, error) {
	prompt := fmt.Sprintf(promptTemplate, message, currentDate)

	raw, err := e.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("AI processing failed: %w", err)
	}

	raw = strings.TrimSpace(raw)
	utils.GetLogger().Debug("Model raw response", zap.String("response", raw))

	obj := ExtractJSONObject(raw)
	if len(obj) == 0 {
		return nil, nil
	}

	intent := &models.ParsedIntent{
		Title:   stringField(obj, "title"),
		Summary: stringField(obj, "summary"),
		Start:   stringField(obj, "start"),
		End:     stringField(obj, "end"),
	}
	// The suggestion-only reply shape carries none of the booking keys;
	// defaults turn it into an unresolved intent, which routes to the
	// suggestion path rather than the fallback parser.
	intent.ApplyDefaults()
	return intent, nil
}

// ExtractJSONObject recovers a JSON object from model output, tolerating
// surrounding prose and code fences. Attempts in order, first success wins:
// strict decode of the trimmed text, a fenced ```json block, the first
// brace-delimited substring, and finally a repaired version of that
// substring. Returns an empty map when every attempt fails.
func ExtractJSONObject(text string) map[string]any {
	trimmed := strings.TrimSpace(text)

	if obj := decodeObject(trimmed); obj != nil {
		return obj
	}

	if m := fencedJSONRe.FindStringSubmatch(trimmed); m != nil {
		if obj := decodeObject(m[1]); obj != nil {
			return obj
		}
	}

	if candidate := braceRe.FindString(trimmed); candidate != "" {
		if obj := decodeObject(candidate); obj != nil {
			return obj
		}
		// Ragged model output (trailing commas, single quotes) is common
		// enough to be worth one repair attempt before giving up.
		if fixed, err := jsonrepair.JSONRepair(candidate); err == nil {
			if obj := decodeObject(fixed); obj != nil {
				return obj
			}
		}
	}

	return map[string]any{}
}

func decodeObject(s string) map[string]any {
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return nil
	}
	return obj
}

func stringField(obj map[string]any, key string) string {
	if v, ok := obj[key].(string); ok {
		return v
	}
	return ""
}
