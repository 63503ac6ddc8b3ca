package scanning

import (
	"encoding/json"
	"fmt"
	"strings"
)

type transcription struct {
	Lines []string `json:"lines"`
}

// parseLinesJSON extracts the transcribed lines from a model reply
func parseLinesJSON(text string) ([]string, error) {
	text = stripFences(text)

	start := strings.Index(text, "{")
	if start == -1 {
		return nil, fmt.Errorf("no JSON object found in response")
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return nil, fmt.Errorf("invalid JSON object in response")
	}

	var t transcription
	if err := json.Unmarshal([]byte(text[start:end+1]), &t); err != nil {
		return nil, fmt.Errorf("unmarshaling json: %w", err)
	}

	lines := make([]string, 0, len(t.Lines))
	for _, l := range t.Lines {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines, nil
}

// stripFences removes a surrounding markdown code block
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
