package completion

import (
	"encoding/json"
	"strings"
)

// ExtractJSON unmarshals a JSON object from model output. Models often wrap
// the object in prose or code fences, so a failed direct parse falls back to
// the slice between the first '{' and the last '}'.
func ExtractJSON(content string, v any) error {
	if err := json.Unmarshal([]byte(content), v); err == nil {
		return nil
	}
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return ErrNoJSON
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), v); err != nil {
		return ErrNoJSON
	}
	return nil
}
