package llm_contract

import (
	"strings"

	"github.com/tidwall/gjson"
)

const codeFence = "```"

const (
	ReasonUnavailable = "completion service unavailable"
	ReasonEmpty       = "empty completion"
	ReasonNoObject    = "no JSON object found in completion"
	ReasonInvalidJson = "invalid JSON in completion"
)

// ExtractJson strips an optional markdown code fence, then returns the text from the first '{' to the last
// '}' inclusive. Braces are not balanced: prose containing braces around the payload defeats it.
func ExtractJson(raw string) (string, bool) {
	content := raw
	if strings.HasPrefix(strings.TrimSpace(content), codeFence) {
		if newline := strings.Index(content, "\n"); newline != -1 {
			content = content[newline+1:]
			if closing := strings.LastIndex(content, codeFence); closing != -1 {
				content = content[:closing]
			}
		} else {
			content = strings.ReplaceAll(content, codeFence, "")
		}
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end < start {
		return "", false
	}
	return strings.TrimSpace(content[start : end+1]), true
}

// Extraction is either Ok, holding the parsed payload, or Malformed, holding whatever was received and why it
// could not be used.
type Extraction struct {
	ok      bool
	payload gjson.Result
	raw     string
	reason  string
}

func Ok(payload gjson.Result, raw string) Extraction {
	return Extraction{ok: true, payload: payload, raw: raw}
}

func Malformed(raw, reason string) Extraction {
	return Extraction{raw: raw, reason: reason}
}

func (e Extraction) IsOk() bool {
	return e.ok
}

func (e Extraction) Payload() gjson.Result {
	return e.payload
}

func (e Extraction) Raw() string {
	return e.raw
}

func (e Extraction) Reason() string {
	return e.reason
}

func Parse(raw string) Extraction {
	if strings.TrimSpace(raw) == "" {
		return Malformed(raw, ReasonEmpty)
	}

	jsonText, found := ExtractJson(raw)
	if !found {
		return Malformed(raw, ReasonNoObject)
	}
	if !gjson.Valid(jsonText) {
		return Malformed(raw, ReasonInvalidJson)
	}

	payload := gjson.Parse(jsonText)
	if !payload.IsObject() {
		return Malformed(raw, ReasonNoObject)
	}
	return Ok(payload, raw)
}
