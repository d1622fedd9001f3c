package llm_contract

import (
	"context"
	"encoding/json"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/grantscout/grantscout-backend/utils"
)

type FieldKind int

const (
	StringField FieldKind = iota
	// ScoreField accepts JSON numbers and numeric strings, clamped to [Min, Max].
	ScoreField
	StringListField
)

// Field defaults must match the kind: string, float64 or []string.
type Field struct {
	Name    string
	Kind    FieldKind
	Default any
	Min     float64
	Max     float64
}

type Schema []Field

type Fields map[string]any

// Validate never fails: every field of the schema is present in the result, either read from the payload or
// replaced by its default. Validating the JSON of a validated value gives the same value back.
func (s Schema) Validate(ctx context.Context, payload gjson.Result) Fields {
	logger := utils.LoggerFromContext(ctx)
	fields := make(Fields, len(s))

	for _, field := range s {
		value := payload.Get(gjson.Escape(field.Name))

		switch field.Kind {
		case StringField:
			if value.Type == gjson.String {
				fields[field.Name] = value.Str
			} else {
				fields[field.Name] = field.Default
			}

		case ScoreField:
			score, ok := parseScore(value)
			if !ok {
				if value.Exists() {
					logger.WarnContext(ctx, "Invalid score format, using default",
						"field", field.Name, "value", value.Raw)
				}
				fields[field.Name] = field.Default
				continue
			}
			fields[field.Name] = max(field.Min, min(field.Max, score))

		case StringListField:
			if !value.IsArray() {
				fields[field.Name] = slices.Clone(field.Default.([]string))
				continue
			}
			items := make([]string, 0, len(value.Array()))
			for _, item := range value.Array() {
				switch item.Type {
				case gjson.Null:
				case gjson.JSON:
					items = append(items, item.Raw)
				default:
					items = append(items, item.String())
				}
			}
			fields[field.Name] = items
		}
	}

	return fields
}

func parseScore(value gjson.Result) (float64, bool) {
	var score float64
	switch value.Type {
	case gjson.Number:
		score = value.Num
	case gjson.String:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value.Str), 64)
		if err != nil {
			return 0, false
		}
		score = parsed
	default:
		return 0, false
	}
	if math.IsNaN(score) {
		return 0, false
	}
	return score, true
}

func (f Fields) String(name string) string {
	s, _ := f[name].(string)
	return s
}

func (f Fields) Score(name string) float64 {
	v, _ := f[name].(float64)
	return v
}

func (f Fields) Strings(name string) []string {
	v, _ := f[name].([]string)
	return v
}

func (f Fields) JSON() ([]byte, error) {
	return json.Marshal(map[string]any(f))
}
