package llm_contract

import (
	"context"
	"strings"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/grantscout/grantscout-backend/models"
)

type greeting struct {
	Text     string
	Fallback string
}

var greetingTemplates = TemplateSet{
	Academic: Template{
		Name:         "academic",
		Instructions: "academic instructions",
		Schema:       `{"text":"string"}`,
		Prompt:       template.Must(template.New("academic").Parse("Greet {{.name}} using {{.schema}}")),
	},
	Startup: Template{
		Name:         "startup",
		Instructions: "startup instructions",
		Prompt:       template.Must(template.New("startup").Parse("Pitch {{.name}}")),
	},
}

func newGreetingContract(completer Completer) Contract[greeting] {
	return NewContract("greeting", completer, 10,
		func(ctx context.Context, payload gjson.Result) greeting {
			return greeting{Text: payload.Get("text").String()}
		},
		func(ctx context.Context, malformed Extraction) greeting {
			return greeting{Fallback: malformed.Reason()}
		},
	)
}

func TestTemplateSet_Select(t *testing.T) {
	assert.Equal(t, "academic", greetingTemplates.Select(models.EntityTypeAcademic).Name)
	assert.Equal(t, "startup", greetingTemplates.Select(models.EntityTypeStartup).Name)
	assert.Equal(t, "academic", greetingTemplates.Select(models.EntityType("venture")).Name)
	assert.Equal(t, "academic", greetingTemplates.Select("").Name)
}

func TestBuildRequest(t *testing.T) {
	request, err := BuildRequest(greetingTemplates.Academic, map[string]any{"name": "Ada"}, 500)
	require.NoError(t, err)
	assert.Equal(t, CompletionRequest{
		Instructions:    "academic instructions",
		Prompt:          `Greet Ada using {"text":"string"}`,
		MaxOutputTokens: 500,
	}, request)

	again, err := BuildRequest(greetingTemplates.Academic, map[string]any{"name": "Ada"}, 500)
	require.NoError(t, err)
	assert.Equal(t, request, again)

	_, err = BuildRequest(Template{Name: "empty"}, nil, 500)
	assert.Error(t, err)
}

func TestContract_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("usable payload is decoded", func(t *testing.T) {
		var received CompletionRequest
		contract := newGreetingContract(CompleterFunc(func(ctx context.Context, request CompletionRequest) (string, error) {
			received = request
			return "```json\n{\"text\":\"hello\"}\n```", nil
		}))

		result := contract.Run(ctx, greetingTemplates.Startup, map[string]any{"name": "Acme"})
		assert.Equal(t, greeting{Text: "hello"}, result)
		assert.Equal(t, "startup instructions", received.Instructions)
		assert.Equal(t, "Pitch Acme", received.Prompt)
	})

	t.Run("service failure falls back", func(t *testing.T) {
		contract := newGreetingContract(CompleterFunc(func(ctx context.Context, request CompletionRequest) (string, error) {
			return "", assert.AnError
		}))

		result := contract.Run(ctx, greetingTemplates.Academic, map[string]any{"name": "Ada"})
		assert.Equal(t, greeting{Fallback: ReasonUnavailable}, result)
	})

	t.Run("missing completer falls back", func(t *testing.T) {
		contract := newGreetingContract(nil)

		result := contract.Run(ctx, greetingTemplates.Academic, map[string]any{"name": "Ada"})
		assert.Equal(t, greeting{Fallback: ReasonUnavailable}, result)
	})

	t.Run("prose without json falls back", func(t *testing.T) {
		contract := newGreetingContract(CompleterFunc(func(ctx context.Context, request CompletionRequest) (string, error) {
			return "Sorry, I cannot help with that.", nil
		}))

		result := contract.Run(ctx, greetingTemplates.Academic, map[string]any{"name": "Ada"})
		assert.Equal(t, greeting{Fallback: ReasonNoObject}, result)
	})

	t.Run("long completion is decoded whole", func(t *testing.T) {
		long := strings.Repeat("é", 1500)
		contract := newGreetingContract(CompleterFunc(func(ctx context.Context, request CompletionRequest) (string, error) {
			assert.Equal(t, 10, request.MaxOutputTokens)
			return `{"text":"` + long + `"}`, nil
		}))

		result := contract.Run(ctx, greetingTemplates.Academic, map[string]any{"name": "Ada"})
		assert.Equal(t, greeting{Text: long}, result)
	})

	t.Run("broken template falls back", func(t *testing.T) {
		called := false
		contract := newGreetingContract(CompleterFunc(func(ctx context.Context, request CompletionRequest) (string, error) {
			called = true
			return `{"text":"hello"}`, nil
		}))

		result := contract.Run(ctx, Template{Name: "empty"}, nil)
		assert.False(t, called)
		assert.NotEmpty(t, result.Fallback)
	})
}

func TestDescribeSchema(t *testing.T) {
	type payload struct {
		Title string   `json:"title" jsonschema_description:"The current position"`
		Tags  []string `json:"tags" jsonschema_description:"Short labels"`
	}

	schema := DescribeSchema[payload]()
	assert.True(t, gjson.Valid(schema))

	parsed := gjson.Parse(schema)
	assert.Equal(t, "object", parsed.Get("type").String())
	assert.Equal(t, "The current position", parsed.Get("properties.title.description").String())
	assert.Equal(t, "array", parsed.Get("properties.tags.type").String())
}
