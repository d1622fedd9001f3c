package llm_contract

import (
	"encoding/json"
	"maps"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"

	"github.com/grantscout/grantscout-backend/models"
)

type Template struct {
	Name         string
	Instructions string
	// Schema describes the expected JSON payload. It is available to the prompt as {{.schema}}.
	Schema string
	Prompt *template.Template
}

type TemplateSet struct {
	Academic Template
	Startup  Template
}

func (s TemplateSet) Select(entityType models.EntityType) Template {
	if entityType == models.EntityTypeStartup {
		return s.Startup
	}
	return s.Academic
}

func BuildRequest(tpl Template, params map[string]any, maxOutputTokens int) (CompletionRequest, error) {
	if tpl.Prompt == nil {
		return CompletionRequest{}, errors.Newf("template %s has no prompt", tpl.Name)
	}

	data := make(map[string]any, len(params)+1)
	maps.Copy(data, params)
	data["schema"] = tpl.Schema

	var prompt strings.Builder
	if err := tpl.Prompt.Execute(&prompt, data); err != nil {
		return CompletionRequest{}, errors.Wrapf(err, "could not render prompt %s", tpl.Name)
	}

	return CompletionRequest{
		Instructions:    tpl.Instructions,
		Prompt:          prompt.String(),
		MaxOutputTokens: maxOutputTokens,
	}, nil
}

// DescribeSchema renders the JSON schema of T, reading field descriptions from `jsonschema_description` tags.
func DescribeSchema[T any]() string {
	reflector := jsonschema.Reflector{
		DoNotReference:            true,
		ExpandedStruct:            true,
		AllowAdditionalProperties: false,
	}
	schema := reflector.Reflect(new(T))
	schema.Version = ""

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		panic(errors.Wrap(err, "could not marshal json schema"))
	}
	return string(out)
}
