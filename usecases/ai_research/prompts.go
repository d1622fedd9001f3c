package ai_research

import (
	"embed"
	"fmt"
	"text/template"

	"github.com/grantscout/grantscout-backend/usecases/llm_contract"
)

//go:embed prompts
var promptFiles embed.FS

const (
	promptKindVerification = "verification"
	promptKindResearch     = "research"
)

func mustReadPrompt(path string) string {
	content, err := promptFiles.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("could not read embedded prompt %s: %v", path, err))
	}
	return string(content)
}

// loadTemplates builds the academic and startup templates of one prompt kind. Both variants share the user
// prompt and differ by their instructions.
func loadTemplates(kind, schema string) llm_contract.TemplateSet {
	prompt := template.Must(
		template.New(kind).
			Option("missingkey=error").
			Parse(mustReadPrompt("prompts/" + kind + "/prompt.md")),
	)

	variant := func(name string) llm_contract.Template {
		return llm_contract.Template{
			Name:         kind + "/" + name,
			Instructions: mustReadPrompt("prompts/" + kind + "/" + name + "_instruction.md"),
			Schema:       schema,
			Prompt:       prompt,
		}
	}

	return llm_contract.TemplateSet{
		Academic: variant("academic"),
		Startup:  variant("startup"),
	}
}
