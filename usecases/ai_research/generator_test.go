package ai_research

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantscout/grantscout-backend/models"
)

var generatedAt = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func newTestGenerator(completer *fakeCompleter) *Generator {
	generator := NewGenerator(completer, 500)
	generator.now = func() time.Time { return generatedAt }
	return generator
}

var profile = models.EntityProfile{
	FullName:    "A. Lee",
	Affiliation: "MIT",
	Title:       "Professor",
}

func assertSixSections(t *testing.T, dossier models.ResearchDossier) {
	t.Helper()
	for _, section := range models.DossierSections {
		assert.NotNil(t, dossier.Section(section), section)
	}
}

func TestGenerator_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("complete payload", func(t *testing.T) {
		completer := &fakeCompleter{response: `Here is the research:
{
  "research_focus": ["Robotics", "Control theory"],
  "projects_publications": ["Paper A"],
  "institutional_connections": ["CSAIL"],
  "funding_history": ["NSF CAREER, 2019"],
  "public_mentions": [],
  "strategic_insights": ["Target NSF robotics calls"]
}`}
		dossier := newTestGenerator(completer).Generate(ctx, profile, models.EntityTypeAcademic)

		assert.Equal(t, models.ResearchDossier{
			ResearchFocus:            []string{"Robotics", "Control theory"},
			ProjectsPublications:     []string{"Paper A"},
			InstitutionalConnections: []string{"CSAIL"},
			FundingHistory:           []string{"NSF CAREER, 2019"},
			PublicMentions:           []string{},
			StrategicInsights:        []string{"Target NSF robotics calls"},
			EntityType:               models.EntityTypeAcademic,
			GeneratedAt:              generatedAt,
		}, dossier)

		require.Len(t, completer.requests, 1)
		assert.Contains(t, completer.requests[0].Prompt, "Provide detailed research on A. Lee, Professor at MIT.")
		assert.Contains(t, completer.requests[0].Prompt, `"strategic_insights"`)
	})

	t.Run("long payload is kept whole", func(t *testing.T) {
		payload := map[string][]string{}
		for _, section := range models.DossierSections {
			for i := range 5 {
				payload[string(section)] = append(payload[string(section)],
					fmt.Sprintf("%s item %d with enough detail to read like a real finding about the entity", section, i))
			}
		}
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		require.Greater(t, len(raw), 2000)

		dossier := newTestGenerator(&fakeCompleter{response: string(raw)}).Generate(ctx, profile, models.EntityTypeAcademic)

		assert.False(t, dossier.Fallback)
		for _, section := range models.DossierSections {
			assert.Equal(t, payload[string(section)], dossier.Section(section), section)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		completer := &fakeCompleter{response: `{}`}
		newTestGenerator(completer).Generate(ctx, models.EntityProfile{FullName: "Jo Park", Affiliation: "Acme"},
			models.EntityTypeStartup)

		assert.Contains(t, completer.requests[0].Prompt, "Provide detailed research on Jo Park at Acme.")
		assert.Contains(t, completer.requests[0].Instructions, "startup founders")
	})

	t.Run("partial payload gets placeholders", func(t *testing.T) {
		completer := &fakeCompleter{response: `{"research_focus":["Robotics"],"funding_history":"none found"}`}
		dossier := newTestGenerator(completer).Generate(ctx, profile, models.EntityTypeAcademic)

		assert.False(t, dossier.Fallback)
		assert.Equal(t, []string{"Robotics"}, dossier.ResearchFocus)
		assert.Equal(t, []string{models.SectionPlaceholder}, dossier.FundingHistory)
		assert.Equal(t, []string{models.SectionPlaceholder}, dossier.PublicMentions)
		assertSixSections(t, dossier)
	})

	t.Run("service failure gives the academic fallback", func(t *testing.T) {
		completer := &fakeCompleter{err: assert.AnError}
		dossier := newTestGenerator(completer).Generate(ctx, profile, "")

		expected := FallbackDossier(models.EntityTypeAcademic)
		expected.EntityType = models.EntityTypeAcademic
		expected.GeneratedAt = generatedAt
		assert.Equal(t, expected, dossier)
		assert.True(t, dossier.Fallback)
		for _, section := range models.DossierSections[:5] {
			assert.Len(t, dossier.Section(section), 2, section)
		}
		assert.Equal(t, "Research interests could not be automatically determined", dossier.ResearchFocus[0])
	})

	t.Run("malformed payload gives the startup fallback", func(t *testing.T) {
		completer := &fakeCompleter{response: `{"research_focus": [`}
		dossier := newTestGenerator(completer).Generate(ctx, profile, models.EntityTypeStartup)

		assert.True(t, dossier.Fallback)
		assert.Equal(t, models.EntityTypeStartup, dossier.EntityType)
		assert.Equal(t, "Business focus areas could not be automatically determined", dossier.ResearchFocus[0])
		assert.Equal(t, "Check startup databases like Crunchbase or PitchBook", dossier.FundingHistory[1])
	})

	t.Run("every upstream output yields six list sections", func(t *testing.T) {
		outputs := []string{
			"",
			"no json",
			`{"research_focus": ]`,
			`{"research_focus": null, "public_mentions": {"a": 1}}`,
			"```json\n{\"strategic_insights\":[\"x\"]}\n```",
		}
		for _, output := range outputs {
			dossier := newTestGenerator(&fakeCompleter{response: output}).Generate(ctx, profile, models.EntityTypeAcademic)
			assertSixSections(t, dossier)
			assert.Equal(t, generatedAt, dossier.GeneratedAt)
			assert.Equal(t, models.EntityTypeAcademic, dossier.EntityType)
		}
	})
}

func TestFallbackDossier_independentCopies(t *testing.T) {
	first := FallbackDossier(models.EntityTypeAcademic)
	first.ResearchFocus[0] = "mutated"

	second := FallbackDossier(models.EntityTypeAcademic)
	assert.Equal(t, "Research interests could not be automatically determined", second.ResearchFocus[0])
}
