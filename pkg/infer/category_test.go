package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mchmarny/agentctl/pkg/agent"
)

func TestCategory_ProviderOverride(t *testing.T) {
	c := New(nil)

	// the override wins over any keyword evidence in the description
	cat, ok := c.Category(agent.Agent{
		"provider":    map[string]any{"name": "Lifie AI"},
		"tags":        []string{"business"},
		"description": "Search and retrieval agent for flight booking",
	})
	assert.True(t, ok)
	assert.Equal(t, "enterprise", cat)
}

func TestCategory_ProviderOverrideNeedsTag(t *testing.T) {
	c := New(nil)

	cat, ok := c.Category(agent.Agent{
		"provider":    map[string]any{"url": "https://lifie.ai"},
		"description": "Flight booking for busy travelers",
	})
	assert.True(t, ok)
	assert.Equal(t, "travel", cat)
}

func TestCategory_TagRules(t *testing.T) {
	c := New(nil)

	cat, ok := c.Category(agent.Agent{
		"tags": []string{"kubernetes", "devops"},
	})
	assert.True(t, ok)
	assert.Equal(t, "infrastructure", cat)
}

func TestCategory_SkillTags(t *testing.T) {
	c := New(nil)

	cat, ok := c.Category(agent.Agent{
		"skills": []any{
			map[string]any{"tags": []any{"rag", "web-search"}},
		},
	})
	assert.True(t, ok)
	assert.Equal(t, "search", cat)
}

func TestCategory_OfficialSampleTag(t *testing.T) {
	c := New(nil)

	cat, ok := c.Category(agent.Agent{
		"tags": []string{"official-sample"},
	})
	assert.True(t, ok)
	assert.Equal(t, "utility", cat)
}

func TestCategory_UtilityNameBonus(t *testing.T) {
	c := New(nil)

	cat, ok := c.Category(agent.Agent{
		"name": "Hello World Template",
		"slug": "hello-world-template",
	})
	assert.True(t, ok)
	assert.Equal(t, "utility", cat)
}

func TestCategory_WeakSignalBelowFloor(t *testing.T) {
	c := New(nil)

	// a single name-keyword family match scores 1, under the floor
	_, ok := c.Category(agent.Agent{
		"name": "trip planner",
	})
	assert.False(t, ok)
}

func TestCategory_TieResolvesDeterministically(t *testing.T) {
	c := New(nil)

	// finance and search both score 3; unlike the other axes the
	// category gate still picks a winner, always the same one
	for i := 0; i < 25; i++ {
		cat, ok := c.Category(agent.Agent{
			"tags": []string{"finance", "search"},
		})
		assert.True(t, ok)
		assert.Equal(t, "finance", cat)
	}
}

func TestCategory_NoSignals(t *testing.T) {
	c := New(nil)

	_, ok := c.Category(agent.Agent{"name": "Zed"})
	assert.False(t, ok)
}
