package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/agentctl/pkg/agent"
)

func TestAxisSentinels(t *testing.T) {
	assert.Equal(t, "unknown", AxisLanguage.Sentinel())
	assert.Equal(t, "general", AxisCategory.Sentinel())
	assert.Equal(t, "custom", AxisFramework.Sentinel())
	assert.Equal(t, "", Axis("bogus").Sentinel())
}

func TestInfer_Deterministic(t *testing.T) {
	c := New(nil)

	// mixed, partially conflicting signals on all three axes
	a := agent.Agent{
		"name":        "LangGraph Data Explorer",
		"slug":        "langgraph-data-explorer",
		"description": "A Python agent for data analytics dashboards and search.",
		"tags":        []string{"python", "langgraph", "data", "analytics", "search"},
		"repository":  "https://github.com/example/explorer-py",
	}

	type outcome struct {
		label string
		ok    bool
	}
	var first [3]outcome
	for i := 0; i < 50; i++ {
		var got [3]outcome
		for j, axis := range Axes {
			got[j].label, got[j].ok = c.Infer(axis, a)
		}
		if i == 0 {
			first = got
			continue
		}
		require.Equal(t, first, got)
	}
}

func TestInfer_UnknownAxis(t *testing.T) {
	c := New(nil)
	_, ok := c.Infer(Axis("bogus"), agent.Agent{})
	assert.False(t, ok)
}

func TestTallyTop(t *testing.T) {
	tt := tally{}
	_, score, _ := tt.top()
	assert.Zero(t, score)

	tt.add("go", 3)
	tt.add("rust", 2)
	label, score, tied := tt.top()
	assert.Equal(t, "go", label)
	assert.Equal(t, 3, score)
	assert.False(t, tied)

	tt.add("rust", 1)
	label, score, tied = tt.top()
	assert.Equal(t, "go", label)
	assert.Equal(t, 3, score)
	assert.True(t, tied)
}

func TestDecide(t *testing.T) {
	_, ok := decide(tally{}, true)
	assert.False(t, ok)

	// below floor
	_, ok = decide(tally{"go": 1}, true)
	assert.False(t, ok)

	// clear winner
	label, ok := decide(tally{"go": 3, "rust": 2}, true)
	assert.True(t, ok)
	assert.Equal(t, "go", label)

	// tie above floor: rejected only when the axis enforces it
	_, ok = decide(tally{"go": 3, "rust": 3}, true)
	assert.False(t, ok)

	label, ok = decide(tally{"go": 3, "rust": 3}, false)
	assert.True(t, ok)
	assert.Equal(t, "go", label)
}

func TestConfigOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AddTagLanguage("Gleam-SDK", "gleam")
	cfg.AddTagFramework("MyKit", "mykit")
	require.NoError(t, cfg.AddCategoryTags("finance", "Invoicing"))

	c := New(cfg)

	lang, ok := c.Language(agent.Agent{"tags": []string{"gleam-sdk"}})
	assert.True(t, ok)
	assert.Equal(t, "gleam", lang)

	fw, ok := c.Framework(agent.Agent{"tags": []string{"mykit"}})
	assert.True(t, ok)
	assert.Equal(t, "mykit", fw)

	cat, ok := c.Category(agent.Agent{"tags": []string{"invoicing"}})
	assert.True(t, ok)
	assert.Equal(t, "finance", cat)
}

func TestConfigOverrides_UnknownCategory(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.AddCategoryTags("not-a-category", "tag"))
	assert.Error(t, cfg.AddCategoryTags("finance"))
}

func TestDefaultConfigIsolation(t *testing.T) {
	// extending one config must not leak into another
	a := DefaultConfig()
	a.AddTagLanguage("custom-tag", "go")

	b := DefaultConfig()
	_, ok := New(b).Language(agent.Agent{"tags": []string{"custom-tag"}})
	assert.False(t, ok)
}
