package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mchmarny/agentctl/pkg/agent"
)

func TestLanguage_TagSignals(t *testing.T) {
	c := New(nil)

	lang, ok := c.Language(agent.Agent{
		"tags": []string{"python", "fastapi"},
	})
	assert.True(t, ok)
	assert.Equal(t, "python", lang)
}

func TestLanguage_TagTieRejected(t *testing.T) {
	c := New(nil)

	// two equally supported languages must not resolve
	_, ok := c.Language(agent.Agent{
		"tags": []string{"go", "rust"},
	})
	assert.False(t, ok)
}

func TestLanguage_SDKBreaksTie(t *testing.T) {
	c := New(nil)

	lang, ok := c.Language(agent.Agent{
		"tags": []string{"go", "rust"},
		"sdks": []string{"go"},
	})
	assert.True(t, ok)
	assert.Equal(t, "go", lang)
}

func TestLanguage_SDKAloneBelowFloor(t *testing.T) {
	c := New(nil)

	_, ok := c.Language(agent.Agent{
		"sdks": []string{"python"},
	})
	assert.False(t, ok)
}

func TestLanguage_DeclaredFramework(t *testing.T) {
	c := New(nil)

	lang, ok := c.Language(agent.Agent{
		"framework": "langgraph",
	})
	assert.True(t, ok)
	assert.Equal(t, "python", lang)
}

func TestLanguage_RepoSuffix(t *testing.T) {
	c := New(nil)

	lang, ok := c.Language(agent.Agent{
		"repository": "https://github.com/example/a2a-go",
	})
	assert.True(t, ok)
	assert.Equal(t, "go", lang)
}

func TestLanguage_MalformedRepoIgnored(t *testing.T) {
	c := New(nil)

	tests := map[string]string{
		"no host":   "example.com/a2a-go",
		"too short": "https://github.com",
		"empty":     "",
	}
	for name, repo := range tests {
		t.Run(name, func(t *testing.T) {
			_, ok := c.Language(agent.Agent{"repository": repo})
			assert.False(t, ok)
		})
	}
}

func TestLanguage_DescriptionCaseMatters(t *testing.T) {
	c := New(nil)

	lang, ok := c.Language(agent.Agent{
		"description": "A Python agent for scheduling",
	})
	assert.True(t, ok)
	assert.Equal(t, "python", lang)

	// lowercase "python" in prose is not a description signal
	_, ok = c.Language(agent.Agent{
		"description": "a python agent for scheduling",
	})
	assert.False(t, ok)
}

func TestLanguage_JavaStandaloneCounts(t *testing.T) {
	c := New(nil)

	// "Java Script" is blanked out, but the separate standalone "Java"
	// in the same description still counts
	lang, ok := c.Language(agent.Agent{
		"description": "Java Script bridge for a Java agent.",
	})
	assert.True(t, ok)
	assert.Equal(t, "java", lang)

	// with only the spaced spelling present there is no java signal
	_, ok = c.Language(agent.Agent{
		"description": "Java Script runtime shim.",
	})
	assert.False(t, ok)
}

func TestLanguage_OfficialSample(t *testing.T) {
	c := New(nil)

	lang, ok := c.Language(agent.Agent{
		"description": "Official A2A go sample agent: Hello World",
	})
	assert.True(t, ok)
	assert.Equal(t, "go", lang)
}

func TestLanguage_NameSlugPatterns(t *testing.T) {
	c := New(nil)

	lang, ok := c.Language(agent.Agent{
		"name": "Rust Weather Agent",
		"slug": "rust-weather",
	})
	assert.True(t, ok)
	assert.Equal(t, "rust", lang)
}

func TestLanguage_NoSignals(t *testing.T) {
	c := New(nil)

	_, ok := c.Language(agent.Agent{
		"name":        "Weather",
		"description": "Tells the weather.",
	})
	assert.False(t, ok)
}

func TestRepoBasename(t *testing.T) {
	name, ok := repoBasename("https://github.com/org/A2A-Ruby/")
	assert.True(t, ok)
	assert.Equal(t, "a2a-ruby", name)

	_, ok = repoBasename("https://gitlab.com/org/repo")
	assert.False(t, ok)
}
