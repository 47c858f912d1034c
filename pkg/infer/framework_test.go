package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mchmarny/agentctl/pkg/agent"
)

func TestFramework_TagSignal(t *testing.T) {
	c := New(nil)

	fw, ok := c.Framework(agent.Agent{
		"tags": []string{"langgraph"},
	})
	assert.True(t, ok)
	assert.Equal(t, "langgraph", fw)
}

func TestFramework_SpringVariants(t *testing.T) {
	c := New(nil)

	fw, ok := c.Framework(agent.Agent{
		"tags": []string{"springboot3"},
	})
	assert.True(t, ok)
	assert.Equal(t, "spring-boot", fw)
}

func TestFramework_TextSignal(t *testing.T) {
	c := New(nil)

	fw, ok := c.Framework(agent.Agent{
		"name":        "Research Crew",
		"description": "Multi-agent research built on CrewAI.",
	})
	assert.True(t, ok)
	assert.Equal(t, "crewai", fw)
}

func TestFramework_BareADKVetoed(t *testing.T) {
	c := New(nil)

	// "adk" alone is an overloaded acronym; without a corroborating
	// tag the decision is withheld even though the floor is met
	_, ok := c.Framework(agent.Agent{
		"description": "An agent built with ADK.",
	})
	assert.False(t, ok)
}

func TestFramework_ADKWithTag(t *testing.T) {
	c := New(nil)

	fw, ok := c.Framework(agent.Agent{
		"description": "An agent built with ADK.",
		"tags":        []string{"google-adk"},
	})
	assert.True(t, ok)
	assert.Equal(t, "google-adk", fw)
}

func TestFramework_LongFormADK(t *testing.T) {
	c := New(nil)

	// the explicit long form plus the acronym clears the elevated
	// floor without any tag
	fw, ok := c.Framework(agent.Agent{
		"description": "Built with the Agent Development Kit (ADK).",
	})
	assert.True(t, ok)
	assert.Equal(t, "google-adk", fw)
}

func TestFramework_OfficialSampleDominates(t *testing.T) {
	c := New(nil)

	// the structured suffix outweighs the generic langchain mention
	fw, ok := c.Framework(agent.Agent{
		"description": "Official A2A python sample agent with LangChain tooling: Crewai",
	})
	assert.True(t, ok)
	assert.Equal(t, "crewai", fw)
}

func TestFramework_VariantRowsCompound(t *testing.T) {
	c := New(nil)

	// "CrewAI" hits both crewai spelling rows (4) while "LangChain"
	// hits one (2); collapsing the variant rows would tie this at 2-2
	// and withhold the decision
	fw, ok := c.Framework(agent.Agent{
		"description": "Use LangChain together with CrewAI.",
	})
	assert.True(t, ok)
	assert.Equal(t, "crewai", fw)
}

func TestFramework_TieRejected(t *testing.T) {
	c := New(nil)

	_, ok := c.Framework(agent.Agent{
		"tags": []string{"langgraph", "crewai"},
	})
	assert.False(t, ok)
}

func TestFramework_NoSignals(t *testing.T) {
	c := New(nil)

	_, ok := c.Framework(agent.Agent{
		"description": "Tells the weather.",
	})
	assert.False(t, ok)
}
