package infer

import (
	"strings"

	"github.com/mchmarny/agentctl/pkg/agent"
)

// defaultFrameworkPatterns detect frameworks anywhere in the combined
// name/slug/description/repository text. Some labels carry overlapping
// spelling variants on purpose: a canonical mention like "CrewAI"
// matches both its rows and outscores a single loose match, so the
// overlap must not be collapsed.
var defaultFrameworkPatterns = []PatternRule{
	pattern(`(?i)\b(?:google[- ]?adk|agent[- ]?development[- ]?kit)\b`, "google-adk", weightMedium),
	// bare "adk" is an overloaded acronym; the gate demands tag
	// corroboration before it can decide on its own
	pattern(`(?i)\badk\b`, "google-adk", weightMedium),
	pattern(`(?i)\blanggraph\b`, "langgraph", weightMedium),
	pattern(`(?i)\blangchain\b`, "langchain", weightMedium),
	pattern(`(?i)\bcrewai\b`, "crewai", weightMedium),
	pattern(`(?i)\bcrew[- ]?ai\b`, "crewai", weightMedium),
	pattern(`(?i)\bspring[- ]?boot\b`, "spring-boot", weightMedium),
	pattern(`(?i)\bspring[- ]?ai\b`, "spring-boot", weightMedium),
	pattern(`(?i)\bspringframework\b`, "spring-boot", weightMedium),
	pattern(`(?i)\bspringboot\b`, "spring-boot", weightMedium),
	pattern(`(?i)\bautogen\b`, "autogen", weightMedium),
	pattern(`(?i)\bag2\b`, "autogen", weightMedium),
	pattern(`(?i)\bsemantic[- ]?kernel\b`, "semantic-kernel", weightMedium),
	pattern(`(?i)\bllama[- ]?index\b`, "llamaindex", weightMedium),
	pattern(`(?i)\bllamaindex\b`, "llamaindex", weightMedium),
	pattern(`(?i)\bfastapi\b`, "fastapi", weightMedium),
	pattern(`(?i)\bnestjs\b`, "nestjs", weightMedium),
	pattern(`(?i)\bgenkit\b`, "genkit", weightMedium),
	pattern(`(?i)\bopenai[- ]?agents?\b`, "openai-agents", weightMedium),
	pattern(`(?i)\bopenai[- ]?agent[- ]?sdk\b`, "openai-agents", weightMedium),
	pattern(`(?i)\bpydantic[- ]?ai\b`, "pydantic-ai", weightMedium),
	pattern(`(?i)\bstrands[- ]?agents?\b`, "strands-agents", weightMedium),
}

// defaultTagFrameworks maps exact (case-folded) tags to a framework.
var defaultTagFrameworks = map[string]string{
	"adk":               "google-adk",
	"adk-google":        "google-adk",
	"adk-python":        "google-adk",
	"google-adk":        "google-adk",
	"langgraph":         "langgraph",
	"langchain":         "langchain",
	"crewai":            "crewai",
	"crew-ai":           "crewai",
	"spring":            "spring-boot",
	"spring-boot":       "spring-boot",
	"springboot":        "spring-boot",
	"springboot3":       "spring-boot",
	"springframework":   "spring-boot",
	"spring-ai":         "spring-boot",
	"autogen":           "autogen",
	"ag2":               "autogen",
	"semantic-kernel":   "semantic-kernel",
	"llamaindex":        "llamaindex",
	"llama-index":       "llamaindex",
	"fastapi":           "fastapi",
	"nestjs":            "nestjs",
	"genkit":            "genkit",
	"openai-agents-sdk": "openai-agents",
	"openai-agent-sdk":  "openai-agents",
	"openai-agents":     "openai-agents",
	"pydantic-ai":       "pydantic-ai",
	"strands-agents":    "strands-agents",
	"strands":           "strands-agents",
}

// defaultADKTags are the tags that corroborate a bare "adk" text match.
var defaultADKTags = map[string]bool{
	"adk":        true,
	"adk-google": true,
	"adk-python": true,
	"google-adk": true,
}

const ambiguousFramework = "google-adk"

// Framework infers the authoring framework of the agent.
func (c *Classifier) Framework(a agent.Agent) (string, bool) {
	t := tally{}

	tags := a.Tags()
	for _, tag := range tags {
		if fw, ok := c.cfg.tagFrameworks[strings.ToLower(tag)]; ok {
			t.add(fw, weightStrong)
		}
	}

	desc := a.Description()
	allText := a.Name() + " " + a.Slug() + " " + desc + " " + a.Repository()
	for _, r := range c.cfg.frameworkPatterns {
		if r.matches(allText) {
			t.add(r.label, r.weight)
		}
	}

	// "Official A2A python sample agent: Crewai" names the framework
	// after the last colon
	if strings.Contains(desc, officialSampleMarker) {
		if i := strings.LastIndex(desc, ":"); i >= 0 {
			sampleName := strings.ToLower(strings.TrimSpace(desc[i+1:]))
			for _, r := range c.cfg.frameworkPatterns {
				if r.matches(sampleName) {
					t.add(r.label, weightSampleFramework)
				}
			}
		}
	}

	fw, ok := decide(t, true)
	if !ok {
		return "", false
	}

	// veto: a low-scoring google-adk decision stands only when an adk
	// tag backs it up
	if fw == ambiguousFramework && t[fw] < adkScoreFloor && !c.hasADKTag(tags) {
		return "", false
	}

	return fw, true
}

func (c *Classifier) hasADKTag(tags []string) bool {
	for _, tag := range tags {
		if c.cfg.adkTags[strings.ToLower(tag)] {
			return true
		}
	}
	return false
}
