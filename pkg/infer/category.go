package infer

import (
	"strings"

	"github.com/mchmarny/agentctl/pkg/agent"
)

// defaultCategories is the closed set of category labels the system
// will ever assign. Config overrides are validated against it.
var defaultCategories = map[string]bool{
	"orchestration":   true,
	"enterprise":      true,
	"code-generation": true,
	"search":          true,
	"data-analytics":  true,
	"conversational":  true,
	"infrastructure":  true,
	"utility":         true,
	"finance":         true,
	"security":        true,
	"media-content":   true,
	"travel":          true,
	"multi-agent":     true,
}

// defaultTagCategories maps tag families to categories. Each family tag
// present on the record counts as its own strong match.
var defaultTagCategories = []TagRule{
	tagRule("enterprise", "business", "commerce"),
	tagRule("finance", "finance", "fintech", "banking", "payment", "payments", "trading", "crypto", "blockchain", "defi", "escrow"),
	tagRule("search", "search", "retrieval", "rag", "web-search", "google-search", "semantic-search"),
	tagRule("security", "security", "authentication", "auth", "agent-security", "cybersecurity", "vulnerability"),
	tagRule("infrastructure", "devops", "docker", "kubernetes", "k8s", "infrastructure", "cloud", "aws", "gcp", "azure", "deployment", "ci-cd"),
	tagRule("media-content", "image", "video", "audio", "media", "image-generation", "text-to-image", "text-to-speech", "tts"),
	tagRule("code-generation", "code", "code-generation", "coding", "code-review", "code-assistant", "github-copilot"),
	tagRule("data-analytics", "data", "data-analysis", "analytics", "data-analytics", "data-science", "dataset", "visualization"),
	tagRule("conversational", "chat", "chatbot", "conversational", "conversation", "dialog", "dialogue"),
	tagRule("travel", "travel", "flight", "hotel", "booking", "tourism", "trip"),
	tagRule("orchestration", "multi-agent", "multi-agent-systems", "agent-orchestration", "orchestration", "agent-collaboration"),
	tagRule("utility", "cli", "tool", "utility", "sdk", "library", "framework", "template", "boilerplate", "starter"),
	tagRule("utility", "protocol", "a2a-protocol", "agent-protocol", "agent2agent", "agent-to-agent", "llm-protocol", "m2m-protocol", "agentic-framework"),
	tagRule("infrastructure", "mqtt", "amqp", "grpc", "json-rpc", "websocket"),
	tagRule("utility", "demo", "example", "hello-world", "sample", "tutorial", "learning", "starter", "scaffold"),
	tagRule("infrastructure", "browser", "browser-automation", "web-testing", "playwright", "selenium", "puppeteer"),
	tagRule("infrastructure", "registry", "discovery", "agent-registry", "agent-discovery", "a2a-discovery", "agent-marketplace"),
	tagRule("infrastructure", "gateway", "proxy", "middleware", "router", "routing"),
	tagRule("infrastructure", "agent-platform", "aiops", "governance", "guardrails"),
	tagRule("infrastructure", "mcp-server", "mcp-client"),
	tagRule("infrastructure", "ranking-system", "ranking-algorithm"),
	tagRule("utility", "feature-pack", "wrapper", "adapter"),
	tagRule("enterprise", "legal", "legal-ai", "legal-tech", "contract"),
	tagRule("enterprise", "manufacturing", "machinery"),
	tagRule("enterprise", "healthcare", "medical"),
	tagRule("enterprise", "education", "tutoring", "learning"),
	tagRule("enterprise", "real-estate", "property"),
}

// defaultDescCategoryPatterns run case-insensitively over descriptions.
var defaultDescCategoryPatterns = []PatternRule{
	pattern(`(?i)\b(?:search|retriev|find|lookup|query|RAG)\b`, "search", weightMedium),
	pattern(`(?i)\b(?:security|secur|authent|authoriz|encrypt|vulnerab|threat)\b`, "security", weightMedium),
	pattern(`(?i)\b(?:financ|bank|payment|trading|crypto|blockchain|escrow|defi)\b`, "finance", weightMedium),
	pattern(`(?i)\b(?:travel|flight|hotel|booking|trip|itinerary|tourism)\b`, "travel", weightMedium),
	pattern(`(?i)\b(?:image|video|audio|media|generat.*image|text-to-speech)\b`, "media-content", weightMedium),
	pattern(`(?i)\b(?:code.*generat|generat.*code|coding|code review|program)\b`, "code-generation", weightMedium),
	pattern(`(?i)\b(?:data.*analy|analy.*data|visualization|dataset|analytics)\b`, "data-analytics", weightMedium),
	pattern(`(?i)\b(?:chatbot|conversational|dialog|conversation)\b`, "conversational", weightMedium),
	pattern(`(?i)\b(?:deploy|docker|kubernetes|infra|DevOps|CI/CD)\b`, "infrastructure", weightMedium),
	pattern(`(?i)\b(?:orchestrat|multi-agent|coordinat.*agent)\b`, "orchestration", weightMedium),
	pattern(`(?i)\b(?:SDK|library|framework|implementation|toolkit|boilerplate|template|starter|wrapper)\b`, "utility", weightMedium),
	pattern(`(?i)\b(?:samples?|demo|example|tutorial|beginner|learning|101|playground|toy project|docs|documentation)\b`, "utility", weightMedium),
	pattern(`(?:文档|教学|入门|示例)`, "utility", weightMedium),
	pattern(`(?i)\b(?:Agent Development Kit|ADK|SDK)\b`, "utility", weightMedium),
	pattern(`(?i)\b(?:protocol.*implementation|implementation.*protocol|protocol.*specification)\b`, "utility", weightMedium),
	pattern(`(?i)\b(?:testing|mocking|mock|test and interact)\b`, "utility", weightMedium),
	pattern(`(?i)\b(?:template|scaffold|boilerplate|starter)\b`, "utility", weightMedium),
	pattern(`(?i)\b(?:song|music|generat.*song|generat.*music|audio.*generat)\b`, "media-content", weightMedium),
	pattern(`(?i)\b(?:agent.*platform|platform.*agent|governance|aiops)\b`, "infrastructure", weightMedium),
	pattern(`(?i)\b(?:dashboard|monitoring|observability|grafana|prometheus)\b`, "data-analytics", weightMedium),
	pattern(`(?i)\b(?:gateway|proxy|middleware|router|routing)\b`, "infrastructure", weightMedium),
	pattern(`(?i)\b(?:registry|discover|catalog|directory)\b`, "infrastructure", weightMedium),
	pattern(`(?i)\b(?:legal|lawyer|law\s+firm|attorney|contract.*review)\b`, "enterprise", weightMedium),
}

// defaultNameCategoryPatterns are coarse keyword families checked
// against the combined name+slug text at minimum weight.
var defaultNameCategoryPatterns = []PatternRule{
	pattern(`search|retriev|rag`, "search", weightWeak),
	pattern(`secur|auth`, "security", weightWeak),
	pattern(`financ|bank|trade|crypto`, "finance", weightWeak),
	pattern(`travel|flight|hotel|trip`, "travel", weightWeak),
	pattern(`media|image|video|audio`, "media-content", weightWeak),
	pattern(`code|coding|dev`, "code-generation", weightWeak),
	pattern(`data|analy`, "data-analytics", weightWeak),
	pattern(`chat|convers`, "conversational", weightWeak),
	pattern(`orchestrat|multi.?agent`, "orchestration", weightWeak),
	pattern(`deploy|infra|devops|docker|k8s`, "infrastructure", weightWeak),
}

var utilityNameExpr = pattern(`template|sample|demo|starter|scaffold|boilerplate|hello.?world`, "utility", weightMedium)

const (
	providerMarker   = "lifie"
	categoryOverride = "enterprise"
)

// providerOverride reports whether the record comes from the Lifie hub
// with a business/commerce tag, which maps straight to enterprise
// without scoring.
func providerOverride(a agent.Agent) bool {
	name, url := a.Provider()
	if !strings.Contains(strings.ToLower(name), providerMarker) &&
		!strings.Contains(strings.ToLower(url), providerMarker) {
		return false
	}
	tags := a.Tags()
	return contains(tags, "business") || contains(tags, "commerce")
}

// Category infers the functional category of the agent.
//
// Unlike the other axes the gate here does not reject ties; the
// top-scoring label wins even when another label matches its score.
func (c *Classifier) Category(a agent.Agent) (string, bool) {
	if providerOverride(a) {
		return categoryOverride, true
	}

	t := tally{}

	tags := loweredSet(a.Tags())
	for _, r := range c.cfg.tagCategories {
		if n := r.matchCount(tags); n > 0 {
			t.add(r.category, weightStrong*n)
		}
	}

	desc := a.Description()
	for _, r := range c.cfg.descCategoryPatterns {
		if r.matches(desc) {
			t.add(r.label, r.weight)
		}
	}

	// skill tags propagate at half the top-level tag weight
	for _, skillTags := range a.SkillTags() {
		st := loweredSet(skillTags)
		for _, r := range c.cfg.tagCategories {
			if r.matchCount(st) > 0 {
				t.add(r.category, weightMedium)
			}
		}
	}

	combined := strings.ToLower(a.Name()) + " " + strings.ToLower(a.Slug())
	for _, r := range c.cfg.nameCategoryPatterns {
		if r.matches(combined) {
			t.add(r.label, r.weight)
		}
	}

	// sample and template agents are utilities unless outweighed
	if tags["official-sample"] {
		t.add("utility", weightMedium)
	}
	if utilityNameExpr.matches(combined) {
		t.add(utilityNameExpr.label, utilityNameExpr.weight)
	}

	return decide(t, false)
}

func loweredSet(tags []string) map[string]bool {
	m := make(map[string]bool, len(tags))
	for _, t := range tags {
		m[strings.ToLower(t)] = true
	}
	return m
}

func contains(list []string, val string) bool {
	for _, v := range list {
		if v == val {
			return true
		}
	}
	return false
}
