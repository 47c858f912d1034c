package infer

import (
	"regexp"
	"strings"

	"github.com/mchmarny/agentctl/pkg/agent"
)

// defaultFrameworkLanguages maps a declared framework value to the
// language that framework implies.
var defaultFrameworkLanguages = map[string]string{
	"google-adk":      "python",
	"langgraph":       "python",
	"langchain":       "python",
	"crewai":          "python",
	"autogen":         "python",
	"llamaindex":      "python",
	"fastapi":         "python",
	"semantic-kernel": "csharp",
	"spring-boot":     "java",
	"nestjs":          "typescript",
	"genkit":          "typescript",
	"openai-agents":   "python",
	"pydantic-ai":     "python",
	"strands-agents":  "python",
}

// defaultTagLanguages maps exact (case-folded) tags to a language.
var defaultTagLanguages = map[string]string{
	"python":          "python",
	"python3":         "python",
	"python-sdk":      "python",
	"adk-python":      "python",
	"flask":           "python",
	"django":          "python",
	"fastapi":         "python",
	"typescript":      "typescript",
	"ts":              "typescript",
	"javascript":      "typescript",
	"js":              "typescript",
	"nodejs":          "typescript",
	"node":            "typescript",
	"nextjs":          "typescript",
	"nestjs":          "typescript",
	"deno":            "typescript",
	"java":            "java",
	"java-sdk":        "java",
	"spring":          "java",
	"spring-boot":     "java",
	"springboot":      "java",
	"springboot3":     "java",
	"springframework": "java",
	"spring-ai":       "java",
	"a2a4j":           "java",
	"wildfly":         "java",
	"go":              "go",
	"golang":          "go",
	"go-sdk":          "go",
	"rust":            "rust",
	"rust-sdk":        "rust",
	"csharp":          "csharp",
	"c-sharp":         "csharp",
	"dotnet":          "csharp",
	".net":            "csharp",
	"aspnet":          "csharp",
	"kotlin":          "kotlin",
	"kotlin-sdk":      "kotlin",
	"php":             "php",
	"php-sdk":         "php",
	"sdk-php":         "php",
	"ruby":            "ruby",
	"ruby-gem":        "ruby",
	"rubygem":         "ruby",
	"swift":           "swift",
	"elixir":          "elixir",
	"dart":            "dart",
	"flutter":         "dart",
	"zig":             "zig",
	"adk-zig":         "zig",
	"lua":             "lua",
	// python ecosystem
	"pydantic-ai": "python",
	"pydantic":    "python",
	"modal":       "python",
	"uvicorn":     "python",
	"pip":         "python",
	"poetry":      "python",
	"uv":          "python",
	// typescript/js ecosystem
	"react":         "typescript",
	"reactjs":       "typescript",
	"vue":           "typescript",
	"vite":          "typescript",
	"bun":           "typescript",
	"npm":           "typescript",
	"vercel":        "typescript",
	"vercel-ai-sdk": "typescript",
	"ai-sdk":        "typescript",
	// variants
	"rust-lang":    "rust",
	"go-lang":      "go",
	"asp-net-core": "csharp",
	"asp.net":      "csharp",
	"blazor":       "csharp",
}

// defaultRepoSuffixLanguages matches repository basename suffixes like
// "a2a-go" or "a2a-ruby". Ordered for deterministic evaluation.
var defaultRepoSuffixLanguages = []SuffixRule{
	{"-go", "go"},
	{"-python", "python"},
	{"-py", "python"},
	{"-java", "java"},
	{"-ts", "typescript"},
	{"-typescript", "typescript"},
	{"-js", "typescript"},
	{"-rust", "rust"},
	{"-rs", "rust"},
	{"-csharp", "csharp"},
	{"-dotnet", "csharp"},
	{"-kotlin", "kotlin"},
	{"-php", "php"},
	{"-ruby", "ruby"},
	{"-rb", "ruby"},
	{"-swift", "swift"},
	{"-elixir", "elixir"},
	{"-dart", "dart"},
	{"-zig", "zig"},
	{"-lua", "lua"},
}

var defaultNameLanguagePatterns = []PatternRule{
	pattern(`\bpython\b`, "python", weightMedium),
	pattern(`\b(?:typescript|ts)\b`, "typescript", weightMedium),
	pattern(`\bjava\b`, "java", weightMedium),
	pattern(`\bgolang\b`, "go", weightMedium),
	pattern(`\brust\b`, "rust", weightMedium),
	pattern(`\bcsharp\b`, "csharp", weightMedium),
	pattern(`\bkotlin\b`, "kotlin", weightMedium),
	pattern(`\bphp\b`, "php", weightMedium),
	pattern(`\bruby\b`, "ruby", weightMedium),
	pattern(`\bswift\b`, "swift", weightMedium),
	pattern(`\belixir\b`, "elixir", weightMedium),
	pattern(`\bdart\b`, "dart", weightMedium),
	pattern(`\bflutter\b`, "dart", weightMedium),
	pattern(`\bzig\b`, "zig", weightMedium),
}

// defaultDescLanguagePatterns run against the raw description; case
// matters here ("Go" the language vs "go" the verb).
var defaultDescLanguagePatterns = []PatternRule{
	pattern(`\bPython\b`, "python", weightMedium),
	pattern(`\bTypeScript\b`, "typescript", weightMedium),
	pattern(`\bJavaScript\b`, "typescript", weightMedium),
	pattern(`\bNode\.js\b`, "typescript", weightMedium),
	patternExcept(`\bJava\b`, `\bJava\s+Script\b`, "java", weightMedium),
	pattern(`\bGo(?:lang)?\s+(?:implementation|sdk|library|client|server|agent)\b`, "go", weightMedium),
	pattern(`\bwritten in Go\b`, "go", weightMedium),
	pattern(`\bGo\s+implementation\b`, "go", weightMedium),
	pattern(`\bGolang\b`, "go", weightMedium),
	pattern(`\bRust\b`, "rust", weightMedium),
	pattern(`\bC#\b`, "csharp", weightMedium),
	pattern(`\.NET\b`, "csharp", weightMedium),
	pattern(`\bKotlin\b`, "kotlin", weightMedium),
	pattern(`\bPHP\b`, "php", weightMedium),
	pattern(`\bRuby\b`, "ruby", weightMedium),
	pattern(`\bSwift\b`, "swift", weightMedium),
	pattern(`\bElixir\b`, "elixir", weightMedium),
	pattern(`\bDart\b`, "dart", weightMedium),
	pattern(`\bFlutter\b`, "dart", weightMedium),
	pattern(`\bZig\b`, "zig", weightMedium),
}

// defaultSampleLanguages lists the languages the official sample marker
// may name.
var defaultSampleLanguages = map[string]bool{
	"python":     true,
	"java":       true,
	"typescript": true,
	"go":         true,
	"rust":       true,
	"csharp":     true,
	"kotlin":     true,
}

// defaultSDKLanguages maps a declared SDK to a language. A single
// matching SDK is only a tiebreaker, never enough on its own.
var defaultSDKLanguages = map[string]string{
	"python":     "python",
	"typescript": "typescript",
	"java":       "java",
	"go":         "go",
	"rust":       "rust",
	"csharp":     "csharp",
	"kotlin":     "kotlin",
}

const officialSampleMarker = "Official A2A"

var sampleLanguageExpr = regexp.MustCompile(`Official A2A (\w+) sample`)

// Language infers the implementation language of the agent, or reports
// no decision when the evidence is thin or contradictory.
func (c *Classifier) Language(a agent.Agent) (string, bool) {
	t := tally{}

	// declared framework implies a language
	if lang, ok := c.cfg.frameworkLanguages[a.Framework()]; ok {
		t.add(lang, weightStrong)
	}

	// exact tag matches; conflicting tags are allowed to compete
	for _, tag := range a.Tags() {
		if lang, ok := c.cfg.tagLanguages[strings.ToLower(tag)]; ok {
			t.add(lang, weightStrong)
		}
	}

	// repository basename suffix (e.g. ".../a2a-go")
	if name, ok := repoBasename(a.Repository()); ok {
		for _, r := range c.cfg.repoSuffixLanguages {
			if strings.HasSuffix(name, r.suffix) {
				t.add(r.label, weightStrong)
			}
		}
	}

	combined := strings.ToLower(a.Slug() + " " + a.Name())
	for _, r := range c.cfg.nameLanguagePatterns {
		if r.matches(combined) {
			t.add(r.label, r.weight)
		}
	}

	desc := a.Description()
	for _, r := range c.cfg.descLanguagePatterns {
		if r.matches(desc) {
			t.add(r.label, r.weight)
		}
	}

	// "Official A2A <lang> sample ..." is near-authoritative
	if strings.HasPrefix(desc, officialSampleMarker) {
		if m := sampleLanguageExpr.FindStringSubmatch(desc); m != nil {
			if lang := strings.ToLower(m[1]); c.cfg.sampleLanguages[lang] {
				t.add(lang, weightSampleLanguage)
			}
		}
	}

	// a lone declared SDK breaks near-ties at minimum weight
	if sdks := a.SDKs(); len(sdks) == 1 {
		if lang, ok := c.cfg.sdkLanguages[sdks[0]]; ok {
			t.add(lang, weightWeak)
		}
	}

	return decide(t, true)
}

// repoBasename extracts the repository name from a forge URL. Only URLs
// with a recognizable github host and a full org/repo path qualify;
// anything else contributes no signal.
func repoBasename(repo string) (string, bool) {
	if repo == "" || !strings.Contains(repo, "github.com") {
		return "", false
	}
	parts := strings.Split(strings.TrimRight(repo, "/"), "/")
	if len(parts) < 5 {
		return "", false
	}
	return strings.ToLower(parts[4]), true
}
