// Package agent models A2A agent descriptors as they appear on disk:
// JSON objects whose known fields are read through typed accessors and
// whose remaining fields pass through untouched.
package agent

// Agent is a single agent descriptor. Only the fields the classifier
// reads have accessors; everything else is opaque and survives a
// load/save round trip unchanged.
type Agent map[string]any

// Str returns the named field as a string, or "" when absent or not a
// string. Missing data is never an error, it is just no signal.
func (a Agent) Str(key string) string {
	if v, ok := a[key].(string); ok {
		return v
	}
	return ""
}

// Strs returns the named field as a string slice, skipping any
// non-string elements.
func (a Agent) Strs(key string) []string {
	switch raw := a[key].(type) {
	case []string:
		return raw
	case []any:
		list := make([]string, 0, len(raw))
		for _, v := range raw {
			if s, ok := v.(string); ok {
				list = append(list, s)
			}
		}
		return list
	}
	return nil
}

// Set assigns a string value to the named field.
func (a Agent) Set(key, val string) {
	a[key] = val
}

func (a Agent) Name() string        { return a.Str("name") }
func (a Agent) Slug() string        { return a.Str("slug") }
func (a Agent) Description() string { return a.Str("description") }
func (a Agent) Repository() string  { return a.Str("repository") }
func (a Agent) Language() string    { return a.Str("language") }
func (a Agent) Category() string    { return a.Str("category") }
func (a Agent) Framework() string   { return a.Str("framework") }
func (a Agent) Tags() []string      { return a.Strs("tags") }
func (a Agent) SDKs() []string      { return a.Strs("sdks") }

// SkillTags returns the tag list of each skill sub-record.
func (a Agent) SkillTags() [][]string {
	raw, ok := a["skills"].([]any)
	if !ok {
		return nil
	}
	out := make([][]string, 0, len(raw))
	for _, v := range raw {
		if skill, ok := v.(map[string]any); ok {
			out = append(out, Agent(skill).Strs("tags"))
		}
	}
	return out
}

// Provider returns the provider sub-record's name and url.
func (a Agent) Provider() (name, url string) {
	if p, ok := a["provider"].(map[string]any); ok {
		return Agent(p).Str("name"), Agent(p).Str("url")
	}
	return "", ""
}
