package infer

import (
	"strings"

	"github.com/pkg/errors"
)

// Config is the full signal-table set consumed by a Classifier. It is
// built once at startup and never mutated afterwards, so a single value
// can back any number of classifications.
type Config struct {
	frameworkLanguages   map[string]string
	tagLanguages         map[string]string
	repoSuffixLanguages  []SuffixRule
	nameLanguagePatterns []PatternRule
	descLanguagePatterns []PatternRule
	sampleLanguages      map[string]bool
	sdkLanguages         map[string]string

	tagCategories        []TagRule
	descCategoryPatterns []PatternRule
	nameCategoryPatterns []PatternRule
	categories           map[string]bool

	frameworkPatterns []PatternRule
	tagFrameworks     map[string]string
	adkTags           map[string]bool
}

// DefaultConfig returns the built-in signal tables.
func DefaultConfig() *Config {
	c := &Config{
		frameworkLanguages:   make(map[string]string, len(defaultFrameworkLanguages)),
		tagLanguages:         make(map[string]string, len(defaultTagLanguages)),
		repoSuffixLanguages:  defaultRepoSuffixLanguages,
		nameLanguagePatterns: defaultNameLanguagePatterns,
		descLanguagePatterns: defaultDescLanguagePatterns,
		sampleLanguages:      defaultSampleLanguages,
		sdkLanguages:         defaultSDKLanguages,
		tagCategories:        defaultTagCategories,
		descCategoryPatterns: defaultDescCategoryPatterns,
		nameCategoryPatterns: defaultNameCategoryPatterns,
		categories:           defaultCategories,
		frameworkPatterns:    defaultFrameworkPatterns,
		tagFrameworks:        make(map[string]string, len(defaultTagFrameworks)),
		adkTags:              defaultADKTags,
	}

	// copy the maps that override methods may extend
	for k, v := range defaultFrameworkLanguages {
		c.frameworkLanguages[k] = v
	}
	for k, v := range defaultTagLanguages {
		c.tagLanguages[k] = v
	}
	for k, v := range defaultTagFrameworks {
		c.tagFrameworks[k] = v
	}

	return c
}

// AddTagLanguage registers an extra tag that maps directly to a language.
func (c *Config) AddTagLanguage(tag, language string) {
	c.tagLanguages[strings.ToLower(tag)] = language
}

// AddTagFramework registers an extra tag that maps directly to a framework.
func (c *Config) AddTagFramework(tag, framework string) {
	c.tagFrameworks[strings.ToLower(tag)] = framework
}

// AddCategoryTags registers an extra tag family for a known category.
func (c *Config) AddCategoryTags(category string, tags ...string) error {
	if !c.categories[category] {
		return errors.Errorf("unknown category: %s", category)
	}
	if len(tags) == 0 {
		return errors.New("at least one tag required")
	}
	lowered := make([]string, 0, len(tags))
	for _, t := range tags {
		lowered = append(lowered, strings.ToLower(t))
	}
	c.tagCategories = append(c.tagCategories, tagRule(category, lowered...))
	return nil
}
