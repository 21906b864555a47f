// Package catalog loads the option catalog that drives form validation.
// Options are grouped by category and carry labels in each supported
// language; membership checks are always against option names, never
// labels.
package catalog

import (
	"errors"
	"sort"
)

// Category names as they appear in the catalog document.
const (
	VisitTypes      = "visitTypeOptions"
	Specializations = "specializationOptions"
	Topics          = "topicOptions"
	Languages       = "languageOptions"
	Countries       = "countryOptions"
	AgeGroups       = "ageGroupOptions"
	Symptoms        = "symptomOptions"
	IDTypes         = "idTypeOptions"
)

var (
	ErrUnknownCategory     = errors.New("unknown catalog category")
	ErrUnsupportedLanguage = errors.New("unsupported catalog language")
)

// supportedLanguages lists label languages the catalog can resolve.
var supportedLanguages = map[string]bool{
	"en": true,
	"pl": true,
}

// DefaultLanguage is used when a request does not name a language.
const DefaultLanguage = "pl"

// Option is a single selectable value with its display label resolved
// to one language.
type Option struct {
	Name  string `json:"optionName"`
	Label string `json:"optionLabel"`
}

// Catalog holds the resolved options for one language.
type Catalog struct {
	language string
	options  map[string][]Option
	names    map[string]map[string]bool
}

// Language returns the language the catalog labels were resolved to.
func (c *Catalog) Language() string {
	return c.language
}

// Has reports whether name is a member of the given category. Unknown
// categories always report false.
func (c *Catalog) Has(category, name string) bool {
	return c.names[category][name]
}

// Options returns the options of a category sorted by name.
func (c *Catalog) Options(category string) ([]Option, error) {
	opts, ok := c.options[category]
	if !ok {
		return nil, ErrUnknownCategory
	}
	out := make([]Option, len(opts))
	copy(out, opts)
	return out, nil
}

// Categories returns the catalog's category names sorted alphabetically.
func (c *Catalog) Categories() []string {
	out := make([]string, 0, len(c.options))
	for name := range c.options {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
