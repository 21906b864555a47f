package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Document is the raw catalog file shape: category, then option name,
// then language code to label.
type Document map[string]map[string]map[string]string

// LoadDocument reads a raw catalog document from disk.
func LoadDocument(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return doc, nil
}

// Load reads a catalog document from disk and resolves labels to the
// given language.
func Load(path, language string) (*Catalog, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return New(doc, language)
}

// New builds a catalog from an already parsed document.
func New(doc Document, language string) (*Catalog, error) {
	if language == "" {
		language = DefaultLanguage
	}
	if !supportedLanguages[language] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, language)
	}

	c := &Catalog{
		language: language,
		options:  make(map[string][]Option, len(doc)),
		names:    make(map[string]map[string]bool, len(doc)),
	}

	for category, entries := range doc {
		opts := make([]Option, 0, len(entries))
		names := make(map[string]bool, len(entries))
		for name, labels := range entries {
			label, ok := labels[language]
			if !ok {
				label = labels[DefaultLanguage]
			}
			if label == "" {
				label = name
			}
			opts = append(opts, Option{Name: name, Label: label})
			names[name] = true
		}
		sort.Slice(opts, func(i, j int) bool { return opts[i].Name < opts[j].Name })
		c.options[category] = opts
		c.names[category] = names
	}

	return c, nil
}
