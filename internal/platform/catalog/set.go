package catalog

// Set holds one catalog per supported language so that a request can
// pick its label language without re-reading the document.
type Set struct {
	byLanguage map[string]*Catalog
}

// NewSet resolves a document to every supported language.
func NewSet(doc Document) (*Set, error) {
	s := &Set{byLanguage: make(map[string]*Catalog, len(supportedLanguages))}
	for language := range supportedLanguages {
		c, err := New(doc, language)
		if err != nil {
			return nil, err
		}
		s.byLanguage[language] = c
	}
	return s, nil
}

// LoadSet reads a catalog document from disk and resolves it to every
// supported language.
func LoadSet(path string) (*Set, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return NewSet(doc)
}

// For returns the catalog for a language, defaulting when empty.
func (s *Set) For(language string) (*Catalog, error) {
	if language == "" {
		language = DefaultLanguage
	}
	c, ok := s.byLanguage[language]
	if !ok {
		return nil, ErrUnsupportedLanguage
	}
	return c, nil
}
