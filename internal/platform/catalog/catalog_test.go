package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testDocument() Document {
	return Document{
		VisitTypes: {
			"homeVisit":      {"en": "Home visit", "pl": "Wizyta domowa"},
			"remoteConsult":  {"en": "Remote consultation", "pl": "Konsultacja zdalna"},
			"nurseProcedure": {"pl": "Zabieg pielegniarski"},
		},
		IDTypes: {
			"pesel":    {"en": "PESEL", "pl": "PESEL"},
			"passport": {"en": "Passport", "pl": "Paszport"},
		},
	}
}

func TestNew_ResolvesLanguage(t *testing.T) {
	c, err := New(testDocument(), "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Language() != "en" {
		t.Errorf("expected language en, got %s", c.Language())
	}

	opts, err := c.Options(VisitTypes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opts) != 3 {
		t.Fatalf("expected 3 options, got %d", len(opts))
	}
	// Sorted by name.
	if opts[0].Name != "homeVisit" || opts[0].Label != "Home visit" {
		t.Errorf("unexpected first option: %+v", opts[0])
	}
}

func TestNew_DefaultsToPolish(t *testing.T) {
	c, err := New(testDocument(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Language() != "pl" {
		t.Errorf("expected default language pl, got %s", c.Language())
	}

	opts, _ := c.Options(VisitTypes)
	for _, o := range opts {
		if o.Name == "homeVisit" && o.Label != "Wizyta domowa" {
			t.Errorf("expected Polish label, got %s", o.Label)
		}
	}
}

func TestNew_FallsBackToPolishLabel(t *testing.T) {
	c, err := New(testDocument(), "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	opts, _ := c.Options(VisitTypes)
	for _, o := range opts {
		if o.Name == "nurseProcedure" && o.Label != "Zabieg pielegniarski" {
			t.Errorf("expected fallback label, got %s", o.Label)
		}
	}
}

func TestNew_RejectsUnsupportedLanguage(t *testing.T) {
	_, err := New(testDocument(), "de")
	if !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("expected ErrUnsupportedLanguage, got %v", err)
	}
}

func TestCatalog_Has(t *testing.T) {
	c, _ := New(testDocument(), "pl")

	if !c.Has(IDTypes, "pesel") {
		t.Error("expected pesel to be a known id type")
	}
	if c.Has(IDTypes, "PESEL") {
		t.Error("membership must be exact, labels do not count")
	}
	if c.Has("noSuchCategory", "pesel") {
		t.Error("unknown category must report false")
	}
}

func TestCatalog_Options_UnknownCategory(t *testing.T) {
	c, _ := New(testDocument(), "pl")
	if _, err := c.Options("noSuchCategory"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "options.json")
	doc := `{"idTypeOptions":{"pesel":{"en":"PESEL","pl":"PESEL"}}}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	c, err := Load(path, "pl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Has(IDTypes, "pesel") {
		t.Error("expected loaded catalog to contain pesel")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json"), "pl"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNewSet_ResolvesEveryLanguage(t *testing.T) {
	set, err := NewSet(testDocument())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	en, err := set.For("en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if en.Language() != "en" {
		t.Errorf("expected en catalog, got %s", en.Language())
	}

	def, err := set.For("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def.Language() != DefaultLanguage {
		t.Errorf("expected default language %s, got %s", DefaultLanguage, def.Language())
	}

	if _, err := set.For("de"); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("expected ErrUnsupportedLanguage, got %v", err)
	}
}
