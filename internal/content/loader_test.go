package content

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeLocale(t *testing.T, dir, lang string, doc *Document) {
	t.Helper()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal locale: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, lang+".json"), data, 0o644); err != nil {
		t.Fatalf("write locale: %v", err)
	}
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()
	writeLocale(t, dir, "es", FallbackDocument())

	doc, err := LoadDocument(dir, "es")
	if err != nil {
		t.Fatalf("LoadDocument() = %v", err)
	}
	if doc.Lang != "es" {
		t.Errorf("Lang = %q, want es", doc.Lang)
	}
	if doc.Name != fallbackDocument.Name {
		t.Errorf("Name = %q, want %q", doc.Name, fallbackDocument.Name)
	}
}

func TestLoadDocumentMissingFile(t *testing.T) {
	if _, err := LoadDocument(t.TempDir(), "es"); err == nil {
		t.Fatal("LoadDocument() succeeded with no file")
	}
}

func TestLoadDocumentRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "es.json")
	data, _ := json.Marshal(FallbackDocument())
	mangled := strings.Replace(string(data), `"name"`, `"fullName"`, 1)
	if err := os.WriteFile(path, []byte(mangled), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDocument(dir, "es"); err == nil {
		t.Fatal("LoadDocument() accepted an unknown field")
	}
}

func TestLoadDocumentRejectsInvalidSchema(t *testing.T) {
	dir := t.TempDir()
	doc := FallbackDocument()
	doc.Dates.Months = doc.Dates.Months[:3]
	writeLocale(t, dir, "es", doc)
	if _, err := LoadDocument(dir, "es"); err == nil {
		t.Fatal("LoadDocument() accepted a document with 3 month names")
	}
}

func TestLoadAbout(t *testing.T) {
	dir := t.TempDir()
	md := "---\ntitle: Perfil\n---\nHola **mundo**.\n"
	if err := os.WriteFile(filepath.Join(dir, "about.es.md"), []byte(md), 0o644); err != nil {
		t.Fatal(err)
	}

	doc := FallbackDocument()
	if err := LoadAbout(dir, doc); err != nil {
		t.Fatalf("LoadAbout() = %v", err)
	}
	if doc.About.Title != "Perfil" {
		t.Errorf("About.Title = %q, want frontmatter override", doc.About.Title)
	}
	if !strings.Contains(string(doc.AboutHTML), "<strong>mundo</strong>") {
		t.Errorf("AboutHTML = %q, want rendered markdown", doc.AboutHTML)
	}
}

func TestLoadAboutMissingFileKeepsPlainContent(t *testing.T) {
	doc := FallbackDocument()
	before := doc.About
	if err := LoadAbout(t.TempDir(), doc); err != nil {
		t.Fatalf("LoadAbout() = %v", err)
	}
	if doc.About != before || doc.AboutHTML != "" {
		t.Error("missing about file must leave the document untouched")
	}
}
