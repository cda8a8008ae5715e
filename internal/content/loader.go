package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		gmhtml.WithHardWraps(),
	),
)

// LoadDocument reads and validates the typed translation resource for one
// language from localesDir/<lang>.json.
func LoadDocument(localesDir, lang string) (*Document, error) {
	path := filepath.Join(localesDir, lang+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read locale %s: %w", path, err)
	}

	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode locale %s: %w", path, err)
	}

	doc.Lang = lang
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("validate locale %s: %w", path, err)
	}
	return &doc, nil
}

type aboutFrontmatter struct {
	Title string `yaml:"title"`
}

// LoadAbout replaces the document's about block with the rendered Markdown
// file content/about.<lang>.md when one exists. A missing file is not an
// error: the plain-text about content from the locale document stays in use.
func LoadAbout(contentDir string, doc *Document) error {
	path := filepath.Join(contentDir, "about."+doc.Lang+".md")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read about %s: %w", path, err)
	}

	var fm aboutFrontmatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &fm)
	if err != nil {
		// No frontmatter block; treat the whole file as Markdown.
		body = data
	}

	var buf bytes.Buffer
	if err := markdown.Convert(body, &buf); err != nil {
		return fmt.Errorf("render about %s: %w", path, err)
	}

	if fm.Title != "" {
		doc.About.Title = fm.Title
	}
	doc.AboutHTML = template.HTML(buf.String())
	return nil
}
