package content

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	i18n "github.com/goliatone/go-i18n"
)

// Catalog holds the loaded translation documents for every supported
// language and the translator built from their literal strings.
//
// Reload is guarded by a generation counter: when reloads overlap, only the
// newest one may publish its snapshot, so a slow stale load never overwrites
// a more recent one.
type Catalog struct {
	localesDir string
	contentDir string

	// Diag, when set, receives load failures. The web layer points it at the
	// diagnostics store so failed loads are recorded, not surfaced.
	Diag func(event, detail string)

	requested atomic.Uint64

	mu         sync.RWMutex
	docs       map[string]*Document
	translator i18n.Translator
	applied    uint64
}

// NewCatalog creates an empty catalog reading from the given directories.
func NewCatalog(localesDir, contentDir string) *Catalog {
	return &Catalog{
		localesDir: localesDir,
		contentDir: contentDir,
		docs:       map[string]*Document{},
	}
}

// Load performs the initial load. It returns an error only when no locale
// document could be loaded at all; individual failures degrade to the
// built-in fallback and are reported through Diag.
func (c *Catalog) Load() error {
	gen := c.requested.Add(1)
	docs, loaded := c.loadAll()
	translator := c.buildTranslator(docs)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = docs
	c.translator = translator
	c.applied = gen

	if loaded == 0 {
		return fmt.Errorf("no locale documents loaded from %s, serving built-in fallback only", c.localesDir)
	}
	return nil
}

// Reload re-reads every locale document and publishes the new snapshot
// unless a newer reload already finished.
func (c *Catalog) Reload() {
	gen := c.requested.Add(1)
	docs, loaded := c.loadAll()
	translator := c.buildTranslator(docs)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen <= c.applied {
		log.Printf("catalog: discarding stale reload (generation %d, applied %d)", gen, c.applied)
		return
	}
	c.docs = docs
	c.translator = translator
	c.applied = gen
	log.Printf("catalog: reloaded %d locale document(s)", loaded)
}

func (c *Catalog) loadAll() (map[string]*Document, int) {
	docs := make(map[string]*Document, len(supportedLanguages))
	loaded := 0
	for _, lang := range supportedLanguages {
		doc, err := LoadDocument(c.localesDir, lang)
		if err != nil {
			log.Printf("catalog: %v", err)
			c.diag("locale_load_failure", err.Error())
			continue
		}
		if err := LoadAbout(c.contentDir, doc); err != nil {
			log.Printf("catalog: %v", err)
			c.diag("about_load_failure", err.Error())
		}
		docs[lang] = doc
		loaded++
	}
	if _, ok := docs[DefaultLanguage]; !ok {
		docs[DefaultLanguage] = FallbackDocument()
	}
	return docs, loaded
}

func (c *Catalog) diag(event, detail string) {
	if c.Diag != nil {
		c.Diag(event, detail)
	}
}

// Document returns the document for lang, falling back to the default
// language and finally to the built-in fallback.
func (c *Catalog) Document(lang string) *Document {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if doc, ok := c.docs[lang]; ok {
		return doc
	}
	if doc, ok := c.docs[DefaultLanguage]; ok {
		return doc
	}
	return FallbackDocument()
}

// Languages returns the codes with a loaded document.
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.docs))
	for _, lang := range supportedLanguages {
		if _, ok := c.docs[lang]; ok {
			out = append(out, lang)
		}
	}
	return out
}

// T resolves a UI string for lang. A missing key resolves to the key name
// itself so a gap in a locale document never breaks rendering.
func (c *Catalog) T(lang, key string) string {
	c.mu.RLock()
	translator := c.translator
	c.mu.RUnlock()
	if translator == nil {
		return key
	}
	value, err := translator.Translate(lang, key)
	if err != nil || value == "" {
		return key
	}
	return value
}

func (c *Catalog) buildTranslator(docs map[string]*Document) i18n.Translator {
	translations := make(i18n.Translations, len(docs))
	for lang, doc := range docs {
		catalog := &i18n.TranslationCatalog{
			Locale:   i18n.Locale{Code: lang},
			Messages: map[string]i18n.Message{},
		}
		for key, value := range doc.messageStrings() {
			if value == "" {
				continue
			}
			msg := i18n.Message{
				MessageMetadata: i18n.MessageMetadata{ID: key, Locale: lang},
			}
			msg.SetContent(value)
			catalog.Messages[key] = msg
		}
		translations[lang] = catalog
	}

	opts := []i18n.Option{
		i18n.WithLocales(SupportedLanguages()...),
		i18n.WithDefaultLocale(DefaultLanguage),
		i18n.WithLoader(i18n.LoaderFunc(func() (i18n.Translations, error) {
			return translations, nil
		})),
	}
	for _, lang := range supportedLanguages {
		if lang != DefaultLanguage {
			opts = append(opts, i18n.WithFallback(lang, DefaultLanguage))
		}
	}

	cfg, err := i18n.NewConfig(opts...)
	if err != nil {
		log.Printf("catalog: building i18n config: %v", err)
		return nil
	}
	translator, err := cfg.BuildTranslator()
	if err != nil {
		log.Printf("catalog: building translator: %v", err)
		return nil
	}
	return translator
}

// messageStrings flattens the document's UI strings into dotted message keys
// for the translator. Section content stays typed and is never exposed as
// message lookups.
func (d *Document) messageStrings() map[string]string {
	out := map[string]string{
		"name":            d.Name,
		"position":        d.Position,
		"location":        d.Location,
		"nationality":     d.Nationality,
		"phone":           d.Phone,
		"about.title":     d.About.Title,
		"seo.title":       d.SEO.Title,
		"seo.description": d.SEO.Description,

		"literals.present":                   d.Literals.Present,
		"literals.seeMore":                   d.Literals.SeeMore,
		"literals.seeLess":                   d.Literals.SeeLess,
		"literals.languageSelectorAriaLabel": d.Literals.LanguageSelectorAria,
		"literals.themeToggleAriaLabel":      d.Literals.ThemeToggleAria,
		"literals.darkMode":                  d.Literals.DarkMode,
		"literals.lightMode":                 d.Literals.LightMode,
		"literals.contactTitle":              d.Literals.ContactTitle,
		"literals.contactSuccess":            d.Literals.ContactSuccess,
		"literals.contactError":              d.Literals.ContactError,
	}
	for _, kind := range Kinds() {
		out[string(kind)+".title"] = d.Section(kind).Title
	}
	return out
}
