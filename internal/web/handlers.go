package web

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/tdamianovich/portfolio/internal/content"
	"github.com/tdamianovich/portfolio/internal/prefs"
	"github.com/tdamianovich/portfolio/internal/section"
)

const prefCookieMaxAge = 3600 * 24 * 365

// cookieStore adapts the request/response cookies to prefs.Store. When the
// client sends no cookies every Get reports absent and resolution falls
// through to the device signal and fallback paths.
type cookieStore struct {
	c *gin.Context
}

func (s cookieStore) Get(key string) (string, bool) {
	value, err := s.c.Cookie(key)
	if err != nil || value == "" {
		return "", false
	}
	return value, true
}

func (s cookieStore) Set(key, value string) {
	s.c.SetCookie(key, value, prefCookieMaxAge, "/", "", false, true)
}

// resolvePreferences determines the effective language and theme for this
// request: explicit parameter, then stored cookie, then device signal, then
// the hard-coded fallback.
func (s *Server) resolvePreferences(c *gin.Context) (string, prefs.Theme) {
	param := c.Query("lang")
	if param == "" {
		param = c.Query("language")
	}
	store := cookieStore{c}
	lang := prefs.ResolveLanguage(param, store)
	theme := prefs.ResolveTheme(c.GetHeader("Sec-CH-Prefers-Color-Scheme"), store)
	return lang, theme
}

// sectionOptions maps each section kind to its presentation flags, the way
// the page shell distributes them.
func sectionOptions(kind content.SectionKind) section.Options {
	opts := section.Options{Kind: kind}
	switch kind {
	case content.KindLanguages:
		opts.Pills = true
	case content.KindCertifications:
		opts.Grouped = true
	}
	return opts
}

// sectionContext is the data handed to the section template: the view model
// plus the fragment URLs the disclosure controls target.
type sectionContext struct {
	Lang         string
	View         *section.View
	ToggleURL    string
	GroupToggles map[string]string
}

func (s *Server) handleHome(c *gin.Context) {
	lang, theme := s.resolvePreferences(c)
	c.Header("Accept-CH", "Sec-CH-Prefers-Color-Scheme")

	doc := s.catalog.Document(lang)
	f := section.NewFormatter(doc)

	var sections []sectionContext
	for _, kind := range content.Kinds() {
		data := doc.Section(kind)
		view := section.Build(data.Title, data.Items, sectionOptions(kind), section.State{}, f)
		if view == nil {
			continue
		}
		sections = append(sections, buildSectionContext(lang, view, section.State{}))
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"lang":      lang,
		"theme":     string(theme),
		"doc":       doc,
		"sections":  sections,
		"languages": content.SupportedLanguages(),
	})
}

func (s *Server) handleSection(c *gin.Context) {
	kind := content.SectionKind(c.Param("kind"))
	if !validKind(kind) {
		c.Status(http.StatusNotFound)
		return
	}

	lang, _ := s.resolvePreferences(c)
	state := section.State{MoreVisible: boolParam(c.Query("expanded"))}
	for _, title := range c.QueryArray("open") {
		if state.OpenGroups == nil {
			state.OpenGroups = map[string]bool{}
		}
		state.OpenGroups[title] = true
	}

	doc := s.catalog.Document(lang)
	f := section.NewFormatter(doc)
	data := doc.Section(kind)
	view := section.Build(data.Title, data.Items, sectionOptions(kind), state, f)
	if view == nil {
		// An empty section renders nothing; this is a valid no-op.
		c.String(http.StatusOK, "")
		return
	}
	c.HTML(http.StatusOK, "section.html", buildSectionContext(lang, view, state))
}

func (s *Server) handleSetLanguage(c *gin.Context) {
	code := prefs.NormalizeLanguage(c.PostForm("language"))
	if content.IsSupported(code) {
		cookieStore{c}.Set(prefs.LanguageKey, code)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleSetTheme(c *gin.Context) {
	if theme, ok := prefs.ParseTheme(c.PostForm("theme")); ok {
		cookieStore{c}.Set(prefs.ThemeKey, string(theme))
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func validKind(kind content.SectionKind) bool {
	for _, k := range content.Kinds() {
		if k == kind {
			return true
		}
	}
	return false
}

func boolParam(value string) bool {
	return value == "1" || value == "true"
}

// buildSectionContext precomputes the fragment URLs the disclosure controls
// point at. Toggling is a pure state flip: the URL encodes the flipped state.
func buildSectionContext(lang string, view *section.View, state section.State) sectionContext {
	ctx := sectionContext{Lang: lang, View: view}
	base := "/sections/" + string(view.Kind)

	switch view.Mode {
	case section.ModeDefault:
		if view.HasMore {
			flipped := state
			flipped.Toggle()
			query := url.Values{}
			if flipped.MoreVisible {
				query.Set("expanded", "1")
			}
			ctx.ToggleURL = withQuery(base, query)
		}
	case section.ModeGrouped:
		ctx.GroupToggles = map[string]string{}
		for _, group := range view.Groups {
			if !group.HasMore {
				continue
			}
			query := url.Values{}
			for _, other := range view.Groups {
				open := state.OpenGroups[other.Title]
				if other.Title == group.Title {
					open = !open
				}
				if open {
					query.Add("open", other.Title)
				}
			}
			ctx.GroupToggles[group.Title] = withQuery(base, query)
		}
	}
	return ctx
}

func withQuery(base string, query url.Values) string {
	if len(query) == 0 {
		return base
	}
	return base + "?" + query.Encode()
}
