package content

import (
	"fmt"
	"html/template"
	"time"
)

// SectionKind identifies one of the profile sections shown on the page.
type SectionKind string

const (
	KindExperience     SectionKind = "experience"
	KindEducation      SectionKind = "education"
	KindLanguages      SectionKind = "languages"
	KindCertifications SectionKind = "certifications"
)

// Kinds returns the sections in page order.
func Kinds() []SectionKind {
	return []SectionKind{KindExperience, KindEducation, KindLanguages, KindCertifications}
}

// HasDateContext reports whether a missing end date in this section means
// "ongoing" and should render the localized present literal.
func (k SectionKind) HasDateContext() bool {
	return k == KindExperience || k == KindEducation
}

// DefaultLanguage is the hard-coded fallback when neither the request nor the
// stored preference yields a supported language.
const DefaultLanguage = "es"

var supportedLanguages = []string{"es", "en", "de"}

// SupportedLanguages returns the language codes the site can render.
func SupportedLanguages() []string {
	out := make([]string, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// IsSupported reports whether lang is one of the three supported codes.
func IsSupported(lang string) bool {
	for _, l := range supportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// Item is one displayable profile record: a job, a degree, a language
// proficiency or a certification. Every field is optional; absence of a
// field simply omits that fragment of output.
type Item struct {
	Title       string `json:"title,omitempty"`
	TitleDetail string `json:"titleDetail,omitempty"`
	Subtitle    string `json:"subtitle,omitempty"`
	Content     string `json:"content,omitempty"`
	Date        string `json:"date,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Mode        string `json:"mode,omitempty"`
	Link        string `json:"link,omitempty"`
}

// ContactLink is one outbound contact pill in the page header.
type ContactLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Icon  string `json:"icon,omitempty"`
}

// Section pairs a localized section title with its items.
type Section struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Literals are the localized UI strings consumed outside of section content.
type Literals struct {
	Present              string `json:"present"`
	SeeMore              string `json:"seeMore"`
	SeeLess              string `json:"seeLess"`
	Year                 string `json:"year"`
	Years                string `json:"years"`
	Month                string `json:"month"`
	Months               string `json:"months"`
	And                  string `json:"and"`
	LanguageSelectorAria string `json:"languageSelectorAriaLabel"`
	ThemeToggleAria      string `json:"themeToggleAriaLabel"`
	DarkMode             string `json:"darkMode"`
	LightMode            string `json:"lightMode"`
	ContactTitle         string `json:"contactTitle"`
	ContactSuccess       string `json:"contactSuccess"`
	ContactError         string `json:"contactError"`
}

// DateNames carries the localized month names and the optional connector
// between month and year ("de" in Spanish, empty elsewhere).
type DateNames struct {
	Months        []string `json:"months"`
	YearConnector string   `json:"yearConnector,omitempty"`
}

// SEO holds the document head strings.
type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// About is the free-text introduction block.
type About struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Document is the full typed translation resource for one language.
type Document struct {
	Name        string `json:"name"`
	Position    string `json:"position"`
	Location    string `json:"location"`
	Nationality string `json:"nationality"`
	Phone       string `json:"phone"`

	About   About         `json:"about"`
	Contact []ContactLink `json:"contact"`

	Experience     Section `json:"experience"`
	Education      Section `json:"education"`
	Languages      Section `json:"languages"`
	Certifications Section `json:"certifications"`

	Literals Literals  `json:"literals"`
	Dates    DateNames `json:"dates"`
	SEO      SEO       `json:"seo"`

	// Lang and AboutHTML are filled by the loader, not by the JSON document.
	Lang      string        `json:"-"`
	AboutHTML template.HTML `json:"-"`
}

// Section returns the section data for the given kind.
func (d *Document) Section(kind SectionKind) Section {
	switch kind {
	case KindExperience:
		return d.Experience
	case KindEducation:
		return d.Education
	case KindLanguages:
		return d.Languages
	case KindCertifications:
		return d.Certifications
	}
	return Section{}
}

var dateLayouts = []string{"2006-01-02", "2006-01", time.RFC3339}

// ParseDate parses the ISO-ish date strings used in item records.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// Validate checks the typed schema invariants. Shape mismatches are rejected
// at load time instead of being silently substituted at render time.
func (d *Document) Validate() error {
	if len(d.Dates.Months) != 12 {
		return fmt.Errorf("dates.months must list 12 month names, got %d", len(d.Dates.Months))
	}
	required := map[string]string{
		"literals.present": d.Literals.Present,
		"literals.seeMore": d.Literals.SeeMore,
		"literals.seeLess": d.Literals.SeeLess,
		"literals.year":    d.Literals.Year,
		"literals.years":   d.Literals.Years,
		"literals.month":   d.Literals.Month,
		"literals.months":  d.Literals.Months,
	}
	for key, value := range required {
		if value == "" {
			return fmt.Errorf("missing required literal %s", key)
		}
	}
	for _, kind := range Kinds() {
		section := d.Section(kind)
		for i, item := range section.Items {
			if err := validateItemDates(item); err != nil {
				return fmt.Errorf("%s.items[%d]: %w", kind, i, err)
			}
		}
	}
	return nil
}

func validateItemDates(item Item) error {
	var start time.Time
	if item.Date != "" {
		t, err := ParseDate(item.Date)
		if err != nil {
			return err
		}
		start = t
	}
	if item.EndDate != "" {
		if item.Date == "" {
			return fmt.Errorf("endDate %q without a start date", item.EndDate)
		}
		end, err := ParseDate(item.EndDate)
		if err != nil {
			return err
		}
		if end.Before(start) {
			return fmt.Errorf("endDate %q precedes date %q", item.EndDate, item.Date)
		}
	}
	return nil
}
