package section

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/tdamianovich/portfolio/internal/content"
)

// Formatter renders dates and durations with one language's month names and
// literals.
type Formatter struct {
	months    []string
	connector string
	literals  content.Literals

	// now is swappable so duration tests don't depend on the wall clock.
	now func() time.Time
}

// NewFormatter builds a Formatter from a loaded locale document.
func NewFormatter(doc *content.Document) *Formatter {
	return &Formatter{
		months:    doc.Dates.Months,
		connector: doc.Dates.YearConnector,
		literals:  doc.Literals,
		now:       time.Now,
	}
}

// MonthYear renders t as the long month name plus year, first letter
// capitalized ("Junio de 2021", "June 2021").
func (f *Formatter) MonthYear(t time.Time) string {
	month := ""
	if idx := int(t.Month()) - 1; idx >= 0 && idx < len(f.months) {
		month = f.months[idx]
	}
	var out string
	if f.connector != "" {
		out = fmt.Sprintf("%s %s %d", month, f.connector, t.Year())
	} else {
		out = fmt.Sprintf("%s %d", month, t.Year())
	}
	return capitalizeFirst(out)
}

// Date formats an ISO-ish date string. An empty value renders the localized
// present literal when presentOK is set, otherwise nothing. An unparseable
// value renders nothing.
func (f *Formatter) Date(raw string, presentOK bool) string {
	if raw == "" {
		if presentOK {
			return capitalizeFirst(f.literals.Present)
		}
		return ""
	}
	t, err := content.ParseDate(raw)
	if err != nil {
		return ""
	}
	return f.MonthYear(t)
}

// Duration renders the span from start to end (or to now when end is empty)
// as whole years and months. Zero components are omitted; when both are zero
// the floor is "0 <months>". An end before start clamps to the floor instead
// of producing a negative component.
func (f *Formatter) Duration(start, end string) string {
	s, err := content.ParseDate(start)
	if err != nil {
		return ""
	}
	e := f.now()
	if end != "" {
		parsed, err := content.ParseDate(end)
		if err != nil {
			return ""
		}
		e = parsed
	}

	years := e.Year() - s.Year()
	months := int(e.Month()) - int(s.Month())
	if months < 0 {
		years--
		months += 12
	}
	if years < 0 {
		years, months = 0, 0
	}

	var parts []string
	if years > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", years, f.pluralize(years, f.literals.Year, f.literals.Years)))
	}
	if months > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", months, f.pluralize(months, f.literals.Month, f.literals.Months)))
	}
	if len(parts) == 0 {
		return "0 " + f.literals.Months
	}
	joiner := " "
	if f.literals.And != "" {
		joiner = " " + f.literals.And + " "
	}
	return strings.Join(parts, joiner)
}

func (f *Formatter) pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// capitalizeFirst upper-cases only the first letter. x/text cases.Title is
// not used here because it title-cases every word ("Junio De 2021").
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
