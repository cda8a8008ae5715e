package section

import (
	"testing"
	"time"

	"github.com/tdamianovich/portfolio/internal/content"
)

func englishFormatter() *Formatter {
	doc := &content.Document{
		Literals: content.Literals{
			Present: "present",
			Year:    "year",
			Years:   "years",
			Month:   "month",
			Months:  "months",
			And:     "and",
		},
		Dates: content.DateNames{
			Months: []string{
				"January", "February", "March", "April", "May", "June",
				"July", "August", "September", "October", "November", "December",
			},
		},
	}
	f := NewFormatter(doc)
	f.now = func() time.Time {
		return time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	}
	return f
}

func spanishFormatter() *Formatter {
	f := NewFormatter(content.FallbackDocument())
	f.now = func() time.Time {
		return time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	}
	return f
}

func TestDuration(t *testing.T) {
	f := englishFormatter()

	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{"years and months", "2021-06-01", "2022-12-01", "1 year and 6 months"},
		{"same month floor", "2020-01-01", "2020-01-01", "0 months"},
		{"months only", "2022-01-01", "2022-04-01", "3 months"},
		{"years only", "2020-02-01", "2023-02-01", "3 years"},
		{"single month", "2022-01-01", "2022-02-01", "1 month"},
		{"borrowed months", "2021-11-01", "2023-02-01", "1 year and 3 months"},
		{"ongoing uses now", "2024-01-01", "", "1 year and 2 months"},
		{"end before start clamps", "2022-02-01", "2022-01-01", "0 months"},
		{"unparseable start", "soon", "2022-01-01", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Duration(tt.start, tt.end); got != tt.want {
				t.Errorf("Duration(%q, %q) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestDateFormatting(t *testing.T) {
	en := englishFormatter()
	es := spanishFormatter()

	tests := []struct {
		name      string
		f         *Formatter
		raw       string
		presentOK bool
		want      string
	}{
		{"english month year", en, "2021-06-01", false, "June 2021"},
		{"spanish connector", es, "2021-06-01", false, "Junio de 2021"},
		{"missing with present context", en, "", true, "Present"},
		{"missing spanish present capitalized", es, "", true, "Presente"},
		{"missing without present context", en, "", false, ""},
		{"unparseable renders nothing", en, "not-a-date", false, ""},
		{"year month only", en, "2021-06", false, "June 2021"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Date(tt.raw, tt.presentOK); got != tt.want {
				t.Errorf("Date(%q, %v) = %q, want %q", tt.raw, tt.presentOK, got, tt.want)
			}
		})
	}
}

func TestCapitalizeFirst(t *testing.T) {
	tests := []struct{ in, want string }{
		{"junio de 2021", "Junio de 2021"},
		{"über mich", "Über mich"},
		{"", ""},
		{"Presente", "Presente"},
	}
	for _, tt := range tests {
		if got := capitalizeFirst(tt.in); got != tt.want {
			t.Errorf("capitalizeFirst(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
