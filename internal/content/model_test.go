package content

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"2021-06-01", time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC), false},
		{"2021-06", time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC), false},
		{"2021-06-01T00:00:00Z", time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC), false},
		{"junio 2021", time.Time{}, true},
		{"", time.Time{}, true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !got.Equal(tt.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func validDocument() *Document {
	doc := FallbackDocument()
	return doc
}

func TestValidate(t *testing.T) {
	t.Run("fallback document is valid", func(t *testing.T) {
		if err := validDocument().Validate(); err != nil {
			t.Fatalf("Validate() = %v", err)
		}
	})

	t.Run("wrong month count", func(t *testing.T) {
		doc := validDocument()
		doc.Dates.Months = doc.Dates.Months[:11]
		if err := doc.Validate(); err == nil {
			t.Error("Validate() accepted 11 month names")
		}
	})

	t.Run("missing required literal", func(t *testing.T) {
		doc := validDocument()
		doc.Literals.SeeMore = ""
		if err := doc.Validate(); err == nil {
			t.Error("Validate() accepted an empty seeMore literal")
		}
	})

	t.Run("end date without start date", func(t *testing.T) {
		doc := validDocument()
		doc.Experience.Items = append(doc.Experience.Items, Item{Title: "x", EndDate: "2022-01-01"})
		if err := doc.Validate(); err == nil {
			t.Error("Validate() accepted endDate without date")
		}
	})

	t.Run("end date before start date", func(t *testing.T) {
		doc := validDocument()
		doc.Education.Items = append(doc.Education.Items, Item{Title: "x", Date: "2022-01-01", EndDate: "2021-01-01"})
		if err := doc.Validate(); err == nil {
			t.Error("Validate() accepted an inverted date range")
		}
	})

	t.Run("unparseable item date", func(t *testing.T) {
		doc := validDocument()
		doc.Certifications.Items = append(doc.Certifications.Items, Item{Title: "x", Date: "soon"})
		if err := doc.Validate(); err == nil {
			t.Error("Validate() accepted an unparseable date")
		}
	})
}

func TestSectionLookup(t *testing.T) {
	doc := validDocument()
	for _, kind := range Kinds() {
		if doc.Section(kind).Title == "" {
			t.Errorf("Section(%s).Title is empty in the fallback document", kind)
		}
	}
	if got := doc.Section(SectionKind("bogus")); got.Title != "" || got.Items != nil {
		t.Errorf("Section(bogus) = %+v, want zero value", got)
	}
}

func TestHasDateContext(t *testing.T) {
	if !KindExperience.HasDateContext() || !KindEducation.HasDateContext() {
		t.Error("experience and education carry date context")
	}
	if KindLanguages.HasDateContext() || KindCertifications.HasDateContext() {
		t.Error("languages and certifications must not carry date context")
	}
}
