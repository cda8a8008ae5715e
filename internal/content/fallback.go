package content

// fallbackDocument is the built-in default-language document. It keeps the
// site rendering when the locales directory is missing or every load fails.
var fallbackDocument = Document{
	Lang:        DefaultLanguage,
	Name:        "Tomás Damianovich Reddy",
	Position:    "Desarrollador de software",
	Location:    "Buenos Aires, Argentina",
	Nationality: "Argentino",

	About: About{
		Title:   "Sobre mí",
		Content: "Desarrollador de software con foco en aplicaciones web.",
	},

	Experience:     Section{Title: "Experiencia"},
	Education:      Section{Title: "Educación"},
	Languages:      Section{Title: "Idiomas"},
	Certifications: Section{Title: "Certificaciones"},

	Literals: Literals{
		Present: "presente",
		SeeMore: "Ver más",
		SeeLess: "Ver menos",
		Year:    "año",
		Years:   "años",
		Month:   "mes",
		Months:  "meses",
		And:     "y",
	},

	Dates: DateNames{
		Months: []string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		YearConnector: "de",
	},

	SEO: SEO{
		Title:       "Tomás Damianovich Reddy",
		Description: "Portfolio personal de Tomás Damianovich Reddy",
	},
}

// FallbackDocument returns a copy of the built-in default-language document.
func FallbackDocument() *Document {
	doc := fallbackDocument
	return &doc
}
