package landing

const (
	Product     = "Beregne 2.0"
	Brand       = "🧮 " + Product
	Copyright   = "© 2024 Beregne 2.0. Laget med ❤️ i Norge 🇳🇴"
	FrameTitle  = "househacker Widget Demo"
	FrameWidth  = "100%"
	FrameHeight = "600"

	heroLead = "Embed intelligente AI-agenter på din nettside. Fra oppussingsberegninger til lånekalkulator - " +
		"alt tilpasset dine kunder og ditt brand."
)

// Default builds the page with the default service links.
func Default() Page {
	return Build(DefaultLinks())
}

// Build assembles the page. The structure is fixed; links only fill in
// destinations. Every dashboard call to action shares links.Dashboard.
// Document title and description reuse the product name and hero copy.
func Build(links Links) Page {
	return Page{
		Title:       Product,
		Description: heroLead,
		Sections: []Section{
			header(links),
			hero(links),
			features(),
			demo(links),
			partners(links),
			cta(links),
			footer(links),
		},
	}
}

func dashboardButton(links Links, label string, v Variant, s Size) Button {
	return Button{
		Label:   label,
		Variant: v,
		Size:    s,
		Href:    links.Dashboard,
		Target:  TargetBlank,
	}
}

func header(links Links) Section {
	return Section{
		Kind:  KindHeader,
		Brand: Brand,
		Nav: []Link{
			{Label: "Funksjoner", Href: "#features"},
			{Label: "Partnere", Href: "#partners"},
			{Label: "Demo", Href: "#demo"},
		},
		Actions: []Button{
			dashboardButton(links, "Dashboard", VariantOutline, SizeDefault),
		},
	}
}

func hero(links Links) Section {
	start := dashboardButton(links, "🚀 Kom i gang gratis", VariantDefault, SizeLarge)
	start.Wide = true
	return Section{
		Kind: KindHero,
		Headline: []Span{
			{Text: "AI-drevet"},
			{Text: "kalkulatorplattform", Accent: true},
			{Text: "for Norge"},
		},
		Lead: heroLead,
		Actions: []Button{
			start,
			{Label: "Se demo", Variant: VariantOutline, Size: SizeLarge, Wide: true},
		},
	}
}

func features() Section {
	soon := Badge{Label: "Kommer snart", Variant: VariantOutline}
	return Section{
		Kind:  KindFeatures,
		ID:    "features",
		Title: "Kraftige AI-agenter for din bedrift",
		Lead:  "Spesialiserte beregningsagenter som forstår norske regler og kundens behov",
		Cards: []Card{
			{
				Feature: true,
				Icon:    "🏠",
				Tone:    "red",
				Title:   "Oppussingsrådgiver",
				Badge:   &Badge{Label: "househacker", Variant: VariantSecondary},
				Description: "Beregner materialer, kostnader og mengder for oppussingsprosjekter. " +
					"Støtter maling, fliser, laminat og komplette romrenoveringer.",
				Bullets: []Bullet{
					{Mark: "✅", Text: "Materialkalkulator"},
					{Mark: "✅", Text: "Kostnadsestimater"},
					{Mark: "✅", Text: "Norske priser"},
				},
			},
			{
				Feature: true,
				Icon:    "🏦",
				Tone:    "green",
				Title:   "Lånekalkulator",
				Badge:   &soon,
				Description: "Boliglån, billån og forbrukslån med norske regler. " +
					"Inkluderer 5x-regel, 85% belåningsgrad og effektiv rente.",
				Bullets: []Bullet{
					{Mark: "🔄", Text: "Norske låneregelverk"},
					{Mark: "🔄", Text: "Månedlige betalinger"},
					{Mark: "🔄", Text: "Maksimalt lånebeløp"},
				},
			},
			{
				Feature: true,
				Icon:    "⚡",
				Tone:    "yellow",
				Title:   "Energirådgiver",
				Badge:   &Badge{Label: soon.Label, Variant: soon.Variant},
				Description: "Sanntids strømpriser, energisparing og varmepumpekalkulator. " +
					"Integrert med hvakosterstrommen.no.",
				Bullets: []Bullet{
					{Mark: "🔄", Text: "Sanntids strømpriser"},
					{Mark: "🔄", Text: "Energispareberegninger"},
					{Mark: "🔄", Text: "Varmepumpe vs elektrisk"},
				},
			},
		},
	}
}

func demo(links Links) Section {
	return Section{
		Kind:  KindDemo,
		ID:    "demo",
		Title: "Se househacker-agenten i aksjon",
		Lead:  "Live demo av oppussingsrådgiveren med househacker sitt design",
		Frame: &Frame{
			Heading: "househacker Oppussingsrådgiver",
			Caption: "Embedded widget - slik den vises på househacker.no",
			Src:     links.Widget,
			Width:   FrameWidth,
			Height:  FrameHeight,
			Title:   FrameTitle,
		},
	}
}

func partners(links Links) Section {
	open := dashboardButton(links, "Åpne Partner Dashboard", VariantDefault, SizeDefault)
	open.Wide = true

	steps := []string{
		"Opprett partner-profil i dashboardet",
		"Konfigurer design og agenter",
		"Kopier embed-kode til din nettside",
		"Følg statistikk og forbedre",
	}
	onboarding := Card{
		Title:  "🚀 Kom i gang",
		Action: &open,
	}
	for i, text := range steps {
		onboarding.Steps = append(onboarding.Steps, Step{
			Badge: Badge{Label: string(rune('1' + i)), Variant: VariantOutline},
			Text:  text,
		})
	}

	return Section{
		Kind:  KindPartners,
		ID:    "partners",
		Title: "For entreprenører og bedrifter",
		Lead:  "Embed intelligente kalkulatorer på din nettside og øk kundeengasjement",
		Cards: []Card{
			{
				Title: "🎯 For partnere",
				Items: []Item{
					{Title: "Konfigurerbart design", Text: "Tilpass farger, logo og meldinger til ditt brand"},
					{Title: "Enkelt å implementere", Text: "Legg til med én linje kode - iframe eller JavaScript"},
					{Title: "Økt kundeengasjement", Text: "Gi kundene umiddelbar verdi og kvalifiserte leads"},
				},
			},
			onboarding,
		},
	}
}

func cta(links Links) Section {
	return Section{
		Kind:  KindCTA,
		Title: "Klar til å øke konvertering på nettsiden din?",
		Lead:  "Gi kundene dine intelligente kalkulatorer som leverer umiddelbar verdi",
		Actions: []Button{
			dashboardButton(links, "Start gratis", VariantSecondary, SizeLarge),
			{Label: "Book demo", Variant: VariantOutline, Size: SizeLarge},
		},
	}
}

func footer(links Links) Section {
	return Section{
		Kind: KindFooter,
		Nav: []Link{
			{Label: "Vilkår", Href: "#"},
			{Label: "Personvern", Href: "#"},
			{Label: "Kontakt", Href: links.Contact},
		},
		Note: Copyright,
	}
}
