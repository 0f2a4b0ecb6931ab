// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package i18n

import (
	"strings"

	"github.com/vinterdal/bloggverk/internal/variant"
)

// Salts for the two independent per-site selections. Using distinct salts
// keeps the disclaimer and CTA choices uncorrelated even though both derive
// from the same website ID.
const (
	saltDisclaimer = "disclaimer"
	saltCTA        = "cta"
)

// disclaimerPools holds the AI-disclosure sentence variations per language.
// {website_name} and {contact_email} are interpolated at render time.
var disclaimerPools = map[Language][]string{
	Swedish: {
		"Delar eller hela innehållet är AI-genererat. Kontakta oss om du har upptäckt faktafel.",
		"Detta innehåll har skapats med hjälp av AI. Hör av dig till {website_name} om du hittar felaktigheter.",
		"AI har använts för att skapa detta innehåll. Rapportera eventuella faktafel till {contact_email}.",
		"Innehållet på {website_name} är helt eller delvis AI-skapat. Låt oss veta om något är felaktigt.",
		"Denna artikel är framtagen med AI-stöd. Meddela oss på {contact_email} vid felaktig information.",
		"{website_name} använder AI för att skapa innehåll. Kontakta redaktionen vid eventuella fel.",
		"Vi använder AI för att skapa vårt innehåll. Upptäcker du ett faktafel? Skriv till {contact_email}.",
		"Artikeln har genererats med hjälp av AI-verktyg. Hjälp {website_name} bli bättre genom att rapportera fel.",
		"Detta material är AI-assisterat. Ser du något som inte stämmer? Kontakta {website_name} på {contact_email}.",
		"Innehållet har skapats med AI-teknik. Vi uppskattar om du meddelar oss om felaktigheter.",
	},
	English: {
		"Parts or all of this content is AI-generated. Contact us if you have spotted factual errors.",
		"This content was created with the help of AI. Contact {website_name} if you find inaccuracies.",
		"AI was used to create this content. Report any factual errors to {contact_email}.",
		"The content on {website_name} is wholly or partially AI-created. Let us know if something is incorrect.",
		"This article was produced with AI assistance. Contact us at {contact_email} for incorrect information.",
		"{website_name} uses AI to create content. Contact the editorial team for any errors.",
		"We use AI to create our content. Spotted a factual error? Write to {contact_email}.",
		"This article was generated using AI tools. Help {website_name} improve by reporting errors.",
		"This material is AI-assisted. See something that doesn't look right? Contact {website_name} at {contact_email}.",
		"The content was created using AI technology. We appreciate if you notify us of any inaccuracies.",
	},
	German: {
		"Teile oder der gesamte Inhalt sind KI-generiert. Kontaktieren Sie uns, wenn Sie Sachfehler entdeckt haben.",
		"Dieser Inhalt wurde mit Hilfe von KI erstellt. Kontaktieren Sie {website_name}, wenn Sie Fehler finden.",
		"KI wurde verwendet, um diesen Inhalt zu erstellen. Melden Sie eventuelle Sachfehler an {contact_email}.",
		"Der Inhalt auf {website_name} ist ganz oder teilweise KI-erstellt. Lassen Sie uns wissen, wenn etwas falsch ist.",
		"Dieser Artikel wurde mit KI-Unterstützung erstellt. Kontaktieren Sie uns unter {contact_email} bei falschen Informationen.",
		"{website_name} verwendet KI zur Erstellung von Inhalten. Kontaktieren Sie die Redaktion bei eventuellen Fehlern.",
		"Wir verwenden KI zur Erstellung unserer Inhalte. Haben Sie einen Sachfehler entdeckt? Schreiben Sie an {contact_email}.",
		"Der Artikel wurde mit Hilfe von KI-Tools generiert. Helfen Sie {website_name}, besser zu werden, indem Sie Fehler melden.",
		"Dieses Material ist KI-unterstützt. Sehen Sie etwas, das nicht stimmt? Kontaktieren Sie {website_name} unter {contact_email}.",
		"Der Inhalt wurde mit KI-Technologie erstellt. Wir freuen uns, wenn Sie uns auf Fehler hinweisen.",
	},
	Norwegian: {
		"Deler eller hele innholdet er AI-generert. Kontakt oss om du har oppdaget faktafeil.",
		"Dette innholdet er skapt ved hjelp av AI. Ta kontakt med {website_name} om du finner feil.",
		"AI har blitt brukt til å lage dette innholdet. Rapporter eventuelle faktafeil til {contact_email}.",
		"Innholdet på {website_name} er helt eller delvis AI-skapt. Gi oss beskjed om noe er feil.",
		"Denne artikkelen er laget med AI-støtte. Kontakt oss på {contact_email} ved feilaktig informasjon.",
		"{website_name} bruker AI til å lage innhold. Kontakt redaksjonen ved eventuelle feil.",
		"Vi bruker AI til å lage innholdet vårt. Oppdaget du en faktafeil? Skriv til {contact_email}.",
		"Artikkelen er generert ved hjelp av AI-verktøy. Hjelp {website_name} med å bli bedre ved å rapportere feil.",
		"Dette materialet er AI-assistert. Ser du noe som ikke stemmer? Kontakt {website_name} på {contact_email}.",
		"Innholdet er laget med AI-teknologi. Vi setter pris på om du melder fra om feil.",
	},
}

// ctaPools holds the short call-to-action labels shown before the
// disclaimer expands.
var ctaPools = map[Language][]string{
	Swedish:   {"AI-genererat innehåll", "Om detta innehåll", "Innehållsinformation", "AI-information"},
	English:   {"AI-generated content", "About this content", "Content information", "AI information"},
	German:    {"KI-generierter Inhalt", "Über diesen Inhalt", "Inhaltsinformation", "KI-Information"},
	Norwegian: {"AI-generert innhold", "Om dette innholdet", "Innholdsinformasjon", "AI-informasjon"},
}

// Disclaimer is the resolved AI-disclosure text for one site.
type Disclaimer struct {
	Text     string
	CTA      string
	HasEmail bool
	Email    string
}

// GetDisclaimer resolves the stable disclaimer and CTA variants for a site.
// Selection is a pure function of the website ID, so the same site renders
// the same wording across requests and restarts with no stored state.
func GetDisclaimer(websiteID, language, websiteName, contactEmail string) Disclaimer {
	lang := Language(language)
	pool, ok := disclaimerPools[lang]
	if !ok {
		pool = disclaimerPools[DefaultLanguage]
	}
	ctas, ok := ctaPools[lang]
	if !ok {
		ctas = ctaPools[DefaultLanguage]
	}

	raw := variant.Select(websiteID, pool, saltDisclaimer)
	cta := variant.Select(websiteID, ctas, saltCTA)

	hasEmail := strings.Contains(raw, "{contact_email}") && contactEmail != ""

	return Disclaimer{
		Text:     interpolate(raw, websiteName, contactEmail),
		CTA:      cta,
		HasEmail: hasEmail,
		Email:    contactEmail,
	}
}

// interpolate substitutes the placeholder variables, falling back to a
// neutral word when a site has no stored name or contact address.
func interpolate(text, websiteName, contactEmail string) string {
	if websiteName == "" {
		websiteName = "oss"
	}
	if contactEmail == "" {
		contactEmail = "oss"
	}
	text = strings.ReplaceAll(text, "{website_name}", websiteName)
	return strings.ReplaceAll(text, "{contact_email}", contactEmail)
}
