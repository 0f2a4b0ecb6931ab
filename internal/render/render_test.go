// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"database/sql"
	"fmt"
	"html/template"
	"io/fs"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinterdal/bloggverk/internal/i18n"
	"github.com/vinterdal/bloggverk/internal/model"
	"github.com/vinterdal/bloggverk/web"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	sub, err := fs.Sub(web.Templates, "templates")
	require.NoError(t, err)
	r, err := New(Config{TemplatesFS: sub})
	require.NoError(t, err)
	return r
}

func testWebsite() *model.Website {
	return &model.Website{
		ID:              "w1",
		HostName:        "odling.se",
		Name:            "Odlingsbloggen",
		Topic:           "trädgård och odling",
		Language:        "Swedish",
		AboutUs:         "<p>Vi skriver om odling.</p>",
		ContactUs:       "<p>Hör av dig.</p>",
		HeroTitle:       "Odla mera",
		HeroText:        "Allt om odling året runt.",
		OutroText:       "<p>Tack för besöket.</p>",
		MetaDescription: "En blogg om odling.",
		Design:          model.DefaultDesignTokens(),
		Slots:           model.TemplateSlots{Header: 1, Footer: 1, FrontPage: 1, BlogPost: 1, Page: 1},
		Toggles: model.FeatureToggles{
			Breadcrumbs: true, RelatedPosts: true, ShareButtons: true,
			TableOfContents: true, AuthorBox: true, TagsDisplay: true,
			ReadingTime: true, PostNavigation: true, ReadingProgressBar: true,
		},
		ContainerWidth: "max-w-7xl",
		BorderRadius:   "rounded-lg",
		AuthorName:     "Eva Åkesson",
		AuthorBio:      "Eva har odlat i trettio år.",
		AuthorImage:    "/uploads/portraits/w1.jpg",
		AuthorSlug:     "eva-akesson",
		SocialTwitter:  "https://twitter.com/odling",
		ContactEmail:   "kontakt@odling.se",
		AIDisclosure:   true,
	}
}

func testPosts() []*model.Post {
	published := sql.NullTime{Time: time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC), Valid: true}
	return []*model.Post{
		{
			ID: "p1", Slug: "varsadd", Title: "Vårsådd i mars",
			Excerpt: "Så kommer du igång med vårsådden.",
			Content:     "## Förbered jorden\n\nBörja med att luckra jorden.",
			Tags:        []string{"odling", "vår"},
			PublishedAt: published,
		},
		{
			ID: "p2", Slug: "kompost", Title: "Kompost för nybörjare",
			Excerpt: "Allt du behöver veta om kompostering.",
			Content: "## Varför kompostera\n\nDet är bra för jorden.",
			PublishedAt: published,
		},
	}
}

func basePageData(website *model.Website) *PageData {
	lang := i18n.GetConfig(website.Language)
	d := i18n.GetDisclaimer(website.ID, website.Language, website.Name, website.ContactEmail)
	return &PageData{
		Website:        website,
		Lang:           lang,
		Title:          website.Name,
		Canonical:      "https://odling.se/",
		HeaderTemplate: "header_1",
		FooterTemplate: "footer_1",
		Disclaimer:     &d,
	}
}

func renderToString(t *testing.T, r *Renderer, data *PageData) string {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, r.Render(rec, data))
	return rec.Body.String()
}

// Every variant block must execute against realistic page data; a broken
// variant would otherwise only surface for the tenants that drew it.
func TestRender_AllVariants(t *testing.T) {
	r := newTestRenderer(t)
	website := testWebsite()
	posts := testPosts()

	for i := 1; i <= model.TemplatePoolSize; i++ {
		data := basePageData(website)
		data.HeaderTemplate = fmt.Sprintf("header_%d", i)
		data.FooterTemplate = fmt.Sprintf("footer_%d", i)
		data.ContentTemplate = fmt.Sprintf("frontpage_%d", i)
		data.Posts = posts

		out := renderToString(t, r, data)
		assert.Contains(t, out, "Odla mera", "frontpage_%d", i)
		assert.Contains(t, out, "Odlingsbloggen", "header_%d", i)
	}

	for i := 1; i <= model.TemplatePoolSize; i++ {
		data := basePageData(website)
		data.ContentTemplate = fmt.Sprintf("post_%d", i)
		data.Post = posts[0]
		data.Posts = posts
		data.PrevPost = posts[1]

		out := renderToString(t, r, data)
		assert.Contains(t, out, "Vårsådd i mars", "post_%d", i)
		assert.Contains(t, out, "Förbered jorden", "post_%d title rendered from markdown", i)
	}

	for i := 1; i <= model.TemplatePoolSize; i++ {
		data := basePageData(website)
		data.Title = "Om oss"
		data.ContentTemplate = fmt.Sprintf("page_%d", i)
		data.PageContent = "<p>Vi skriver om odling.</p>"

		out := renderToString(t, r, data)
		assert.Contains(t, out, "Om oss", "page_%d", i)
		assert.Contains(t, out, "Vi skriver om odling.", "page_%d", i)
	}
}

func TestRender_BlogIndexAndAuthorPage(t *testing.T) {
	r := newTestRenderer(t)
	website := testWebsite()

	data := basePageData(website)
	data.ContentTemplate = "blog_index"
	data.Posts = testPosts()
	out := renderToString(t, r, data)
	assert.Contains(t, out, "Alla blogginlägg")
	assert.Contains(t, out, "Vårsådd i mars")
	assert.Contains(t, out, "Kompost för nybörjare")

	data = basePageData(website)
	data.ContentTemplate = "blog_index"
	out = renderToString(t, r, data)
	assert.Contains(t, out, "Inga blogginlägg hittades.")

	data = basePageData(website)
	data.ContentTemplate = "author_page"
	data.Posts = testPosts()
	out = renderToString(t, r, data)
	assert.Contains(t, out, "Eva Åkesson")
	assert.Contains(t, out, "Eva har odlat i trettio år.")
}

func TestRender_DisclaimerShownOnlyWhenSet(t *testing.T) {
	r := newTestRenderer(t)
	website := testWebsite()

	data := basePageData(website)
	data.ContentTemplate = "frontpage_1"
	out := renderToString(t, r, data)
	assert.Contains(t, out, data.Disclaimer.CTA)

	data = basePageData(website)
	data.ContentTemplate = "frontpage_1"
	data.Disclaimer = nil
	out = renderToString(t, r, data)
	assert.NotContains(t, out, "ai-disclaimer")
}

func TestRender_DesignTokensInCSS(t *testing.T) {
	r := newTestRenderer(t)
	website := testWebsite()
	website.Design.PrimaryColor = "#e11d48"
	website.Design.FontHeading = "Lora"

	data := basePageData(website)
	data.ContentTemplate = "frontpage_1"
	out := renderToString(t, r, data)

	assert.Contains(t, out, "--color-primary: #e11d48")
	assert.Contains(t, out, "'Lora', Georgia, serif")
	assert.Contains(t, out, `lang="sv"`)
}

func TestRenderNotFound(t *testing.T) {
	r := newTestRenderer(t)
	rec := httptest.NewRecorder()
	require.NoError(t, r.RenderNotFound(rec, "okand.example.com"))
	assert.Equal(t, 404, rec.Code)
	assert.Contains(t, rec.Body.String(), "okand.example.com")
}

func TestVariantCatalogs(t *testing.T) {
	for _, catalog := range [][]string{
		HeaderTemplates, FooterTemplates, FrontPageTemplates, BlogPostTemplates, PageTemplates,
	} {
		assert.Len(t, catalog, model.TemplatePoolSize)
	}
	assert.Equal(t, "header_1", HeaderTemplates[0])
	assert.Equal(t, "page_5", PageTemplates[4])
}

func TestFontStack(t *testing.T) {
	assert.Equal(t, "'Inter', Helvetica, Arial, sans-serif", string(FontStack("Inter")))
	assert.Equal(t, "'Playfair Display', Georgia, serif", string(FontStack("Playfair Display")))
	assert.Equal(t, "'Inter', Helvetica, Arial, sans-serif", string(FontStack("")))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "15 mars 2026", FormatDate(d, "sv-SE"))
	assert.Equal(t, "15. März 2026", FormatDate(d, "de-DE"))
	assert.Equal(t, "15 mars 2026", FormatDate(d, "nb-NO"))
	assert.Equal(t, "15 March 2026", FormatDate(d, "en-GB"))
}

func TestMarkdownFuncSanitizes(t *testing.T) {
	funcs := templateFuncs()
	md := funcs["markdown"].(func(string) template.HTML)

	out := string(md("## Rubrik\n\n<script>alert(1)</script>Text"))
	assert.Contains(t, out, "<h2>Rubrik</h2>")
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "Text")
}

func TestDictFunc(t *testing.T) {
	funcs := templateFuncs()
	dict := funcs["dict"].(func(...any) (map[string]any, error))

	m, err := dict("A", 1, "B", "two")
	require.NoError(t, err)
	assert.Equal(t, 1, m["A"])
	assert.Equal(t, "two", m["B"])

	_, err = dict("A")
	assert.Error(t, err, "odd argument count")

	_, err = dict(1, "x")
	assert.Error(t, err, "non-string key")
}
