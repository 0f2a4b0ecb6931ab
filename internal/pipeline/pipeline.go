// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

// Package pipeline implements the sequential site generation pipeline. One
// Launch call runs an ordered list of model-backed steps, each feeding its
// output into the context of the next, and ends with a single website INSERT.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/vinterdal/bloggverk/internal/color"
	"github.com/vinterdal/bloggverk/internal/i18n"
	"github.com/vinterdal/bloggverk/internal/imaging"
	"github.com/vinterdal/bloggverk/internal/model"
	"github.com/vinterdal/bloggverk/internal/resolver"
	"github.com/vinterdal/bloggverk/internal/store"
	"github.com/vinterdal/bloggverk/internal/textgen"
	"github.com/vinterdal/bloggverk/internal/textparse"
	"github.com/vinterdal/bloggverk/internal/util"
)

// htmlSanitizer cleans model-produced HTML before it is persisted.
var htmlSanitizer = bluemonday.UGCPolicy()

// RandomSource supplies the uniform draws for template slots and feature
// toggles. Tests inject a deterministic source.
type RandomSource interface {
	Next() float64
}

// mathRandSource is the default RandomSource.
type mathRandSource struct{}

func (mathRandSource) Next() float64 { return rand.Float64() }

// GenerationError wraps a failure of one named pipeline step. Any such
// failure aborts the whole run; nothing is persisted.
type GenerationError struct {
	Step string
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation step %q: %v", e.Step, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Config wires a Launcher.
type Config struct {
	Store     *store.Store
	Provider  textgen.Provider
	Images    textgen.ImageProvider // nil disables portraits
	Portraits *imaging.Processor
	Rand      RandomSource // nil selects math/rand
	Logger    *slog.Logger

	// GenerateAuthor enables the author persona step.
	GenerateAuthor bool
}

// Launcher runs the generation pipeline.
type Launcher struct {
	store          *store.Store
	provider       textgen.Provider
	images         textgen.ImageProvider
	portraits      *imaging.Processor
	rand           RandomSource
	logger         *slog.Logger
	generateAuthor bool
}

// New creates a Launcher from cfg. Store and Provider are required.
func New(cfg Config) *Launcher {
	l := &Launcher{
		store:          cfg.Store,
		provider:       cfg.Provider,
		images:         cfg.Images,
		portraits:      cfg.Portraits,
		rand:           cfg.Rand,
		logger:         cfg.Logger,
		generateAuthor: cfg.GenerateAuthor,
	}
	if l.rand == nil {
		l.rand = mathRandSource{}
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	return l
}

// runState accumulates the output of completed steps.
type runState struct {
	name     string
	topic    string
	hostname string

	// context holds prior step output, embedded in later system prompts.
	context string

	website model.Website
	created *model.Website
}

type step struct {
	name string
	run  func(ctx context.Context, st *runState) error
}

func (l *Launcher) steps() []step {
	steps := []step{
		{"about-us", l.stepAbout},
		{"contact-us", l.stepContact},
		{"hero", l.stepHero},
		{"design", l.stepDesign},
		{"meta-description", l.stepMeta},
	}
	if l.generateAuthor {
		steps = append(steps, step{"author-persona", l.stepPersona})
	}
	return append(steps, step{"persist", l.stepPersist})
}

// Launch generates and persists one website. It is strictly sequential and
// all-or-nothing: the first failing step aborts with a GenerationError and
// no row is written.
func (l *Launcher) Launch(ctx context.Context, name, topic, hostname string) (*model.Website, error) {
	st := &runState{
		name:     name,
		topic:    topic,
		hostname: resolver.NormalizeHostname(hostname),
	}
	st.website = model.Website{
		ID:             uuid.NewString(),
		HostName:       st.hostname,
		Name:           name,
		Topic:          topic,
		Language:       string(i18n.DefaultLanguage),
		Design:         model.DefaultDesignTokens(),
		ContainerWidth: "max-w-7xl",
		BorderRadius:   "rounded-lg",
		ContactEmail:   contactEmail(name),
		AIDisclosure:   true,
	}

	for _, s := range l.steps() {
		l.logger.Info("pipeline step", "step", s.name, "hostname", st.hostname)
		if err := s.run(ctx, st); err != nil {
			return nil, &GenerationError{Step: s.name, Err: err}
		}
	}
	return st.created, nil
}

// system builds the system prompt, embedding accumulated step context.
func (l *Launcher) system(st *runState) string {
	if st.context == "" {
		return systemPrompt
	}
	return systemPrompt + "\n\nKontext från tidigare genererat innehåll:\n" + st.context
}

// contactEmail derives the site contact address locally, without a model call.
func contactEmail(name string) string {
	return "kontakt@" + util.Slugify(name) + ".se"
}

func (l *Launcher) stepAbout(ctx context.Context, st *runState) error {
	prompt := fmt.Sprintf(aboutPromptTemplate, st.name, st.topic, writingRules)
	raw, err := l.provider.Complete(ctx, l.system(st), prompt)
	if err != nil {
		return err
	}
	st.website.AboutUs = htmlSanitizer.Sanitize(textparse.StripFences(raw))
	st.context += "Om oss: " + st.website.AboutUs + "\n"
	return nil
}

func (l *Launcher) stepContact(ctx context.Context, st *runState) error {
	prompt := fmt.Sprintf(contactPromptTemplate, st.name, st.topic, st.website.ContactEmail, writingRules)
	raw, err := l.provider.Complete(ctx, l.system(st), prompt)
	if err != nil {
		return err
	}
	st.website.ContactUs = htmlSanitizer.Sanitize(textparse.StripFences(raw))
	st.context += "Kontakt: " + st.website.ContactUs + "\n"
	return nil
}

func (l *Launcher) stepHero(ctx context.Context, st *runState) error {
	prompt := fmt.Sprintf(heroPromptTemplate, st.name, writingRules)
	raw, err := l.provider.Complete(ctx, l.system(st), prompt)
	if err != nil {
		return err
	}

	res := textparse.Parse(textparse.StripFences(raw), map[string]string{
		"HERO_TITLE": "",
		"HERO_TEXT":  "",
		"OUTRO_TEXT": "",
	})
	l.logDefaults(st, "hero", res)

	st.website.HeroTitle = res.Get("HERO_TITLE")
	st.website.HeroText = res.Get("HERO_TEXT")
	st.website.OutroText = htmlSanitizer.Sanitize(res.Get("OUTRO_TEXT"))
	st.context += "Hero: " + st.website.HeroTitle + " - " + st.website.HeroText + "\n"
	return nil
}

func (l *Launcher) stepDesign(ctx context.Context, st *runState) error {
	prompt := fmt.Sprintf(designPromptTemplate, st.name, st.topic)
	raw, err := l.provider.Complete(ctx, l.system(st), prompt)
	if err != nil {
		return err
	}

	def := model.DefaultDesignTokens()
	res := textparse.Parse(textparse.StripFences(raw), map[string]string{
		"PRIMARY_COLOR":    def.PrimaryColor,
		"SECONDARY_COLOR":  def.SecondaryColor,
		"ACCENT_COLOR":     def.AccentColor,
		"BACKGROUND_COLOR": def.BackgroundColor,
		"TEXT_COLOR":       def.TextColor,
		"FONT_HEADING":     def.FontHeading,
		"FONT_BODY":        def.FontBody,
	})
	l.logDefaults(st, "design", res)

	scheme := color.ValidateScheme(l.logger, color.Scheme{
		Primary:    res.Get("PRIMARY_COLOR"),
		Secondary:  res.Get("SECONDARY_COLOR"),
		Accent:     res.Get("ACCENT_COLOR"),
		Background: res.Get("BACKGROUND_COLOR"),
		Text:       res.Get("TEXT_COLOR"),
	})

	st.website.Design = model.DesignTokens{
		PrimaryColor:    scheme.Primary,
		SecondaryColor:  scheme.Secondary,
		AccentColor:     scheme.Accent,
		BackgroundColor: scheme.Background,
		TextColor:       scheme.Text,
		FontHeading:     knownFontOr(res.Get("FONT_HEADING"), def.FontHeading),
		FontBody:        knownFontOr(res.Get("FONT_BODY"), def.FontBody),
	}
	return nil
}

func (l *Launcher) stepMeta(ctx context.Context, st *runState) error {
	prompt := fmt.Sprintf(metaPromptTemplate, st.name, st.topic, writingRules)
	raw, err := l.provider.Complete(ctx, l.system(st), prompt)
	if err != nil {
		return err
	}
	st.website.MetaDescription = strings.TrimSpace(textparse.StripFences(raw))
	return nil
}

// stepPersona generates the author persona. The portrait is best effort:
// a text failure aborts the run, an image failure only logs a warning.
func (l *Launcher) stepPersona(ctx context.Context, st *runState) error {
	prompt := fmt.Sprintf(personaPromptTemplate, st.name, st.topic, writingRules)
	raw, err := l.provider.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		return err
	}

	res := textparse.Parse(textparse.StripFences(raw), map[string]string{
		"AUTHOR_NAME": "",
		"AUTHOR_BIO":  "",
	})
	l.logDefaults(st, "author-persona", res)

	name := res.Get("AUTHOR_NAME")
	if name == "" {
		l.logger.Warn("persona response missing author name, skipping persona",
			"hostname", st.hostname)
		return nil
	}

	st.website.AuthorName = name
	st.website.AuthorBio = res.Get("AUTHOR_BIO")
	st.website.AuthorSlug = util.Slugify(name)

	if l.images == nil || l.portraits == nil {
		return nil
	}
	imgURL, err := l.images.GenerateImage(ctx, fmt.Sprintf(portraitPromptTemplate, st.topic))
	if err != nil {
		l.logger.Warn("portrait generation failed", "hostname", st.hostname, "error", err)
		return nil
	}
	localURL, err := l.portraits.FetchPortrait(ctx, imgURL, st.website.ID)
	if err != nil {
		l.logger.Warn("portrait processing failed", "hostname", st.hostname, "error", err)
		return nil
	}
	st.website.AuthorImage = localURL
	return nil
}

// stepPersist draws the random template slots and feature toggles, then
// performs the single INSERT.
func (l *Launcher) stepPersist(ctx context.Context, st *runState) error {
	st.website.Slots = model.TemplateSlots{
		Header:    l.randomSlot(),
		Footer:    l.randomSlot(),
		FrontPage: l.randomSlot(),
		BlogPost:  l.randomSlot(),
		Page:      l.randomSlot(),
	}
	st.website.Toggles = model.FeatureToggles{
		Breadcrumbs:        l.randomBool(),
		RelatedPosts:       l.randomBool(),
		SearchBar:          l.randomBool(),
		ShareButtons:       l.randomBool(),
		TableOfContents:    l.randomBool(),
		AuthorBox:          l.randomBool(),
		TagsDisplay:        l.randomBool(),
		ReadingTime:        l.randomBool(),
		PostNavigation:     l.randomBool(),
		ReadingProgressBar: l.randomBool(),
	}

	created, err := l.store.CreateWebsite(ctx, &st.website)
	if err != nil {
		return err
	}
	st.created = created
	return nil
}

// randomSlot draws a 1-based template index, uniform over the pool.
func (l *Launcher) randomSlot() int {
	return int(l.rand.Next()*model.TemplatePoolSize) + 1
}

func (l *Launcher) randomBool() bool {
	return l.rand.Next() > 0.5
}

func knownFontOr(name, fallback string) string {
	if model.IsKnownFont(name) {
		return name
	}
	return fallback
}

// logDefaults records, at debug level, schema keys the model did not fill.
func (l *Launcher) logDefaults(st *runState, stepName string, res textparse.Result) {
	for key, used := range res.UsedDefaults {
		if used {
			l.logger.Debug("parse fell back to default",
				"step", stepName, "key", key, "hostname", st.hostname)
		}
	}
}
