// Package export renders component trees to static HTML and publishes
// the result, either to a local directory or to an S3 bucket. Exported
// pages are plain documents: no session, no runtime script.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fern-ui/fern/pkg/render"
	"github.com/fern-ui/fern/pkg/vdom"
)

// Page is one route to export.
type Page struct {
	// Path is the site path ("/", "/about"). It maps to index.html files
	// so static hosts serve clean URLs.
	Path string

	// Title is the document title.
	Title string

	// Component renders the page body.
	Component vdom.ComponentFunc
}

// Publisher receives rendered files.
type Publisher interface {
	Publish(ctx context.Context, key, contentType string, body []byte) error
}

// Exporter renders a fixed set of pages.
type Exporter struct {
	pages  []Page
	config render.Config
	log    *slog.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithRenderConfig sets the HTML renderer configuration.
func WithRenderConfig(config render.Config) Option {
	return func(e *Exporter) { e.config = config }
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Exporter) { e.log = log }
}

// New creates an exporter for the given pages.
func New(pages []Page, opts ...Option) *Exporter {
	e := &Exporter{
		pages: pages,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run renders every page and hands it to the publisher. The first failure
// aborts the export.
func (e *Exporter) Run(ctx context.Context, pub Publisher) error {
	for _, p := range e.pages {
		if err := ctx.Err(); err != nil {
			return err
		}

		html, err := render.PageToString(render.Page{
			Title: p.Title,
			Body:  vdom.Component(p.Component, nil),
		}, e.config)
		if err != nil {
			return fmt.Errorf("export: render %s: %w", p.Path, err)
		}

		key := PathToKey(p.Path)
		if err := pub.Publish(ctx, key, "text/html; charset=utf-8", []byte(html)); err != nil {
			return fmt.Errorf("export: publish %s: %w", key, err)
		}
		e.log.Info("exported page", "path", p.Path, "key", key, "bytes", len(html))
	}
	return nil
}

// PathToKey maps a site path to its file key: "/" becomes index.html,
// "/about" becomes about/index.html, and an explicit file path like
// "/404.html" is kept as is.
func PathToKey(path string) string {
	p := strings.Trim(path, "/")
	if p == "" {
		return "index.html"
	}
	if strings.Contains(p, ".") {
		return p
	}
	return p + "/index.html"
}
