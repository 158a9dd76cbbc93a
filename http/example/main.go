/*
Package main provides a toy example use of conneg's http stack.

Try out, e.g.:

	curl -H 'Accept: application/json' localhost:8080/articles/1
	curl 'localhost:8080/articles/1?format=yaml'
	curl -H 'Negotiate: vlist' -i localhost:8080/articles/1
	curl -H 'Accept: text/html' localhost:8080/changelog
	curl -X OPTIONS -i localhost:8080/articles/1
*/
package main

import (
	"embed"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/pflag"
	"github.com/xy-planning-network/conneg/config"
	"github.com/xy-planning-network/conneg/http/renderers"
	"github.com/xy-planning-network/conneg/http/template"
	"github.com/xy-planning-network/conneg/ranger"
	"github.com/xy-planning-network/conneg/renderer"
	"github.com/xy-planning-network/conneg/telemetry"
)

//go:embed tmpl/*
var files embed.FS

type article struct {
	Title     string
	Body      string
	Published time.Time
}

var articles = map[int]article{
	1: {"Negotiating content", "One URL, many representations.", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
	2: {"Transparent negotiation", "Let the client pick from a list.", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
}

// articlesResource serves every stock format, defaulting to HTML.
type articlesResource struct {
	renderers.HTMLDefault
	rng *ranger.Ranger
}

func (a articlesResource) Renderers() []renderer.Renderer { return a.rng.Renderers().Base() }

func (a articlesResource) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	art, ok := articles[id]
	if !ok {
		a.rng.Render(w, r, a, renderer.Context{
			renderer.StatusCodeKey: http.StatusNotFound,
			"title":                "Not found",
			"body":                 fmt.Sprintf("No article %d.", id),
			"published":            time.Time{},
			"path":                 r.URL.Path,
		}, "tmpl/article")
		return
	}

	a.rng.Render(w, r, a, renderer.Context{
		"title":     art.Title,
		"body":      art.Body,
		"published": art.Published,
		"path":      r.URL.Path,
	}, "tmpl/article")
}

// PreprocessJSON drops the body and path from data formats.
func (articlesResource) PreprocessJSON(c renderer.Context) any {
	cp := c.Clone()
	delete(cp, "body")
	delete(cp, "path")
	return cp
}

type entry struct {
	Version string `json:"version" yaml:"version"`
	Note    string `json:"note" yaml:"note"`
}

// changelogResource renders Markdown as HTML and prefers JSON over YAML, whatever they declare.
type changelogResource struct {
	rng *ranger.Ranger
}

func (c changelogResource) Renderers() []renderer.Renderer {
	set := c.rng.Renderers()
	return append(set.HTMLView(), set.JSON(), set.YAML())
}

func (changelogResource) DefaultFormat() string { return "json" }

func (changelogResource) OverridePriority() renderer.Overrides {
	return renderer.Overrides{"json": 2, "yaml": 1}
}

func (c changelogResource) Get(w http.ResponseWriter, r *http.Request) {
	c.rng.Render(w, r, c, renderer.Context{
		"entries": []entry{
			{"0.2.0", "Transparent content negotiation"},
			{"0.1.0", "Accept header negotiation"},
		},
	}, "tmpl/changelog")
}

// routes registers the example resources.
func routes(rng *ranger.Ranger) {
	rng.HandleResource("/articles/{id:[0-9]+}", articlesResource{rng: rng})
	rng.HandleResource("/changelog", changelogResource{rng: rng})
}

func main() {
	var (
		configFile = pflag.StringP("config", "c", "", "path to a config file")
		port       = pflag.StringP("port", "p", "", "port to listen on, overriding configuration")
		noTCN      = pflag.Bool("no-tcn", false, "disable transparent content negotiation")
		trace      = pflag.Bool("trace", false, "print spans to stdout")
	)
	pflag.Parse()

	var opts []config.OptFn
	if *configFile != "" {
		opts = append(opts, config.WithFile(*configFile))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *port != "" {
		cfg.Port = *port
	}
	if *noTCN {
		cfg.TCNEnabled = false
	}

	rngOpts := []ranger.RangerOption{
		ranger.WithConfig(cfg),
		ranger.WithParser(template.NewParser(template.WithFS(files))),
	}
	if *trace {
		rngOpts = append(rngOpts, ranger.WithTracing("conneg-example", telemetry.WithPrettyPrint()))
	}

	rng, err := ranger.New(rngOpts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	routes(rng)
	if err := rng.Guide(); err != nil {
		rng.EmitLogger().Fatal(err.Error(), nil)
	}
}
