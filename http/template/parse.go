package template

import (
	"errors"
	"fmt"
	html "html/template"
	"io/fs"
	"os"
	"path"
	text "text/template"
)

const (
	// MultipleChoices names the template listing variants for a 300 Multiple Choices response.
	MultipleChoices = "tmpl/multiple_choices.html"

	// NotAcceptable names the template listing variants for a 406 Not Acceptable response.
	NotAcceptable = "tmpl/not_acceptable.txt"
)

// Parser is the interface for parsing templates with the functions provided.
type Parser interface {
	AddFn(name string, fn any)
	Find(fps ...string) (string, error)
	Parse(fps ...string) (*html.Template, error)
	ParseText(fps ...string) (*text.Template, error)
	ReadFile(fp string) ([]byte, error)
}

// Parse implements Parser with a focus on utilizing embedded templates through fs.FS.
type Parse struct {
	fs  fs.FS
	fns html.FuncMap
}

// NewParser constructs a Parse with the provided functional options.
//
// Without WithFS, files are read from the current working directory.
// Either way, files missing from it are looked for among the embedded templates.
func NewParser(opts ...ParserOptFn) Parser {
	p := &Parse{fns: make(html.FuncMap)}
	for _, opt := range opts {
		opt(p)
	}

	userFS := p.fs
	if userFS == nil {
		userFS = os.DirFS(".")
	}

	p.fs = newMergeFS(userFS, pkgFS)

	return p
}

// Find returns the first of fps that exists.
// If none do, Find wraps ErrNotExist.
func (p *Parse) Find(fps ...string) (string, error) {
	fps = compact(fps)
	if len(fps) == 0 {
		return "", fmt.Errorf("%w", ErrNoFiles)
	}

	for _, fp := range fps {
		_, err := fs.Stat(p.fs, fp)
		if err == nil {
			return fp, nil
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}

	return "", fmt.Errorf("%w: %v", ErrNotExist, fps)
}

// Parse parses files found in the *Parse.fs as HTML with those functions provided previously.
// The first file names the returned template.
func (p *Parse) Parse(fps ...string) (*html.Template, error) {
	fps = compact(fps)
	if len(fps) == 0 {
		return nil, fmt.Errorf("%w", ErrNoFiles)
	}

	return html.New(path.Base(fps[0])).Funcs(p.fns).ParseFS(p.fs, fps...)
}

// ParseText parses files found in the *Parse.fs as plain text with those functions provided previously.
// The first file names the returned template.
func (p *Parse) ParseText(fps ...string) (*text.Template, error) {
	fps = compact(fps)
	if len(fps) == 0 {
		return nil, fmt.Errorf("%w", ErrNoFiles)
	}

	return text.New(path.Base(fps[0])).Funcs(text.FuncMap(p.fns)).ParseFS(p.fs, fps...)
}

// ReadFile reads the named file found in the *Parse.fs.
func (p *Parse) ReadFile(fp string) ([]byte, error) {
	if fp == "" {
		return nil, fmt.Errorf("%w", ErrNoFiles)
	}

	return fs.ReadFile(p.fs, fp)
}

// compact drops empty file paths.
func compact(fps []string) []string {
	kept := make([]string, 0, len(fps))
	for _, fp := range fps {
		if fp != "" {
			kept = append(kept, fp)
		}
	}

	return kept
}
