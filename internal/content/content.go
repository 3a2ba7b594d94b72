// Package content holds the static copy of the landing page. The defaults
// are embedded; a YAML file with the same shape can replace them.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultSite []byte

// Site is everything the landing page displays apart from the editor
type Site struct {
	Brand    string    `yaml:"brand"`
	Title    string    `yaml:"title"`
	Lang     string    `yaml:"lang"`
	Nav      []Link    `yaml:"nav"`
	Hero     Hero      `yaml:"hero"`
	Features []Feature `yaml:"features"`
	Editor   Editor    `yaml:"editor"`
	Projects Projects  `yaml:"projects"`
	FAQ      FAQ       `yaml:"faq"`
	Footer   Footer    `yaml:"footer"`
}

// Link is a navigation or footer link; Icon names a footer icon
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
	Icon  string `yaml:"icon"`
}

// Hero is the headline block with its two call-to-action labels
type Hero struct {
	Badge           string `yaml:"badge"`
	Title           string `yaml:"title"`
	Subtitle        string `yaml:"subtitle"`
	PrimaryAction   string `yaml:"primaryAction"`
	SecondaryAction string `yaml:"secondaryAction"`
}

// Feature is one of the cards under the hero
type Feature struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Editor holds the labels around the code editor
type Editor struct {
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`
	ExportLabel string `yaml:"exportLabel"`
	LinesLabel  string `yaml:"linesLabel"`
	CharsLabel  string `yaml:"charsLabel"`
}

// Projects is the template gallery section
type Projects struct {
	Title     string     `yaml:"title"`
	Subtitle  string     `yaml:"subtitle"`
	Templates []Template `yaml:"templates"`
}

// Template is a project template card. Language is a display tag, not an
// editor language.
type Template struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Language    string `yaml:"language"`
	Icon        string `yaml:"icon"`
}

// FAQ is the questions section
type FAQ struct {
	Title    string     `yaml:"title"`
	Subtitle string     `yaml:"subtitle"`
	Entries  []FAQEntry `yaml:"entries"`
}

// FAQEntry is a question with a Markdown answer
type FAQEntry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Footer holds the copyright line and social links
type Footer struct {
	Copyright string `yaml:"copyright"`
	Links     []Link `yaml:"links"`
}

// Default returns the embedded content. It panics if the embedded file is
// broken, which only a bad build can cause.
func Default() *Site {
	site, err := Parse(defaultSite)
	if err != nil {
		panic(fmt.Sprintf("content: embedded site.yaml: %v", err))
	}
	return site
}

// Load reads content from path, or returns the defaults when path is empty.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}
	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return site, nil
}

// Parse decodes and validates YAML content. Unknown keys are rejected.
func Parse(data []byte) (*Site, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var site Site
	if err := dec.Decode(&site); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Validate checks the fields the page cannot render without.
func (s *Site) Validate() error {
	var errs []error
	if strings.TrimSpace(s.Brand) == "" {
		errs = append(errs, errors.New("brand is required"))
	}
	if len(s.Projects.Templates) == 0 {
		errs = append(errs, errors.New("at least one project template is required"))
	}
	for i, tpl := range s.Projects.Templates {
		if strings.TrimSpace(tpl.Title) == "" {
			errs = append(errs, fmt.Errorf("projects.templates[%d]: title is required", i))
		}
	}
	for i, e := range s.FAQ.Entries {
		if strings.TrimSpace(e.Question) == "" {
			errs = append(errs, fmt.Errorf("faq.entries[%d]: question is required", i))
		}
	}
	return errors.Join(errs...)
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.Typographer))

// AnswerHTML renders the entry's Markdown answer. Raw HTML in the source is
// dropped by goldmark's default renderer.
func (e FAQEntry) AnswerHTML() (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(e.Answer), &buf); err != nil {
		return "", fmt.Errorf("failed to render answer to %q: %w", e.Question, err)
	}
	return strings.TrimSpace(buf.String()), nil
}
