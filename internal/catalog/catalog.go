// Package catalog loads and validates the question catalog that drives the
// assessment wizard. The catalog is static configuration: sections of
// questions, each with an ordered list of option key/label pairs. The
// scoring engine trusts that option keys match the literal values its rules
// compare against, so validation here is the place that catches drift.
package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	embedded "github.com/ironclad-sec/netbaseline/catalog"
	"github.com/ironclad-sec/netbaseline/internal/answers"
	"github.com/ironclad-sec/netbaseline/internal/scoring"
)

// Option is one selectable answer for a question.
type Option struct {
	Key   string `yaml:"key" json:"key"`
	Label string `yaml:"label" json:"label"`
}

// Question is a single multiple-choice question.
type Question struct {
	ID      string   `yaml:"id" json:"id"`
	Prompt  string   `yaml:"prompt" json:"prompt"`
	Scored  bool     `yaml:"scored" json:"scored"`
	Options []Option `yaml:"options" json:"options"`
}

// HasOption reports whether the question offers the given option key.
func (q *Question) HasOption(key string) bool {
	for _, o := range q.Options {
		if o.Key == key {
			return true
		}
	}
	return false
}

// Section groups related questions.
type Section struct {
	ID        string     `yaml:"id" json:"id"`
	Title     string     `yaml:"title" json:"title"`
	Questions []Question `yaml:"questions" json:"questions"`
}

// Catalog is the full questionnaire.
type Catalog struct {
	Sections []Section `yaml:"sections" json:"sections"`
}

// file is the on-disk YAML document shape.
type file struct {
	Sections []Section `yaml:"sections"`
}

// Load reads all catalog YAML files from a directory, merging their
// sections in file-name order.
func Load(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading catalog directory %s: %w", dir, err)
	}

	var c Catalog
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading catalog file %s: %w", e.Name(), err)
		}
		if err := appendFile(&c, data, e.Name()); err != nil {
			return nil, err
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validating catalog from %s: %w", dir, err)
	}
	return &c, nil
}

// Default parses the built-in catalog embedded in the binary.
func Default() (*Catalog, error) {
	var c Catalog
	err := fs.WalkDir(embedded.Embedded, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := embedded.Embedded.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading embedded catalog %s: %w", path, err)
		}
		return appendFile(&c, data, path)
	})
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validating built-in catalog: %w", err)
	}
	return &c, nil
}

func appendFile(c *Catalog, data []byte, name string) error {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing catalog file %s: %w", name, err)
	}
	c.Sections = append(c.Sections, f.Sections...)
	return nil
}

// Validate checks structural invariants: unique non-empty question IDs,
// at least two options per question, a NOT_SURE sentinel on every scored
// question, and presence of every question the engine requires.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool)
	for _, s := range c.Sections {
		for i := range s.Questions {
			q := &s.Questions[i]
			if q.ID == "" {
				return fmt.Errorf("section %s: question with empty ID", s.ID)
			}
			if seen[q.ID] {
				return fmt.Errorf("duplicate question ID %s", q.ID)
			}
			seen[q.ID] = true
			if len(q.Options) < 2 {
				return fmt.Errorf("question %s: needs at least two options", q.ID)
			}
			if q.Scored && !q.HasOption(answers.OptNotSure) {
				return fmt.Errorf("question %s: scored questions must offer a %s option", q.ID, answers.OptNotSure)
			}
		}
	}

	var missing []string
	for _, qid := range scoring.RequiredQuestions {
		if !seen[qid] {
			missing = append(missing, qid)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("catalog is missing required scored questions: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Find returns the question with the given ID, or nil.
func (c *Catalog) Find(qid string) *Question {
	for si := range c.Sections {
		for qi := range c.Sections[si].Questions {
			if c.Sections[si].Questions[qi].ID == qid {
				return &c.Sections[si].Questions[qi]
			}
		}
	}
	return nil
}

// Questions returns all questions in catalog order.
func (c *Catalog) Questions() []Question {
	var qs []Question
	for _, s := range c.Sections {
		qs = append(qs, s.Questions...)
	}
	return qs
}
