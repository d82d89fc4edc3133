package main

import (
	"bytes"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// localDate is a calendar date written as a bare TOML local date
type localDate string

func (d localDate) MarshalTOML() ([]byte, error) {
	return []byte(d), nil
}

type taxonomies struct {
	Tags []string `toml:"tags" yaml:"tags"`
}

type tomlFrontMatter struct {
	Title      string      `toml:"title"`
	Date       localDate   `toml:"date"`
	Taxonomies *taxonomies `toml:"taxonomies,omitempty"`
}

type yamlFrontMatter struct {
	Title      string      `yaml:"title"`
	Date       string      `yaml:"date"`
	Taxonomies *taxonomies `yaml:"taxonomies,omitempty"`
}

// renderFrontMatter returns the delimited metadata block that starts a post,
// followed by a blank line
func renderFrontMatter(format FrontMatterFormat, post Post, date time.Time) ([]byte, error) {
	var tax *taxonomies
	if len(post.Tags) > 0 {
		tax = &taxonomies{Tags: post.Tags}
	}
	day := date.Format(dateLayout)

	var buf bytes.Buffer
	switch format {
	case FormatYAML:
		buf.WriteString("---\n")
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(yamlFrontMatter{Title: post.Title, Date: day, Taxonomies: tax}); err != nil {
			return nil, errors.Wrap(err, "encoding YAML front matter")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, "encoding YAML front matter")
		}
		buf.WriteString("---\n\n")
	case FormatTOML, "":
		buf.WriteString("+++\n")
		enc := toml.NewEncoder(&buf)
		enc.Indent = ""
		if err := enc.Encode(tomlFrontMatter{Title: post.Title, Date: localDate(day), Taxonomies: tax}); err != nil {
			return nil, errors.Wrap(err, "encoding TOML front matter")
		}
		buf.WriteString("+++\n\n")
	default:
		return nil, errors.Errorf("unknown front matter format %q", format)
	}

	return buf.Bytes(), nil
}
