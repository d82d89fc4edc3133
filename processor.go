// processor.go
package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ProcessOptions toggles the optional pipeline stages
type ProcessOptions struct {
	SourceURL   string
	SuggestTags bool
	SkipBuild   bool
	SkipPublish bool
}

// PostProcessor runs the add-post workflow: resolve config, collect the
// post, write it, build the site and publish it. Every stage stops the
// workflow on failure.
type PostProcessor struct {
	resolver *Resolver
	prompter *Prompter
	editor   *Editor
	writer   *PostWriter
	runner   ProcessRunner
	fetcher  *ContentFetcher
	tagger   TagSuggester
	newAgent func(model string) (TagSuggester, error)
	options  ProcessOptions
	out      io.Writer
	log      *zap.Logger
	discover func(SiteConfig) []string
}

// Run executes the workflow for the command named in args
func (p *PostProcessor) Run(args []string) (*PostResult, error) {
	cfg, err := p.resolver.Resolve(args)
	if err != nil {
		return nil, err
	}
	p.log.Debug("resolved config",
		zap.String("command", string(cfg.Command)),
		zap.String("site_dir", cfg.Site.Dir),
		zap.String("base_url", cfg.Site.BaseURL),
		zap.String("output_dir", cfg.Site.OutputDir),
		zap.String("front_matter", string(cfg.FrontMatter)))

	switch cfg.Command {
	case CommandAdd:
		return p.addPost(cfg)
	default:
		return nil, errors.Wrapf(ErrInvalidCommand, "%q", cfg.Command)
	}
}

func (p *PostProcessor) addPost(cfg *Config) (*PostResult, error) {
	post, err := p.collect(cfg)
	if err != nil {
		return nil, err
	}

	path, err := p.writer.Write(cfg, *post)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(p.out, "\n> Successfully wrote to file:\n> %s\n\n", path)
	result := &PostResult{Path: path, Status: StatusWritten, Post: *post}

	if p.options.SkipBuild {
		p.log.Debug("skipping build")
	} else {
		if err := p.build(cfg); err != nil {
			return result, err
		}
		result.Status = StatusBuilt
	}

	if p.options.SkipPublish {
		p.log.Debug("skipping publish")
		return result, nil
	}
	if err := p.publish(cfg, *post); err != nil {
		return result, err
	}
	result.Status = StatusPublished

	return result, nil
}

// collect gathers title, body and tags in that order
func (p *PostProcessor) collect(cfg *Config) (*Post, error) {
	post := &Post{}

	title, err := p.prompter.ReadTitle()
	if err != nil {
		return nil, err
	}
	post.Title = title

	seed, err := p.seed()
	if err != nil {
		return nil, err
	}

	body, err := p.editor.Compose(post.Title, seed)
	if err != nil {
		return nil, err
	}
	post.Body = body

	suggestions := p.suggestTags(cfg, *post)
	tags, err := p.prompter.ReadTags(suggestions, post.Tags)
	if err != nil {
		return nil, err
	}
	post.Tags = tags

	return post, nil
}

// seed fetches the source URL, if any, to pre-fill the editor
func (p *PostProcessor) seed() (string, error) {
	if p.options.SourceURL == "" {
		return "", nil
	}
	fmt.Fprintf(p.out, "  → Fetching %s...\n", p.options.SourceURL)
	content, err := p.fetcher.FetchContent(p.options.SourceURL)
	if err != nil {
		return "", errors.Wrap(err, "fetching source")
	}
	return content.Text, nil
}

// suggestTags combines published tags with agent suggestions. Suggestion
// failures are logged and ignored.
func (p *PostProcessor) suggestTags(cfg *Config, post Post) []string {
	known := p.discover(cfg.Site)
	p.log.Debug("discovered tags", zap.Strings("tags", known))

	if !p.options.SuggestTags {
		return known
	}

	tagger := p.tagger
	if tagger == nil {
		var err error
		tagger, err = p.newAgent(cfg.TagModel)
		if err != nil {
			p.log.Warn("tag suggestions disabled", zap.Error(err))
			return known
		}
	}

	fmt.Fprintln(p.out, "  → Suggesting tags...")
	suggested, err := tagger.SuggestTags(post, known)
	if err != nil {
		p.log.Warn("tag suggestions failed", zap.Error(err))
		return known
	}
	p.log.Debug("suggested tags", zap.Strings("tags", suggested))

	return mergeTags(suggested, known)
}

func (p *PostProcessor) build(cfg *Config) error {
	fmt.Fprintln(p.out, "> Building site...")
	return p.step("zola build", "zola", []string{"build"}, cfg.Site.Dir)
}

func (p *PostProcessor) publish(cfg *Config, post Post) error {
	if err := p.step("git add", "git", []string{"add", "-A"}, cfg.Site.Dir); err != nil {
		return err
	}

	message := fmt.Sprintf("New post: %q", post.Title)
	if err := p.step("git commit", "git", []string{"commit", "-m", message}, cfg.Site.Dir); err != nil {
		return err
	}

	if cfg.Site.BaseURL != "" {
		fmt.Fprintf(p.out, "\n> Changes to be published at: %s\n", cfg.Site.BaseURL)
	}

	return p.step("git push", "git", []string{"push"}, cfg.Site.Dir)
}

// step runs one external command and turns a nonzero exit into a StepError
func (p *PostProcessor) step(label, name string, args []string, dir string) error {
	p.log.Debug("running", zap.String("cmd", name), zap.Strings("args", args), zap.String("dir", dir))

	code, err := p.runner.Run(name, args, dir)
	if err != nil {
		return errors.Wrapf(err, "%s failed", label)
	}
	if code != 0 {
		return &StepError{Step: label, Code: code}
	}
	return nil
}
