package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Deps are the capabilities the workflow uses from the outside world
type Deps struct {
	Fs      afero.Fs
	Getenv  func(string) string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Runner  ProcessRunner
	Now     func() time.Time
	TempDir string
	// Tagger overrides the agent built from the API key when set
	Tagger TagSuggester
}

// Flags holds command-line flag values
type Flags struct {
	ConfigPath  string
	SourceURL   string
	APIKey      string
	SuggestTags bool
	NoBuild     bool
	NoPublish   bool
	Debug       bool
}

// NewPostProcessor wires a PostProcessor from deps and flags
func NewPostProcessor(deps Deps, flags Flags, log *zap.Logger) *PostProcessor {
	overrides := &ConfigOverrides{}
	if flags.ConfigPath != "" {
		overrides.LocalConfigPath = &flags.ConfigPath
	}

	apiKey := flags.APIKey
	if apiKey == "" {
		apiKey = deps.Getenv("ANTHROPIC_API_KEY")
	}

	return &PostProcessor{
		resolver: NewResolver(deps.Fs, deps.Getenv, overrides),
		prompter: NewPrompter(deps.Stdin, deps.Stdout),
		editor:   NewEditor(deps.Fs, deps.Runner, deps.Getenv, deps.TempDir, log),
		writer:   NewPostWriter(deps.Fs, deps.Now),
		runner:   deps.Runner,
		fetcher:  NewContentFetcher(),
		tagger:   deps.Tagger,
		newAgent: func(model string) (TagSuggester, error) {
			return NewAgentTagger(apiKey, model)
		},
		options: ProcessOptions{
			SourceURL:   flags.SourceURL,
			SuggestTags: flags.SuggestTags,
			SkipBuild:   flags.NoBuild,
			SkipPublish: flags.NoPublish,
		},
		out: deps.Stdout,
		log: log,
		discover: func(site SiteConfig) []string {
			return DiscoverTags(deps.Fs, site)
		},
	}
}

// reportedError marks an error already described to the user
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// newRootCmd builds the soup command around deps
func newRootCmd(deps Deps) *cobra.Command {
	var flags Flags

	cmd := &cobra.Command{
		Use:   "soup [command]",
		Short: "Add a post to a Zola site",
		Long: `soup adds a post to a Zola site: it asks for a title, opens $EDITOR for the
body, asks for tags, writes the post into the site's content directory,
builds the site and publishes it with git.

Commands:
  add      Adds a new post (default)`,
		ValidArgs:     []string{string(CommandAdd)},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(flags.Debug, deps.Stderr)
			defer log.Sync()

			processor := NewPostProcessor(deps, flags, log)
			_, err := processor.Run(args)
			if err != nil {
				var bootstrap func() (string, error)
				if processor.resolver.IsLocalConfigMissing(err) {
					bootstrap = processor.resolver.EnsureLocalConfig
				}
				describeError(deps.Stdout, deps.Stderr, err, bootstrap)
				return &reportedError{err}
			}
			return nil
		},
	}

	cmd.SetIn(deps.Stdin)
	cmd.SetOut(deps.Stdout)
	cmd.SetErr(deps.Stderr)

	cmd.Flags().StringVar(&flags.ConfigPath, "config", "", "Path to the soup config file (default $HOME/.config/soup.cfg)")
	cmd.Flags().StringVar(&flags.SourceURL, "from-url", "", "Pre-fill the post body with the page at this URL")
	cmd.Flags().BoolVar(&flags.SuggestTags, "suggest-tags", false, "Ask an Anthropic model for tag suggestions")
	cmd.Flags().StringVar(&flags.APIKey, "api-key", "", "Anthropic API key (default $ANTHROPIC_API_KEY)")
	cmd.Flags().BoolVar(&flags.NoBuild, "no-build", false, "Do not run zola build")
	cmd.Flags().BoolVar(&flags.NoPublish, "no-publish", false, "Do not commit and push")
	cmd.Flags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")

	return cmd
}

func main() {
	deps := Deps{
		Fs:      afero.NewOsFs(),
		Getenv:  os.Getenv,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Runner:  &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr},
		Now:     time.Now,
		TempDir: os.TempDir(),
	}

	if err := newRootCmd(deps).Execute(); err != nil {
		if !errors.As(err, new(*reportedError)) {
			fmt.Fprintf(os.Stderr, "[Error]: %v\n", err)
		}
		os.Exit(1)
	}
}
