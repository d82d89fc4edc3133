package main

// Command selects the operation to run
type Command string

const (
	CommandAdd Command = "add"
)

// FrontMatterFormat selects the front matter syntax written into posts
type FrontMatterFormat string

const (
	FormatTOML FrontMatterFormat = "toml"
	FormatYAML FrontMatterFormat = "yaml"
)

// SiteConfig describes the Zola site being managed
type SiteConfig struct {
	Dir       string
	BaseURL   string
	OutputDir string
}

// Config is resolved once per invocation and not modified afterwards
type Config struct {
	Command     Command
	Site        SiteConfig
	FrontMatter FrontMatterFormat
	TagModel    string
}

// Post is the draft built up interactively
type Post struct {
	Title string
	Tags  []string
	Body  string
}

// PostStatus represents how far the pipeline got for a post
type PostStatus string

const (
	StatusWritten   PostStatus = "written"
	StatusBuilt     PostStatus = "built"
	StatusPublished PostStatus = "published"
)

// PostResult tracks the outcome of adding a post
type PostResult struct {
	Path   string
	Status PostStatus
	Post   Post
}
