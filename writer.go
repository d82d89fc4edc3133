package main

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

const contentDir = "content"

// PostFileName derives the file name of a post from its title: lowercased,
// spaces replaced with hyphens, with a .md suffix. Titles that differ only in
// case or spacing map to the same name.
func PostFileName(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "-") + ".md"
}

// PostWriter persists posts into a site's content directory
type PostWriter struct {
	fs  afero.Fs
	now func() time.Time
}

// NewPostWriter creates a writer stamping posts with dates from now
func NewPostWriter(fs afero.Fs, now func() time.Time) *PostWriter {
	return &PostWriter{fs: fs, now: now}
}

// PostPath returns where post will be written for cfg
func PostPath(cfg *Config, post Post) string {
	return filepath.Join(cfg.Site.Dir, contentDir, PostFileName(post.Title))
}

// Write renders post with its front matter and replaces any file at the
// target path. It returns the path written.
func (w *PostWriter) Write(cfg *Config, post Post) (string, error) {
	path := PostPath(cfg, post)

	frontMatter, err := renderFrontMatter(cfg.FrontMatter, post, w.now())
	if err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	content := append(frontMatter, post.Body...)

	if err := w.writeAtomic(path, content); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	return path, nil
}

// writeAtomic writes data to a temp file next to path and renames it into place
func (w *PostWriter) writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := w.fs.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := afero.TempFile(w.fs, dir, ".soup-*.md")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		w.fs.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		w.fs.Remove(tmpName)
		return err
	}
	if err := w.fs.Chmod(tmpName, 0644); err != nil {
		w.fs.Remove(tmpName)
		return err
	}
	if err := w.fs.Rename(tmpName, path); err != nil {
		w.fs.Remove(tmpName)
		return err
	}
	return nil
}
