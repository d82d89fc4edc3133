package main

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const editorEnv = "EDITOR"

// Editor collects free-form text by opening $EDITOR on a scratch file
type Editor struct {
	fs      afero.Fs
	runner  ProcessRunner
	getenv  func(string) string
	tempDir string
	log     *zap.Logger
}

// NewEditor creates an editor that keeps scratch files in tempDir
func NewEditor(fs afero.Fs, runner ProcessRunner, getenv func(string) string, tempDir string, log *zap.Logger) *Editor {
	return &Editor{
		fs:      fs,
		runner:  runner,
		getenv:  getenv,
		tempDir: tempDir,
		log:     log,
	}
}

// Compose writes seed to the scratch file for title, waits for the editor to
// exit and returns what the file holds afterwards. The scratch file is left
// in place.
func (e *Editor) Compose(title, seed string) (string, error) {
	editor := e.getenv(editorEnv)
	if editor == "" {
		return "", ErrEditorUnset
	}

	path := filepath.Join(e.tempDir, PostFileName(title))
	if err := afero.WriteFile(e.fs, path, []byte(seed), 0600); err != nil {
		return "", errors.Wrap(err, "creating scratch file")
	}

	e.log.Debug("opening editor", zap.String("editor", editor), zap.String("path", path))
	code, err := e.runner.Run(editor, []string{path}, "")
	if err != nil {
		return "", errors.Wrap(err, "opening editor")
	}
	if code != 0 {
		e.log.Debug("editor exited nonzero", zap.Int("code", code))
	}

	content, err := afero.ReadFile(e.fs, path)
	if err != nil {
		return "", errors.Wrap(err, "reading scratch file")
	}
	return string(content), nil
}
