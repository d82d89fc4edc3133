package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Prompter reads answers to interactive questions one line at a time
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter reading from in and printing prompts to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadTitle asks for the post title. A blank answer is an error.
func (p *Prompter) ReadTitle() (string, error) {
	fmt.Fprintln(p.out, "\nEnter title:")
	fmt.Fprintln(p.out, "------------")

	line, err := p.readLine()
	if err != nil {
		return "", errors.Wrap(err, "reading title")
	}

	title := strings.TrimSpace(line)
	if title == "" {
		return "", ErrEmptyTitle
	}
	fmt.Fprintln(p.out)

	return title, nil
}

// ReadTags asks for comma separated tags, showing suggestions as a hint.
// A blank answer keeps current.
func (p *Prompter) ReadTags(suggestions, current []string) ([]string, error) {
	if len(suggestions) > 0 {
		fmt.Fprintf(p.out, "Enter tags [%s]:\n", strings.Join(suggestions, ", "))
	} else {
		fmt.Fprintln(p.out, "Enter tags (comma separated):")
	}
	fmt.Fprintln(p.out, "----------")

	line, err := p.readLine()
	if err != nil {
		return nil, errors.Wrap(err, "reading tags")
	}

	if strings.TrimSpace(line) == "" {
		return current, nil
	}
	return splitTags(line), nil
}

// readLine returns the next line without its terminator. EOF ends the line.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func splitTags(line string) []string {
	var tags []string
	for _, tag := range strings.Split(line, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
