package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// Prompter asks the user a single-line question and returns the trimmed answer
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// LinePrompter asks through the REPL's line editor so answers share its
// editing keys. Answers are not added to history.
type LinePrompter struct {
	state *liner.State
}

// NewLinePrompter creates a LinePrompter on an open liner state
func NewLinePrompter(state *liner.State) *LinePrompter {
	return &LinePrompter{state: state}
}

// Prompt implements Prompter
func (p *LinePrompter) Prompt(prompt string) (string, error) {
	answer, err := p.state.Prompt(prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// ReaderPrompter reads answers line by line from a reader
type ReaderPrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewReaderPrompter creates a ReaderPrompter writing questions to out
func NewReaderPrompter(in io.Reader, out io.Writer) *ReaderPrompter {
	return &ReaderPrompter{reader: bufio.NewReader(in), out: out}
}

// Prompt implements Prompter. A final line without newline is still returned.
func (p *ReaderPrompter) Prompt(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	answer, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || answer == "") {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// Confirm asks a yes/no question. Only "y" and "yes" (any case) confirm.
func Confirm(p Prompter, prompt string) (bool, error) {
	answer, err := p.Prompt(prompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes"), nil
}
