package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter supplies one operator-entered value per labeled request. The
// collection flow only ever talks to this interface, so tests can replace
// the terminal with a scripted source.
type Prompter interface {
	Ask(label string) (string, error)
}

// Terminal prompts on out and blocks reading one line from in. There is no
// timeout and no cancellation short of the process ending; the whole setup
// flow is operator-attended.
type Terminal struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewTerminal creates a Terminal over the given streams.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewScanner(in), out: out}
}

// Ask prints the label and returns the next input line, surrounding
// whitespace stripped. Empty input is returned as-is.
func (t *Terminal) Ask(label string) (string, error) {
	fmt.Fprintf(t.out, "%s: ", label)
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(t.in.Text()), nil
}

// Script replays a fixed sequence of answers. Asking past the end is a
// test bug and returns an error naming the unanswered label.
type Script struct {
	answers []string
	next    int
}

// NewScript creates a Script over the given answers.
func NewScript(answers ...string) *Script {
	return &Script{answers: answers}
}

// Ask returns the next scripted answer.
func (s *Script) Ask(label string) (string, error) {
	if s.next >= len(s.answers) {
		return "", fmt.Errorf("script exhausted, no answer for %q", label)
	}
	answer := s.answers[s.next]
	s.next++
	return answer, nil
}

// Remaining reports how many scripted answers were never consumed.
func (s *Script) Remaining() int {
	return len(s.answers) - s.next
}
