package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidNumber is returned when an integer was expected but not typed.
var ErrInvalidNumber = errors.New("invalid number")

// Prompter asks questions on w and reads one line of answer per question from r.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

// New creates a Prompter.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// Line prints label and returns the next input line without its line ending.
// A final line without a newline is accepted; end of input before any text is
// an error.
func (p *Prompter) Line(label string) (string, error) {
	if _, err := fmt.Fprint(p.w, label); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}
	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Int prints label and parses the answer as a base-10 integer.
func (p *Prompter) Int(label string) (int, error) {
	s, err := p.Line(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return n, nil
}
