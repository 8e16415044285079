// Package console reads interactive answers with defaults.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// Ask prints label and returns the trimmed answer, or def when the answer is
// empty or input is exhausted.
func (p *Prompter) Ask(label, def string) string {
	fmt.Fprint(p.w, label)
	line, err := p.r.ReadString('\n')
	if err != nil && line == "" {
		return def
	}
	if s := strings.TrimSpace(line); s != "" {
		return s
	}
	return def
}

// AskInt is Ask for integer answers.
func (p *Prompter) AskInt(label string, def int) (int, error) {
	s := p.Ask(label, "")
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	return n, nil
}
