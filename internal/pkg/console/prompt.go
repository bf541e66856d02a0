// Package console reads line-oriented answers from an interactive user.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yigit/hostel/internal/pkg/apperrors"
)

// Prompt asks questions on out and reads one line per answer from in
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompt creates a prompt over the given streams
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Out returns the writer answers are prompted on
func (p *Prompt) Out() io.Writer {
	return p.out
}

// Println writes a line to the output
func (p *Prompt) Println(a ...interface{}) {
	fmt.Fprintln(p.out, a...)
}

// ReadLine reads one line without its line terminator.
// io.EOF is returned only when no further input exists.
func (p *Prompt) ReadLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ask prints question on its own line and reads the answer
func (p *Prompt) Ask(question string) (string, error) {
	p.Println(question)
	return p.ReadLine()
}

// AskInline prints question without a newline and reads the answer
func (p *Prompt) AskInline(question string) (string, error) {
	fmt.Fprint(p.out, question)
	return p.ReadLine()
}

// AskInt asks for an integer. A non-numeric answer yields ErrInvalidNumber.
func (p *Prompt) AskInt(question string) (int, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return 0, err
	}
	return ParseInt(answer)
}

// ParseInt converts a trimmed answer to an integer
func ParseInt(answer string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, apperrors.ErrInvalidNumber
	}
	return n, nil
}
