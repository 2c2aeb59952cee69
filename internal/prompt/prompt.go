// Package prompt reads validated answers from a line-oriented input stream.
// Every prompt re-asks until the answer is acceptable or input ends.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mobil-koeln/dispatch-cli/internal/output"
)

// ErrInputClosed is returned once the input stream has no more lines
var ErrInputClosed = errors.New("input closed")

// Unlimited disables the length check of String
const Unlimited = -1

// Prompter asks questions on out and reads the answers from in
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	colors  *output.Colors
}

// New creates a prompter. A nil colors disables coloring.
func New(in io.Reader, out io.Writer, colors *output.Colors) *Prompter {
	if colors == nil {
		colors = output.NewColors(output.ColorNever)
	}
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
		colors:  colors,
	}
}

// readLine prints msg and returns the next input line without its newline.
func (p *Prompter) readLine(msg string) (string, error) {
	_, _ = fmt.Fprintln(p.out, msg)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimRight(p.scanner.Text(), "\r"), nil
}

func (p *Prompter) errorf(format string, a ...interface{}) {
	_, _ = fmt.Fprintln(p.out, p.colors.Error(format, a...))
}

// String asks until a non-blank answer of at most maxLen runes is given.
// Pass Unlimited to skip the length check.
func (p *Prompter) String(msg string, maxLen int) (string, error) {
	for {
		input, err := p.readLine(msg)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(input) == "" {
			p.errorf("Invalid input. Please try again.")
			continue
		}
		if maxLen != Unlimited && utf8.RuneCountInString(input) > maxLen {
			p.errorf("Invalid input. Please enter a string with a maximum length of %d.", maxLen)
			continue
		}
		return input, nil
	}
}

// Int asks until an integer in [min, max] is given.
func (p *Prompter) Int(msg string, min, max int) (int, error) {
	for {
		input, err := p.String(msg, Unlimited)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil || n < min || n > max {
			p.errorf("Please enter a number between %d and %d.", min, max)
			continue
		}
		return n, nil
	}
}

// Confirm asks a yes/no question. Only "y" in any case counts as yes.
func (p *Prompter) Confirm(msg string) (bool, error) {
	input, err := p.String(msg, Unlimited)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(input), "y"), nil
}

// WaitForEnter blocks until the next line, whatever it contains.
func (p *Prompter) WaitForEnter() error {
	_, err := p.readLine(p.colors.Muted("Press enter to continue..."))
	return err
}
