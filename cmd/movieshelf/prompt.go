package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

// stdinPrompter asks the user for fallback field values when metadata is
// unusable. It satisfies normalize.Prompter.
type stdinPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// newInteractivePrompter returns a prompter bound to the terminal, or nil
// when stdin is not a tty. A nil prompter makes unusable metadata fields
// hard errors instead of hanging a non-interactive invocation.
func newInteractivePrompter() *stdinPrompter {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return nil
	}
	return &stdinPrompter{in: bufio.NewReader(os.Stdin), out: os.Stderr}
}

func (p *stdinPrompter) Year(min, max int) (int, error) {
	for {
		fmt.Fprintf(p.out, "Year unavailable from OMDb. Enter release year (%d-%d): ", min, max)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(line)
		if err != nil || value < min || value > max {
			fmt.Fprintf(p.out, "Please enter a whole number between %d and %d.\n", min, max)
			continue
		}
		return value, nil
	}
}

func (p *stdinPrompter) Rating(min, max float64) (float64, error) {
	for {
		fmt.Fprintf(p.out, "Rating unavailable from OMDb. Enter rating (%.1f-%.1f): ", min, max)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseFloat(line, 64)
		if err != nil || value < min || value > max {
			fmt.Fprintf(p.out, "Please enter a number between %.1f and %.1f.\n", min, max)
			continue
		}
		return value, nil
	}
}

func (p *stdinPrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", errors.New("input closed")
	}
	return strings.TrimSpace(line), nil
}
