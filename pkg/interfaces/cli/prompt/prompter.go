package prompt

import (
	"bufio"
	"fmt"
	"io"
)

// Prompter reads answers line by line from in and writes prompts to out
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter creates a prompter over the given streams
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Out returns the writer prompts are written to
func (p *Prompter) Out() io.Writer {
	return p.out
}

// Printf writes formatted text to the output
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes a line to the output
func (p *Prompter) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// Line writes label and returns the next input line. It returns io.EOF once the
// input is exhausted.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		fmt.Fprintln(p.out)
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

// Ask prompts until parse accepts the input. Rejections are reported and the
// question is repeated; only read failures and end of input are returned.
func Ask[T any](p *Prompter, label string, parse Parser[T]) (T, error) {
	for {
		line, err := p.Line(label)
		if err != nil {
			var zero T
			return zero, err
		}

		value, err := parse(line)
		if err == nil {
			return value, nil
		}
		p.Printf("Invalid input: %v.\n", err)
	}
}
