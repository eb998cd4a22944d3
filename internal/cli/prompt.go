package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNoInput is returned when stdin ends before an answer was read.
var ErrNoInput = errors.New("no input")

// Prompter asks the user for values.
type Prompter interface {
	// Line reads one line of visible input.
	Line(label string) (string, error)

	// Secret reads one line without echo when stdin is a terminal.
	Secret(label string) (string, error)
}

type terminalPrompter struct {
	reader   *bufio.Reader
	out      io.Writer
	fd       int
	terminal bool
}

// NewPrompter reads answers from in and writes labels to out. Echo is
// disabled for secrets only when in is a terminal; piped input is read line
// by line.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	p := &terminalPrompter{reader: bufio.NewReader(in), out: out}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
		p.terminal = true
	}
	return p
}

func (p *terminalPrompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *terminalPrompter) Secret(label string) (string, error) {
	fmt.Fprint(p.out, label)

	if p.terminal {
		b, err := term.ReadPassword(p.fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		return string(b), nil
	}

	return p.readLine()
}

func (p *terminalPrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", ErrNoInput
		}
		err = nil
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// confirm asks a yes/no question; only an explicit yes counts.
func confirm(p Prompter, question string) (bool, error) {
	answer, err := p.Line(question + " [y/N]: ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
