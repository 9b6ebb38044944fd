package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/console"
)

// Prompter drives line-oriented interaction on an injected reader/writer
// pair so the prompt flow can be exercised with scripted input.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// NewStdio returns a prompter bound to the process terminal.
func NewStdio() *Prompter {
	return New(os.Stdin, os.Stdout)
}

// Say writes each line followed by a newline.
func (p *Prompter) Say(lines ...string) {
	for _, l := range lines {
		fmt.Fprintln(p.out, l)
	}
}

// Sayf writes a single formatted line.
func (p *Prompter) Sayf(format string, a ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", a...)
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Line prints a bare label and returns the trimmed answer.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s ", console.PromptLabel(label))
	return p.readLine()
}

// String prompts with a default that is used when the answer is empty.
func (p *Prompter) String(label, def string) (string, error) {
	fmt.Fprintf(p.out, "%s [default: %s]: ", console.PromptLabel(label), console.DefaultValue(def))
	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// YesNo prompts for a yes/no answer, re-prompting until the answer is one of
// y/yes/n/no or empty (which takes the default).
func (p *Prompter) YesNo(label string, def bool) (bool, error) {
	defStr := "n"
	if def {
		defStr = "y"
	}
	for {
		fmt.Fprintf(p.out, "%s [y/n, default: %s]: ", console.PromptLabel(label), console.DefaultValue(defStr))
		answer, err := p.readLine()
		if err != nil {
			return false, err
		}
		if answer == "" {
			answer = defStr
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer yes (y) or no (n).")
	}
}

// Choice prompts for a 1-based menu index, re-prompting on anything outside
// 1..n. It never falls back to a default.
func (p *Prompter) Choice(label string, n int) (int, error) {
	for {
		fmt.Fprintf(p.out, "%s ", console.PromptLabel(label))
		answer, err := p.readLine()
		if err != nil {
			return 0, err
		}
		idx, convErr := strconv.Atoi(answer)
		if convErr == nil && idx >= 1 && idx <= n {
			return idx, nil
		}
		p.Say(console.Errorf("Invalid choice. Please enter 1-%d.", n))
	}
}
