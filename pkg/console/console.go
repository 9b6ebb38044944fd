package console

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	isatty "github.com/mattn/go-isatty"
)

var (
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)  // blue
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)  // green
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)  // yellow
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)   // red
	stylePrompt  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))             // blue
	styleDefault = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))             // green
	colorEnabled = true
)

// InitConsole configures color output based on the noColor flag and TTY detection.
func InitConsole(noColor bool) {
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	colorEnabled = tty && !noColor
}

func r(st lipgloss.Style, s string) string {
	if !colorEnabled {
		return s
	}
	return st.Render(s)
}

// Info returns a "[INFO] msg" line with a blue tag.
func Info(msg string) string {
	return r(styleInfo, "[INFO]") + " " + msg
}

// Success returns a "[SUCCESS] msg" line with a green tag.
func Success(msg string) string {
	return r(styleSuccess, "[SUCCESS]") + " " + msg
}

// Warning returns a "[WARNING] msg" line with a yellow tag.
func Warning(msg string) string {
	return r(styleWarn, "[WARNING]") + " " + msg
}

// Error returns a "[ERROR] msg" line with a red tag.
func Error(msg string) string {
	return r(styleError, "[ERROR]") + " " + msg
}

// Infof, Successf, Warningf and Errorf are the fmt.Sprintf variants.
func Infof(format string, a ...interface{}) string {
	return Info(fmt.Sprintf(format, a...))
}

func Successf(format string, a ...interface{}) string {
	return Success(fmt.Sprintf(format, a...))
}

func Warningf(format string, a ...interface{}) string {
	return Warning(fmt.Sprintf(format, a...))
}

func Errorf(format string, a ...interface{}) string {
	return Error(fmt.Sprintf(format, a...))
}

// PromptLabel styles the question part of an interactive prompt.
func PromptLabel(s string) string {
	return r(stylePrompt, s)
}

// DefaultValue styles the echoed default inside a prompt.
func DefaultValue(s string) string {
	return r(styleDefault, s)
}

// Rule returns the separator line used around banners and summaries.
func Rule() string {
	return strings.Repeat("=", 41)
}
