package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/dmitrijs2005/gophtodo/internal/models"
)

// readPassword and isTerminal are test seams for the x/term calls.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetSimpleText prints prompt to w and reads one line from reader, trimmed.
// If EOF arrives after some input was read, the partial line is returned;
// otherwise io.EOF is.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints prompt to w and reads a password. When fd refers to a
// terminal the input is not echoed; otherwise a plain line is read from reader.
func GetPassword(reader *bufio.Reader, prompt string, w io.Writer, fd int) (string, error) {
	if fd < 0 || !isTerminal(fd) {
		return GetSimpleText(reader, prompt, w)
	}
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(pw)), nil
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) ask(prompt string) (string, error) {
	return GetSimpleText(a.reader, prompt, a.out)
}

// askRequired re-prompts until a non-blank answer is given.
func (a *App) askRequired(prompt string) (string, error) {
	return a.required(func() (string, error) { return a.ask(prompt) })
}

func (a *App) askPassword(prompt string) (string, error) {
	return a.required(func() (string, error) {
		return GetPassword(a.reader, prompt, a.out, a.passwordFd)
	})
}

func (a *App) required(read func() (string, error)) (string, error) {
	for {
		v, err := read()
		if err != nil {
			return "", err
		}
		if v != "" {
			return v, nil
		}
		a.fail("Value cannot be empty.")
	}
}

// askPriority re-prompts until a valid label is given. With allowBlank a
// blank answer returns nil, meaning "keep the current value".
func (a *App) askPriority(prompt string, allowBlank bool) (*models.Priority, error) {
	for {
		raw, err := a.ask(prompt)
		if err != nil {
			return nil, err
		}
		if allowBlank && raw == "" {
			return nil, nil
		}
		if p, err := models.ParsePriority(raw); err == nil {
			return &p, nil
		}
		a.fail("Invalid priority. Use HIGH, MID, or LOW.")
	}
}

// askStatus behaves like askPriority for status labels.
func (a *App) askStatus(prompt string, allowBlank bool) (*models.Status, error) {
	for {
		raw, err := a.ask(prompt)
		if err != nil {
			return nil, err
		}
		if allowBlank && raw == "" {
			return nil, nil
		}
		if s, err := models.ParseStatus(raw); err == nil {
			return &s, nil
		}
		a.fail("Invalid status. Use PENDING or COMPLETED.")
	}
}
