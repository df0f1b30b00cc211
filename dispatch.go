package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/andareed/clipcmd/registry"
)

type clipboardIO interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// UnknownCommandError is returned for a token that is neither a command
// name nor a shortcut. Its message is also what lands on the clipboard.
type UnknownCommandError struct {
	Token string
}

func (e *UnknownCommandError) Error() string {
	return "Invalid command: " + e.Token
}

// dispatch applies the command registered under token to input.
// For an unknown token it returns the user-facing message together with
// an *UnknownCommandError.
func dispatch(reg *registry.Registry, token, input string, opts registry.Options) (string, error) {
	c, ok := reg.Lookup(token)
	if !ok {
		err := &UnknownCommandError{Token: token}
		return err.Error(), err
	}
	out, err := c.Fn(input, opts)
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.Name, err)
	}
	return out, nil
}

// run reads the clipboard, transforms it and writes the result back.
// Transformation failures leave the clipboard untouched; an unknown
// command still writes its message before the error is returned.
// When echo is non-nil the result is also printed there.
func run(reg *registry.Registry, token string, clip clipboardIO, opts registry.Options, echo io.Writer) error {
	text, err := clip.ReadAll()
	if err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	log.Printf("Run: command=%q input=%d bytes", token, len(text))

	out, err := dispatch(reg, token, text, opts)
	var unknown *UnknownCommandError
	if err != nil && !errors.As(err, &unknown) {
		return err
	}

	if werr := clip.WriteAll(out); werr != nil {
		return werr
	}
	if echo != nil {
		fmt.Fprintln(echo, out)
	}
	return err
}
