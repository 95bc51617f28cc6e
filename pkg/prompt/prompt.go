package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Ensure Client implements ClientIFace
var _ ClientIFace = (*Client)(nil)

// ClientIFace is the operator's side of the terminal.
type ClientIFace interface {
	Ask(msg string) (string, error)
	AskSecret(msg string) (string, error)

	Info(format string, a ...any)
	Success(format string, a ...any)
	Warn(format string, a ...any)
	Fail(format string, a ...any)
}

type Client struct {
	in     *bufio.Reader
	inFd   int
	isTerm bool
	out    io.Writer

	success *color.Color
	warn    *color.Color
	fail    *color.Color
}

func New(in io.Reader, out io.Writer) *Client {
	c := &Client{
		in:      bufio.NewReader(in),
		inFd:    -1,
		out:     out,
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
	}

	if f, ok := in.(interface{ Fd() uintptr }); ok {
		c.inFd = int(f.Fd())
		c.isTerm = term.IsTerminal(c.inFd)
	}

	if !SupportsColor(out) {
		c.success.DisableColor()
		c.warn.DisableColor()
		c.fail.DisableColor()
	} else {
		c.success.EnableColor()
		c.warn.EnableColor()
		c.fail.EnableColor()
	}

	return c
}

// Ask writes msg and reads one line, trimmed of surrounding whitespace.
// An EOF after partial input returns that input without error.
func (c *Client) Ask(msg string) (string, error) {
	fmt.Fprint(c.out, msg)

	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskSecret is Ask without echo when input comes from a terminal.
func (c *Client) AskSecret(msg string) (string, error) {
	if !c.isTerm {
		return c.Ask(msg)
	}

	fmt.Fprint(c.out, msg)
	secret, err := term.ReadPassword(c.inFd)
	fmt.Fprintln(c.out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(secret)), nil
}

func (c *Client) Info(format string, a ...any) {
	fmt.Fprintf(c.out, format+"\n", a...)
}

func (c *Client) Success(format string, a ...any) {
	c.success.Fprintf(c.out, format+"\n", a...)
}

func (c *Client) Warn(format string, a ...any) {
	c.warn.Fprintf(c.out, format+"\n", a...)
}

func (c *Client) Fail(format string, a ...any) {
	c.fail.Fprintf(c.out, format+"\n", a...)
}

// SupportsColor reports whether w is a terminal that accepts ANSI colour codes.
// NO_COLOR and TERM=dumb disable colour.
func SupportsColor(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}

	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
