// Package console implements the interactive terminal front end.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/example/starlanes/internal/session"
	"github.com/example/starlanes/internal/store"
)

// FrontEnd renders the game on a terminal and reads keyboard input. It
// implements session.FrontEnd.
type FrontEnd struct {
	input  session.Input
	output session.Output
	lines  *lineReader
	store  store.SessionStore
	// sessionKey identifies the saved session in the store; the file store
	// ignores it.
	sessionKey string
}

// New builds a console front end reading in, writing out and persisting
// through sessions.
func New(in io.Reader, out io.Writer, sessions store.SessionStore, sessionKey string) *FrontEnd {
	lines := &lineReader{scanner: bufio.NewScanner(in)}
	output := &writerOutput{w: out}
	return &FrontEnd{
		input:      &stdinInput{lines: lines, output: output},
		output:     output,
		lines:      lines,
		store:      sessions,
		sessionKey: sessionKey,
	}
}

// Input returns the keyboard input source.
func (f *FrontEnd) Input() session.Input {
	return f.input
}

// RetrievePersistedSession loads the saved session blob, or nil when there
// is none.
func (f *FrontEnd) RetrievePersistedSession() []byte {
	data, err := f.store.Load(context.Background(), f.sessionKey)
	if err != nil {
		if err != store.ErrNoSession {
			log.Printf("loading saved session: %v", err)
		}
		return nil
	}
	return data
}

// PersistSession stores the session blob. Saving is best effort; a failed
// save never interrupts play.
func (f *FrontEnd) PersistSession(data []byte) {
	if err := f.store.Save(context.Background(), f.sessionKey, data); err != nil {
		log.Printf("saving session: %v", err)
	}
}

// lineReader reads whole keyboard lines. Prompt loops share one scanner so
// no input is lost between prompts.
type lineReader struct {
	scanner *bufio.Scanner
}

// readLine returns the next line without its terminator. On EOF it returns
// false; prompt loops treat that as an empty answer forever after, so hosts
// should not run interactive games against closed inputs.
func (r *lineReader) readLine() (string, bool) {
	if !r.scanner.Scan() {
		return "", false
	}
	return r.scanner.Text(), true
}

// writerOutput adapts an io.Writer to session.Output.
type writerOutput struct {
	w io.Writer
}

func (o *writerOutput) Newline() {
	fmt.Fprintln(o.w)
}

func (o *writerOutput) Println(s string) {
	fmt.Fprintln(o.w, s)
}

func (o *writerOutput) Print(s string) {
	fmt.Fprint(o.w, s)
}

// stdinInput is the human implementation of session.Input: prompt, read a
// line, retry until valid.
type stdinInput struct {
	lines  *lineReader
	output session.Output
}

func (s *stdinInput) ReadYesNo(output session.Output) string {
	for {
		output.Print("? ")
		line, ok := s.lines.readLine()
		if !ok {
			return "N"
		}
		switch strings.TrimSpace(line) {
		case "Y", "y":
			return "Y"
		case "N", "n":
			return "N"
		}
	}
}

func (s *stdinInput) ReadInt(output session.Output, min, max int) int {
	for {
		output.Print("? ")
		line, ok := s.lines.readLine()
		if !ok {
			return min
		}
		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && value >= min && value <= max {
			return value
		}
	}
}
