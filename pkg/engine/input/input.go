// Package input reads keystrokes from the terminal and maps them to
// high level game intents. Terminal reads happen in raw mode so single
// keys and arrow escape sequences arrive without a trailing Enter.
package input

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"
)

var stdinReader *bufio.Reader

// GetLine reads a full line of input from stdin, without raw mode.
// Used by menus that want typed text rather than single keys.
func GetLine() string {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}

	line, err := stdinReader.ReadString('\n')
	if err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
		return ""
	}

	return strings.Trim(line, "\r\n")
}

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow code if successful, empty string otherwise.
func tryReadArrowKey(firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}

	b2, err := readByte()
	if err != nil {
		return ""
	}

	// CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 == '[' || b2 == 'O' {
		b3, err := readByte()
		if err != nil {
			return ""
		}

		switch b3 {
		case 'A':
			return "arrow_up"
		case 'B':
			return "arrow_down"
		case 'C':
			return "arrow_right"
		case 'D':
			return "arrow_left"
		}
	}

	return ""
}

// ReadKey reads a single keypress from stdin in raw mode and returns
// its code: "arrow_up" style codes for arrows, "enter" for Enter,
// "escape" for a bare Escape, otherwise the lowercase character
// itself. Ctrl+C exits the process after restoring the terminal.
func ReadKey() string {
	stdinReader = nil

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	b, err := readByte()
	if err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
		return ""
	}

	if b == 0x1b {
		if arrow := tryReadArrowKey(b); arrow != "" {
			return arrow
		}
		return "escape"
	}

	switch {
	case b == 3:
		term.Restore(int(os.Stdin.Fd()), oldState)
		fmt.Println()
		os.Exit(0)
	case b == '\n' || b == '\r':
		return "enter"
	case b == 127 || b == 8:
		return "backspace"
	case b >= 'A' && b <= 'Z':
		return string(rune(b + 32))
	case b >= 32 && b < 127:
		return string(rune(b))
	}

	return ""
}
