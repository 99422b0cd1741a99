package input

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// KeyReader reads single key-down events from a terminal in raw mode.
type KeyReader struct {
	fd       int
	oldState *term.State
	reader   *bufio.Reader
}

// OpenKeyReader puts f into raw mode. Close must be called to restore it.
func OpenKeyReader(f *os.File) (*KeyReader, error) {
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	return &KeyReader{
		fd:       fd,
		oldState: oldState,
		reader:   bufio.NewReader(f),
	}, nil
}

// ReadKey blocks until a key is pressed and returns its code. Unknown escape
// sequences are returned as an empty code.
func (r *KeyReader) ReadKey() (string, error) {
	return readKey(r.reader)
}

// Close restores the terminal state. It is safe to call more than once.
func (r *KeyReader) Close() error {
	if r.oldState == nil {
		return nil
	}
	err := term.Restore(r.fd, r.oldState)
	r.oldState = nil
	return err
}

// readKey decodes one key from rd. An ESC with nothing buffered behind it is
// a lone Escape press; terminals deliver arrow sequences in a single write.
func readKey(rd *bufio.Reader) (string, error) {
	b1, err := rd.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b1 == 0x1b:
		if rd.Buffered() == 0 {
			return "escape", nil
		}
		return readEscape(rd)
	case b1 == 3:
		return QuitCode, nil
	case b1 == '\n' || b1 == '\r':
		return "enter", nil
	case b1 == 127 || b1 == 8:
		return "backspace", nil
	case b1 >= 'A' && b1 <= 'Z':
		return string(rune(b1 + ('a' - 'A'))), nil
	case b1 >= 32 && b1 < 127:
		return string(rune(b1)), nil
	}
	return "", nil
}

func readEscape(rd *bufio.Reader) (string, error) {
	b2, err := rd.ReadByte()
	if err != nil {
		return "", eofAsEscape(err)
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "", nil
	}
	b3, err := rd.ReadByte()
	if err != nil {
		return "", eofAsEscape(err)
	}

	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}

	// Discard the rest of longer CSI sequences (e.g. ESC [ 1 ; 5 A).
	for b3 >= '0' && b3 <= '9' || b3 == ';' {
		if rd.Buffered() == 0 {
			break
		}
		if b3, err = rd.ReadByte(); err != nil {
			return "", eofAsEscape(err)
		}
	}
	return "", nil
}

func eofAsEscape(err error) error {
	if err == io.EOF {
		return nil
	}
	return err
}
