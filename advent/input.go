package main

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/vaughan0/go-ini"
)

const defaultConfigFile = "advent.ini"

// loadConfig loads the ini file at path. If path is empty, advent.ini in the
// working directory is used if it exists; otherwise the config is empty.
func loadConfig(path string) (ini.File, error) {
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return make(ini.File), nil
			}
			return nil, err
		}
		path = defaultConfigFile
	}
	config, err := ini.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	return config, nil
}

// readInput reads the puzzle input from the -input file, the file named by
// the input parameter, or stdin, in that order. A terminal on stdin is read
// interactively.
func readInput(p *puzzle) ([]byte, error) {
	name := *inputFile
	if name == "" {
		name = p.param("input", "")
	}
	if name != "" {
		return os.ReadFile(name)
	}
	if isTerminal(int(os.Stdin.Fd())) {
		return readInteractive()
	}
	return io.ReadAll(os.Stdin)
}

var errInterrupted = errors.New("interrupted")

// readInteractive collects input lines from a terminal until EOF or an empty
// line.
func readInteractive() ([]byte, error) {
	l, err := readline.NewEx(&readline.Config{Prompt: "> "})
	if err != nil {
		return nil, err
	}
	defer l.Close()

	fmt.Fprintln(os.Stderr, "Enter puzzle input; finish with an empty line or ^D.")
	var b bytes.Buffer
	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			return nil, errInterrupted
		case io.EOF:
			return b.Bytes(), nil
		default:
			return nil, err
		}
		if line == "" {
			return b.Bytes(), nil
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

// maxLineSize bounds a single input line. Map rows can be long, so this is
// well past bufio's 64 KiB default.
const maxLineSize = 16 << 20

// newLineScanner returns a line scanner over r that accepts lines up to
// maxLineSize bytes.
func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return scanner
}

//go:embed examples
var examples embed.FS

func readExample(file string) ([]byte, error) {
	return examples.ReadFile("examples/" + file)
}
