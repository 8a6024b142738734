// Package envfile parses dotenv-style KEY=VALUE files
package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// ErrNotFound is returned by Load when the file does not exist.
var ErrNotFound = errors.New("env file not found")

// quoteChars are stripped from both ends of every value.
const quoteChars = `"'`

// Parse reads KEY=VALUE lines of any length from r.
// Blank lines, lines starting with # and lines without = are skipped.
// Only the first = separates the key from the value.
func Parse(r io.Reader) (map[string]string, error) {
	env := map[string]string{}

	reader := bufio.NewReader(r)
	for {
		raw, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read env file: %w", err)
		}

		if key, value, ok := parseLine(raw); ok {
			env[key] = value
		}

		if err != nil {
			break
		}
	}

	return env, nil
}

func parseLine(raw string) (key, value string, ok bool) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	key, value, ok = strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}

	return strings.TrimSpace(key), strings.Trim(strings.TrimSpace(value), quoteChars), true
}

// Load parses the file at path. A missing file yields ErrNotFound.
func Load(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open env file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// LoadOrEmpty is Load, except that a missing file yields an empty map.
func LoadOrEmpty(path string) (map[string]string, error) {
	env, err := Load(path)
	if errors.Is(err, ErrNotFound) {
		return map[string]string{}, nil
	}
	return env, err
}
