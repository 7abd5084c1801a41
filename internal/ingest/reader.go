// Package ingest reads the text to summarize from terminals, pipes and files.
package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"textsum/internal/domain"
)

// ErrNoDocuments is returned when file arguments match no .txt file.
var ErrNoDocuments = errors.New("no .txt documents found")

// Reader reads a paragraph and follow-up answers from one line-oriented stream.
// Lines may be of any length.
type Reader struct {
	br *bufio.Reader
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Paragraph reads lines until the first blank line or end of input and joins
// them with single spaces.
func (r *Reader) Paragraph() (string, error) {
	var b strings.Builder
	for {
		line, err := r.readLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read paragraph: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		b.WriteString(line)
		b.WriteByte(' ')
	}
	return strings.TrimSpace(b.String()), nil
}

// Line reads one line. io.EOF is returned when the input is exhausted.
func (r *Reader) Line() (string, error) {
	line, err := r.readLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read line: %w", err)
	}
	return line, err
}

// readLine returns the next line without its terminator. A final line with
// no newline is returned with a nil error; io.EOF follows on the next call.
func (r *Reader) readLine() (string, error) {
	line, err := r.br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", io.EOF
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ParseCount converts a sentence count answer to an integer. Anything that is
// not an integer means auto and yields 0.
func ParseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// ReadFiles expands globs and loads every matching .txt file, in argument order.
func ReadFiles(paths []string) ([]domain.Document, error) {
	var documents []domain.Document
	for _, p := range paths {
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", p, err)
		}
		if matches == nil {
			// A pattern that matched nothing names no file; a plain path
			// is kept so a missing file is reported.
			if strings.ContainsAny(p, "*?[") {
				continue
			}
			matches = []string{p}
		}
		for _, m := range matches {
			if !strings.HasSuffix(strings.ToLower(m), ".txt") {
				continue
			}
			data, err := os.ReadFile(m)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", m, err)
			}
			documents = append(documents, domain.Document{Path: m, Content: string(data)})
		}
	}
	if len(documents) == 0 {
		return nil, ErrNoDocuments
	}
	return documents, nil
}

// Combine folds line breaks into spaces and concatenates the documents.
func Combine(documents []domain.Document) string {
	parts := make([]string, 0, len(documents))
	for _, d := range documents {
		text := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(d.Content)
		if text = strings.TrimSpace(text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}
