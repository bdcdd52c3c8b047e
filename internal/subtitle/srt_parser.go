package subtitle

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnreadableSource reports a subtitle document that is missing or
// cannot be decoded as text.
var ErrUnreadableSource = errors.New("unreadable subtitle source")

// only the start time of the range is used
var timingLineRegex = regexp.MustCompile(
	`^(\d+:\d{2}:\d{2}[,.]\d+)\s*-->\s*\d+:\d{2}:\d{2}[,.]\d+`,
)

var blockSeparator = regexp.MustCompile(`\n{2,}`)

// ParseFile reads an SRT document and returns its track. A readable file
// with zero well-formed blocks yields an empty track, not an error.
func ParseFile(path, lang string) (Track, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Track{}, fmt.Errorf("%w: %v", ErrUnreadableSource, err)
	}

	content, err := decode(raw)
	if err != nil {
		return Track{}, err
	}

	return Track{
		Entries:  Parse(content),
		Language: lang,
		Path:     path,
	}, nil
}

// Parse splits a subtitle document into entries. Blocks are separated by
// one or more blank lines; a well-formed block has an index line
// (ignored), a timing line, and one or more text lines. Malformed blocks
// are skipped without aborting the rest of the document.
func Parse(content string) []Entry {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	var entries []Entry
	for _, block := range blockSeparator.Split(content, -1) {
		lines := strings.Split(block, "\n")
		if len(lines) < 3 {
			continue
		}

		matches := timingLineRegex.FindStringSubmatch(lines[1])
		if matches == nil {
			continue
		}
		start, err := ParseTimestamp(matches[1])
		if err != nil {
			continue
		}

		text := strings.TrimSpace(strings.Join(lines[2:], " "))
		entries = append(entries, Entry{Start: start, Text: text})
	}

	return entries
}

// decode converts raw file bytes to a string, honoring a UTF-16 byte-order
// mark and stripping a UTF-8 one. Subtitle files in the wild are often
// UTF-16.
func decode(raw []byte) (string, error) {
	if bytes.HasPrefix(raw, []byte{0xFF, 0xFE}) ||
		bytes.HasPrefix(raw, []byte{0xFE, 0xFF}) {
		decoder := unicode.UTF16(
			unicode.LittleEndian, unicode.UseBOM,
		).NewDecoder()
		decoded, _, err := transform.Bytes(decoder, raw)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnreadableSource, err)
		}
		return string(decoded), nil
	}

	raw = bytes.TrimPrefix(raw, []byte("\ufeff"))
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: not valid UTF-8", ErrUnreadableSource)
	}
	return string(raw), nil
}
