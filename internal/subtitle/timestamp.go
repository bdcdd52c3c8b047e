package subtitle

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrBadTimestamp reports a timecode that does not match H:MM:SS,mmm.
var ErrBadTimestamp = errors.New("bad timestamp")

// Timestamp is an offset from the start of the media together with its
// canonical comma-separated text form, e.g. "00:01:02,345".
type Timestamp struct {
	Offset time.Duration
	Text   string
}

// hours unbounded, minutes/seconds exactly two digits, milliseconds one or
// more digits (comma or period separator accepted on input)
var timestampRegex = regexp.MustCompile(`^(\d+):(\d{2}):(\d{2})[,.](\d+)$`)

// ParseTimestamp converts a textual timecode to a Timestamp. The
// millisecond field is right-padded with zeros to three digits and
// truncated past three, so "1:02:03,5" means 1:02:03 and 500ms.
func ParseTimestamp(value string) (Timestamp, error) {
	matches := timestampRegex.FindStringSubmatch(strings.TrimSpace(value))
	if matches == nil {
		return Timestamp{}, fmt.Errorf("%w: %q", ErrBadTimestamp, value)
	}

	hours, err := strconv.Atoi(matches[1])
	if err != nil {
		return Timestamp{}, fmt.Errorf("%w: %q", ErrBadTimestamp, value)
	}
	minutes, _ := strconv.Atoi(matches[2])
	seconds, _ := strconv.Atoi(matches[3])

	millisText := matches[4]
	if len(millisText) < 3 {
		millisText += strings.Repeat("0", 3-len(millisText))
	} else {
		millisText = millisText[:3]
	}
	millis, _ := strconv.Atoi(millisText)

	offset := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond

	canonical := fmt.Sprintf(
		"%s:%s:%s,%s",
		matches[1], matches[2], matches[3], millisText,
	)

	return Timestamp{Offset: offset, Text: canonical}, nil
}

// FormatTimestamp renders an offset in the canonical comma form.
func FormatTimestamp(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}
