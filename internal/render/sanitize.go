package render

import "regexp"

// covers HTML-style styling tags commonly found in SRT text, e.g. <i>,
// <font color=...>, </b>
var markupTag = regexp.MustCompile(`<[^>]+>`)

// StripMarkup removes angle-bracket styling tags so only plain text is
// embedded in the document.
func StripMarkup(text string) string {
	return markupTag.ReplaceAllString(text, "")
}
