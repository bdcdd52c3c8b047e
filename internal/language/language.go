package language

import "strings"

// aliases maps ISO 639-2 codes and full language names to the two-letter
// tags used for font lookup.
var aliases = map[string]string{
	"eng": "en", "english": "en",
	"jpn": "ja", "japanese": "ja",
	"kor": "ko", "korean": "ko",
	"zho": "zh", "chi": "zh", "chinese": "zh",
	"fra": "fr", "fre": "fr", "french": "fr",
	"deu": "de", "ger": "de", "german": "de",
	"spa": "es", "spanish": "es",
	"ita": "it", "italian": "it",
	"por": "pt", "portuguese": "pt",
	"rus": "ru", "russian": "ru",
	"nld": "nl", "dut": "nl", "dutch": "nl",
	"vie": "vi", "vietnamese": "vi",
	"tha": "th", "thai": "th",
}

// Normalize maps a language code or name to its two-letter tag.
// Unrecognized input is lowercased and passed through so custom tags in
// the font config still resolve.
func Normalize(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if canonical, ok := aliases[tag]; ok {
		return canonical
	}
	return tag
}
