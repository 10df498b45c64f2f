package wordgrid

import "unicode/utf8"

// Words are stored one key per rune. A byte that does not start a valid UTF-8
// sequence gets a key of its own above utf8.MaxRune, so "\xff" and "\uFFFD"
// are different words, exactly as they are different strings.
const invalidByteKey = utf8.MaxRune + 1

// nextKey decodes the first key of s and returns it with its width in bytes.
func nextKey(s string) (rune, int) {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && n == 1 {
		return invalidByteKey + rune(s[0]), 1
	}
	return r, n
}

// keyString turns the keys of a word back into the word.
func keyString(keys []rune) string {
	buf := make([]byte, 0, len(keys))
	for _, k := range keys {
		if k >= invalidByteKey {
			buf = append(buf, byte(k-invalidByteKey))
			continue
		}
		buf = utf8.AppendRune(buf, k)
	}
	return string(buf)
}
