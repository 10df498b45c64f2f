package wordgrid

// Substrings returns every contiguous substring of line, n(n+1)/2 in all for
// a line of n letters. They are ordered by start index, then by length, so
// "ABC" yields A, AB, ABC, B, BC, C. The line is not modified.
func Substrings(line []rune) []string {
	n := len(line)
	words := make([]string, 0, n*(n+1)/2)
	for i := range line {
		for j := i + 1; j <= n; j++ {
			words = append(words, string(line[i:j]))
		}
	}
	return words
}
