/*
Package wordgrid finds dictionary words hidden along the lines of a square
letter grid.

A grid is built from a flat run of letters whose length is a perfect square.
Every row, every column and every diagonal parallel to the main diagonal is read
out as a line, and every contiguous substring of every line becomes a candidate
word. Candidates are then filtered through a Dictionary, keeping their order and
their duplicates.

Three dictionaries are provided. A Trie is a plain prefix tree that can be
loaded in any order. Calling Freeze() on a Trie produces an Index, a minimized
Directed Acyclic Word Graph that is immutable, answers the same membership
queries, can report a word's rank in sorted order, and can be saved to disk
and opened again with Load(). A WordSet is a static minimal perfect hash set,
useful as a reference implementation of set membership.

Anti-diagonals (top-right to bottom-left) are not part of the default line set.
They are available as a separate extension through Options.AntiDiagonals.

Matching is case-sensitive and exact; no alphabet normalisation is applied to
grid letters or dictionary words.

A typical use:

	grid, err := wordgrid.NewGridFromString("ABCD")
	if err != nil {
		return err
	}
	dict := wordgrid.BuildTrie([]string{"AB", "AD"})
	words := wordgrid.Find(grid, dict, wordgrid.DefaultOptions())
*/
package wordgrid
