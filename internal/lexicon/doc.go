// Package lexicon maps parsed annotated text onto dictionary records: konsep
// drafts with their cakupan and kata asing, and the golongan kata registry
// they are checked against.
package lexicon
