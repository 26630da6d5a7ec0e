package document

import "unicode"

// Stats holds word-processor counts for a document.
type Stats struct {
	// Blocks is the number of blocks.
	Blocks int `json:"blocks"`
	// Words counts runs of letters, digits and underscores.
	Words int `json:"words"`
	// Characters counts runes, excluding block separators.
	Characters int `json:"characters"`
	// CharactersNoSpaces counts runes that are not white space.
	CharactersNoSpaces int `json:"characters_no_spaces"`
}

// Stats computes counts over every block.
func (d Document) Stats() Stats {
	st := Stats{Blocks: len(d.blocks)}
	for _, b := range d.blocks {
		inWord := false
		for _, r := range b.Text {
			st.Characters++
			if !unicode.IsSpace(r) {
				st.CharactersNoSpaces++
			}
			isWordChar := unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
			if isWordChar && !inWord {
				st.Words++
			}
			inWord = isWordChar
		}
	}
	return st
}
