package languages

import "golang.org/x/text/language"

// Latin is the BCP 47 tag for Latin. Treebanks and corpora spanning
// Classical to Medieval Latin all share this tag.
var Latin = language.MustParse("la")

// LA is the string form used in persistence and content records.
var LA = Latin.String()
