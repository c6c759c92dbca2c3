package lexicon

import (
	"github.com/yknishimuta/nlpo-toolkit/repository"
)

// Lexicon is a frequency-annotated wordlist for one language.
type Lexicon interface {
	AddLexeme(lexeme string, frequency int) error
	AddLexemes(lexemes []string, frequencies []int) error
	GetLexemeFrequency(lexeme string) (frequency int, isPrefix bool, exists bool)
	// LoadRepository registers a repository with the lexicon and primes the
	// in-memory index from any entries persisted under the lexicon's name.
	LoadRepository(repo repository.Repository) error
	NumEntries() int
}
