package lexicon

import (
	"github.com/yknishimuta/nlpo-toolkit/repository"
)

type latinLexicon struct {
	name       string
	language   string
	prefixTrie PrefixTrie
	repository repository.Repository
}

// NewLatinLexicon creates a lexicon handle. Entries persisted under the
// same name are loaded when a repository is registered.
func NewLatinLexicon(name string, language string) Lexicon {
	return &latinLexicon{
		name:       name,
		language:   language,
		prefixTrie: NewPrefixTrie(),
	}
}

func (l *latinLexicon) AddLexeme(lexeme string, frequency int) error {
	if l.repository != nil {
		if err := l.repository.AddLexeme(l.name, l.language, lexeme, frequency); err != nil {
			return err
		}
	}
	l.prefixTrie.AddLexeme(lexeme, frequency)
	return nil
}

func (l *latinLexicon) AddLexemes(lexemes []string, frequencies []int) error {
	if l.repository != nil {
		if err := l.repository.AddLexemes(l.name, l.language, lexemes, frequencies); err != nil {
			return err
		}
	}
	l.prefixTrie.AddLexemes(lexemes, frequencies)
	return nil
}

func (l *latinLexicon) GetLexemeFrequency(lexeme string) (frequency int, isPrefix bool, exists bool) {
	return l.prefixTrie.GetFrequency(lexeme)
}

func (l *latinLexicon) LoadRepository(repo repository.Repository) error {
	l.repository = repo
	lexemes, frequencies, err := l.repository.GetLexemes(l.name, l.language)
	if len(lexemes) == 0 || err != nil {
		return err
	}

	l.prefixTrie.AddLexemes(lexemes, frequencies)
	return nil
}

func (l *latinLexicon) NumEntries() int {
	return l.prefixTrie.NumEntries()
}
