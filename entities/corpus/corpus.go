package corpus

// SourceClass is the provenance category of a token observation.
type SourceClass string

const (
	TreebankForm  SourceClass = "treebank-form"
	TreebankLemma SourceClass = "treebank-lemma"
	RawText       SourceClass = "raw-text"
	External      SourceClass = "external"
)

// Observation is a single (token, source class) sighting emitted by an
// extractor. The token is raw; normalization happens at aggregation time.
type Observation struct {
	Token string
	Class SourceClass
}

type Corpus struct {
	Name     string
	Language string
	Words    []*Word
}

// Word is one segment of tokenized text. Non-lexical segments (punctuation,
// digits, whitespace runs) are kept so callers can reconstruct the text.
type Word struct {
	Word    string
	Lexical bool
}
