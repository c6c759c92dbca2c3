package extractor

import (
	"github.com/yknishimuta/nlpo-toolkit/entities/corpus"
)

// Extractor produces a finite stream of observations from one input kind.
// Extract may be called more than once; each call re-reads the source from
// scratch. Recoverable problems (missing directory, unreadable file,
// malformed record) are reported as warnings and never abort the stream;
// the error return is reserved for an extractor that was never given a
// location to read.
type Extractor interface {
	Name() string
	Extract(emit func(corpus.Observation)) (warnings []string, err error)
}
