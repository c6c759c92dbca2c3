package fetcher

import (
	"github.com/yknishimuta/nlpo-toolkit/repository"
)

// Fetcher pulls documents from one remote corpus source into the
// repository.
type Fetcher interface {
	Fetch(options FetchOptions) error
	SetFetcherOptions(options *FetcherOptions)
	GetFetcherOptions() *FetcherOptions
}

var Fetchers = []Fetcher{
	&LatinLibraryFetcher{},
}

type FetchOptions struct {
	DocumentLimit int

	DeparturePoint string // starting url

	MaxDepth    int
	Async       bool
	Parallelism int

	Uri string // setting this disables the above options
}

type FetcherOptions struct {
	Repository repository.Repository
}
