package content

// FetchedContent is one document pulled from a remote corpus source.
type FetchedContent struct {
	Id        int
	Title     string
	Author    string
	Body      string
	CanonName string
	Uri       string
	Language  string
}
