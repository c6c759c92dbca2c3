package cleaner

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

// RefEvent is one rule hit, recorded for later auditing of which rules
// fired where.
type RefEvent struct {
	DocID       string
	Kind        Kind
	RuleName    string
	Action      string // "drop_line" or "substitute"
	LineNo      int
	MatchCount  int
	RefKey      string
	RefAuthor   string
	RefWork     string
	RefLoc      string
	TextSnippet string
}

func newRefEvent(docID string, kind Kind, ruleName, action string, lineNo, matchCount int, ref RuleRef, snippet string) RefEvent {
	return RefEvent{
		DocID:       docID,
		Kind:        kind,
		RuleName:    ruleName,
		Action:      action,
		LineNo:      lineNo,
		MatchCount:  matchCount,
		RefKey:      ref.Key,
		RefAuthor:   ref.Author,
		RefWork:     ref.Work,
		RefLoc:      ref.Loc,
		TextSnippet: snippet,
	}
}

var refEventHeader = []string{
	"doc_id", "kind", "rule_name", "action", "line_no", "match_count",
	"ref_key", "ref_author", "ref_work", "ref_loc", "text_snippet",
}

// AppendRefEvents appends events to a tab-separated log, writing the
// header when the file is first created.
func AppendRefEvents(path string, events []RefEvent) error {
	if len(events) == 0 {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "cleaner: create ref event directory")
	}

	_, statErr := os.Stat(path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(err, "cleaner: open ref event log")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'

	if writeHeader {
		if err := w.Write(refEventHeader); err != nil {
			return errors.Wrap(err, "cleaner: write ref events")
		}
	}
	for _, e := range events {
		row := []string{
			e.DocID, string(e.Kind), e.RuleName, e.Action,
			strconv.Itoa(e.LineNo), strconv.Itoa(e.MatchCount),
			e.RefKey, e.RefAuthor, e.RefWork, e.RefLoc, e.TextSnippet,
		}
		if err := w.Write(row); err != nil {
			return errors.Wrap(err, "cleaner: write ref events")
		}
	}

	w.Flush()
	return errors.Wrap(w.Error(), "cleaner: write ref events")
}
