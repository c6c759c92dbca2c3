package wordlist

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Write renders the vocabulary one token per line with a trailing newline,
// creating parent directories as needed. The list is written to a temp
// file in the destination directory and renamed into place, so the
// destination is either fully written or left untouched.
func Write(path string, words []string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "wordlist: create output directory")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, "wordlist: create temp output")
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, word := range words {
		if _, err := w.WriteString(word + "\n"); err != nil {
			tmp.Close()
			return errors.Wrap(err, "wordlist: write output")
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return errors.Wrap(err, "wordlist: write output")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "wordlist: write output")
	}

	return errors.Wrap(os.Rename(tmp.Name(), path), "wordlist: replace output")
}
