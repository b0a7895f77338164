package runtime

import (
	"bufio"
	"bytes"
	"embed"
	"io/fs"
	"strings"

	errs "peerchat/errors"
)

//go:embed censored/*
var censoredFolder embed.FS

// WordList is the deduplicated censored vocabulary plus the language
// codes it was assembled from, kept for startup logging.
type WordList struct {
	Words     []string
	Languages []string
}

// LoadCensoredWords reads every .txt dictionary embedded under the
// given directory. One file per language, one word per line.
func LoadCensoredWords(dir string) (*WordList, error) {
	entries, err := fs.ReadDir(censoredFolder, dir)
	if err != nil {
		return nil, err
	}

	var languages []string
	unique := make(map[string]struct{})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := censoredFolder.ReadFile(dir + "/" + entry.Name())
		if err != nil {
			return nil, err
		}

		// Scanner copes with \n and \r\n line endings alike.
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				unique[line] = struct{}{}
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if len(unique) == 0 {
		return nil, errs.ErrEmptyWords
	}

	words := make([]string, 0, len(unique))
	for w := range unique {
		words = append(words, w)
	}
	return &WordList{Words: words, Languages: languages}, nil
}
