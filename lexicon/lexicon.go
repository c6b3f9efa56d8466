package lexicon

import (
	"embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed resources/*.toml
var resources embed.FS

// Lexicon bundles the static word lists the analyzer depends on. It is
// loaded once at process start and read-only afterwards.
type Lexicon struct {
	stopWords map[string]struct{}
	offensive map[string]struct{}
	sentiment map[string]int
}

type wordList struct {
	Words []string `toml:"words"`
}

type sentimentList struct {
	Positive []string `toml:"positive"`
	Negative []string `toml:"negative"`
}

// Load reads the bundled stop-word, offensive-word and sentiment lists.
func Load() (*Lexicon, error) {
	lex := &Lexicon{
		stopWords: make(map[string]struct{}),
		offensive: make(map[string]struct{}),
		sentiment: make(map[string]int),
	}

	var stops wordList
	if err := decode("resources/stopwords.toml", &stops); err != nil {
		return nil, err
	}
	for _, w := range stops.Words {
		lex.stopWords[strings.ToLower(w)] = struct{}{}
	}

	var flagged wordList
	if err := decode("resources/offensive.toml", &flagged); err != nil {
		return nil, err
	}
	for _, w := range flagged.Words {
		lex.offensive[strings.ToLower(w)] = struct{}{}
	}

	var sent sentimentList
	if err := decode("resources/sentiment.toml", &sent); err != nil {
		return nil, err
	}
	for _, w := range sent.Positive {
		lex.sentiment[strings.ToLower(w)] = 1
	}
	for _, w := range sent.Negative {
		lex.sentiment[strings.ToLower(w)] = -1
	}

	return lex, nil
}

func decode(name string, v interface{}) error {
	data, err := resources.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := toml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// IsStopWord reports whether the lowercase token is excluded from word
// frequency counts.
func (l *Lexicon) IsStopWord(word string) bool {
	_, ok := l.stopWords[word]
	return ok
}

// IsOffensive reports whether the lowercase token is on the flagged list.
func (l *Lexicon) IsOffensive(word string) bool {
	_, ok := l.offensive[word]
	return ok
}

// Polarity returns +1, -1 or 0 for the lowercase token.
func (l *Lexicon) Polarity(word string) int {
	return l.sentiment[word]
}
