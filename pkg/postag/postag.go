// Package postag classifies words as content or function words.
//
// A Tagger is built once per build from the Universal POS class table and a
// per-language function-word lexicon, then passed to the aggregator.
package postag

import (
	"strings"
)

// Class is the coarse part-of-speech class written to datasets.
type Class string

const (
	Content  Class = "content"
	Function Class = "function"
)

// UnknownTag is the placeholder for rows without a UPOS tag.
const UnknownTag = "UNK"

// openClassTags are the Universal Dependencies open-class tags.
var openClassTags = map[string]struct{}{
	"ADJ": {}, "ADV": {}, "INTJ": {}, "NOUN": {}, "PROPN": {}, "VERB": {},
}

// Tagger holds the lookup tables used to classify words.
type Tagger struct {
	openClass     map[string]struct{}
	functionWords map[string]map[string]struct{}
}

// New builds a Tagger from the built-in lexicons plus extra function words keyed by language.
func New(extra map[string][]string) *Tagger {
	t := &Tagger{
		openClass:     make(map[string]struct{}, len(openClassTags)),
		functionWords: make(map[string]map[string]struct{}),
	}
	for tag := range openClassTags {
		t.openClass[tag] = struct{}{}
	}
	for lang, words := range builtinFunctionWords {
		t.addWords(lang, words)
	}
	for lang, words := range extra {
		t.addWords(lang, words)
	}
	return t
}

func (t *Tagger) addWords(lang string, words []string) {
	lang = strings.ToLower(lang)
	set, ok := t.functionWords[lang]
	if !ok {
		set = make(map[string]struct{}, len(words))
		t.functionWords[lang] = set
	}
	for _, w := range words {
		set[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
}

// NormalizeTag upper-cases a UPOS tag, mapping empty values to UnknownTag.
func NormalizeTag(upos string) string {
	upos = strings.ToUpper(strings.TrimSpace(upos))
	if upos == "" {
		return UnknownTag
	}
	return upos
}

// Classify returns the class of word in lang given its UPOS tag.
// A known tag decides on its own; otherwise the lexicon is consulted.
func (t *Tagger) Classify(lang, word, upos string) Class {
	upos = NormalizeTag(upos)
	if upos != UnknownTag {
		if _, ok := t.openClass[upos]; ok {
			return Content
		}
		return Function
	}
	if t.IsFunctionWord(lang, word) {
		return Function
	}
	return Content
}

// IsFunctionWord reports whether word is in lang's function-word lexicon.
func (t *Tagger) IsFunctionWord(lang, word string) bool {
	set, ok := t.functionWords[strings.ToLower(lang)]
	if !ok {
		return false
	}
	_, exists := set[strings.ToLower(word)]
	return exists
}
