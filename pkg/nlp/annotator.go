package nlp

import (
	"strings"
	"time"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jdkato/prose/v2"
)

// POSClass is a coarse part-of-speech class derived from the tagger's
// Penn Treebank output.
type POSClass string

const (
	POSNoun  POSClass = "NOUN"
	POSVerb  POSClass = "VERB"
	POSOther POSClass = "OTHER"
)

// Token is one annotated token of the input text.
type Token struct {
	Text     string
	Lemma    string // lower-cased dictionary form
	POS      POSClass
	Stopword bool
}

// Annotation is the linguistic annotation of one input text.
type Annotation struct {
	Text      string
	Sentences []string
	Tokens    []Token
}

// Annotator tokenizes, POS-tags and lemmatizes raw text. Annotations are
// memoized in an expirable LRU keyed by the input text, since the same
// description is typically annotated several times per request cycle.
type Annotator struct {
	lemmatizer *golem.Lemmatizer
	cache      *expirable.LRU[string, Annotation]
}

// NewAnnotator creates an Annotator with a cache of the given size.
// A non-positive size disables caching.
func NewAnnotator(cacheSize int) (*Annotator, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, err
	}

	a := &Annotator{lemmatizer: lem}
	if cacheSize > 0 {
		a.cache = expirable.NewLRU[string, Annotation](cacheSize, nil, 10*time.Minute)
	}
	return a, nil
}

// Annotate produces the annotation for text. Empty or unparseable text
// yields an empty annotation, never an error.
func (a *Annotator) Annotate(text string) Annotation {
	if strings.TrimSpace(text) == "" {
		return Annotation{Text: text}
	}

	if a.cache != nil {
		if cached, ok := a.cache.Get(text); ok {
			return cached
		}
	}

	ann := Annotation{Text: text}

	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return ann
	}

	for _, s := range doc.Sentences() {
		ann.Sentences = append(ann.Sentences, s.Text)
	}

	for _, tok := range doc.Tokens() {
		lower := strings.ToLower(tok.Text)
		ann.Tokens = append(ann.Tokens, Token{
			Text:     tok.Text,
			Lemma:    strings.ToLower(a.lemmatizer.Lemma(lower)),
			POS:      coarsePOS(tok.Tag),
			Stopword: stopwordSet[lower],
		})
	}

	if a.cache != nil {
		a.cache.Add(text, ann)
	}
	return ann
}

// NounCount returns the number of noun tokens.
func (ann Annotation) NounCount() int { return ann.countPOS(POSNoun) }

// VerbCount returns the number of verb tokens.
func (ann Annotation) VerbCount() int { return ann.countPOS(POSVerb) }

func (ann Annotation) countPOS(class POSClass) int {
	n := 0
	for _, tok := range ann.Tokens {
		if tok.POS == class {
			n++
		}
	}
	return n
}

// coarsePOS folds Penn Treebank tags into the coarse classes the
// extractors care about: NN prefixes are nouns, VB prefixes are verbs.
func coarsePOS(tag string) POSClass {
	switch {
	case strings.HasPrefix(tag, "NN"):
		return POSNoun
	case strings.HasPrefix(tag, "VB"):
		return POSVerb
	default:
		return POSOther
	}
}
