package nlp

// Similarity scores the lexical overlap of two texts in [0,1] as the
// Jaccard index over their non-stopword lemma sets. Two empty texts
// score 0.
func (a *Annotator) Similarity(textA, textB string) float64 {
	setA := lemmaSet(a.Annotate(textA))
	setB := lemmaSet(a.Annotate(textB))

	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}

	intersection := 0
	for lemma := range setA {
		if setB[lemma] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

func lemmaSet(ann Annotation) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range ann.Tokens {
		if tok.Stopword || tok.POS == POSOther {
			continue
		}
		set[tok.Lemma] = true
	}
	return set
}
