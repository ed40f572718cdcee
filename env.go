package main

// env is an association list from words to the terms they are bound to.
// New bindings are prepended, never written into existing entries, so the
// nearest binding of a word shadows any older ones.
type env struct {
	word string
	term Term
	tail *env
}

// define returns a new environment with word bound to term in front of e,
// which is left untouched; a nil e is the empty environment.
func (e *env) define(word string, term Term) *env {
	return &env{word: word, term: term, tail: e}
}

// find scans from the most recent binding backward, returning the first term
// bound under exactly word.
func (e *env) find(word string) (Term, bool) {
	for ; e != nil; e = e.tail {
		if e.word == word {
			return e.term, true
		}
	}
	return Term{}, false
}

// words lists every binding's word, most recent first.
func (e *env) words() (words []string) {
	for ; e != nil; e = e.tail {
		words = append(words, e.word)
	}
	return words
}

func builtinEnv() (e *env) {
	for _, b := range builtins {
		e = e.define(b.word, b.term)
	}
	return e
}
