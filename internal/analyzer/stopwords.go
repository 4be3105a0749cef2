package analyzer

import "strings"

// stopWords holds common English function words removed during
// tokenization. Contractions appear in their apostrophe-stripped form
// ("dont", "youre") to match the tokenizer's normalization.
var stopWords = buildStopWords()

func buildStopWords() map[string]struct{} {
	words := strings.Fields(`
		a about above after again against all am an and any are arent as at
		be because been before being below between both but by
		can cant cannot could couldnt
		did didnt do does doesnt doing dont down during
		each few for from further
		had hadnt has hasnt have havent having he hed hes her here hers
		herself him himself his how
		i id if ill im in into is isnt it its itself ive
		just
		me more most mustnt my myself
		no nor not now
		of off on once only or other our ours ourselves out over own
		same she shes should shouldnt so some such
		than that thats the their theirs them themselves then there theres
		these they theyre this those through to too
		under until up
		very
		was wasnt we were werent weve what whats when where which while who
		whom why will with wont would wouldnt
		you youd youll youre yours yourself yourselves youve
	`)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func isStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}
