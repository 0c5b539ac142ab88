// Package analytics aggregates review words into per-gender, per-rating
// frequency counts and answers queries over the result.
package analytics

import "strings"

// stopwordList holds filler words that carry no signal about how a
// professor is described. Only used when the caller asks for filtering.
const stopwordList = `
a about above after again against all also am an and any are as at
be because been before being below between both but by
can can't cannot could couldn't
did didn't do does doesn't doing don't down during
each either else enough even ever every
few for from further
had hadn't has hasn't have haven't having he he'd he'll he's her here hers
herself him himself his how however
i i'd i'll i'm i've if in into is isn't it it's its itself
just
let's
me more most much must my myself
no nor not now
of off on once only or other our ours ourselves out over own
same she she'd she'll she's should shouldn't so some such
than that that's the their theirs them themselves then there there's these
they they'd they'll they're they've this those through to too
under until up us
very
was wasn't we we'd we'll we're we've were weren't what what's when where
which while who who's whom why will with won't would wouldn't
you you'd you'll you're you've your yours yourself yourselves
`

var commonWords = func() map[string]struct{} {
	words := strings.Fields(stopwordList)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}()

// IsStopword checks if a word is a common stopword that should be filtered out.
func IsStopword(word string) bool {
	_, exists := commonWords[strings.ToLower(word)]
	return exists
}

// Tokenize splits review text on whitespace. Punctuation and case are kept
// as written; folding is the caller's decision.
func Tokenize(text string) []string {
	return strings.Fields(text)
}
