// Package fact picks the random fact shown in the fact-container.
package fact

import "math/rand/v2"

// Facts are the statements the page can show.
var Facts = []string{
	"I'm learning Arabic",
	"I live in Jerusalem",
	"I love animals",
	"I went to ballet classes for almost 10 years",
}

// Random returns one of Facts. r may be nil to use the global source.
func Random(r *rand.Rand) string {
	if r == nil {
		return Facts[rand.IntN(len(Facts))]
	}
	return Facts[r.IntN(len(Facts))]
}
