// Package gallery resolves pet pictures for the image picker.
package gallery

import (
	"fmt"
	"math/rand/v2"
)

// MaxSize is the largest height and width, in pixels, an image is shown at.
const MaxSize = 500

// Names maps the index selected in the "names" list to a pet.
// Index 0 is the list's placeholder.
var Names = map[int]string{
	1: "pisu",
	2: "karzi",
}

// Actions maps the index selected in the "actions" list to a picture category.
var Actions = map[int]string{
	1: "Sleeping",
	2: "Eating",
	3: "Funny",
	4: "Busy",
}

// randomCount is the number of "both" pictures showing the two pets together.
const randomCount = 4

// Pick returns the picture for the selected name and action indexes.
// ok is false when either list is still on its placeholder (or out of
// range), in which case no image should be shown.
func Pick(nameIdx, actionIdx int) (url string, ok bool) {
	name, ok := Names[nameIdx]
	if !ok {
		return "", false
	}
	action, ok := Actions[actionIdx]
	if !ok {
		return "", false
	}
	return "images/" + name + action + ".jpg", true
}

// Random returns one of the pictures of both pets. r may be nil.
func Random(r *rand.Rand) string {
	var n int
	if r == nil {
		n = rand.IntN(randomCount) + 1
	} else {
		n = r.IntN(randomCount) + 1
	}
	return fmt.Sprintf("images/both%d.jpg", n)
}
