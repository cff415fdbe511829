// Command gendata writes a synthetic CSV of noisy customer comments for
// exercising the cleaning pipeline: sentiment phrases mixed with emoji, HTML
// tags, contractions, stretched characters and stray punctuation.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

var positivePhrases = []string{
	"I love this product", "Amazing quality", "Highly recommend",
	"Best purchase ever", "Fantastic experience", "Exceeded my expectations",
	"Worth every penny", "Great value for money", "Super satisfied",
	"Will buy again", "Couldn't be happier", "Works like a charm",
}

var negativePhrases = []string{
	"Worst experience", "Not worth the money", "Very disappointed",
	"Poor quality", "Didn't meet expectations", "Terrible product",
	"Waste of money", "Wouldn't recommend", "Not as advertised",
	"Wasn't impressed", "Failed after few uses", "Regret buying this",
}

var neutralPhrases = []string{
	"It's okay", "Average product", "Could be better", "Nothing special",
	"Decent quality", "Fair enough", "Not bad", "Just as expected",
	"Neither good nor bad", "Does the job",
}

var emojiPools = [][]string{
	{"\U0001F60A", "\U0001F60D", "❤️", "\U0001F525", "\U0001F44D", "\U0001F31F", "\U0001F4AF"},
	{"\U0001F621", "\U0001F624", "\U0001F612", "\U0001F494", "\U0001F44E", "\U0001F622", "\U0001F92C"},
	{"\U0001F914", "\U0001F610", "\U0001F642", "\U0001F937", "\U0001F440"},
}

var htmlTags = [][2]string{
	{"<div>", "</div>"},
	{"<p>", "</p>"},
	{"<span>", "</span>"},
	{"<strong>", "</strong>"},
	{"<em>", "</em>"},
	{"<b>", "</b>"},
	{"<i>", "</i>"},
}

func main() {
	outFile := flag.String("out", "data/sample_comments.csv", "Output CSV file")
	rows := flag.Int("rows", 200, "Number of comments to generate")
	seed := flag.Int64("seed", 42, "Random seed")
	flag.Parse()

	if err := run(*outFile, *rows, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "gendata: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d comments to %s\n", *rows, *outFile)
}

func run(outFile string, rows int, seed int64) error {
	out, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer out.Close()

	rng := rand.New(rand.NewSource(seed))
	w := csv.NewWriter(out)
	if err := w.Write([]string{"ID", "Comment"}); err != nil {
		return err
	}
	for i := 0; i < rows; i++ {
		if err := w.Write([]string{strconv.Itoa(i + 1), generate(rng)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// generate builds one noisy comment, layering noise categories with
// independent probabilities so plenty of rows exercise several stages at
// once.
func generate(rng *rand.Rand) string {
	sentiment := rng.Intn(3)
	var phrase string
	switch sentiment {
	case 0:
		phrase = positivePhrases[rng.Intn(len(positivePhrases))]
	case 1:
		phrase = negativePhrases[rng.Intn(len(negativePhrases))]
	default:
		phrase = neutralPhrases[rng.Intn(len(neutralPhrases))]
	}

	if rng.Float64() < 0.4 {
		phrase = stretchWord(rng, phrase)
	}
	if rng.Float64() < 0.5 {
		tag := htmlTags[rng.Intn(len(htmlTags))]
		phrase = tag[0] + phrase + tag[1]
	}
	if rng.Float64() < 0.6 {
		pool := emojiPools[sentiment]
		emoji := pool[rng.Intn(len(pool))]
		reps := 1 + rng.Intn(2)
		phrase = phrase + " " + strings.Repeat(emoji, reps)
	}
	if rng.Float64() < 0.3 {
		phrase = phrase + strings.Repeat("!", 1+rng.Intn(3))
	}
	return phrase
}

// stretchWord exaggerates one letter of a random word ("good" -> "goooood").
func stretchWord(rng *rand.Rand, phrase string) string {
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return phrase
	}
	wi := rng.Intn(len(words))
	runes := []rune(words[wi])
	if len(runes) < 3 {
		return phrase
	}
	ri := 1 + rng.Intn(len(runes)-2)
	stretched := string(runes[:ri]) +
		strings.Repeat(string(runes[ri]), 3+rng.Intn(3)) +
		string(runes[ri+1:])
	words[wi] = stretched
	return strings.Join(words, " ")
}
