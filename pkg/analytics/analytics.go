package analytics

import (
	"regexp"
	"strings"

	"github.com/dtnitsch/unstop-trends/pkg/mapreduce"
)

// stopwordList holds the words ignored by word clouds: English function words
// plus listing noise that appears in almost every posting title.
const stopwordList = `
a about above after again against all also am an and any are as at
be because been before being below between both but by
can could did do does doing down during each few for from further
had has have having he her here hers herself him himself his how
i if in into is it its itself just me more most my myself
no nor not now of off on once only or other our ours ourselves out over own
same she should so some such than that the their theirs them themselves then
there these they this those through to too under until up very
was we were what when where which while who whom why will with would
you your yours yourself yourselves
etc via per ltd pvt private limited inc llp co
`

var stopwords = func() map[string]struct{} {
	words := strings.Fields(stopwordList)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}()

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}][\p{L}\p{N}'+#&.-]*[\p{L}\p{N}+#]|[\p{L}\p{N}]{2,}`)

// IsStopword checks if a word is ignored by word clouds.
func IsStopword(word string) bool {
	_, exists := stopwords[strings.ToLower(word)]
	return exists
}

// WordFrequency tokenizes free text the way a word cloud does: words of at
// least two characters, stopwords removed, counted case-insensitively. The
// displayed form of each word is the first spelling encountered.
func WordFrequency(texts []string) *mapreduce.Counter {
	display := make(map[string]string)
	counts := mapreduce.NewCounter()

	for _, text := range texts {
		for _, word := range wordPattern.FindAllString(text, -1) {
			key := strings.ToLower(word)
			if _, stop := stopwords[key]; stop || len(key) < 2 {
				continue
			}
			if _, ok := display[key]; !ok {
				display[key] = word
			}
			counts.Inc(key)
		}
	}

	out := mapreduce.NewCounter()
	for _, kv := range counts.Entries() {
		out.Add(display[kv.Key], kv.Value)
	}
	return out
}

// TopWords returns the n most frequent words across texts.
func TopWords(texts []string, n int) []mapreduce.KV {
	return mapreduce.TopN(WordFrequency(texts), n)
}

// ValueCounts counts each distinct non-empty value, ranked like pandas
// value_counts: count descending, ties by first appearance.
func ValueCounts(values []string, n int) []mapreduce.KV {
	present := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			present = append(present, v)
		}
	}
	return mapreduce.TopN(mapreduce.Map(present), n)
}
