package mapreduce

import (
	"sort"

	"github.com/dtnitsch/lexa-index/models"
)

// WordKey identifies a word form together with its POS tag.
type WordKey struct {
	Word string
	UPOS string
}

// Map folds the observations of one corpus slice into a count map.
func Map(observations []models.Observation) map[WordKey]float64 {
	counts := make(map[WordKey]float64, len(observations))
	for _, o := range observations {
		counts[WordKey{Word: o.Word, UPOS: o.UPOS}] += o.Count
	}
	return counts
}

// Pair joins AI and human counts into entries. Words seen on only one side
// get a zero count on the other. Entries come back ordered by word, then tag.
func Pair(ai, human map[WordKey]float64) []models.Entry {
	keys := make(map[WordKey]struct{}, len(ai)+len(human))
	for k := range ai {
		keys[k] = struct{}{}
	}
	for k := range human {
		keys[k] = struct{}{}
	}

	entries := make([]models.Entry, 0, len(keys))
	for k := range keys {
		entries = append(entries, models.Entry{
			Word:       k.Word,
			UPOS:       k.UPOS,
			AICount:    ai[k],
			HumanCount: human[k],
		})
	}
	sortEntries(entries)
	return entries
}

// MergeEntries sums entries sharing a word and tag, keeping first-seen order.
// A merged entry loses its reference LAS since it no longer matches one input row.
func MergeEntries(entries []models.Entry) []models.Entry {
	index := make(map[WordKey]int, len(entries))
	merged := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		k := WordKey{Word: e.Word, UPOS: e.UPOS}
		if i, ok := index[k]; ok {
			merged[i].AICount += e.AICount
			merged[i].HumanCount += e.HumanCount
			merged[i].ReferenceLAS = nil
			continue
		}
		index[k] = len(merged)
		merged = append(merged, e)
	}
	return merged
}

func sortEntries(entries []models.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Word != entries[j].Word {
			return entries[i].Word < entries[j].Word
		}
		return entries[i].UPOS < entries[j].UPOS
	})
}
