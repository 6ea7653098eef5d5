package mapreduce

import (
	"fmt"
	"math"
	"sort"

	"github.com/dtnitsch/lexa-index/models"
)

// Ranked is a record with the numeric values it is ordered and ranked by.
type Ranked struct {
	Record models.Record
	LAS    float64
	LPR    float64
}

// SortByLAS orders records by descending |LAS|, then word, then tag, ascending.
// The order is total, so output is the same on every run.
func SortByLAS(items []Ranked) {
	sort.SliceStable(items, func(i, j int) bool {
		ai, aj := math.Abs(items[i].LAS), math.Abs(items[j].LAS)
		if ai != aj {
			return ai > aj
		}
		if items[i].Record.Word != items[j].Record.Word {
			return items[i].Record.Word < items[j].Record.Word
		}
		return items[i].Record.UPOS < items[j].Record.UPOS
	})
}

// AssignRanks sets RankLAS to each item's 1-based position, so items must
// already be sorted with SortByLAS. RankLPR orders by descending LPR (the
// high impact view) with the same word and tag tie-breaks.
func AssignRanks(items []Ranked) {
	byLPR := make([]int, len(items))
	for i := range items {
		items[i].Record.RankLAS = i + 1
		byLPR[i] = i
	}
	sort.SliceStable(byLPR, func(x, y int) bool {
		a, b := items[byLPR[x]], items[byLPR[y]]
		if a.LPR != b.LPR {
			return a.LPR > b.LPR
		}
		if a.Record.Word != b.Record.Word {
			return a.Record.Word < b.Record.Word
		}
		return a.Record.UPOS < b.Record.UPOS
	})
	for rank, i := range byLPR {
		items[i].Record.RankLPR = rank + 1
	}
}

// Records strips the ranking values.
func Records(items []Ranked) []models.Record {
	records := make([]models.Record, len(items))
	for i, it := range items {
		records[i] = it.Record
	}
	return records
}

// TopKeywords returns the first n records as "word:las" strings (e.g. "delve:0.4121").
// Records are expected to be ordered already.
func TopKeywords(records []models.Record, n int) []string {
	limit := n
	if len(records) < n {
		limit = len(records)
	}
	if limit < 0 {
		limit = 0
	}

	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = fmt.Sprintf("%s:%s", records[i].Word, records[i].LAS)
	}
	return keywords
}
