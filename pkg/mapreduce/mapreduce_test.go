package mapreduce

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/dtnitsch/lexa-index/models"
)

func TestMap(t *testing.T) {
	got := Map([]models.Observation{
		{Word: "delve", UPOS: "VERB", Count: 3},
		{Word: "delve", UPOS: "VERB", Count: 2},
		{Word: "delve", UPOS: "NOUN", Count: 1},
		{Word: "the", UPOS: "DET", Count: 10},
	})
	want := map[WordKey]float64{
		{Word: "delve", UPOS: "VERB"}: 5,
		{Word: "delve", UPOS: "NOUN"}: 1,
		{Word: "the", UPOS: "DET"}:    10,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Map() mismatch (-want +got):\n%s", diff)
	}
}

func TestPair(t *testing.T) {
	ai := map[WordKey]float64{{"tapestry", "NOUN"}: 4, {"delve", "VERB"}: 2}
	human := map[WordKey]float64{{"delve", "VERB"}: 1, {"said", "VERB"}: 9}

	got := Pair(ai, human)
	want := []models.Entry{
		{Word: "delve", UPOS: "VERB", AICount: 2, HumanCount: 1},
		{Word: "said", UPOS: "VERB", AICount: 0, HumanCount: 9},
		{Word: "tapestry", UPOS: "NOUN", AICount: 4, HumanCount: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Pair() mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeEntries(t *testing.T) {
	ref := 0.25
	got := MergeEntries([]models.Entry{
		{Word: "realm", UPOS: "NOUN", AICount: 1, HumanCount: 1, ReferenceLAS: &ref, Row: 2},
		{Word: "foster", UPOS: "VERB", AICount: 3, ReferenceLAS: &ref, Row: 3},
		{Word: "realm", UPOS: "NOUN", AICount: 2, HumanCount: 5, Row: 4},
		{Word: "realm", UPOS: "PROPN", AICount: 1, Row: 5},
	})

	assert.Len(t, got, 3)
	assert.Equal(t, models.Entry{Word: "realm", UPOS: "NOUN", AICount: 3, HumanCount: 6, Row: 2}, got[0])
	assert.Same(t, &ref, got[1].ReferenceLAS)
	assert.Equal(t, "PROPN", got[2].UPOS)
}

func TestSortByLAS(t *testing.T) {
	items := []Ranked{
		{Record: models.Record{Word: "b"}, LAS: 0.1},
		{Record: models.Record{Word: "c"}, LAS: -0.5},
		{Record: models.Record{Word: "a"}, LAS: 0.1},
		{Record: models.Record{Word: "d"}, LAS: 0.5},
		{Record: models.Record{Word: "a", UPOS: "ADJ"}, LAS: -0.1},
	}
	SortByLAS(items)

	var got []string
	for _, it := range items {
		got = append(got, it.Record.Word+"/"+it.Record.UPOS)
	}
	assert.Equal(t, []string{"c/", "d/", "a/", "a/ADJ", "b/"}, got)
}

func TestTopKeywords(t *testing.T) {
	records := []models.Record{{Word: "delve", LAS: "0.41"}, {Word: "realm", LAS: "-0.2"}}

	assert.Equal(t, []string{"delve:0.41"}, TopKeywords(records, 1))
	assert.Equal(t, []string{"delve:0.41", "realm:-0.2"}, TopKeywords(records, 10))
	assert.Empty(t, TopKeywords(records, 0))
}

func TestAssignRanks(t *testing.T) {
	items := []Ranked{
		{Record: models.Record{Word: "delve"}, LAS: 0.5, LPR: 2},
		{Record: models.Record{Word: "said"}, LAS: -0.4, LPR: -3},
		{Record: models.Record{Word: "foster"}, LAS: 0.3, LPR: 4},
		{Record: models.Record{Word: "alpha"}, LAS: 0.1, LPR: 0},
		{Record: models.Record{Word: "beta"}, LAS: 0.05, LPR: 0},
	}
	SortByLAS(items)
	AssignRanks(items)

	lasRanks := map[string]int{}
	lprRanks := map[string]int{}
	for _, it := range items {
		lasRanks[it.Record.Word] = it.Record.RankLAS
		lprRanks[it.Record.Word] = it.Record.RankLPR
	}
	assert.Equal(t, map[string]int{"delve": 1, "said": 2, "foster": 3, "alpha": 4, "beta": 5}, lasRanks)
	assert.Equal(t, map[string]int{"foster": 1, "delve": 2, "alpha": 3, "beta": 4, "said": 5}, lprRanks)
	assert.Equal(t, "delve", items[0].Record.Word, "AssignRanks must not reorder items")
}
