package rarity

import (
	"reflect"
	"testing"
)

func TestRankedSortsRarestFirstThenAlphabetically(t *testing.T) {
	report := &Report{Scores: []WordScore{
		{Word: "the", Score: 0.1},
		{Word: "banana", Score: 5.5},
		{Word: "apple", Score: 5.5},
		{Word: "the", Score: 0.1},
		{Word: "zz9x", Score: 8},
	}}

	got := report.Ranked()
	want := []WordScore{
		{Word: "zz9x", Score: 8},
		{Word: "apple", Score: 5.5},
		{Word: "banana", Score: 5.5},
		{Word: "the", Score: 0.1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected ranked %v, got %v", want, got)
	}
}

func TestRarestAndCommonest(t *testing.T) {
	report := &Report{Scores: []WordScore{
		{Word: "quick", Score: 3.0},
		{Word: "xylem", Score: 7.2},
		{Word: "the", Score: 0.2},
	}}

	if got := report.Rarest(); got.Word != "xylem" {
		t.Fatalf("expected rarest word xylem, got %+v", got)
	}
	if got := report.Commonest(); got.Word != "the" {
		t.Fatalf("expected commonest word the, got %+v", got)
	}

	empty := &Report{}
	if got := empty.Rarest(); got != (WordScore{}) {
		t.Fatalf("expected zero value for empty report, got %+v", got)
	}
}

func TestDistinctCountsUniqueWords(t *testing.T) {
	report := &Report{Scores: []WordScore{
		{Word: "the", Score: 0.1},
		{Word: "fox", Score: 3.5},
		{Word: "the", Score: 0.1},
	}}
	if got := report.Distinct(); got != 2 {
		t.Fatalf("expected 2 distinct words, got %d", got)
	}
}
