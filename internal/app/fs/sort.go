package fs

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Partition returns the directories followed by the other entries, each group in input order
func Partition(entries []Entry) []Entry {
	sorted := make([]Entry, 0, len(entries))

	for _, e := range entries {
		if e.IsDir {
			sorted = append(sorted, e)
		}
	}

	for _, e := range entries {
		if !e.IsDir {
			sorted = append(sorted, e)
		}
	}

	return sorted
}

// SortAlphabetical partitions entries and orders each group by collated name
func SortAlphabetical(entries []Entry) []Entry {
	sorted := Partition(entries)
	c := collate.New(language.Und, collate.IgnoreCase)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].IsDir != sorted[j].IsDir {
			return sorted[i].IsDir
		}

		return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})

	return sorted
}

// Sort applies the listing order policy
func Sort(entries []Entry, alphabetical bool) []Entry {
	if alphabetical {
		return SortAlphabetical(entries)
	}

	return Partition(entries)
}
