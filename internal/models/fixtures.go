package models

import (
	"time"
)

// FixtureSongs is the small built-in catalog served when the store is
// unreachable and fixture fallback is enabled. Lyric text is placeholder
// demo content, not the real lyrics.
func FixtureSongs() []*Song {
	year1975, year1977, year1971 := 1975, 1977, 1971
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []*Song{
		{
			ID:        1,
			Title:     "Bohemian Rhapsody",
			Artist:    "Queen",
			Album:     "A Night at the Opera",
			Genre:     "Rock",
			Year:      &year1975,
			Cover:     "/placeholder.svg?height=300&width=300",
			Lyrics:    "Demo catalog entry. Full lyrics are available when the store is online.",
			CreatedAt: base.Add(48 * time.Hour),
			UpdatedAt: base.Add(48 * time.Hour),
		},
		{
			ID:        2,
			Title:     "We Will Rock You",
			Artist:    "Queen",
			Album:     "News of the World",
			Genre:     "Rock",
			Year:      &year1977,
			Cover:     "/placeholder.svg?height=300&width=300",
			Lyrics:    "Demo catalog entry. Full lyrics are available when the store is online.",
			CreatedAt: base.Add(24 * time.Hour),
			UpdatedAt: base.Add(24 * time.Hour),
		},
		{
			ID:        3,
			Title:     "Imagine",
			Artist:    "John Lennon",
			Album:     "Imagine",
			Genre:     "Pop",
			Year:      &year1971,
			Cover:     "/placeholder.svg?height=300&width=300",
			Lyrics:    "Demo catalog entry. Full lyrics are available when the store is online.",
			CreatedAt: base,
			UpdatedAt: base,
		},
	}
}
