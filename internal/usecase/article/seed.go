package article

import (
	"time"

	"mystical-api/internal/domain/entity"
)

// SampleArticles returns the fixed set of articles used to seed an empty
// collection. One article per category.
func SampleArticles() []entity.ArticleInput {
	published := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)
	return []entity.ArticleInput{
		{
			Title:    "Echoes of the Library of Alexandria",
			Category: string(entity.CategoryHistory),
			Summary:  "What we actually know about the ancient world's most famous library, and what was lost with it.",
			Content: "The Library of Alexandria was less a single building than a research institution " +
				"attached to the Mouseion, drawing scholars from across the Mediterranean. Its decline was " +
				"gradual rather than the single catastrophic fire of popular legend, with collections " +
				"dispersed over centuries of war, neglect and shifting patronage.",
			ImageURL:    "https://images.unsplash.com/photo-1507842217343-583bb7270b66",
			PublishedAt: published,
		},
		{
			Title:    "The Many Faces of Athena",
			Category: string(entity.CategoryMythology),
			Summary:  "Warrior, weaver, strategist: how one goddess carried so many contradictory roles.",
			Content: "Athena's cult titles reveal a deity of remarkable range. As Athena Polias she guarded " +
				"the city, as Ergane she presided over craft, and as Promachos she led armies. The myths " +
				"reconcile these roles through her defining trait, metis, the cunning intelligence that " +
				"turns raw force into strategy.",
			ImageURL:    "https://images.unsplash.com/photo-1555991415-1b04a71f26c6",
			PublishedAt: published.AddDate(0, 0, 7),
		},
		{
			Title:    "Antikythera Mechanism: The Ancient Computer",
			Category: string(entity.CategoryScience),
			Summary:  "A corroded lump of bronze from a shipwreck turned out to be a geared astronomical calculator.",
			Content: "Recovered from a Roman-era wreck in 1901, the Antikythera mechanism modelled the " +
				"motions of the sun, moon and likely the five known planets through a train of more than " +
				"thirty bronze gears. Nothing of comparable mechanical complexity appears in the " +
				"archaeological record for another thousand years.",
			ImageURL:    "https://images.unsplash.com/photo-1446776811953-b23d57bd21aa",
			PublishedAt: published.AddDate(0, 0, 14),
		},
	}
}
