package analyzer

import "fmt"

// Category is one entry of the classification dictionary. Primary
// keywords are highly category-specific; secondary keywords are common
// supporting vocabulary and score at half weight. Categories are kept in
// an ordered slice, not a map, so the classifier's first-seen tie-break
// is reproducible.
type Category struct {
	Name      string
	Primary   []string
	Secondary []string
}

// DefaultFallbackCategory is assigned when no category clears the score
// threshold, and to empty or all-stop-word posts.
const DefaultFallbackCategory = "Share & Thoughts"

// DefaultCategories returns the built-in category dictionary. The data is
// curated: category names are unique and keywords are lowercase
// single tokens.
func DefaultCategories() []Category {
	return []Category{
		{
			Name:      "Share & Thoughts",
			Primary:   []string{"share", "thought", "opinion", "believe", "wonder", "reflect"},
			Secondary: []string{"think", "feel", "life", "question", "idea", "moment"},
		},
		{
			Name:      "Music",
			Primary:   []string{"music", "song", "album", "concert", "lyrics", "playlist", "melody"},
			Secondary: []string{"artist", "band", "spotify", "guitar", "piano", "singer"},
		},
		{
			Name:      "Play",
			Primary:   []string{"game", "gaming", "gamer", "play", "console", "esports"},
			Secondary: []string{"xbox", "playstation", "nintendo", "steam", "multiplayer", "pc"},
		},
		{
			Name:      "Buzz",
			Primary:   []string{"news", "buzz", "trending", "breaking", "announcement"},
			Secondary: []string{"latest", "update", "happening", "current"},
		},
		{
			Name:      "Movies",
			Primary:   []string{"movie", "film", "cinema", "actor", "actress", "director", "screenplay", "trailer"},
			Secondary: []string{"netflix", "theatre", "hollywood", "bollywood", "watch"},
		},
		{
			Name:      "Learning & Tech",
			Primary:   []string{"learn", "tutorial", "education", "programming", "technology", "software"},
			Secondary: []string{"study", "course", "tech", "code", "ai", "ml", "data", "app"},
		},
		{
			Name:      "Sports",
			Primary:   []string{"sport", "match", "football", "cricket", "basketball", "tennis", "championship", "athlete"},
			Secondary: []string{"game", "player", "team", "fitness", "workout"},
		},
		{
			Name:      "Food",
			Primary:   []string{"food", "recipe", "cook", "restaurant", "cuisine", "chef"},
			Secondary: []string{"eat", "dish", "meal", "taste", "delicious"},
		},
		{
			Name:      "Travel",
			Primary:   []string{"travel", "trip", "vacation", "destination", "journey", "tourist"},
			Secondary: []string{"adventure", "explore", "tour", "flight", "hotel"},
		},
	}
}

// validateCategories rejects dictionaries the classifier cannot work
// with. A bad dictionary is a boot-time configuration error, never a
// per-request one.
func validateCategories(categories []Category) error {
	if len(categories) == 0 {
		return fmt.Errorf("category dictionary is empty")
	}
	seen := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		if c.Name == "" {
			return fmt.Errorf("category with empty name")
		}
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("duplicate category %q", c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}
