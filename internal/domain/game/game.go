package game

// Game is a playable title from the branch catalogue. Popularity is a plain
// counter bumped each time a session picks the title.
type Game struct {
	ID              string
	Name            string
	PopularityScore int
}
