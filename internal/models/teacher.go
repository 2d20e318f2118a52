package models

// Teacher represents a tutor profile.
type Teacher struct {
	ID      int64        `json:"id"`
	Name    string       `json:"name"`
	About   string       `json:"about"`
	Rating  float64      `json:"rating"`
	Picture string       `json:"picture"`
	Price   int          `json:"price"`
	Goals   []string     `json:"goals"`
	Free    Availability `json:"free"`
}

// Teacher listing sort modes.
const (
	SortByRating = "rating"
	SortRandom   = "random"
)

// TeacherFilter captures filtering options for listing teachers.
type TeacherFilter struct {
	// Goal restricts the listing to teachers tagged with the goal slug.
	Goal string
	// Sort is SortByRating (descending) or SortRandom.
	Sort string
	// Limit caps the result size; zero means no cap.
	Limit int
}
