package models

// Goal is a named learning objective teachers are tagged with.
type Goal struct {
	ID   int64  `db:"id" json:"id"`
	Slug string `db:"slug" json:"slug"`
	Name string `db:"name" json:"name"`
}
