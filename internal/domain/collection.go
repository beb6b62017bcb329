package domain

// Collection is a named, ordered grouping of products. Products are held
// by value as materialized at fetch time; a stale collection is refreshed
// by refetching, never by patching in place.
type Collection struct {
	ID          string    `json:"id"`
	Handle      string    `json:"handle"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Image       *Image    `json:"image,omitempty"`
	Products    []Product `json:"products"`
}
