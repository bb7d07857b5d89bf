// internal/domain/models/article.go
package models

import "time"

// Article is the normalized shape every news source is folded into before
// it is cached and served.
type Article struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"imageUrl"`
	PublishedAt time.Time `json:"publishedAt"`
	Source      string    `json:"source"`
	Author      string    `json:"author"`
	Category    string    `json:"category,omitempty"`
}
