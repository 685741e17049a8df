package domain

import "time"

// BlogPost is static editorial content served alongside the catalog.
type BlogPost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Image       string    `json:"image"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
	Category    string    `json:"category"`
}
