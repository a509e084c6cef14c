// Package article exposes the HTTP handlers for the article endpoints.
package article

// CreateRequest is the JSON body accepted by the create endpoint.
type CreateRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Summary     string `json:"summary,omitempty"`
	Content     string `json:"content"`
	ImageURL    string `json:"image_url,omitempty"`
	PublishedAt string `json:"published_at,omitempty"` // RFC3339
}

// CreateResponse is returned on successful creation.
type CreateResponse struct {
	ID string `json:"id"`
}

// SeedResponse reports the outcome of a seeding request. A populated
// collection reports message and count; a fresh seed reports inserted.
type SeedResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	Inserted int    `json:"inserted,omitempty"`
	Count    int64  `json:"count,omitempty"`
}
