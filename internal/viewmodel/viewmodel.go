// Package viewmodel holds the JSON shapes the API serves to the browser
// shell, kept separate from the domain model so responses can evolve
// without touching persisted formats.
package viewmodel

import "lab4/internal/content"

// ChannelSummary is the landing-page card view of a channel.
type ChannelSummary struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	Color         string             `json:"color"`
	LogoURL       string             `json:"logoUrl,omitempty"`
	LogoConfig    content.LogoConfig `json:"logoConfig"`
	LastUpdated   int64              `json:"lastUpdated"`
	ActivityCount int                `json:"activityCount"`
}

// Summarize builds the card view for a channel.
func Summarize(ch content.Channel) ChannelSummary {
	return ChannelSummary{
		ID:            ch.ID,
		Title:         ch.Title,
		Description:   ch.Description,
		Color:         ch.Color,
		LogoURL:       ch.LogoURL,
		LogoConfig:    ch.LogoConfig,
		LastUpdated:   ch.LastUpdated,
		ActivityCount: len(ch.Activities),
	}
}

// PlayStarted is the response to starting a play session.
type PlayStarted struct {
	SessionID string `json:"sessionId"`
}

// APIError is the uniform error body.
type APIError struct {
	Error string `json:"error"`
}
