package domain

import "strings"

type Link struct {
	Title string
	URL   string
}

// NewLink fills whichever of title/url is missing from the other.
func NewLink(title, url string) Link {
	title = strings.TrimSpace(title)
	url = strings.TrimSpace(url)

	link := Link{Title: title, URL: url}
	if link.Title == "" {
		link.Title = url
	}
	if link.Title == "" {
		link.Title = "link"
	}
	if link.URL == "" {
		link.URL = title
	}

	return link
}

// AskExchange is the last question/answer pair of the help widget. It is
// never persisted.
type AskExchange struct {
	Question     string
	Answer       string
	RoutingLayer int
	Links        []Link
}

type Ticket struct {
	OK       bool
	TicketID string
	Message  string
}
