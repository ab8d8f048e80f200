// Package domain contains the core data types for the courseinfo API.
// This package has no database or HTTP dependencies and is imported by every
// other internal package (repo, service, handler).
package domain

import (
	"net/http"
	"net/url"
)

// Link is one routed endpoint for an entity.
type Link struct {
	Method string `json:"method"`
	Href   string `json:"href"`
}

// Links holds the three canonical endpoints of a slugged entity.
// They are keyed by slug rather than by numeric id.
type Links struct {
	Detail Link `json:"detail"`
	Update Link `json:"update"`
	Delete Link `json:"delete"`
}

// linksFor builds the detail, update, and delete links for the entity with
// the given slug inside collection (e.g. "courses").
func linksFor(collection, slug string) Links {
	href := "/" + collection + "/" + url.PathEscape(slug)
	return Links{
		Detail: Link{Method: http.MethodGet, Href: href},
		Update: Link{Method: http.MethodPut, Href: href},
		Delete: Link{Method: http.MethodDelete, Href: href},
	}
}
