package http

import "github.com/go-chi/chi/v5"

// RouteGroup is a URL prefix plus the routes served below it. Groups are
// built with their controller already injected.
type RouteGroup interface {
	Prefix() string
	Register(r chi.Router)
}
