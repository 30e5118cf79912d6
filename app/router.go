package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/multisend"
	"github.com/iov-one/multisend/errors"
)

// isPath ensures we register handlers only on sane paths.
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/\-]+$`).MatchString

// Router allows us to register many handlers with different paths and
// then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	routes map[string]multisend.Handler
}

var _ multisend.Registry = (*Router)(nil)
var _ multisend.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]multisend.Handler),
	}
}

// Handle adds a new handler for the given path. Panics if the path is
// invalid or was already registered.
func (r *Router) Handle(path string, h multisend.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %s", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// handler returns the registered Handler for this path. If no path is
// found, returns a noSuchPathHandler.
func (r *Router) handler(path string) multisend.Handler {
	if h, ok := r.routes[path]; ok {
		return h
	}
	return noSuchPathHandler{path}
}

// Check dispatches to the proper handler based on path.
func (r *Router) Check(ctx multisend.Context, store multisend.KVStore, tx multisend.Tx) (*multisend.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg.Path()).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on path.
func (r *Router) Deliver(ctx multisend.Context, store multisend.KVStore, tx multisend.Tx) (*multisend.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg.Path()).Deliver(ctx, store, tx)
}

type noSuchPathHandler struct {
	path string
}

var _ multisend.Handler = noSuchPathHandler{}

func (h noSuchPathHandler) Check(multisend.Context, multisend.KVStore, multisend.Tx) (*multisend.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}

func (h noSuchPathHandler) Deliver(multisend.Context, multisend.KVStore, multisend.Tx) (*multisend.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}
