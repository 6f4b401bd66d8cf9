package rest

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/sarpt/list-coordinator/internal/common"
)

const (
	nodeParam  = "node"
	listParam  = "list"
	eventParam = "event"
)

// Handler returns http.Handler responsible for REST handling subtree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(common.CORS(s.allowCORS))

	r.Get("/status", s.getStatusHandler)
	r.Get("/nodes", s.getNodesHandler)
	r.Delete("/listeners", s.deleteAllListListenersHandler)

	r.Route("/nodes/{node}", func(r chi.Router) {
		r.Get("/lists", s.getListCountHandler)
		r.Post("/gang", s.postGangHandler)
		r.Put("/listeners", s.putConnectionListenerHandler)
		r.Delete("/listeners", s.deleteConnectionListenerHandler)

		r.Route("/lists/{list}", func(r chi.Router) {
			r.Get("/", s.getListHandler)
			r.Post("/command", s.postListCommandHandler)

			r.Get("/lock", s.getLockHandler)
			r.Put("/lock", s.putLockHandler)
			r.Delete("/lock", s.deleteLockHandler)

			r.Put("/listeners", s.putListListenerHandler)
			r.Delete("/listeners", s.deleteListListenerHandler)

			r.Get("/lookahead", s.getLookaheadHandler)
			r.Put("/lookahead", s.putLookaheadHandler)
			r.Post("/lookahead/toggle", s.postToggleLookaheadHandler)

			r.Get("/events", s.getEventsHandler)
			r.Get("/events/count", s.getEventsCountHandler)
			r.Post("/events", s.postEventsHandler)
			r.Put("/events", s.putEventsHandler)
			r.Delete("/events", s.deleteEventsHandler)
			r.Post("/events/move", s.postMoveEventsHandler)

			r.Get("/events/{event}/secondaries", s.getSecondariesHandler)
			r.Post("/events/{event}/ripple", s.postRippleHandler)
			r.Post("/events/{event}/command", s.postEventCommandHandler)
		})
	})

	return r
}
