package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type ctxKey int

const ctxKeySession ctxKey = iota

// sessionMiddleware resolves {token} to its session document and stashes
// it in the request context. Handlers that mutate the document save it
// back through the store.
func sessionMiddleware(store Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := chi.URLParam(r, "token")
			if token == "" {
				writeError(w, http.StatusNotFound, "session not found")
				return
			}

			doc, err := store.Session(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusNotFound, "session not found")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeySession, doc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFrom(r *http.Request) SessionDoc {
	return r.Context().Value(ctxKeySession).(SessionDoc)
}
