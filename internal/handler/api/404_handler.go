package api

import "net/http"

// NotFoundHandler answers requests for routes the router never registered.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondJSON(w, http.StatusNotFound, "This route does not exist")
	}
}
