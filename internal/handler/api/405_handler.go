package api

import "net/http"

// MethodNotAllowedHandler answers verbs a matched route does not serve.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondJSON(w, http.StatusMethodNotAllowed, "This method is not allowed")
	}
}
