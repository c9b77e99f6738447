package httpx

import "net/http"

// DetailPermissionDenied is the response detail for guard failures.
const DetailPermissionDenied = "You do not have permission to perform this action."

// RequireStaff lets only staff or superusers through. It must run after AuthnMiddleware.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFromContext(r.Context())
		if !ok {
			writeUnauthorized(w, DetailNotAuthenticated)
			return
		}
		if !id.Staff && !id.Superuser {
			writeError(w, http.StatusForbidden, "permission_denied", DetailPermissionDenied)
			return
		}
		next.ServeHTTP(w, r)
	})
}
