package middleware

import (
	"net/http"
	"strings"
)

const methodOverrideField = "_method"

type MethodOverrideMiddleware struct{}

func NewMethodOverrideMiddleware() *MethodOverrideMiddleware {
	return &MethodOverrideMiddleware{}
}

// MethodOverride lets HTML forms issue PATCH, PUT and DELETE through a POST
// carrying a _method field.
func (m *MethodOverrideMiddleware) MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			method := strings.ToUpper(r.PostFormValue(methodOverrideField))
			switch method {
			case http.MethodPatch, http.MethodPut, http.MethodDelete:
				r.Method = method
			}
		}
		next.ServeHTTP(w, r)
	})
}
