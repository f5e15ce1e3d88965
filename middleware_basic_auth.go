package main

import (
	"crypto/subtle"
	"net/http"
)

func withBasicAuth(handler http.Handler, user, password string) http.Handler {
	expectedUser := []byte(user)
	expectedPassword := []byte(password)

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		reqUser, reqPassword, ok := req.BasicAuth()

		userMatch := subtle.ConstantTimeCompare(expectedUser, []byte(reqUser))
		passwordMatch := subtle.ConstantTimeCompare(expectedPassword, []byte(reqPassword))

		if ok && userMatch+passwordMatch == 2 {
			handler.ServeHTTP(w, req)

			return
		}

		w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
		http.Error(w, "Authentication is required", http.StatusUnauthorized)
	})
}
