package api

import (
	"net/http"

	"github.com/go-chi/chi"
	log "github.com/sirupsen/logrus"
)

func selfLookup(w http.ResponseWriter, r *http.Request) string {
	loc := getLocator(r)

	return lookup(w, loc, loc.ClientIP(r))
}

func ipLookup(w http.ResponseWriter, r *http.Request) string {
	return lookup(w, getLocator(r), chi.URLParam(r, "ip"))
}

func lookup(w http.ResponseWriter, loc Locator, ip string) string {
	location, err := loc.Lookup(ip)
	code, result := classifyError(err)

	if err != nil {
		log.WithFields(log.Fields{
			"ip":    ip,
			"error": err.Error(),
		}).Debug("Cannot lookup address.")
		abort(w, code, err.Error())

		return result
	}

	sendJSON(w, code, location)

	return result
}
