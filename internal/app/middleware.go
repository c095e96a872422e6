package app

import (
	"fmt"
	"net/http"
	"net/url"
)

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// verifyOrigin rejects browser form submissions that do not originate from
// the configured site. This is a weak CSRF guard, not an authentication
// mechanism.
func (app *application) verifyOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.site.skipOriginCheck {
			next.ServeHTTP(w, r)
			return
		}

		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = r.Header.Get("Referer")
		}

		if !app.originAllowed(origin) {
			app.contextGetLogger(r).Warn("rejected request from unknown origin", "origin", origin)
			app.forbiddenResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (app *application) originAllowed(origin string) bool {
	if origin == "" {
		return false
	}

	originUrl, err := url.Parse(origin)
	if err != nil {
		return false
	}

	siteUrl, err := url.Parse(app.config.site.url)
	if err != nil {
		return false
	}

	return originUrl.Host == siteUrl.Host && originUrl.Scheme == siteUrl.Scheme
}
