package redirect

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
)

func New(log *slog.Logger, target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.redirect.New"

		log.Debug("redirecting",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("target", target),
		)

		http.Redirect(w, r, target, http.StatusFound)
	}
}
