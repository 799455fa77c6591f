package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bagdasarian/project-roster/internal/domain"
)

type ctxKey string

const (
	ctxKeyRequestID ctxKey = "request_id"
	ctxKeyViewer    ctxKey = "viewer"
)

func (h *Handler) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", reqID)
		ctx := context.WithValue(r.Context(), ctxKeyRequestID, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Session кладет в контекст посетителя из сессионной куки.
// Недействительный токен не ошибка: посетитель считается анонимным.
func (h *Handler) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewer, err := h.sessions.FromRequest(r)
		if err != nil {
			h.log.Debugw("session rejected",
				"request_id", requestIDFromContext(r.Context()),
				"error", err,
			)
		}
		ctx := context.WithValue(r.Context(), ctxKeyViewer, viewer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(recorder, r)

		h.log.Infow("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.statusCode,
			"duration", time.Since(start),
			"request_id", requestIDFromContext(r.Context()),
		)
	})
}

func requestIDFromContext(ctx context.Context) string {
	reqID, _ := ctx.Value(ctxKeyRequestID).(string)
	return reqID
}

func viewerFromContext(ctx context.Context) domain.AdminStatus {
	viewer, ok := ctx.Value(ctxKeyViewer).(domain.AdminStatus)
	if !ok {
		return domain.Anonymous
	}
	return viewer
}
