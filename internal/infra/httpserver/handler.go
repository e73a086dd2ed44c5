package httpserver

import (
	"net/http"
	"strconv"

	"github.com/ameerdhi7/bashy/internal/domain"
)

// Handler writes the same reply for every request. Method, path, headers
// and body are never looked at.
type Handler struct {
	status      int
	contentType string
	body        []byte
	length      string
}

func NewHandler(reply domain.Reply) *Handler {
	status := reply.Status
	if status == 0 {
		status = http.StatusOK
	}
	body := []byte(reply.Body)
	return &Handler{
		status:      status,
		contentType: reply.ContentType,
		body:        body,
		length:      strconv.Itoa(len(body)),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	hdr := w.Header()
	if h.contentType != "" {
		hdr.Set("Content-Type", h.contentType)
	}
	hdr.Set("Content-Length", h.length)
	w.WriteHeader(h.status)
	_, _ = w.Write(h.body)
}
