package http

import (
	"archive/zip"
	"io"
	"net/http"

	"github.com/eduflex-lms/backend/httpjson"
	"github.com/eduflex-lms/backend/logger"
	"github.com/go-chi/chi/v5"
	"github.com/klauspost/compress/flate"
)

// ExportSubmissions streams the assignment's submissions as a zip archive.
func (h *AssignHttpHandler) ExportSubmissions(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		httpjson.WriteErrorJson(w, "authentication required", http.StatusUnauthorized, "unauthorized")
		return
	}
	assignmentId := chi.URLParam(r, "assignmentId")

	files, err := h.assignSrvc.ExportSubmissions(r.Context(), actor, assignmentId)
	if err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="submissions_`+assignmentId+`.zip"`)

	log := logger.FromContext(r.Context())
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestSpeed)
	})

	for _, file := range files {
		fw, err := zw.Create(file.Name)
		if err != nil {
			log.Error("failed to add file to zip", "name", file.Name, "error", err)
			return
		}
		if _, err := fw.Write(file.Content); err != nil {
			log.Error("failed to write file to zip", "name", file.Name, "error", err)
			return
		}
	}

	if err := zw.Close(); err != nil {
		log.Error("failed to finish zip archive", "error", err)
	}
}
