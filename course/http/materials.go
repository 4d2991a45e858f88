package http

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/eduflex-lms/backend/course"
	"github.com/eduflex-lms/backend/httpjson"
	"github.com/eduflex-lms/backend/logger"
	"github.com/go-chi/chi/v5"
)

var allowedFilenameChars = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

func (h *CourseHttpHandler) AddMaterial(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		httpjson.WriteErrorJson(w, "authentication required", http.StatusUnauthorized, "unauthorized")
		return
	}
	courseId := chi.URLParam(r, "courseId")

	err := r.ParseMultipartForm(h.maxUploadBytes)
	if err != nil {
		errMsg := fmt.Sprintf("failed to parse multipart form (maybe the file is too large?): %v", err)
		httpjson.WriteErrorJson(w, errMsg, http.StatusBadRequest, "failed_to_parse_multipart_form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		errMsg := fmt.Sprintf("failed to get file: %v", err)
		httpjson.WriteErrorJson(w, errMsg, http.StatusBadRequest, "failed_to_get_file")
		return
	}
	defer file.Close()

	filename := header.Filename
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))
	if !allowedFilenameChars.MatchString(nameWithoutExt) {
		errMsg := fmt.Sprintf("invalid filename (only alphanumeric characters, underscores, and hyphens are allowed): %s", filename)
		httpjson.WriteErrorJson(w, errMsg, http.StatusBadRequest, "invalid_filename")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		errMsg := fmt.Sprintf("failed to read file: %v", err)
		httpjson.WriteErrorJson(w, errMsg, http.StatusBadRequest, "failed_to_read_file")
		return
	}

	title := r.FormValue("title")
	if title == "" {
		title = nameWithoutExt
	}

	updated, err := h.courseSrvc.AddMaterial(r.Context(), actor, courseId, course.AddMaterialParams{
		Title:     title,
		Filename:  filename,
		Content:   content,
		MediaType: header.Header.Get("Content-Type"),
	})
	if err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapCourse(updated))
}
