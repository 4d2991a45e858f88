package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/eduflex-lms/backend/assign"
	"github.com/eduflex-lms/backend/httpjson"
	"github.com/eduflex-lms/backend/logger"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
)

// CreateAssignment accepts a JSON body, or a multipart form when the
// instructor attaches a file (fields: title, description, courseId, dueDate,
// file field "attachment").
func (h *AssignHttpHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		httpjson.WriteErrorJson(w, "authentication required", http.StatusUnauthorized, "unauthorized")
		return
	}

	var params assign.CreateAssignmentParams

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
			errMsg := fmt.Sprintf("failed to parse multipart form (maybe the attachment is too large?): %v", err)
			httpjson.WriteErrorJson(w, errMsg, http.StatusBadRequest, "failed_to_parse_multipart_form")
			return
		}

		dueDate, err := time.Parse(time.RFC3339, r.FormValue("dueDate"))
		if err != nil {
			httpjson.WriteErrorJson(w, "dueDate must be an RFC 3339 timestamp", http.StatusBadRequest, "invalid_due_date")
			return
		}

		params = assign.CreateAssignmentParams{
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
			CourseID:    r.FormValue("courseId"),
			DueDate:     dueDate,
		}

		file, header, err := r.FormFile("attachment")
		if err == nil {
			defer file.Close()
			content, err := io.ReadAll(file)
			if err != nil {
				errMsg := fmt.Sprintf("failed to read attachment: %v", err)
				httpjson.WriteErrorJson(w, errMsg, http.StatusBadRequest, "failed_to_read_file")
				return
			}
			params.Attachment = &assign.FileUpload{
				Filename:  header.Filename,
				Content:   content,
				MediaType: mimetype.Detect(content).String(),
			}
		}
	} else {
		type createRequest struct {
			Title       string    `json:"title" validate:"required"`
			Description string    `json:"description"`
			CourseID    string    `json:"courseId" validate:"required"`
			DueDate     time.Time `json:"dueDate" validate:"required"`
		}
		var request createRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if err := validate.Struct(&request); err != nil {
			httpjson.WriteErrorJson(w, err.Error(), http.StatusBadRequest, "invalid_request_body")
			return
		}
		params = assign.CreateAssignmentParams{
			Title:       request.Title,
			Description: request.Description,
			CourseID:    request.CourseID,
			DueDate:     request.DueDate,
		}
	}

	created, err := h.assignSrvc.CreateAssignment(r.Context(), actor, params)
	if err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	h.cache.Delete(instructorCacheKey(actor.ID))

	httpjson.WriteSuccessJson(w, mapAssignment(created))
}

func (h *AssignHttpHandler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		httpjson.WriteErrorJson(w, "authentication required", http.StatusUnauthorized, "unauthorized")
		return
	}
	assignmentId := chi.URLParam(r, "assignmentId")

	if err := h.assignSrvc.DeleteAssignment(r.Context(), actor, assignmentId); err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	h.cache.Delete(instructorCacheKey(actor.ID))

	httpjson.WriteSuccessJson(w, map[string]string{"message": "assignment deleted"})
}
