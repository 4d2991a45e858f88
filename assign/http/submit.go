package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/eduflex-lms/backend/assign"
	"github.com/eduflex-lms/backend/httpjson"
	"github.com/eduflex-lms/backend/logger"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
)

// Submit accepts either a JSON body {"submission": "..."} or a multipart
// form with a "file" field, mirroring the two ways students hand in work.
func (h *AssignHttpHandler) Submit(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		httpjson.WriteErrorJson(w, "authentication required", http.StatusUnauthorized, "unauthorized")
		return
	}
	assignmentId := chi.URLParam(r, "assignmentId")

	var params assign.SubmitParams

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
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

		content, err := io.ReadAll(file)
		if err != nil {
			errMsg := fmt.Sprintf("failed to read file: %v", err)
			httpjson.WriteErrorJson(w, errMsg, http.StatusBadRequest, "failed_to_read_file")
			return
		}

		params.File = &assign.FileUpload{
			Filename:  header.Filename,
			Content:   content,
			MediaType: mimetype.Detect(content).String(),
		}
	} else {
		type submitRequest struct {
			Submission *string `json:"submission"`
		}
		var request submitRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		params.Text = request.Submission
	}

	result, err := h.assignSrvc.Submit(r.Context(), assignmentId, actor, params)
	if err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	type submitResponse struct {
		AssignmentID string     `json:"assignmentId"`
		Submission   Submission `json:"submission"`
	}

	httpjson.WriteSuccessJson(w, submitResponse{
		AssignmentID: result.AssignmentID,
		Submission:   mapSubmission(result.Submission),
	})
}
