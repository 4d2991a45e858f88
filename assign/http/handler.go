package http

import (
	"net/http"
	"time"

	"github.com/eduflex-lms/backend/assign"
	"github.com/eduflex-lms/backend/user"
	"github.com/eduflex-lms/backend/user/auth"
	"github.com/go-chi/chi/v5"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// AssignHttpHandler exposes the assignment and submission endpoints.
//
// Assignment existence is checked before permissions, so a non-enrolled
// caller can tell a missing assignment (404) from a forbidden one (403).
// Acceptable for an internal LMS; revisit if tenant isolation ever must hide
// existence.
type AssignHttpHandler struct {
	assignSrvc     *assign.AssignSrvc
	maxUploadBytes int64

	cache   *cache.Cache
	sfGroup singleflight.Group // prevents cache stampedes on the grading list
}

func NewAssignHttpHandler(assignSrvc *assign.AssignSrvc, maxUploadBytes int64) *AssignHttpHandler {
	c := cache.New(5*time.Second, 10*time.Second)
	return &AssignHttpHandler{
		assignSrvc:     assignSrvc,
		maxUploadBytes: maxUploadBytes,
		cache:          c,
	}
}

func (h *AssignHttpHandler) RegisterRoutes(r *chi.Mux) {
	r.Post("/assignments", h.CreateAssignment)
	r.Get("/courses/{courseId}/assignments", h.ListForCourse)
	r.Delete("/assignments/{assignmentId}", h.DeleteAssignment)
	r.Post("/assignments/{assignmentId}/submit", h.Submit)
	r.Post("/professor/assignments/{assignmentId}/grade", h.Grade)
	r.Get("/student/assignments", h.ListForStudent)
	r.Get("/professor/assignments", h.ListForInstructor)
	r.Get("/professor/assignments/{assignmentId}/export", h.ExportSubmissions)
}

func instructorCacheKey(instructorID string) string {
	return "instructor_assignments_" + instructorID
}

func actorFromRequest(r *http.Request) (user.Actor, bool) {
	claims, ok := r.Context().Value(auth.CtxJwtClaimsKey).(*auth.JwtClaims)
	if !ok || claims == nil {
		return user.Actor{}, false
	}
	return user.Actor{ID: claims.UUID, Role: claims.Role}, true
}
