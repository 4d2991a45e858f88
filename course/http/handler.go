package http

import (
	"net/http"

	"github.com/eduflex-lms/backend/course"
	"github.com/eduflex-lms/backend/user"
	"github.com/eduflex-lms/backend/user/auth"
	"github.com/go-chi/chi/v5"
)

type CourseHttpHandler struct {
	courseSrvc     *course.CourseSrvc
	maxUploadBytes int64
}

func NewCourseHttpHandler(courseSrvc *course.CourseSrvc, maxUploadBytes int64) *CourseHttpHandler {
	return &CourseHttpHandler{
		courseSrvc:     courseSrvc,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *CourseHttpHandler) RegisterRoutes(r *chi.Mux) {
	r.Post("/courses", h.CreateCourse)
	r.Get("/courses", h.ListCourses)
	r.Get("/courses/{courseId}", h.GetCourse)
	r.Patch("/courses/{courseId}", h.UpdateCourse)
	r.Delete("/courses/{courseId}", h.DeleteCourse)
	r.Post("/courses/{courseId}/enroll", h.Enroll)
	r.Post("/courses/{courseId}/materials", h.AddMaterial)
	r.Get("/student/courses", h.ListMyCourses)
	r.Get("/professor/courses", h.ListOwnedCourses)
}

func actorFromRequest(r *http.Request) (user.Actor, bool) {
	claims, ok := r.Context().Value(auth.CtxJwtClaimsKey).(*auth.JwtClaims)
	if !ok || claims == nil {
		return user.Actor{}, false
	}
	return user.Actor{ID: claims.UUID, Role: claims.Role}, true
}
