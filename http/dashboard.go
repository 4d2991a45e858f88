package http

import (
	"net/http"

	"github.com/eduflex-lms/backend/assign"
	"github.com/eduflex-lms/backend/course"
	"github.com/eduflex-lms/backend/httpjson"
	"github.com/eduflex-lms/backend/logger"
	"github.com/eduflex-lms/backend/user"
	"github.com/eduflex-lms/backend/user/auth"
)

// DashboardHandler aggregates counts across the course and assignment
// services for the professor landing page.
type DashboardHandler struct {
	courseSrvc *course.CourseSrvc
	assignSrvc *assign.AssignSrvc
}

func NewDashboardHandler(courseSrvc *course.CourseSrvc, assignSrvc *assign.AssignSrvc) *DashboardHandler {
	return &DashboardHandler{
		courseSrvc: courseSrvc,
		assignSrvc: assignSrvc,
	}
}

func (h *DashboardHandler) ProfessorDashboard(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(auth.CtxJwtClaimsKey).(*auth.JwtClaims)
	if !ok || claims == nil {
		httpjson.WriteErrorJson(w, "authentication required", http.StatusUnauthorized, "unauthorized")
		return
	}
	if claims.Role != user.RoleProfessor && claims.Role != user.RoleAdmin {
		httpjson.WriteErrorJson(w, "only professors can do that", http.StatusForbidden, "not_professor")
		return
	}

	courses, err := h.courseSrvc.ListCoursesForProfessor(r.Context(), claims.UUID)
	if err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	totalAssignments, err := h.assignSrvc.CountForInstructor(r.Context(), claims.UUID)
	if err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	type dashboardResponse struct {
		TotalCourses     int `json:"totalCourses"`
		TotalAssignments int `json:"totalAssignments"`
	}

	httpjson.WriteSuccessJson(w, dashboardResponse{
		TotalCourses:     len(courses),
		TotalAssignments: totalAssignments,
	})
}
