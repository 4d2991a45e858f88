package http

import (
	"time"

	"github.com/eduflex-lms/backend/course"
)

type Material struct {
	Title      string    `json:"title"`
	FileUrl    string    `json:"fileUrl"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type Course struct {
	UUID        string     `json:"uuid"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ProfessorID string     `json:"professorId"`
	StudentIDs  []string   `json:"studentIds"`
	Materials   []Material `json:"materials"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func mapCourse(c *course.Course) Course {
	materials := make([]Material, 0, len(c.Materials))
	for _, m := range c.Materials {
		materials = append(materials, Material{
			Title:      m.Title,
			FileUrl:    m.FileUrl,
			UploadedAt: m.UploadedAt,
		})
	}
	return Course{
		UUID:        c.UUID,
		Title:       c.Title,
		Description: c.Description,
		ProfessorID: c.ProfessorID,
		StudentIDs:  c.StudentIDs,
		Materials:   materials,
		CreatedAt:   c.CreatedAt,
	}
}

func mapCourses(courses []*course.Course) []Course {
	out := make([]Course, 0, len(courses))
	for _, c := range courses {
		out = append(out, mapCourse(c))
	}
	return out
}
