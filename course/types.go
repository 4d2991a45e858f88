package course

import "time"

type Course struct {
	UUID        string
	Title       string
	Description string
	ProfessorID string
	StudentIDs  []string
	Materials   []Material
	CreatedAt   time.Time
}

type Material struct {
	Title      string
	FileUrl    string
	UploadedAt time.Time
}
