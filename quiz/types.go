package quiz

import "time"

type Quiz struct {
	UUID      string
	Title     string
	CourseID  string
	Questions []Question
	Attempts  []Attempt
	CreatedAt time.Time
}

type Question struct {
	Text          string
	Options       []string
	CorrectOption int
}

// Attempt is one student's scored run through a quiz. Retakes append; every
// attempt is kept.
type Attempt struct {
	StudentID   string
	Answers     []int
	Score       int
	Total       int
	SubmittedAt time.Time
}
