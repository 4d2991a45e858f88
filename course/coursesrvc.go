package course

import "context"

type CourseSrvc struct {
	repo  CourseRepo
	blobs BlobStore
}

func NewCourseService(repo CourseRepo, blobs BlobStore) *CourseSrvc {
	return &CourseSrvc{repo: repo, blobs: blobs}
}

// CourseRepo is the persistence contract for course records.
type CourseRepo interface {
	Get(ctx context.Context, uuid string) (*CourseRow, error)
	List(ctx context.Context) ([]*CourseRow, error)
	Save(ctx context.Context, row *CourseRow) error
	Delete(ctx context.Context, uuid string) error
}

// BlobStore stores uploaded course materials.
type BlobStore interface {
	Store(ctx context.Context, key string, content []byte, mediaType string) (string, error)
	Delete(ctx context.Context, reference string) error
}

func courseFromRow(row *CourseRow) *Course {
	materials := make([]Material, 0, len(row.Materials))
	for _, m := range row.Materials {
		materials = append(materials, Material{
			Title:      m.Title,
			FileUrl:    m.FileUrl,
			UploadedAt: m.UploadedAt,
		})
	}
	return &Course{
		UUID:        row.Uuid,
		Title:       row.Title,
		Description: row.Description,
		ProfessorID: row.ProfessorUuid,
		StudentIDs:  append([]string(nil), row.StudentUuids...),
		Materials:   materials,
		CreatedAt:   row.CreatedAt,
	}
}
