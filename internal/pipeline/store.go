package pipeline

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/course-builder/internal/types"
)

// Store is the narrow persistence boundary the orchestrator drives. The
// implementation is responsible for atomicity of individual reads and writes;
// the orchestrator never assumes cross-call transactions. Lookup methods
// return (nil, nil) when the record does not exist.
type Store interface {
	// CreateCourse inserts the course, its eight pending materials, and the
	// pipeline row, all in one transaction.
	CreateCourse(ctx context.Context, input *types.CourseInput) (*types.Course, error)
	GetCourse(ctx context.Context, id uuid.UUID) (*types.Course, error)
	ListCourses(ctx context.Context, limit int) ([]types.Course, error)
	UpdateCourseStatus(ctx context.Context, id uuid.UUID, status string) error

	GetMaterial(ctx context.Context, id uuid.UUID) (*types.Material, error)
	GetMaterialByType(ctx context.Context, courseID uuid.UUID, mt types.MaterialType) (*types.Material, error)
	// ListMaterials returns all materials of a course ordered by step_order.
	ListMaterials(ctx context.Context, courseID uuid.UUID) ([]types.Material, error)
	// NextEligibleMaterial returns the earliest material by step_order whose
	// status is pending or failed, or whose approval status is rejected.
	NextEligibleMaterial(ctx context.Context, courseID uuid.UUID) (*types.Material, error)
	// ClaimMaterial atomically moves an eligible material to generating.
	// Returns false when the material was not eligible anymore (a concurrent
	// invocation won the claim).
	ClaimMaterial(ctx context.Context, materialID uuid.UUID) (bool, error)
	// SaveMaterialContent persists generated content and the resulting
	// status. Completing a material resets its approval status to pending.
	SaveMaterialContent(ctx context.Context, materialID uuid.UUID, content, status string) error
	// SetMaterialApproval records the human verdict. Rejection resets the
	// material to pending status so it becomes eligible for regeneration.
	SetMaterialApproval(ctx context.Context, materialID uuid.UUID, approvalStatus string, approvedContent *string) error

	GetPipeline(ctx context.Context, courseID uuid.UUID) (*types.Pipeline, error)
	UpdatePipeline(ctx context.Context, p *types.Pipeline) error
}
