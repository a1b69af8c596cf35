package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/course-builder/internal/types"
)

const materialColumns = `id, course_id, material_type, step_order, title, content, approved_content, approval_status, status, created_at, updated_at`

func scanMaterial(row pgx.Row, m *types.Material) error {
	return row.Scan(&m.ID, &m.CourseID, &m.MaterialType, &m.StepOrder, &m.Title,
		&m.Content, &m.ApprovedContent, &m.ApprovalStatus, &m.Status, &m.CreatedAt, &m.UpdatedAt)
}

// GetMaterial retrieves a material by ID
func (db *DB) GetMaterial(ctx context.Context, id uuid.UUID) (*types.Material, error) {
	var m types.Material
	err := scanMaterial(db.pool.QueryRow(ctx,
		`SELECT `+materialColumns+` FROM course_materials WHERE id = $1`, id,
	), &m)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get material: %w", err)
	}
	return &m, nil
}

// GetMaterialByType retrieves one course material by its type
func (db *DB) GetMaterialByType(ctx context.Context, courseID uuid.UUID, mt types.MaterialType) (*types.Material, error) {
	var m types.Material
	err := scanMaterial(db.pool.QueryRow(ctx,
		`SELECT `+materialColumns+` FROM course_materials WHERE course_id = $1 AND material_type = $2`,
		courseID, string(mt),
	), &m)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get material %s: %w", mt, err)
	}
	return &m, nil
}

// ListMaterials retrieves all materials of a course in step order
func (db *DB) ListMaterials(ctx context.Context, courseID uuid.UUID) ([]types.Material, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+materialColumns+` FROM course_materials WHERE course_id = $1 ORDER BY step_order ASC`,
		courseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}
	defer rows.Close()

	var materials []types.Material
	for rows.Next() {
		var m types.Material
		if err := scanMaterial(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan material: %w", err)
		}
		materials = append(materials, m)
	}
	return materials, nil
}

// NextEligibleMaterial returns the earliest material eligible for generation:
// pending or failed status, or a rejected approval.
func (db *DB) NextEligibleMaterial(ctx context.Context, courseID uuid.UUID) (*types.Material, error) {
	var m types.Material
	err := scanMaterial(db.pool.QueryRow(ctx,
		`SELECT `+materialColumns+` FROM course_materials
		 WHERE course_id = $1
		   AND (status IN ('pending', 'failed') OR approval_status = 'rejected')
		 ORDER BY step_order ASC
		 LIMIT 1`,
		courseID,
	), &m)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find eligible material: %w", err)
	}
	return &m, nil
}

// ClaimMaterial atomically moves an eligible material into generating status.
// The WHERE clause repeats the eligibility predicate so two concurrent
// invocations cannot both claim the same material.
func (db *DB) ClaimMaterial(ctx context.Context, materialID uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`UPDATE course_materials
		 SET status = 'generating', updated_at = NOW()
		 WHERE id = $1
		   AND (status IN ('pending', 'failed') OR approval_status = 'rejected')`,
		materialID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to claim material: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// SaveMaterialContent persists generated content and status. A completed
// material re-enters the approval queue: approval status resets to pending
// and any previously approved content is cleared.
func (db *DB) SaveMaterialContent(ctx context.Context, materialID uuid.UUID, content, status string) error {
	var err error
	if status == types.MaterialStatusCompleted {
		_, err = db.pool.Exec(ctx,
			`UPDATE course_materials
			 SET content = $1, status = $2, approval_status = 'pending', approved_content = NULL, updated_at = NOW()
			 WHERE id = $3`,
			content, status, materialID,
		)
	} else {
		_, err = db.pool.Exec(ctx,
			`UPDATE course_materials SET content = $1, status = $2, updated_at = NOW() WHERE id = $3`,
			content, status, materialID,
		)
	}
	if err != nil {
		return fmt.Errorf("failed to save material content: %w", err)
	}
	return nil
}

// SetMaterialApproval records the human verdict. Rejection resets the
// material to pending status so the next advance regenerates it.
func (db *DB) SetMaterialApproval(ctx context.Context, materialID uuid.UUID, approvalStatus string, approvedContent *string) error {
	var err error
	if approvalStatus == types.ApprovalRejected {
		_, err = db.pool.Exec(ctx,
			`UPDATE course_materials
			 SET approval_status = $1, approved_content = NULL, status = 'pending', updated_at = NOW()
			 WHERE id = $2`,
			approvalStatus, materialID,
		)
	} else {
		_, err = db.pool.Exec(ctx,
			`UPDATE course_materials
			 SET approval_status = $1, approved_content = $2, updated_at = NOW()
			 WHERE id = $3`,
			approvalStatus, approvedContent, materialID,
		)
	}
	if err != nil {
		return fmt.Errorf("failed to set material approval: %w", err)
	}
	return nil
}
