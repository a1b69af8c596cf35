package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/course-builder/internal/types"
)

const pipelineColumns = `id, course_id, current_step, total_steps, progress_percent, status, error_message, current_material_id, waiting_for_approval, created_at, updated_at`

func scanPipeline(row pgx.Row, p *types.Pipeline) error {
	return row.Scan(&p.ID, &p.CourseID, &p.CurrentStep, &p.TotalSteps, &p.ProgressPercent,
		&p.Status, &p.ErrorMessage, &p.CurrentMaterialID, &p.WaitingForApproval, &p.CreatedAt, &p.UpdatedAt)
}

// GetPipeline retrieves the pipeline row for a course
func (db *DB) GetPipeline(ctx context.Context, courseID uuid.UUID) (*types.Pipeline, error) {
	var p types.Pipeline
	err := scanPipeline(db.pool.QueryRow(ctx,
		`SELECT `+pipelineColumns+` FROM generation_pipelines WHERE course_id = $1`, courseID,
	), &p)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pipeline: %w", err)
	}
	return &p, nil
}

// UpdatePipeline persists the mutable pipeline fields
func (db *DB) UpdatePipeline(ctx context.Context, p *types.Pipeline) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE generation_pipelines
		 SET current_step = $1, progress_percent = $2, status = $3, error_message = $4,
		     current_material_id = $5, waiting_for_approval = $6, updated_at = NOW()
		 WHERE id = $7`,
		p.CurrentStep, p.ProgressPercent, p.Status, p.ErrorMessage,
		p.CurrentMaterialID, p.WaitingForApproval, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update pipeline: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("pipeline not found: %s", p.ID)
	}
	return nil
}
