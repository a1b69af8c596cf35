package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/course-builder/internal/types"
)

const courseColumns = `id, title, subject, duration, level, environment, participants, tone, language, status, created_at, updated_at`

func scanCourse(row pgx.Row, c *types.Course) error {
	return row.Scan(&c.ID, &c.Title, &c.Subject, &c.Duration, &c.Level, &c.Environment,
		&c.Participants, &c.Tone, &c.Language, &c.Status, &c.CreatedAt, &c.UpdatedAt)
}

// CreateCourse inserts the course, its eight pending materials, and the
// pipeline row in a single transaction.
func (db *DB) CreateCourse(ctx context.Context, input *types.CourseInput) (*types.Course, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var course types.Course
	err = scanCourse(tx.QueryRow(ctx,
		`INSERT INTO courses (title, subject, duration, level, environment, participants, tone, language, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'draft')
		 RETURNING `+courseColumns,
		input.Title, input.Subject, input.Duration, input.Level,
		input.Environment, input.Participants, input.Tone, input.Language,
	), &course)
	if err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	for _, mt := range types.MaterialOrder {
		_, err = tx.Exec(ctx,
			`INSERT INTO course_materials (course_id, material_type, step_order, title)
			 VALUES ($1, $2, $3, $4)`,
			course.ID, string(mt), mt.StepOrder(), mt.DisplayName(),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to seed material %s: %w", mt, err)
		}
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO generation_pipelines (course_id, total_steps) VALUES ($1, $2)`,
		course.ID, types.TotalSteps,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit course creation: %w", err)
	}
	return &course, nil
}

// GetCourse retrieves a course by ID
func (db *DB) GetCourse(ctx context.Context, id uuid.UUID) (*types.Course, error) {
	var course types.Course
	err := scanCourse(db.pool.QueryRow(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE id = $1`, id,
	), &course)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return &course, nil
}

// ListCourses retrieves recent courses
func (db *DB) ListCourses(ctx context.Context, limit int) ([]types.Course, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT `+courseColumns+` FROM courses ORDER BY created_at DESC LIMIT $1`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	var courses []types.Course
	for rows.Next() {
		var c types.Course
		if err := scanCourse(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, nil
}

// UpdateCourseStatus sets the course status
func (db *DB) UpdateCourseStatus(ctx context.Context, id uuid.UUID, status string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE courses SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update course status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("course not found: %s", id)
	}
	return nil
}
