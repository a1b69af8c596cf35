package db

import "context"

// schema is applied idempotently at startup. Column defaults mirror the
// initial state the orchestrator expects: pending materials, pending
// approvals, a draft course, and a pending pipeline at step zero.
const schema = `
CREATE TABLE IF NOT EXISTS courses (
    id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    title         TEXT NOT NULL,
    subject       TEXT NOT NULL,
    duration      TEXT NOT NULL,
    level         TEXT NOT NULL,
    environment   TEXT NOT NULL,
    participants  TEXT NOT NULL,
    tone          TEXT NOT NULL,
    language      TEXT NOT NULL,
    status        TEXT NOT NULL DEFAULT 'draft',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS course_materials (
    id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    course_id        UUID NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
    material_type    TEXT NOT NULL,
    step_order       INT NOT NULL,
    title            TEXT NOT NULL,
    content          TEXT,
    approved_content TEXT,
    approval_status  TEXT NOT NULL DEFAULT 'pending',
    status           TEXT NOT NULL DEFAULT 'pending',
    created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (course_id, material_type)
);

CREATE TABLE IF NOT EXISTS generation_pipelines (
    id                   UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    course_id            UUID NOT NULL UNIQUE REFERENCES courses(id) ON DELETE CASCADE,
    current_step         INT NOT NULL DEFAULT 0,
    total_steps          INT NOT NULL DEFAULT 8,
    progress_percent     INT NOT NULL DEFAULT 0,
    status               TEXT NOT NULL DEFAULT 'pending',
    error_message        TEXT,
    current_material_id  UUID REFERENCES course_materials(id) ON DELETE SET NULL,
    waiting_for_approval BOOLEAN NOT NULL DEFAULT FALSE,
    created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_materials_course_step ON course_materials(course_id, step_order);
`

// Migrate applies the schema. Safe to call on every startup.
func (db *DB) Migrate(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, schema)
	return err
}
