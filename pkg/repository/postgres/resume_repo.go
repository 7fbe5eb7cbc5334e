package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobswipe/backend/pkg/resume"
)

// ResumeRepository stores resume metadata and the signals derived from
// each upload. One signals row per user; uploads overwrite it.
type ResumeRepository struct {
	pool *pgxpool.Pool
}

func NewResumeRepository(pool *pgxpool.Pool) (*ResumeRepository, error) {
	r := &ResumeRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ResumeRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS resumes (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL,
	filename TEXT NOT NULL,
	mime_type TEXT NOT NULL,
	size_bytes BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS resumes_owner_idx ON resumes (owner_id, created_at DESC);
CREATE TABLE IF NOT EXISTS resume_signals (
	user_id UUID PRIMARY KEY,
	profession TEXT NOT NULL,
	skills TEXT[] NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

func (r *ResumeRepository) CreateMeta(ctx context.Context, rs resume.Resume) error {
	if rs.ID == uuid.Nil {
		rs.ID = uuid.New()
	}
	if rs.CreatedAt.IsZero() {
		rs.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO resumes (id, owner_id, filename, mime_type, size_bytes, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`, rs.ID, rs.OwnerID, rs.Filename, rs.MimeType, rs.Size, rs.CreatedAt)
	return err
}

func (r *ResumeRepository) GetMetaForOwner(ctx context.Context, ownerID uuid.UUID) (resume.Resume, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, filename, mime_type, size_bytes, created_at
FROM resumes WHERE owner_id = $1
ORDER BY created_at DESC
LIMIT 1
`, ownerID)
	var m resume.Resume
	var created time.Time
	if err := row.Scan(&m.ID, &m.OwnerID, &m.Filename, &m.MimeType, &m.Size, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Resume{}, resume.ErrNotFound
		}
		return resume.Resume{}, err
	}
	m.CreatedAt = created.UTC()
	return m, nil
}

func (r *ResumeRepository) SaveSignals(ctx context.Context, userID uuid.UUID, s resume.Signals) error {
	if s.Skills == nil {
		s.Skills = []string{}
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO resume_signals (user_id, profession, skills, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id) DO UPDATE SET
	profession = EXCLUDED.profession,
	skills = EXCLUDED.skills,
	updated_at = EXCLUDED.updated_at
`, userID, s.Profession, s.Skills, s.UpdatedAt)
	return err
}

func (r *ResumeRepository) LoadSignals(ctx context.Context, userID uuid.UUID) (resume.Signals, error) {
	row := r.pool.QueryRow(ctx, `
SELECT profession, skills, updated_at FROM resume_signals WHERE user_id = $1
`, userID)
	var s resume.Signals
	var updated time.Time
	if err := row.Scan(&s.Profession, &s.Skills, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.DefaultSignals(), nil
		}
		return resume.Signals{}, err
	}
	if s.Skills == nil {
		s.Skills = []string{}
	}
	s.UpdatedAt = updated.UTC()
	return s, nil
}

func (r *ResumeRepository) ListSignals(ctx context.Context, limit int) (map[uuid.UUID]resume.Signals, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx, `
SELECT user_id, profession, skills, updated_at FROM resume_signals
ORDER BY updated_at DESC
LIMIT $1
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make(map[uuid.UUID]resume.Signals)
	for rows.Next() {
		var userID uuid.UUID
		var s resume.Signals
		var updated time.Time
		if err := rows.Scan(&userID, &s.Profession, &s.Skills, &updated); err != nil {
			return nil, err
		}
		if s.Skills == nil {
			s.Skills = []string{}
		}
		s.UpdatedAt = updated.UTC()
		res[userID] = s
	}
	return res, rows.Err()
}
