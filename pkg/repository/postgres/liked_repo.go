package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobswipe/backend/pkg/liked"
)

// LikedRepository persists liked-job snapshots. A user may like each
// external job id at most once.
type LikedRepository struct {
	pool *pgxpool.Pool
}

func NewLikedRepository(pool *pgxpool.Pool) (*LikedRepository, error) {
	r := &LikedRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LikedRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS liked_jobs (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL,
	job_id TEXT NOT NULL,
	title TEXT NOT NULL,
	company TEXT NOT NULL,
	location TEXT NOT NULL,
	description TEXT NOT NULL,
	apply_link TEXT NOT NULL,
	publisher_link TEXT NOT NULL,
	match_score INT NOT NULL,
	matching_skills TEXT[] NOT NULL,
	liked_at TIMESTAMPTZ NOT NULL,
	applied BOOLEAN NOT NULL DEFAULT FALSE,
	applied_at TIMESTAMPTZ,
	app_full_name TEXT,
	app_email TEXT,
	app_phone TEXT,
	app_cover_letter TEXT,
	app_resume_url TEXT,
	UNIQUE (user_id, job_id)
);
CREATE INDEX IF NOT EXISTS liked_jobs_user_idx ON liked_jobs (user_id, liked_at DESC);
`)
	return err
}

func (r *LikedRepository) Create(ctx context.Context, j liked.Job) error {
	if j.MatchingSkills == nil {
		j.MatchingSkills = []string{}
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO liked_jobs (id, user_id, job_id, title, company, location, description,
	apply_link, publisher_link, match_score, matching_skills, liked_at, applied)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
`, j.ID, j.UserID, j.JobID, j.Title, j.Company, j.Location, j.Description,
		j.ApplyLink, j.PublisherLink, j.MatchScore, j.MatchingSkills, j.LikedAt, j.Applied)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return liked.ErrAlreadyLiked
		}
		return err
	}
	return nil
}

const likedColumns = `id, user_id, job_id, title, company, location, description,
	apply_link, publisher_link, match_score, matching_skills, liked_at, applied, applied_at,
	app_full_name, app_email, app_phone, app_cover_letter, app_resume_url`

func (r *LikedRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]liked.Job, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+likedColumns+`
FROM liked_jobs WHERE user_id = $1
ORDER BY liked_at DESC
LIMIT $2 OFFSET $3
`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []liked.Job
	for rows.Next() {
		j, err := scanLiked(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, j)
	}
	return res, rows.Err()
}

func (r *LikedRepository) GetForUser(ctx context.Context, userID uuid.UUID, id uuid.UUID) (liked.Job, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+likedColumns+`
FROM liked_jobs WHERE id = $1 AND user_id = $2
`, id, userID)
	j, err := scanLiked(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return liked.Job{}, liked.ErrNotFound
		}
		return liked.Job{}, err
	}
	return j, nil
}

func (r *LikedRepository) MarkApplied(ctx context.Context, userID uuid.UUID, id uuid.UUID, appliedAt time.Time, app *liked.Application) error {
	var fullName, email, phone, coverLetter, resumeURL *string
	if app != nil {
		fullName, email, phone = &app.FullName, &app.Email, &app.Phone
		coverLetter, resumeURL = &app.CoverLetter, &app.ResumeURL
	}
	tag, err := r.pool.Exec(ctx, `
UPDATE liked_jobs SET applied = TRUE, applied_at = $3,
	app_full_name = $4, app_email = $5, app_phone = $6,
	app_cover_letter = $7, app_resume_url = $8
WHERE id = $1 AND user_id = $2
`, id, userID, appliedAt, fullName, email, phone, coverLetter, resumeURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return liked.ErrNotFound
	}
	return nil
}

func (r *LikedRepository) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
DELETE FROM liked_jobs WHERE id = $1 AND user_id = $2
`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return liked.ErrNotFound
	}
	return nil
}

func scanLiked(row pgx.Row) (liked.Job, error) {
	var j liked.Job
	var likedAt time.Time
	var appliedAt *time.Time
	var fullName, email, phone, coverLetter, resumeURL *string
	if err := row.Scan(&j.ID, &j.UserID, &j.JobID, &j.Title, &j.Company, &j.Location, &j.Description,
		&j.ApplyLink, &j.PublisherLink, &j.MatchScore, &j.MatchingSkills, &likedAt, &j.Applied, &appliedAt,
		&fullName, &email, &phone, &coverLetter, &resumeURL); err != nil {
		return liked.Job{}, err
	}
	j.LikedAt = likedAt.UTC()
	if appliedAt != nil {
		t := appliedAt.UTC()
		j.AppliedAt = &t
	}
	if j.MatchingSkills == nil {
		j.MatchingSkills = []string{}
	}
	if fullName != nil || email != nil || phone != nil || coverLetter != nil || resumeURL != nil {
		app := liked.Application{}
		if fullName != nil {
			app.FullName = *fullName
		}
		if email != nil {
			app.Email = *email
		}
		if phone != nil {
			app.Phone = *phone
		}
		if coverLetter != nil {
			app.CoverLetter = *coverLetter
		}
		if resumeURL != nil {
			app.ResumeURL = *resumeURL
		}
		j.Application = &app
	}
	return j, nil
}
