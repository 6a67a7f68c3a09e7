package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/models"
)

// PostgresPresentationRepository implements presentation persistence
// against PostgreSQL.
//
// Every mutating query is scoped by (id AND user_id) in a single
// predicate so a record can never be changed or deleted across accounts.
// GetByID is deliberately unscoped: callers use the returned owner to
// tell "does not exist" apart from "exists but not owned".
type PostgresPresentationRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresPresentationRepository creates a repository using the
// provided *sql.DB.
func NewPostgresPresentationRepository(db *sql.DB) *PostgresPresentationRepository {
	return &PostgresPresentationRepository{DB: db}
}

const presentationColumns = `id, user_id, content_input, system_instruction, tone, verbosity, no_of_slides, generated_content, created_at`

// Create inserts an empty presentation owned by ownerID and returns it.
func (r *PostgresPresentationRepository) Create(ctx context.Context, id, ownerID string) (*models.Presentation, error) {
	row := r.DB.QueryRowContext(ctx, `
		INSERT INTO presentations (id, user_id) VALUES ($1, $2)
		RETURNING `+presentationColumns,
		id, ownerID)
	p, err := scanPresentation(row)
	if err != nil {
		return nil, fmt.Errorf("create presentation: %w", err)
	}
	return p, nil
}

// GetByID fetches a presentation regardless of owner. Returns
// sql.ErrNoRows when the id does not exist.
func (r *PostgresPresentationRepository) GetByID(ctx context.Context, id string) (*models.Presentation, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+presentationColumns+` FROM presentations WHERE id = $1
	`, id)
	return scanPresentation(row)
}

// ListByOwner returns all presentations owned by ownerID, newest first.
func (r *PostgresPresentationRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Presentation, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+presentationColumns+` FROM presentations WHERE user_id = $1 ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("ListByOwner: %w", err)
	}
	defer rows.Close()

	var out []models.Presentation
	for rows.Next() {
		p, err := scanPresentation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// UpdateInput overwrites the content, instructions, and desired slide
// count for the owner's presentation.
func (r *PostgresPresentationRepository) UpdateInput(ctx context.Context, id, ownerID, content, instructions string, slideCount *int) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE presentations
		   SET content_input = $3, system_instruction = $4, no_of_slides = $5
		 WHERE id = $1 AND user_id = $2
	`, id, ownerID, content, instructions, intOrNull(slideCount))
	return oneRowAffected(res, err)
}

// UpdateTone overwrites the tone field for the owner's presentation.
func (r *PostgresPresentationRepository) UpdateTone(ctx context.Context, id, ownerID, tone string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE presentations SET tone = $3 WHERE id = $1 AND user_id = $2
	`, id, ownerID, tone)
	return oneRowAffected(res, err)
}

// UpdateVerbosity overwrites the verbosity field for the owner's
// presentation.
func (r *PostgresPresentationRepository) UpdateVerbosity(ctx context.Context, id, ownerID string, level int) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE presentations SET verbosity = $3 WHERE id = $1 AND user_id = $2
	`, id, ownerID, level)
	return oneRowAffected(res, err)
}

// UpdateGeneratedContent overwrites the stored generated content. The
// single UPDATE either lands the whole new value or leaves the old one,
// there is no partial write.
func (r *PostgresPresentationRepository) UpdateGeneratedContent(ctx context.Context, id, ownerID, content string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE presentations SET generated_content = $3 WHERE id = $1 AND user_id = $2
	`, id, ownerID, content)
	return oneRowAffected(res, err)
}

// Delete removes the owner's presentation. Hard delete.
func (r *PostgresPresentationRepository) Delete(ctx context.Context, id, ownerID string) error {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM presentations WHERE id = $1 AND user_id = $2
	`, id, ownerID)
	return oneRowAffected(res, err)
}

// oneRowAffected converts a zero-row mutation into sql.ErrNoRows so the
// service layer sees the same signal as a missed lookup.
func oneRowAffected(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func intOrNull(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPresentation(row rowScanner) (*models.Presentation, error) {
	var (
		p           models.Presentation
		contentIn   sql.NullString
		instruction sql.NullString
		tone        sql.NullString
		verbosity   sql.NullInt64
		slideCount  sql.NullInt64
		generated   sql.NullString
	)
	err := row.Scan(&p.ID, &p.UserID, &contentIn, &instruction, &tone,
		&verbosity, &slideCount, &generated, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if contentIn.Valid {
		p.ContentInput = &contentIn.String
	}
	if instruction.Valid {
		p.SystemInstruction = &instruction.String
	}
	if tone.Valid {
		p.Tone = &tone.String
	}
	if verbosity.Valid {
		v := int(verbosity.Int64)
		p.Verbosity = &v
	}
	if slideCount.Valid {
		n := int(slideCount.Int64)
		p.NoOfSlides = &n
	}
	if generated.Valid {
		p.GeneratedContent = &generated.String
	}
	return &p, nil
}
