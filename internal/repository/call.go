package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"loadvoice-synqall/internal/domain"
)

// CallRepo reads call extractions and stores review decisions.
type CallRepo struct {
	db    *pgxpool.Pool
	retry *Retrier
}

// NewCallRepo creates a new CallRepo.
func NewCallRepo(db *pgxpool.Pool, retry *Retrier) *CallRepo {
	return &CallRepo{db: db, retry: retry}
}

// GetExtraction returns the extraction of a call, or nil if the call does not exist.
func (r *CallRepo) GetExtraction(ctx context.Context, callID uuid.UUID) (*domain.CallExtraction, error) {
	var out *domain.CallExtraction
	err := r.retry.Do(ctx, "call.get_extraction", func(ctx context.Context) error {
		e, err := r.getExtraction(ctx, callID)
		out = e
		return err
	})
	return out, err
}

func (r *CallRepo) getExtraction(ctx context.Context, callID uuid.UUID) (*domain.CallExtraction, error) {
	e := domain.CallExtraction{CallID: callID}
	err := r.db.QueryRow(ctx, `
        SELECT owner_id, transcription_confidence, sentiment,
               qualified, follow_up_needed, not_interested,
               qualification_score, budget, required_fields
        FROM calls
        WHERE id = $1
    `, callID).Scan(
		&e.OwnerID, &e.TranscriptionConfidence, &e.Sentiment,
		&e.Outcome.Qualified, &e.Outcome.FollowUpNeeded, &e.Outcome.NotInterested,
		&e.QualificationScore, &e.Budget, &e.RequiredFields,
	)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get call %s: %w", callID, err)
	}

	rows, err := r.db.Query(ctx, `
        SELECT name, value, confidence
        FROM call_extracted_fields
        WHERE call_id = $1
        ORDER BY position, name
    `, callID)
	if err != nil {
		return nil, fmt.Errorf("list fields of call %s: %w", callID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			f   domain.ExtractedField
			raw []byte
		)
		if err := rows.Scan(&f.Name, &raw, &f.Confidence); err != nil {
			return nil, fmt.Errorf("scan field: %w", err)
		}
		if raw != nil {
			if err := json.Unmarshal(raw, &f.Value); err != nil {
				return nil, fmt.Errorf("decode field %q: %w", f.Name, err)
			}
		}
		e.Fields = append(e.Fields, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &e, nil
}

// SaveExtraction upserts a call extraction and replaces its fields.
func (r *CallRepo) SaveExtraction(ctx context.Context, e domain.CallExtraction) error {
	return r.retry.Do(ctx, "call.save_extraction", func(ctx context.Context) error {
		return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
			return saveExtraction(ctx, tx, e)
		})
	})
}

func saveExtraction(ctx context.Context, tx pgx.Tx, e domain.CallExtraction) error {
	required := e.RequiredFields
	if required == nil {
		required = []string{}
	}
	if _, err := tx.Exec(ctx, `
        INSERT INTO calls (
            id, owner_id, transcription_confidence, sentiment,
            qualified, follow_up_needed, not_interested,
            qualification_score, budget, required_fields
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        ON CONFLICT (id) DO UPDATE SET
            owner_id = EXCLUDED.owner_id,
            transcription_confidence = EXCLUDED.transcription_confidence,
            sentiment = EXCLUDED.sentiment,
            qualified = EXCLUDED.qualified,
            follow_up_needed = EXCLUDED.follow_up_needed,
            not_interested = EXCLUDED.not_interested,
            qualification_score = EXCLUDED.qualification_score,
            budget = EXCLUDED.budget,
            required_fields = EXCLUDED.required_fields
    `,
		e.CallID, e.OwnerID, e.TranscriptionConfidence, e.Sentiment,
		e.Outcome.Qualified, e.Outcome.FollowUpNeeded, e.Outcome.NotInterested,
		e.QualificationScore, e.Budget, required,
	); err != nil {
		return fmt.Errorf("upsert call %s: %w", e.CallID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM call_extracted_fields WHERE call_id = $1`, e.CallID); err != nil {
		return fmt.Errorf("clear fields of call %s: %w", e.CallID, err)
	}

	batch := &pgx.Batch{}
	for i, f := range e.Fields {
		var raw []byte
		if f.Value != nil {
			b, err := json.Marshal(f.Value)
			if err != nil {
				return fmt.Errorf("encode field %q: %w", f.Name, err)
			}
			raw = b
		}
		batch.Queue(`
            INSERT INTO call_extracted_fields (call_id, name, value, confidence, position)
            VALUES ($1, $2, $3, $4, $5)
            ON CONFLICT (call_id, name) DO UPDATE SET
                value = EXCLUDED.value, confidence = EXCLUDED.confidence, position = EXCLUDED.position
        `, e.CallID, f.Name, raw, f.Confidence, i)
	}
	if batch.Len() == 0 {
		return nil
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert fields of call %s: %w", e.CallID, err)
	}
	return nil
}

// SaveReview stores the review decision on the call row.
// It reports false if the call does not exist.
func (r *CallRepo) SaveReview(ctx context.Context, rv domain.CallReview) (bool, error) {
	var updated bool
	err := r.retry.Do(ctx, "call.save_review", func(ctx context.Context) error {
		ct, err := r.db.Exec(ctx, `
            UPDATE calls
            SET needs_review = $2,
                review_action = $3,
                review_priority = $4,
                quality_score = $5,
                trigger_reason = $6,
                block_auto_save = $7,
                reviewed_at = $8
            WHERE id = $1
        `, rv.CallID, rv.NeedsReview, rv.Action, rv.Priority, rv.QualityScore,
			rv.TriggerLabel, rv.BlockAutoSave, rv.ReviewedAt)
		if err != nil {
			return fmt.Errorf("save review of call %s: %w", rv.CallID, err)
		}
		updated = ct.RowsAffected() == 1
		return nil
	})
	return updated, err
}

// GetReview returns the stored review decision, or nil if the call does not exist.
func (r *CallRepo) GetReview(ctx context.Context, callID uuid.UUID) (*domain.CallReview, error) {
	rv := domain.CallReview{CallID: callID}
	var reviewedAt *time.Time
	err := r.db.QueryRow(ctx, `
        SELECT needs_review, review_action, review_priority, quality_score,
               trigger_reason, block_auto_save, reviewed_at
        FROM calls
        WHERE id = $1
    `, callID).Scan(&rv.NeedsReview, &rv.Action, &rv.Priority, &rv.QualityScore,
		&rv.TriggerLabel, &rv.BlockAutoSave, &reviewedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get review of call %s: %w", callID, err)
	}
	if reviewedAt != nil {
		rv.ReviewedAt = *reviewedAt
	}
	return &rv, nil
}
