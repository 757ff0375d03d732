package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"loadvoice-synqall/internal/apperr"
	"loadvoice-synqall/internal/domain"
	"loadvoice-synqall/internal/ports/loadtx"
)

const loadColumns = `
    id, status, carrier_id, carrier_mc_number, carrier_dot_number, shipper_id,
    rate_to_carrier, rate_to_shipper,
    origin_city, origin_state, destination_city, destination_state,
    pickup_date, delivery_date,
    rate_con_status, carrier_confirmed, carrier_confirmed_at,
    deleted, updated_at`

// LoadRepo stores loads and their status history.
type LoadRepo struct {
	db    *pgxpool.Pool
	retry *Retrier
}

// NewLoadRepo creates a new LoadRepo.
func NewLoadRepo(db *pgxpool.Pool, retry *Retrier) *LoadRepo {
	return &LoadRepo{db: db, retry: retry}
}

// Get returns a load by id, or nil if it does not exist.
func (r *LoadRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Load, error) {
	var out *domain.Load
	err := r.retry.Do(ctx, "load.get", func(ctx context.Context) error {
		l, err := scanLoad(r.db.QueryRow(ctx, `SELECT `+loadColumns+` FROM loads WHERE id = $1`, id))
		if err != nil {
			if IsNotFound(err) {
				out = nil
				return nil
			}
			return fmt.Errorf("get load %s: %w", id, err)
		}
		out = l
		return nil
	})
	return out, err
}

// Create inserts a load. Used by seeding and tests; loads are otherwise
// created by the CRUD surface.
func (r *LoadRepo) Create(ctx context.Context, l *domain.Load) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.RateConStatus == "" {
		l.RateConStatus = domain.RateConNone
	}
	err := r.db.QueryRow(ctx, `
        INSERT INTO loads (
            id, status, carrier_id, carrier_mc_number, carrier_dot_number, shipper_id,
            rate_to_carrier, rate_to_shipper,
            origin_city, origin_state, destination_city, destination_state,
            pickup_date, delivery_date, rate_con_status, carrier_confirmed
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        RETURNING updated_at
    `,
		l.ID, string(l.Status), l.CarrierID, l.CarrierMCNumber, l.CarrierDOTNumber, l.ShipperID,
		nullDecimal(l.RateToCarrier), nullDecimal(l.RateToShipper),
		l.OriginCity, l.OriginState, l.DestinationCity, l.DestinationState,
		l.PickupDate, l.DeliveryDate, string(l.RateConStatus), l.CarrierConfirmed,
	).Scan(&l.UpdatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("create load: %w", err)
	}
	return nil
}

// History returns the status history of a load, oldest first.
func (r *LoadRepo) History(ctx context.Context, id uuid.UUID) ([]domain.HistoryEntry, error) {
	var out []domain.HistoryEntry
	err := r.retry.Do(ctx, "load.history", func(ctx context.Context) error {
		rows, err := r.db.Query(ctx, `
            SELECT id, load_id, source, event, from_status, to_status,
                   rate_con_status, actor, details, created_at
            FROM load_status_history
            WHERE load_id = $1
            ORDER BY id
        `, id)
		if err != nil {
			return fmt.Errorf("list history %s: %w", id, err)
		}
		defer rows.Close()

		out = out[:0]
		for rows.Next() {
			var e domain.HistoryEntry
			if err := rows.Scan(&e.ID, &e.LoadID, &e.Source, &e.Event, &e.FromStatus, &e.ToStatus,
				&e.RateConStatus, &e.Actor, &e.Details, &e.CreatedAt); err != nil {
				return fmt.Errorf("scan history: %w", err)
			}
			out = append(out, e)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.HistoryEntry{}
	}
	return out, nil
}

// WithTx runs fn in a transaction, retrying the whole transaction on
// transient errors.
func (r *LoadRepo) WithTx(ctx context.Context, fn func(tx loadtx.Repository) error) error {
	return r.retry.Do(ctx, "load.tx", func(ctx context.Context) error {
		return r.withTx(ctx, fn)
	})
}

func (r *LoadRepo) withTx(ctx context.Context, fn func(tx loadtx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&LoadTxRepo{tx: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// LoadTxRepo is the transactional side of LoadRepo.
type LoadTxRepo struct {
	tx pgx.Tx
}

var (
	_ loadtx.Repository = (*LoadTxRepo)(nil)
	_ loadtx.Runner     = (*LoadRepo)(nil)
)

// GetForUpdate locks the load row for the rest of the transaction.
func (r *LoadTxRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Load, error) {
	l, err := scanLoad(r.tx.QueryRow(ctx, `SELECT `+loadColumns+` FROM loads WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get load %s for update: %w", id, err)
	}
	return l, nil
}

// UpdateStatus writes the new status guarded by the expected prior status.
func (r *LoadTxRepo) UpdateStatus(ctx context.Context, u domain.StatusUpdate) (bool, error) {
	var rateCon *string
	if u.RateConStatus != nil {
		s := string(*u.RateConStatus)
		rateCon = &s
	}
	ct, err := r.tx.Exec(ctx, `
        UPDATE loads
        SET status = $3,
            rate_con_status = COALESCE($4, rate_con_status),
            carrier_confirmed = COALESCE($5, carrier_confirmed),
            carrier_confirmed_at = CASE WHEN $5::boolean IS NULL THEN carrier_confirmed_at ELSE $6 END,
            updated_at = $7
        WHERE id = $1 AND status = $2 AND NOT deleted
    `, u.ID, string(u.ExpectedStatus), string(u.Status), rateCon, u.CarrierConfirmed, u.CarrierConfirmedAt, u.UpdatedAt)
	if err != nil {
		return false, fmt.Errorf("update load %s status: %w", u.ID, err)
	}
	return ct.RowsAffected() == 1, nil
}

// AppendHistory inserts e and fills its id and timestamp.
func (r *LoadTxRepo) AppendHistory(ctx context.Context, e *domain.HistoryEntry) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO load_status_history
            (load_id, source, event, from_status, to_status, rate_con_status, actor, details)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at
    `, e.LoadID, string(e.Source), e.Event, string(e.FromStatus), string(e.ToStatus),
		string(e.RateConStatus), e.Actor, e.Details,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("append history for %s: %w", e.LoadID, err)
	}
	return nil
}

func scanLoad(row pgx.Row) (*domain.Load, error) {
	var (
		l                        domain.Load
		status, rateCon          string
		rateCarrier, rateShipper decimal.NullDecimal
	)
	if err := row.Scan(
		&l.ID, &status, &l.CarrierID, &l.CarrierMCNumber, &l.CarrierDOTNumber, &l.ShipperID,
		&rateCarrier, &rateShipper,
		&l.OriginCity, &l.OriginState, &l.DestinationCity, &l.DestinationState,
		&l.PickupDate, &l.DeliveryDate,
		&rateCon, &l.CarrierConfirmed, &l.CarrierConfirmedAt,
		&l.Deleted, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}
	l.Status = domain.LoadStatus(status)
	l.RateConStatus = domain.RateConStatus(rateCon)
	if rateCarrier.Valid {
		l.RateToCarrier = &rateCarrier.Decimal
	}
	if rateShipper.Valid {
		l.RateToShipper = &rateShipper.Decimal
	}
	return &l, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
