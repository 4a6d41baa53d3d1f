package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/KayaDyLux/ExpenseManager/internal/apperrors"
	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	portsrepo "github.com/KayaDyLux/ExpenseManager/internal/core/ports/repositories"
	"github.com/KayaDyLux/ExpenseManager/internal/models"
	"github.com/KayaDyLux/ExpenseManager/internal/utils/mapping"
	"github.com/KayaDyLux/ExpenseManager/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entry and transfer data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const ledgerEntryInsertQuery = `
	INSERT INTO ledger_entries (
		entry_id, workspace_id, budget_id, amount, entry_date, note, source, transfer_id,
		created_at, created_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
`

const ledgerEntrySelectQuery = `
	SELECT entry_id, workspace_id, budget_id, amount, entry_date, note, source, transfer_id,
	       created_at, created_by
	FROM ledger_entries
`

func scanLedgerEntry(row pgx.Row) (*models.LedgerEntry, error) {
	var e models.LedgerEntry
	err := row.Scan(
		&e.EntryID,
		&e.WorkspaceID,
		&e.BudgetID,
		&e.Amount,
		&e.EntryDate,
		&e.Note,
		&e.Source,
		&e.TransferID,
		&e.CreatedAt,
		&e.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// SaveEntry appends a single ledger entry.
func (r *PgxLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	modelEntry := mapping.ToModelLedgerEntry(entry)
	_, err := r.Pool.Exec(ctx, ledgerEntryInsertQuery,
		modelEntry.EntryID,
		modelEntry.WorkspaceID,
		modelEntry.BudgetID,
		modelEntry.Amount,
		modelEntry.EntryDate,
		modelEntry.Note,
		modelEntry.Source,
		modelEntry.TransferID,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewAppError(404, "budget does not exist", apperrors.ErrNotFound)
		}
		return apperrors.NewAppError(500, "failed to insert ledger entry "+entry.EntryID, err)
	}
	return nil
}

// SaveTransfer persists the transfer record and both of its legs inside a
// single database transaction so a reader can never observe one leg without
// the other. A replayed idempotency key trips the unique constraint on
// (workspace_id, idempotency_key) and surfaces as apperrors.ErrDuplicate.
func (r *PgxLedgerRepository) SaveTransfer(ctx context.Context, transfer domain.Transfer, legs [2]domain.LedgerEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // No-op once the transaction is committed

	modelTransfer := mapping.ToModelTransfer(transfer)
	transferQuery := `
		INSERT INTO transfers (
			transfer_id, workspace_id, from_budget_id, to_budget_id, amount, note,
			idempotency_key, created_at, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, transferQuery,
		modelTransfer.TransferID,
		modelTransfer.WorkspaceID,
		modelTransfer.FromBudgetID,
		modelTransfer.ToBudgetID,
		modelTransfer.Amount,
		modelTransfer.Note,
		modelTransfer.IdempotencyKey,
		modelTransfer.CreatedAt,
		modelTransfer.CreatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewAppError(409, "transfer idempotency key already used", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert transfer "+transfer.TransferID, err)
	}

	for _, leg := range legs {
		modelLeg := mapping.ToModelLedgerEntry(leg)
		_, err = tx.Exec(ctx, ledgerEntryInsertQuery,
			modelLeg.EntryID,
			modelLeg.WorkspaceID,
			modelLeg.BudgetID,
			modelLeg.Amount,
			modelLeg.EntryDate,
			modelLeg.Note,
			modelLeg.Source,
			modelLeg.TransferID,
			modelLeg.CreatedAt,
			modelLeg.CreatedBy,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to insert leg "+leg.EntryID+" for transfer "+transfer.TransferID, err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transfer "+transfer.TransferID, err)
	}
	return nil
}

func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, workspaceID, entryID string) (*domain.LedgerEntry, error) {
	query := ledgerEntrySelectQuery + `WHERE workspace_id = $1 AND entry_id = $2;`
	modelEntry, err := scanLedgerEntry(r.Pool.QueryRow(ctx, query, workspaceID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find ledger entry by ID "+entryID, err)
	}
	domainEntry := mapping.ToDomainLedgerEntry(*modelEntry)
	return &domainEntry, nil
}

// ListEntriesByBudget retrieves a paginated list of entries for a budget,
// newest first, using token-based pagination.
func (r *PgxLedgerRepository) ListEntriesByBudget(ctx context.Context, workspaceID, budgetID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra item to determine if there is a next page.
	fetchLimit := limit + 1

	filterClause := `WHERE workspace_id = $1 AND budget_id = $2`
	// Ordering must be stable; entry_id breaks created_at ties.
	orderByClause := `ORDER BY created_at DESC, entry_id DESC`

	args := []any{workspaceID, budgetID}
	query := ledgerEntrySelectQuery + filterClause

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastEntryID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (created_at, entry_id) < ($3, $4)`
		args = append(args, lastCreatedAt, lastEntryID)
	}

	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query ledger entries for budget "+budgetID, err)
	}
	defer rows.Close()

	modelEntries := make([]models.LedgerEntry, 0, fetchLimit)
	for rows.Next() {
		modelEntry, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan ledger entry row for budget "+budgetID, err)
		}
		modelEntries = append(modelEntries, *modelEntry)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating ledger entry rows for budget "+budgetID, err)
	}

	var nextTokenVal *string
	if len(modelEntries) > limit {
		last := modelEntries[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.EntryID)
		nextTokenVal = &token
		modelEntries = modelEntries[:limit]
	}

	return mapping.ToDomainLedgerEntrySlice(modelEntries), nextTokenVal, nil
}

func (r *PgxLedgerRepository) FindTransferByID(ctx context.Context, workspaceID, transferID string) (*domain.Transfer, error) {
	query := `
		SELECT transfer_id, workspace_id, from_budget_id, to_budget_id, amount, note,
		       idempotency_key, created_at, created_by
		FROM transfers
		WHERE workspace_id = $1 AND transfer_id = $2;
	`
	var modelTransfer models.Transfer
	err := r.Pool.QueryRow(ctx, query, workspaceID, transferID).Scan(
		&modelTransfer.TransferID,
		&modelTransfer.WorkspaceID,
		&modelTransfer.FromBudgetID,
		&modelTransfer.ToBudgetID,
		&modelTransfer.Amount,
		&modelTransfer.Note,
		&modelTransfer.IdempotencyKey,
		&modelTransfer.CreatedAt,
		&modelTransfer.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transfer by ID "+transferID, err)
	}
	domainTransfer := mapping.ToDomainTransfer(modelTransfer)
	return &domainTransfer, nil
}
