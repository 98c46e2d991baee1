package repository

import (
	"context"
	"database/sql"
	"fmt"

	"saarthi/internal/db"
	"saarthi/internal/domain"
)

// SQLiteWalletRepo implements WalletRepo using a SQLite database.
// Seeding a wallet writes the wallet row and its fixture transactions in a
// single transaction via the unit of work, so a half-seeded wallet can never
// be observed.
type SQLiteWalletRepo struct {
	db  db.DBTX
	uow db.UnitOfWork
}

// NewSQLiteWalletRepo creates a new SQLiteWalletRepo. uow may be nil when the
// repo is already scoped to a transaction.
func NewSQLiteWalletRepo(conn db.DBTX, uow db.UnitOfWork) *SQLiteWalletRepo {
	return &SQLiteWalletRepo{db: conn, uow: uow}
}

func (r *SQLiteWalletRepo) GetOrCreate(ctx context.Context, role domain.Role) (domain.WalletSnapshot, error) {
	snap, err := r.get(ctx, r.db, role)
	if err == nil {
		return snap, nil
	}
	if err != sql.ErrNoRows {
		return domain.WalletSnapshot{}, fmt.Errorf("loading wallet: %w", err)
	}

	seed := domain.DefaultWallet(role)

	if r.uow == nil {
		if err := r.insert(ctx, r.db, role, seed); err != nil {
			return domain.WalletSnapshot{}, err
		}
		return r.load(ctx, r.db, role)
	}

	err = r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		// Re-check inside the transaction: a concurrent caller may have
		// seeded between the miss above and the tx start.
		if _, err := r.get(ctx, tx, role); err == nil {
			return nil
		} else if err != sql.ErrNoRows {
			return fmt.Errorf("re-checking wallet: %w", err)
		}
		return r.insert(ctx, tx, role, seed)
	})
	if err != nil {
		return domain.WalletSnapshot{}, err
	}

	return r.load(ctx, r.db, role)
}

// get returns the stored snapshot or sql.ErrNoRows if the wallet row is absent.
func (r *SQLiteWalletRepo) get(ctx context.Context, conn db.DBTX, role domain.Role) (domain.WalletSnapshot, error) {
	var snap domain.WalletSnapshot
	row := conn.QueryRowContext(ctx, `SELECT balance FROM wallets WHERE role = ?`, string(role))
	if err := row.Scan(&snap.Balance); err != nil {
		return domain.WalletSnapshot{}, err
	}

	rows, err := conn.QueryContext(ctx, `SELECT id, tx_date, description, amount, type, category, status
		FROM wallet_transactions WHERE role = ? ORDER BY seq`, string(role))
	if err != nil {
		return domain.WalletSnapshot{}, fmt.Errorf("querying transactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.Date, &t.Description, &t.Amount, &t.Type, &t.Category, &t.Status); err != nil {
			return domain.WalletSnapshot{}, fmt.Errorf("scanning transaction: %w", err)
		}
		snap.Transactions = append(snap.Transactions, t)
	}
	if err := rows.Err(); err != nil {
		return domain.WalletSnapshot{}, fmt.Errorf("iterating transactions: %w", err)
	}
	return snap, nil
}

// load is get with sql.ErrNoRows treated as a hard error (post-seed read).
func (r *SQLiteWalletRepo) load(ctx context.Context, conn db.DBTX, role domain.Role) (domain.WalletSnapshot, error) {
	snap, err := r.get(ctx, conn, role)
	if err != nil {
		return domain.WalletSnapshot{}, fmt.Errorf("loading seeded wallet: %w", err)
	}
	return snap, nil
}

func (r *SQLiteWalletRepo) insert(ctx context.Context, conn db.DBTX, role domain.Role, seed domain.WalletSnapshot) error {
	if _, err := conn.ExecContext(ctx,
		`INSERT INTO wallets (role, balance, created_at) VALUES (?, ?, ?)`,
		string(role), seed.Balance, nowUTC(),
	); err != nil {
		return fmt.Errorf("inserting wallet: %w", err)
	}

	for i, t := range seed.Transactions {
		if _, err := conn.ExecContext(ctx,
			`INSERT INTO wallet_transactions (id, role, seq, tx_date, description, amount, type, category, status)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, string(role), i, t.Date, t.Description, t.Amount,
			string(t.Type), string(t.Category), string(t.Status),
		); err != nil {
			return fmt.Errorf("inserting transaction %s: %w", t.ID, err)
		}
	}
	return nil
}
