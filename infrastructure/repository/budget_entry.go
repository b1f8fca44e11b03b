package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/stmbudget/sales-planning-api/infrastructure/database/postgres"
	"github.com/stmbudget/sales-planning-api/internal/domain"
)

const (
	budgetEntriesTable = "budget_entries"

	budgetEntryColumns = `id, customer_id, item_id, year, month, quantity, unit_price,
		discount_percentage, total_amount, distribution_type, seasonal_multiplier,
		is_manual_entry, status, salesperson_id, created_by, approved_by, approved_at,
		notes, created_at, updated_at`
)

type BudgetEntryRepository interface {
	GetByID(id string) (*domain.BudgetEntry, error)
	GetByCell(customerID, itemID string, year, month int) (*domain.BudgetEntry, error)
	List(filter domain.BudgetFilter, scope squirrel.Sqlizer) ([]*domain.BudgetEntry, error)
	ListForYear(year int, filter domain.BudgetFilter, scope squirrel.Sqlizer) ([]*domain.BudgetEntry, error)
	Create(entry *domain.BudgetEntry) error
	BulkCreate(ctx context.Context, entries []*domain.BudgetEntry) error
	Update(entry *domain.BudgetEntry) error
	Delete(id string) error
	ApproveSubmitted(ids []string, approvedBy int, approvedAt time.Time) (int64, error)
}

type budgetEntryRepository struct {
	conn *postgres.Connection
}

func NewBudgetEntryRepository(conn *postgres.Connection) BudgetEntryRepository {
	return &budgetEntryRepository{
		conn: conn,
	}
}

func (r *budgetEntryRepository) GetByID(id string) (*domain.BudgetEntry, error) {
	query, args, err := squirrel.
		Select(budgetEntryColumns).
		From(budgetEntriesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	entry, err := scanBudgetEntry(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear entrada de orçamento: %w", err)
	}

	return entry, nil
}

func (r *budgetEntryRepository) GetByCell(customerID, itemID string, year, month int) (*domain.BudgetEntry, error) {
	query, args, err := squirrel.
		Select(budgetEntryColumns).
		From(budgetEntriesTable).
		Where(squirrel.Eq{
			"customer_id": customerID,
			"item_id":     itemID,
			"year":        year,
			"month":       month,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	entry, err := scanBudgetEntry(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear entrada de orçamento: %w", err)
	}

	return entry, nil
}

func (r *budgetEntryRepository) List(filter domain.BudgetFilter, scope squirrel.Sqlizer) ([]*domain.BudgetEntry, error) {
	builder := squirrel.
		Select(budgetEntryColumns).
		From(budgetEntriesTable)

	builder = applyBudgetFilter(builder, filter)

	if scope != nil {
		builder = builder.Where(scope)
	}

	query, args, err := builder.
		OrderBy("year DESC", "month DESC", "customer_id ASC", "item_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.BudgetEntry, 0)
	for rows.Next() {
		entry, err := scanBudgetEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear entradas de orçamento: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *budgetEntryRepository) ListForYear(year int, filter domain.BudgetFilter, scope squirrel.Sqlizer) ([]*domain.BudgetEntry, error) {
	filter.Year = &year
	return r.List(filter, scope)
}

func (r *budgetEntryRepository) Create(entry *domain.BudgetEntry) error {
	query, args, err := budgetInsertBuilder(entry).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return translateUniqueViolation(err)
	}

	return nil
}

// BulkCreate insere todas as entradas em uma única transação: qualquer
// falha desfaz o lote inteiro (sem commit parcial)
func (r *budgetEntryRepository) BulkCreate(ctx context.Context, entries []*domain.BudgetEntry) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, entry := range entries {
			query, args, err := budgetInsertBuilder(entry).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.Exec(query, args...); err != nil {
				return translateUniqueViolation(err)
			}
		}

		return nil
	})
}

func (r *budgetEntryRepository) Update(entry *domain.BudgetEntry) error {
	query, args, err := squirrel.
		Update(budgetEntriesTable).
		Set("quantity", entry.Quantity).
		Set("unit_price", entry.UnitPrice).
		Set("discount_percentage", entry.DiscountPercentage).
		Set("total_amount", entry.TotalAmount).
		Set("seasonal_multiplier", entry.SeasonalMultiplier).
		Set("status", entry.Status).
		Set("approved_by", entry.ApprovedBy).
		Set("approved_at", entry.ApprovedAt).
		Set("notes", entry.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": entry.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return translateUniqueViolation(err)
	}

	return nil
}

func (r *budgetEntryRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(budgetEntriesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// ApproveSubmitted aprova apenas as entradas com status submitted,
// carimbando aprovador e horário na mesma instrução. Entradas em outros
// status são ignoradas em silêncio - filtro deliberado, não erro.
func (r *budgetEntryRepository) ApproveSubmitted(ids []string, approvedBy int, approvedAt time.Time) (int64, error) {
	query, args, err := squirrel.
		Update(budgetEntriesTable).
		Set("status", domain.StatusApproved).
		Set("approved_by", approvedBy).
		Set("approved_at", approvedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids, "status": domain.StatusSubmitted}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func budgetInsertBuilder(entry *domain.BudgetEntry) squirrel.InsertBuilder {
	return squirrel.
		Insert(budgetEntriesTable).
		Columns(
			"id", "customer_id", "item_id", "year", "month", "quantity", "unit_price",
			"discount_percentage", "total_amount", "distribution_type",
			"seasonal_multiplier", "is_manual_entry", "status", "salesperson_id",
			"created_by", "notes",
		).
		Values(
			entry.ID, entry.CustomerID, entry.ItemID, entry.Year, entry.Month,
			entry.Quantity, entry.UnitPrice, entry.DiscountPercentage,
			entry.TotalAmount, entry.DistributionType, entry.SeasonalMultiplier,
			entry.IsManualEntry, entry.Status, entry.SalespersonID,
			entry.CreatedBy, entry.Notes,
		)
}

func applyBudgetFilter(builder squirrel.SelectBuilder, filter domain.BudgetFilter) squirrel.SelectBuilder {
	if filter.Year != nil {
		builder = builder.Where(squirrel.Eq{"year": *filter.Year})
	}

	if months := filter.Months(); months != nil {
		builder = builder.Where(squirrel.Eq{"month": months})
	}

	if filter.CustomerID != nil {
		builder = builder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}

	if filter.ItemID != nil {
		builder = builder.Where(squirrel.Eq{"item_id": *filter.ItemID})
	}

	if filter.SalespersonID != nil {
		builder = builder.Where(squirrel.Eq{"salesperson_id": *filter.SalespersonID})
	}

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}

	if filter.DistributionType != nil {
		builder = builder.Where(squirrel.Eq{"distribution_type": *filter.DistributionType})
	}

	if filter.IsManualEntry != nil {
		builder = builder.Where(squirrel.Eq{"is_manual_entry": *filter.IsManualEntry})
	}

	return builder
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBudgetEntry(row rowScanner) (*domain.BudgetEntry, error) {
	entry := &domain.BudgetEntry{}
	var approvedAt pq.NullTime

	err := row.Scan(
		&entry.ID,
		&entry.CustomerID,
		&entry.ItemID,
		&entry.Year,
		&entry.Month,
		&entry.Quantity,
		&entry.UnitPrice,
		&entry.DiscountPercentage,
		&entry.TotalAmount,
		&entry.DistributionType,
		&entry.SeasonalMultiplier,
		&entry.IsManualEntry,
		&entry.Status,
		&entry.SalespersonID,
		&entry.CreatedBy,
		&entry.ApprovedBy,
		&approvedAt,
		&entry.Notes,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if approvedAt.Valid {
		entry.ApprovedAt = &approvedAt.Time
	}

	return entry, nil
}
