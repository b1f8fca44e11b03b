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
	forecastEntriesTable = "forecast_entries"

	forecastEntryColumns = `id, customer_id, item_id, year, month, forecasted_quantity,
		forecasted_amount, budget_quantity, budget_amount, quantity_variance,
		amount_variance, quantity_variance_percentage, amount_variance_percentage,
		forecast_type, confidence_level, is_latest, version, status, salesperson_id,
		created_by, approved_by, approved_at, notes, forecast_reasoning,
		market_conditions, created_at, updated_at`
)

type ForecastEntryRepository interface {
	GetByID(id string) (*domain.ForecastEntry, error)
	List(filter domain.ForecastFilter, scope squirrel.Sqlizer) ([]*domain.ForecastEntry, error)
	ListLatest(filter domain.ForecastFilter, scope squirrel.Sqlizer) ([]*domain.ForecastEntry, error)
	CreateVersioned(ctx context.Context, entry *domain.ForecastEntry) error
	Update(entry *domain.ForecastEntry) error
	Delete(id string) error
	ApproveSubmitted(ids []string, approvedBy int, approvedAt time.Time) (int64, error)
}

type forecastEntryRepository struct {
	conn *postgres.Connection
}

func NewForecastEntryRepository(conn *postgres.Connection) ForecastEntryRepository {
	return &forecastEntryRepository{
		conn: conn,
	}
}

func (r *forecastEntryRepository) GetByID(id string) (*domain.ForecastEntry, error) {
	query, args, err := squirrel.
		Select(forecastEntryColumns).
		From(forecastEntriesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	entry, err := scanForecastEntry(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear entrada de forecast: %w", err)
	}

	return entry, nil
}

func (r *forecastEntryRepository) List(filter domain.ForecastFilter, scope squirrel.Sqlizer) ([]*domain.ForecastEntry, error) {
	builder := squirrel.
		Select(forecastEntryColumns).
		From(forecastEntriesTable)

	builder = applyForecastFilter(builder, filter)

	if scope != nil {
		builder = builder.Where(scope)
	}

	query, args, err := builder.
		OrderBy("year DESC", "month DESC", "customer_id ASC", "item_id ASC", "version DESC").
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

	entries := make([]*domain.ForecastEntry, 0)
	for rows.Next() {
		entry, err := scanForecastEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear entradas de forecast: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

// ListLatest retorna apenas a versão vigente de cada célula
func (r *forecastEntryRepository) ListLatest(filter domain.ForecastFilter, scope squirrel.Sqlizer) ([]*domain.ForecastEntry, error) {
	latest := true
	filter.IsLatest = &latest
	return r.List(filter, scope)
}

// CreateVersioned insere uma nova versão do forecast da célula em uma
// transação: tranca as versões existentes com FOR UPDATE, calcula
// version = count + 1, rebaixa a versão vigente e insere a nova como
// is_latest. O lock evita que duas criações concorrentes da mesma
// célula recebam o mesmo número de versão.
func (r *forecastEntryRepository) CreateVersioned(ctx context.Context, entry *domain.ForecastEntry) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		lockQuery, lockArgs, err := squirrel.
			Select("version").
			From(forecastEntriesTable).
			Where(squirrel.Eq{
				"customer_id": entry.CustomerID,
				"item_id":     entry.ItemID,
				"year":        entry.Year,
				"month":       entry.Month,
			}).
			Suffix("FOR UPDATE").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		rows, err := tx.Query(lockQuery, lockArgs...)
		if err != nil {
			return fmt.Errorf("erro ao trancar versões da célula: %w", err)
		}

		versionCount := 0
		for rows.Next() {
			var version int
			if err := rows.Scan(&version); err != nil {
				rows.Close()
				return fmt.Errorf("erro ao escanear versões da célula: %w", err)
			}
			versionCount++
		}
		rows.Close()

		if err := rows.Err(); err != nil {
			return fmt.Errorf("erro durante a iteração de versões: %w", err)
		}

		entry.Version = versionCount + 1
		entry.IsLatest = true

		if versionCount > 0 {
			demoteQuery, demoteArgs, err := squirrel.
				Update(forecastEntriesTable).
				Set("is_latest", false).
				Set("updated_at", squirrel.Expr("NOW()")).
				Where(squirrel.Eq{
					"customer_id": entry.CustomerID,
					"item_id":     entry.ItemID,
					"year":        entry.Year,
					"month":       entry.Month,
					"is_latest":   true,
				}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.Exec(demoteQuery, demoteArgs...); err != nil {
				return fmt.Errorf("erro ao rebaixar versão vigente: %w", err)
			}
		}

		insertQuery, insertArgs, err := squirrel.
			Insert(forecastEntriesTable).
			Columns(
				"id", "customer_id", "item_id", "year", "month",
				"forecasted_quantity", "forecasted_amount", "budget_quantity",
				"budget_amount", "quantity_variance", "amount_variance",
				"quantity_variance_percentage", "amount_variance_percentage",
				"forecast_type", "confidence_level", "is_latest", "version",
				"status", "salesperson_id", "created_by", "notes",
				"forecast_reasoning", "market_conditions",
			).
			Values(
				entry.ID, entry.CustomerID, entry.ItemID, entry.Year, entry.Month,
				entry.ForecastedQuantity, entry.ForecastedAmount, entry.BudgetQuantity,
				entry.BudgetAmount, entry.QuantityVariance, entry.AmountVariance,
				entry.QuantityVariancePercentage, entry.AmountVariancePercentage,
				entry.ForecastType, entry.ConfidenceLevel, entry.IsLatest, entry.Version,
				entry.Status, entry.SalespersonID, entry.CreatedBy, entry.Notes,
				entry.ForecastReasoning, entry.MarketConditions,
			).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(insertQuery, insertArgs...); err != nil {
			return translateUniqueViolation(err)
		}

		return nil
	})
}

func (r *forecastEntryRepository) Update(entry *domain.ForecastEntry) error {
	query, args, err := squirrel.
		Update(forecastEntriesTable).
		Set("forecasted_quantity", entry.ForecastedQuantity).
		Set("forecasted_amount", entry.ForecastedAmount).
		Set("quantity_variance", entry.QuantityVariance).
		Set("amount_variance", entry.AmountVariance).
		Set("quantity_variance_percentage", entry.QuantityVariancePercentage).
		Set("amount_variance_percentage", entry.AmountVariancePercentage).
		Set("forecast_type", entry.ForecastType).
		Set("confidence_level", entry.ConfidenceLevel).
		Set("status", entry.Status).
		Set("approved_by", entry.ApprovedBy).
		Set("approved_at", entry.ApprovedAt).
		Set("notes", entry.Notes).
		Set("forecast_reasoning", entry.ForecastReasoning).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": entry.ID}).
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

func (r *forecastEntryRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(forecastEntriesTable).
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

// ApproveSubmitted segue a mesma regra do orçamento: só entradas
// submitted são tocadas, o restante da lista é ignorado
func (r *forecastEntryRepository) ApproveSubmitted(ids []string, approvedBy int, approvedAt time.Time) (int64, error) {
	query, args, err := squirrel.
		Update(forecastEntriesTable).
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

func applyForecastFilter(builder squirrel.SelectBuilder, filter domain.ForecastFilter) squirrel.SelectBuilder {
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

	if filter.ForecastType != nil {
		builder = builder.Where(squirrel.Eq{"forecast_type": *filter.ForecastType})
	}

	if filter.IsLatest != nil {
		builder = builder.Where(squirrel.Eq{"is_latest": *filter.IsLatest})
	}

	return builder
}

func scanForecastEntry(row rowScanner) (*domain.ForecastEntry, error) {
	entry := &domain.ForecastEntry{}
	var approvedAt pq.NullTime

	err := row.Scan(
		&entry.ID,
		&entry.CustomerID,
		&entry.ItemID,
		&entry.Year,
		&entry.Month,
		&entry.ForecastedQuantity,
		&entry.ForecastedAmount,
		&entry.BudgetQuantity,
		&entry.BudgetAmount,
		&entry.QuantityVariance,
		&entry.AmountVariance,
		&entry.QuantityVariancePercentage,
		&entry.AmountVariancePercentage,
		&entry.ForecastType,
		&entry.ConfidenceLevel,
		&entry.IsLatest,
		&entry.Version,
		&entry.Status,
		&entry.SalespersonID,
		&entry.CreatedBy,
		&entry.ApprovedBy,
		&approvedAt,
		&entry.Notes,
		&entry.ForecastReasoning,
		&entry.MarketConditions,
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
