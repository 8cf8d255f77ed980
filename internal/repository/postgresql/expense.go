package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/expense"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type expenseRepository struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.Repository {
	return &expenseRepository{db: db}
}

// Create implements expense.Repository.
func (e *expenseRepository) Create(ctx context.Context, claim expense.Claim) (expense.Claim, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO expense_claims (
			employee_id, category, amount_cents, currency, description, expense_date, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		claim.EmployeeID,
		claim.Category,
		claim.AmountCents,
		claim.Currency,
		claim.Description,
		claim.ExpenseDate,
		claim.Status,
	).Scan(&claim.ID, &claim.CreatedAt, &claim.UpdatedAt)

	if err != nil {
		return expense.Claim{}, fmt.Errorf("failed to create expense claim: %w", err)
	}

	return claim, nil
}

// GetByID implements expense.Repository.
func (e *expenseRepository) GetByID(ctx context.Context, id string) (expense.Claim, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT c.id, c.employee_id, c.category, c.amount_cents, c.currency, c.description,
			   c.expense_date, c.status,
			   c.reviewed_by, c.reviewed_at, c.rejection_reason,
			   c.created_at, c.updated_at,
			   e.full_name AS employee_name
		FROM expense_claims c
		LEFT JOIN employees e ON e.id = c.employee_id
		WHERE c.id = $1
	`

	var claim expense.Claim
	err := q.QueryRow(ctx, query, id).Scan(
		&claim.ID, &claim.EmployeeID, &claim.Category, &claim.AmountCents, &claim.Currency,
		&claim.Description, &claim.ExpenseDate, &claim.Status,
		&claim.ReviewedBy, &claim.ReviewedAt, &claim.RejectionReason,
		&claim.CreatedAt, &claim.UpdatedAt,
		&claim.EmployeeName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense.Claim{}, expense.ErrClaimNotFound
		}
		return expense.Claim{}, fmt.Errorf("failed to get expense claim by ID: %w", err)
	}

	return claim, nil
}

// Update implements expense.Repository.
func (e *expenseRepository) Update(ctx context.Context, claim expense.Claim) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE expense_claims SET
			status = $1,
			reviewed_by = $2,
			reviewed_at = $3,
			rejection_reason = $4,
			updated_at = $5
		WHERE id = $6
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		claim.Status,
		claim.ReviewedBy,
		claim.ReviewedAt,
		claim.RejectionReason,
		time.Now(),
		claim.ID,
	).Scan(&updatedID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense.ErrClaimNotFound
		}
		return fmt.Errorf("failed to update expense claim: %w", err)
	}

	return nil
}

// List implements expense.Repository.
func (e *expenseRepository) List(ctx context.Context, filter expense.Filter) ([]expense.Claim, int64, error) {
	q := GetQuerier(ctx, e.db)

	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND c.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Category != nil && *filter.Category != "" {
		baseWhere += fmt.Sprintf(" AND c.category = $%d", argIdx)
		args = append(args, *filter.Category)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND c.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM expense_claims c WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expense claims: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT c.id, c.employee_id, c.category, c.amount_cents, c.currency, c.description,
			   c.expense_date, c.status,
			   c.reviewed_by, c.reviewed_at, c.rejection_reason,
			   c.created_at, c.updated_at,
			   e.full_name AS employee_name
		FROM expense_claims c
		LEFT JOIN employees e ON e.id = c.employee_id
		WHERE %s
		ORDER BY c.created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query expense claims: %w", err)
	}
	defer rows.Close()

	var claims []expense.Claim
	for rows.Next() {
		var claim expense.Claim
		err := rows.Scan(
			&claim.ID, &claim.EmployeeID, &claim.Category, &claim.AmountCents, &claim.Currency,
			&claim.Description, &claim.ExpenseDate, &claim.Status,
			&claim.ReviewedBy, &claim.ReviewedAt, &claim.RejectionReason,
			&claim.CreatedAt, &claim.UpdatedAt,
			&claim.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan expense claim: %w", err)
		}
		claims = append(claims, claim)
	}

	return claims, total, nil
}
