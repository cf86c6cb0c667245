package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"spendsense-server/src/models"
)

func CreateBudget(ctx context.Context, pool *pgxpool.Pool, budget *models.Budget) (*models.Budget, error) {
	query := `
		INSERT INTO budgets (uid, name, cap, currency, period)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, uid, name, cap, currency, period, created_at
	`
	var b models.Budget
	err := pool.QueryRow(ctx, query, budget.UID, budget.Name, budget.Cap, budget.Currency, budget.Period).
		Scan(&b.ID, &b.UID, &b.Name, &b.Cap, &b.Currency, &b.Period, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func GetBudgetsForUser(ctx context.Context, pool *pgxpool.Pool, uid string) ([]models.Budget, error) {
	query := `
		SELECT id, uid, name, cap, currency, period, created_at
		FROM budgets WHERE uid = $1
		ORDER BY created_at DESC
	`
	rows, err := pool.Query(ctx, query, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		err := rows.Scan(&b.ID, &b.UID, &b.Name, &b.Cap, &b.Currency, &b.Period, &b.CreatedAt)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

func UpdateBudget(ctx context.Context, pool *pgxpool.Pool, budget *models.Budget) (*models.Budget, error) {
	query := `
		UPDATE budgets
		SET name = $1, cap = $2, currency = $3, period = $4
		WHERE id = $5 AND uid = $6
		RETURNING id, uid, name, cap, currency, period, created_at
	`
	var b models.Budget
	err := pool.QueryRow(ctx, query, budget.Name, budget.Cap, budget.Currency, budget.Period, budget.ID, budget.UID).
		Scan(&b.ID, &b.UID, &b.Name, &b.Cap, &b.Currency, &b.Period, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func DeleteBudget(ctx context.Context, pool *pgxpool.Pool, uid string, budgetID int64) error {
	query := `DELETE FROM budgets WHERE id = $1 AND uid = $2`
	cmd, err := pool.Exec(ctx, query, budgetID, uid)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("budget not found")
	}
	return nil
}
