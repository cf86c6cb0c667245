package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"spendsense-server/src/models"
)

func InsertBill(ctx context.Context, pool *pgxpool.Pool, bill *models.Bill) error {
	query := `
		INSERT INTO bills (id, uid, name, category, due_date, amount, status, sms_sender, sms_body)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := pool.Exec(ctx, query,
		bill.ID, bill.UID, bill.Name, bill.Category, bill.DueDate,
		bill.Amount, bill.Status, bill.SMSSender, bill.SMSBody)
	return err
}

func GetBills(ctx context.Context, pool *pgxpool.Pool, uid, status string) ([]models.Bill, error) {
	query := `
		SELECT id, uid, name, category, due_date, amount, status, sms_sender, sms_body, created_at, updated_at
		FROM bills WHERE uid = $1
	`
	args := []interface{}{uid}
	if status != "" && status != "All" {
		query += " AND status = $2"
		args = append(args, status)
	}
	query += " ORDER BY due_date ASC"

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bills := []models.Bill{}
	for rows.Next() {
		var b models.Bill
		err := rows.Scan(&b.ID, &b.UID, &b.Name, &b.Category, &b.DueDate, &b.Amount,
			&b.Status, &b.SMSSender, &b.SMSBody, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}
	return bills, rows.Err()
}
