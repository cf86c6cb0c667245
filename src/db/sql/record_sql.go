package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"spendsense-server/src/db"
	"spendsense-server/src/models"
)

var recordColumns = []string{
	"uid", "sms", "sender", "category", "category_source",
	"amount", "txn_type", "mode", "ref_no", "account", "date", "balance",
	"created_at",
}

// RecordStore satisfies the pipeline's store interface with a bulk
// COPY write so a large batch costs one round trip.
type RecordStore struct {
	Pool *pgxpool.Pool
}

func (s RecordStore) InsertRecords(ctx context.Context, records []models.TransactionRecord) error {
	rows := make([][]interface{}, len(records))
	for i, rec := range records {
		rows[i] = []interface{}{
			rec.UID, rec.SMS, rec.Sender, rec.Label, string(rec.Source),
			nullDecimal(rec.Amount), string(rec.Direction), string(rec.Mode),
			rec.Reference, rec.Account, rec.OccurredOn, nullDecimal(rec.Balance),
			rec.CreatedAt,
		}
	}
	_, err := s.Pool.CopyFrom(ctx, pgx.Identifier{"sms_records"}, recordColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return err
	}

	seen := map[string]struct{}{}
	for _, rec := range records {
		if _, ok := seen[rec.UID]; ok {
			continue
		}
		seen[rec.UID] = struct{}{}
		db.ClearSpendingCacheForUser(rec.UID)
	}
	return nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func GetRecords(ctx context.Context, pool *pgxpool.Pool, uid string) ([]models.TransactionRecord, error) {
	query := `
		SELECT id, uid, sms, sender, category, category_source,
			amount, txn_type, mode, ref_no, account, date, balance, created_at
		FROM sms_records WHERE uid = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := pool.Query(ctx, query, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.TransactionRecord
	for rows.Next() {
		var rec models.TransactionRecord
		err := rows.Scan(&rec.ID, &rec.UID, &rec.SMS, &rec.Sender, &rec.Label, &rec.Source,
			&rec.Amount, &rec.Direction, &rec.Mode, &rec.Reference, &rec.Account,
			&rec.OccurredOn, &rec.Balance, &rec.CreatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total_spent"`
}

type SpendingFilters struct {
	Direction string // "credit", "debit" or "" for both
	Period    string // "weekly"/"monthly" (short forms accepted) or "" for all time
	Sort      string // "asc" or "desc"
}

// buildSpendingQuery composes the aggregate query for one uid and filter
// set. Kept free of pool access so the filter grammar is testable.
func buildSpendingQuery(uid string, filters SpendingFilters) (string, []interface{}) {
	query := `
		SELECT category, SUM(amount) AS total_spent
		FROM sms_records
		WHERE uid = $1 AND amount IS NOT NULL AND txn_type IN ('credit', 'debit')
	`
	args := []interface{}{uid}

	if filters.Direction == "credit" || filters.Direction == "debit" {
		args = append(args, filters.Direction)
		query += fmt.Sprintf(" AND txn_type = $%d", len(args))
	}
	switch filters.Period {
	case "weekly", "week":
		query += " AND created_at >= NOW() - INTERVAL '7 days'"
	case "monthly", "month":
		query += " AND created_at >= NOW() - INTERVAL '30 days'"
	}

	query += " GROUP BY category"
	if filters.Sort == "asc" {
		query += " ORDER BY total_spent ASC"
	} else {
		query += " ORDER BY total_spent DESC"
	}
	return query, args
}

// CategorySpending sums amounts per category. Rows with no amount or an
// unknown direction never count toward a total. Results are cached per
// uid and filter combination until the next ingest for that uid.
func CategorySpending(ctx context.Context, pool *pgxpool.Pool, uid string, filters SpendingFilters) ([]CategoryTotal, error) {
	cacheKey := fmt.Sprintf("spending:%s:%s:%s:%s", uid, filters.Direction, filters.Period, filters.Sort)
	if cached, ok := db.GetSpendingCache(cacheKey); ok {
		if totals, ok := cached.([]CategoryTotal); ok {
			return totals, nil
		}
	}

	query, args := buildSpendingQuery(uid, filters)
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := []CategoryTotal{}
	for rows.Next() {
		var t CategoryTotal
		if err := rows.Scan(&t.Category, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	db.SetSpendingCache(uid, cacheKey, totals)
	return totals, nil
}
