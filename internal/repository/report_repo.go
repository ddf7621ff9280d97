package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"csa-console/internal/model"
)

// ReportRepo хранит отчёты о сохранениях состава.
type ReportRepo struct {
	db *Postgres
	tx *TransactionManager
}

// NewReportRepo создаёт репозиторий отчётов.
func NewReportRepo(db *Postgres, tx *TransactionManager) *ReportRepo {
	return &ReportRepo{db: db, tx: tx}
}

// InsertReport сохраняет отчёт и его операции одной транзакцией.
func (r *ReportRepo) InsertReport(ctx context.Context, rep model.SaveReport) error {
	return r.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		q := r.db.executor(ctx)

		_, err := q.Exec(ctx, `
INSERT INTO roster_save_reports (id, actor_id, actor_email, started_at, finished_at, succeeded, failed, skipped)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, rep.ID, rep.ActorID, rep.ActorEmail, rep.StartedAt, rep.FinishedAt, rep.Succeeded, rep.Failed, rep.Skipped)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return ErrReportExists
			}
			return fmt.Errorf("insert report: %w", err)
		}

		if len(rep.Operations) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for i, op := range rep.Operations {
			batch.Queue(`
INSERT INTO roster_save_operations (report_id, seq, kind, member_id, status, error)
VALUES ($1, $2, $3, $4, $5, $6)
`, rep.ID, i, op.Kind, op.MemberID, string(op.Status), op.Error)
		}
		if err := q.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert report operations: %w", err)
		}
		return nil
	})
}

// ListReports возвращает последние отчёты, новые первыми.
func (r *ReportRepo) ListReports(ctx context.Context, limit int) ([]model.SaveReport, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Pool.Query(ctx, `
SELECT id::text, actor_id, actor_email, started_at, finished_at, succeeded, failed, skipped
FROM roster_save_reports
ORDER BY started_at DESC
LIMIT $1
`, limit)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	reports := make([]model.SaveReport, 0)
	index := make(map[string]int)
	ids := make([]string, 0)
	for rows.Next() {
		var rep model.SaveReport
		if err := rows.Scan(&rep.ID, &rep.ActorID, &rep.ActorEmail, &rep.StartedAt, &rep.FinishedAt, &rep.Succeeded, &rep.Failed, &rep.Skipped); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		rep.Operations = make([]model.ReportOperation, 0)
		index[rep.ID] = len(reports)
		ids = append(ids, rep.ID)
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	if len(ids) == 0 {
		return reports, nil
	}

	opRows, err := r.db.Pool.Query(ctx, `
SELECT report_id::text, kind, member_id, status, error
FROM roster_save_operations
WHERE report_id = ANY($1::uuid[])
ORDER BY report_id, seq
`, ids)
	if err != nil {
		return nil, fmt.Errorf("query report operations: %w", err)
	}
	defer opRows.Close()

	for opRows.Next() {
		var reportID, status string
		var op model.ReportOperation
		if err := opRows.Scan(&reportID, &op.Kind, &op.MemberID, &status, &op.Error); err != nil {
			return nil, fmt.Errorf("scan report operation: %w", err)
		}
		op.Status = model.OperationStatus(status)
		if i, ok := index[reportID]; ok {
			reports[i].Operations = append(reports[i].Operations, op)
		}
	}
	if err := opRows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return reports, nil
}

// DeleteReportsBefore удаляет отчёты, начатые раньше before. Операции удаляются каскадом.
func (r *ReportRepo) DeleteReportsBefore(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM roster_save_reports WHERE started_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("delete reports: %w", err)
	}
	return tag.RowsAffected(), nil
}
