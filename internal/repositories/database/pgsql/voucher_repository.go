package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_core/internal/models"
	"github.com/SscSPs/bookkeeping_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const voucherColumns = `voucher_id, company_id, voucher_number, voucher_date, description, voucher_type,
	created_at, created_by, last_updated_at, last_updated_by`

const voucherRowColumns = `vr.row_id, vr.voucher_id, vr.account_id, a.number AS account_number, a.name AS account_name,
	vr.debit, vr.credit, vr.description, vr.sort_order`

type PgxVoucherRepository struct {
	BaseRepository
}

func newPgxVoucherRepository(pool *pgxpool.Pool) *PgxVoucherRepository {
	return &PgxVoucherRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VoucherRepositoryFacade = (*PgxVoucherRepository)(nil)

// FindVoucherByID retrieves a voucher with its rows in sort order.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, companyID string, voucherID string) (*domain.Voucher, error) {
	return findVoucher(ctx, r.Pool, companyID, voucherID)
}

// ListVouchers retrieves vouchers newest first. The cursor in the filter is exclusive.
func (r *PgxVoucherRepository) ListVouchers(ctx context.Context, companyID string, filter domain.VoucherFilter) ([]domain.Voucher, error) {
	var sb strings.Builder
	args := []any{companyID}
	sb.WriteString(`SELECT ` + voucherColumns + ` FROM vouchers WHERE company_id = $1`)

	if filter.From != nil {
		args = append(args, domain.NormalizeDate(*filter.From))
		fmt.Fprintf(&sb, " AND voucher_date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, domain.NormalizeDate(*filter.To))
		fmt.Fprintf(&sb, " AND voucher_date <= $%d", len(args))
	}
	if filter.AfterDate != nil {
		args = append(args, domain.NormalizeDate(*filter.AfterDate), filter.AfterNumber)
		fmt.Fprintf(&sb, " AND (voucher_date, length(voucher_number), voucher_number) < ($%d::date, length($%d::text), $%d::text)",
			len(args)-1, len(args), len(args))
	}
	sb.WriteString(" ORDER BY voucher_date DESC, length(voucher_number) DESC, voucher_number DESC")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vouchers: %w", err)
	}
	headers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Voucher])
	if err != nil {
		return nil, fmt.Errorf("failed to scan vouchers: %w", err)
	}
	if len(headers) == 0 {
		return []domain.Voucher{}, nil
	}

	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.VoucherID
	}
	rowsByVoucher, err := findVoucherRows(ctx, r.Pool, ids)
	if err != nil {
		return nil, err
	}

	vouchers := make([]domain.Voucher, len(headers))
	for i, h := range headers {
		vouchers[i] = mapping.ToDomainVoucher(h, rowsByVoucher[h.VoucherID])
	}
	return vouchers, nil
}

func findVoucher(ctx context.Context, q querier, companyID string, voucherID string) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE company_id = $1 AND voucher_id = $2;`
	rows, err := q.Query(ctx, query, companyID, voucherID)
	if err != nil {
		return nil, translatePgError(err, "query voucher "+voucherID)
	}
	header, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Voucher])
	if err != nil {
		return nil, translatePgError(err, "find voucher "+voucherID)
	}

	rowsByVoucher, err := findVoucherRows(ctx, q, []string{voucherID})
	if err != nil {
		return nil, err
	}
	voucher := mapping.ToDomainVoucher(header, rowsByVoucher[voucherID])
	return &voucher, nil
}

func findVoucherRows(ctx context.Context, q querier, voucherIDs []string) (map[string][]models.VoucherRow, error) {
	query := `
		SELECT ` + voucherRowColumns + `
		FROM voucher_rows vr
		JOIN accounts a ON a.account_id = vr.account_id
		WHERE vr.voucher_id = ANY($1)
		ORDER BY vr.voucher_id, vr.sort_order;
	`
	rows, err := q.Query(ctx, query, voucherIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query voucher rows: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.VoucherRow])
	if err != nil {
		return nil, fmt.Errorf("failed to scan voucher rows: %w", err)
	}
	grouped := make(map[string][]models.VoucherRow, len(voucherIDs))
	for _, m := range ms {
		grouped[m.VoucherID] = append(grouped[m.VoucherID], m)
	}
	return grouped, nil
}

// insertVoucher writes the header and queues every row in one batch.
func insertVoucher(ctx context.Context, q querier, voucher domain.Voucher) error {
	m := mapping.ToModelVoucher(voucher)
	headerQuery := `
		INSERT INTO vouchers (` + voucherColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := q.Exec(ctx, headerQuery,
		m.VoucherID,
		m.CompanyID,
		m.VoucherNumber,
		m.VoucherDate,
		m.Description,
		m.VoucherType,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, "insert voucher "+m.VoucherNumber)
	}

	rowQuery := `
		INSERT INTO voucher_rows (row_id, voucher_id, account_id, debit, credit, description, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	batch := &pgx.Batch{}
	for _, row := range voucher.Rows {
		mr := mapping.ToModelVoucherRow(row)
		batch.Queue(rowQuery,
			mr.RowID,
			m.VoucherID,
			mr.AccountID,
			mr.Debit,
			mr.Credit,
			mr.Description,
			mr.SortOrder,
		)
	}
	br := q.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		if isPgCode(err, pgForeignKeyViolation) {
			return fmt.Errorf("voucher %s: %w", m.VoucherNumber, apperrors.ErrInvalidAccountReference)
		}
		return translatePgError(err, "insert rows for voucher "+m.VoucherNumber)
	}
	return nil
}

// maxVoucherSequence ignores voucher numbers that are not purely numeric.
func maxVoucherSequence(ctx context.Context, q querier, companyID string) (int64, error) {
	query := `
		SELECT COALESCE(MAX(voucher_number::BIGINT), 0)
		FROM vouchers
		WHERE company_id = $1 AND voucher_number ~ '^[0-9]+$';
	`
	var highest int64
	if err := q.QueryRow(ctx, query, companyID).Scan(&highest); err != nil {
		return 0, translatePgError(err, "read voucher sequence")
	}
	return highest, nil
}

// deleteVoucher removes the header; rows go with it through ON DELETE CASCADE.
func deleteVoucher(ctx context.Context, q querier, companyID string, voucherID string) error {
	tag, err := q.Exec(ctx, `DELETE FROM vouchers WHERE company_id = $1 AND voucher_id = $2;`, companyID, voucherID)
	if err != nil {
		return translatePgError(err, "delete voucher "+voucherID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
