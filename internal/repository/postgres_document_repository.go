package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orderpdf/order-document-service/internal/domain"
)

// RepositoryError represents an error that occurred within a repository
type RepositoryError struct {
	// Op is the operation that failed
	Op string

	// Err is the underlying error
	Err error
}

// Error returns a string representation of the error
func (e *RepositoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// Unwrap returns the underlying error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// PostgresDocumentRepository implements DocumentRepository backed by PostgreSQL
type PostgresDocumentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresDocumentRepository creates a new PostgreSQL document repository
func NewPostgresDocumentRepository(pool *pgxpool.Pool) *PostgresDocumentRepository {
	return &PostgresDocumentRepository{pool: pool}
}

// RecordDocument inserts one generated-document audit row
func (r *PostgresDocumentRepository) RecordDocument(ctx context.Context, record *domain.DocumentRecord) error {
	query := `
		INSERT INTO generated_documents (order_id, pdf_key, execution_id, generated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		record.OrderID,
		record.PDFKey,
		record.ExecutionID,
		record.GeneratedAt,
	).Scan(&record.ID)
	if err != nil {
		return &RepositoryError{
			Op:  "record_document",
			Err: fmt.Errorf("failed to insert document record: %w", err),
		}
	}

	return nil
}

// ListDocumentsByOrder retrieves the audit records for one order, newest first
func (r *PostgresDocumentRepository) ListDocumentsByOrder(ctx context.Context, orderID string) ([]domain.DocumentRecord, error) {
	query := `
		SELECT id, order_id, pdf_key, execution_id, generated_at
		FROM generated_documents
		WHERE order_id = $1
		ORDER BY generated_at DESC`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, &RepositoryError{
			Op:  "list_documents",
			Err: fmt.Errorf("failed to query document records: %w", err),
		}
	}
	defer rows.Close()

	records := make([]domain.DocumentRecord, 0)
	for rows.Next() {
		var record domain.DocumentRecord
		if err := rows.Scan(&record.ID, &record.OrderID, &record.PDFKey, &record.ExecutionID, &record.GeneratedAt); err != nil {
			return nil, &RepositoryError{
				Op:  "list_documents",
				Err: fmt.Errorf("failed to scan document record: %w", err),
			}
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, &RepositoryError{
			Op:  "list_documents",
			Err: err,
		}
	}

	return records, nil
}
