package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/helpdesk-br/chamados-api/internal/domain"
)

// CallRepository encapsulates call persistence for one variant.
type CallRepository interface {
	Create(ctx context.Context, call *domain.Call) error
	List(ctx context.Context) ([]domain.Call, error)
}

// The two variants share a shape but live in separate tables.
var variantTables = map[domain.CallVariant]string{
	domain.CallVariantTI:         "ti_calls",
	domain.CallVariantManutencao: "manutencao_calls",
}

type callRepository struct {
	db    Querier
	table string
}

// NewCallRepository instantiates a repository bound to one call variant.
func NewCallRepository(db Querier, variant domain.CallVariant) (CallRepository, error) {
	table, ok := variantTables[variant]
	if !ok {
		return nil, fmt.Errorf("unknown call variant %q", variant)
	}
	return &callRepository{db: db, table: table}, nil
}

func (r *callRepository) Create(ctx context.Context, call *domain.Call) error {
	query := fmt.Sprintf(`
        INSERT INTO %s (name, email, sector, description, created_at, deadline)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id`, r.table)

	return r.db.QueryRow(ctx, query,
		call.Name,
		call.Email,
		call.Sector,
		call.Description,
		call.CreatedAt,
		call.Deadline,
	).Scan(&call.ID)
}

func (r *callRepository) List(ctx context.Context) ([]domain.Call, error) {
	query := fmt.Sprintf(`
        SELECT id, name, email, sector, description, created_at, deadline
        FROM %s`, r.table)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCalls(rows)
}

func scanCalls(rows pgx.Rows) ([]domain.Call, error) {
	var result []domain.Call
	for rows.Next() {
		var call domain.Call
		if err := rows.Scan(
			&call.ID,
			&call.Name,
			&call.Email,
			&call.Sector,
			&call.Description,
			&call.CreatedAt,
			&call.Deadline,
		); err != nil {
			return nil, err
		}
		result = append(result, call)
	}
	return result, rows.Err()
}
