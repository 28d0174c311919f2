package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deskflow/helpdesk/internal/domain"
)

// TicketUpdate carries a partial update; nil fields are left unchanged.
type TicketUpdate struct {
	Status      *domain.Status
	AssignedTo  *string
	Title       *string
	Description *string
	Priority    *domain.Priority
}

// TicketRepository encapsulates ticket persistence. Ticket keys are
// assigned from a database sequence inside the INSERT, so two
// concurrent creates can never share a key.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	CreateSeeded(ctx context.Context, ticket *domain.Ticket) error
	GetByKey(ctx context.Context, key string) (*domain.Ticket, error)
	List(ctx context.Context) ([]domain.Ticket, error)
	Update(ctx context.Context, key string, update TicketUpdate) (*domain.Ticket, error)
	AppendComment(ctx context.Context, key string, comment domain.Comment) (*domain.Ticket, error)
	DeleteAll(ctx context.Context) error
	AdvanceKeySequence(ctx context.Context, lastUsed int64) error
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `ticket_key, title, description, category, priority, status,
               created_by, assigned_to, comments, created_at, updated_at`

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (ticket_key, title, description, category, priority, status, created_by, assigned_to, comments)
        VALUES ('T-' || nextval('ticket_key_seq'), $1, $2, $3, $4, $5, $6, $7, '[]'::jsonb)
        RETURNING ticket_key, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		ticket.Title,
		ticket.Description,
		ticket.Category,
		ticket.Priority,
		ticket.Status,
		ticket.CreatedBy,
		ticket.AssignedTo,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
}

// CreateSeeded inserts a ticket with an explicit key and timestamps,
// used only by the seed flow.
func (r *ticketRepository) CreateSeeded(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (ticket_key, title, description, category, priority, status, created_by, assigned_to, comments, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, $10, $11)`
	comments, err := marshalComments(ticket.Comments)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, query,
		ticket.ID,
		ticket.Title,
		ticket.Description,
		ticket.Category,
		ticket.Priority,
		ticket.Status,
		ticket.CreatedBy,
		ticket.AssignedTo,
		comments,
		ticket.CreatedAt,
		ticket.UpdatedAt,
	)
	return err
}

func (r *ticketRepository) GetByKey(ctx context.Context, key string) (*domain.Ticket, error) {
	query := fmt.Sprintf(`SELECT %s FROM tickets WHERE ticket_key=$1`, ticketColumns)

	var ticket domain.Ticket
	var comments []byte
	if err := r.pool.QueryRow(ctx, query, key).Scan(
		&ticket.ID,
		&ticket.Title,
		&ticket.Description,
		&ticket.Category,
		&ticket.Priority,
		&ticket.Status,
		&ticket.CreatedBy,
		&ticket.AssignedTo,
		&comments,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(comments, &ticket.Comments); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	query := fmt.Sprintf(`SELECT %s FROM tickets ORDER BY created_at DESC`, ticketColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) Update(ctx context.Context, key string, update TicketUpdate) (*domain.Ticket, error) {
	sets := []string{"updated_at=NOW()"}
	args := []any{}

	if update.Status != nil {
		args = append(args, *update.Status)
		sets = append(sets, fmt.Sprintf("status=$%d", len(args)))
	}
	if update.AssignedTo != nil {
		args = append(args, *update.AssignedTo)
		sets = append(sets, fmt.Sprintf("assigned_to=$%d", len(args)))
	}
	if update.Title != nil {
		args = append(args, *update.Title)
		sets = append(sets, fmt.Sprintf("title=$%d", len(args)))
	}
	if update.Description != nil {
		args = append(args, *update.Description)
		sets = append(sets, fmt.Sprintf("description=$%d", len(args)))
	}
	if update.Priority != nil {
		args = append(args, *update.Priority)
		sets = append(sets, fmt.Sprintf("priority=$%d", len(args)))
	}

	args = append(args, key)
	query := fmt.Sprintf(`UPDATE tickets SET %s WHERE ticket_key=$%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), ticketColumns)

	return r.scanSingle(ctx, query, args...)
}

func (r *ticketRepository) AppendComment(ctx context.Context, key string, comment domain.Comment) (*domain.Ticket, error) {
	encoded, err := json.Marshal(comment)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
        UPDATE tickets SET comments = comments || $2::jsonb, updated_at=NOW()
        WHERE ticket_key=$1 RETURNING %s`, ticketColumns)
	return r.scanSingle(ctx, query, key, encoded)
}

func (r *ticketRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tickets`)
	return err
}

// AdvanceKeySequence moves the key sequence past explicitly inserted
// keys so the next Create does not collide with seeded tickets.
func (r *ticketRepository) AdvanceKeySequence(ctx context.Context, lastUsed int64) error {
	_, err := r.pool.Exec(ctx, `SELECT setval('ticket_key_seq', $1)`, lastUsed)
	return err
}

func (r *ticketRepository) scanSingle(ctx context.Context, query string, args ...any) (*domain.Ticket, error) {
	var ticket domain.Ticket
	var comments []byte
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&ticket.ID,
		&ticket.Title,
		&ticket.Description,
		&ticket.Category,
		&ticket.Priority,
		&ticket.Status,
		&ticket.CreatedBy,
		&ticket.AssignedTo,
		&comments,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(comments, &ticket.Comments); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		var comments []byte
		if err := rows.Scan(
			&ticket.ID,
			&ticket.Title,
			&ticket.Description,
			&ticket.Category,
			&ticket.Priority,
			&ticket.Status,
			&ticket.CreatedBy,
			&ticket.AssignedTo,
			&comments,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(comments, &ticket.Comments); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}

func marshalComments(comments []domain.Comment) ([]byte, error) {
	if comments == nil {
		comments = []domain.Comment{}
	}
	return json.Marshal(comments)
}
