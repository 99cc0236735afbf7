package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Queries wraps database queries
type Queries struct {
	*pgxpool.Pool
}

// NewQueries creates a new Queries instance
func NewQueries(pool *pgxpool.Pool) *Queries {
	return &Queries{Pool: pool}
}

// Ticket represents a tickets row
type Ticket struct {
	ID               string
	TicketNumber     string
	Title            string
	Description      string
	CategoryID       *string
	StudioID         *string
	Priority         string
	Status           string
	Source           string
	Tags             []string
	ReportedBy       *string
	DynamicFieldData map[string]interface{}
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type CreateTicketParams struct {
	ID               string
	TicketNumber     string
	Title            string
	Description      string
	CategoryID       *string
	StudioID         *string
	Priority         string
	Status           string
	Source           string
	Tags             []string
	ReportedBy       *string
	DynamicFieldData map[string]interface{}
}

const ticketColumns = `id, ticket_number, title, description, category_id, studio_id,
		priority, status, source, tags, reported_by, dynamic_field_data,
		created_at, updated_at`

func scanTicket(row pgx.Row) (Ticket, error) {
	var t Ticket
	err := row.Scan(
		&t.ID, &t.TicketNumber, &t.Title, &t.Description, &t.CategoryID, &t.StudioID,
		&t.Priority, &t.Status, &t.Source, &t.Tags, &t.ReportedBy, &t.DynamicFieldData,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (q *Queries) CreateTicket(ctx context.Context, p CreateTicketParams) (Ticket, error) {
	row := q.Pool.QueryRow(ctx,
		`INSERT INTO tickets (
			id, ticket_number, title, description, category_id, studio_id,
			priority, status, source, tags, reported_by, dynamic_field_data
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+ticketColumns,
		p.ID, p.TicketNumber, p.Title, p.Description, p.CategoryID, p.StudioID,
		p.Priority, p.Status, p.Source, p.Tags, p.ReportedBy, p.DynamicFieldData,
	)
	return scanTicket(row)
}

func (q *Queries) GetTicketByID(ctx context.Context, id string) (Ticket, error) {
	row := q.Pool.QueryRow(ctx,
		`SELECT `+ticketColumns+` FROM tickets WHERE id = $1`,
		id,
	)
	return scanTicket(row)
}

// ListTicketsByTrainer returns a trainer's feedback tickets, newest first.
// Trainer association lives inside dynamic_field_data, not a column.
func (q *Queries) ListTicketsByTrainer(ctx context.Context, trainerID string, limit, offset int) ([]Ticket, error) {
	rows, err := q.Pool.Query(ctx,
		`SELECT `+ticketColumns+`
		FROM tickets
		WHERE source = 'trainer-feedback'
		  AND dynamic_field_data->>'trainerId' = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		trainerID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTickets(rows)
}

func (q *Queries) ListTicketsBySource(ctx context.Context, source string, limit, offset int) ([]Ticket, error) {
	rows, err := q.Pool.Query(ctx,
		`SELECT `+ticketColumns+`
		FROM tickets
		WHERE source = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		source, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTickets(rows)
}

func collectTickets(rows pgx.Rows) ([]Ticket, error) {
	tickets := make([]Ticket, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

// UpdateTicketInsights merges analysis results into dynamic_field_data and
// appends the rendered analysis block to the description.
func (q *Queries) UpdateTicketInsights(ctx context.Context, id string, insights map[string]interface{}, descriptionSuffix string) (Ticket, error) {
	row := q.Pool.QueryRow(ctx,
		`UPDATE tickets
		SET dynamic_field_data = dynamic_field_data || $2,
		    description = description || $3,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING `+ticketColumns,
		id, insights, descriptionSuffix,
	)
	return scanTicket(row)
}

// Category represents a ticket category lookup row
type Category struct {
	ID       string
	Name     string
	IsActive bool
}

func (q *Queries) ListActiveCategories(ctx context.Context) ([]Category, error) {
	rows, err := q.Pool.Query(ctx,
		`SELECT id, name, is_active FROM categories WHERE is_active ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cats := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.IsActive); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// Studio represents a studio location row
type Studio struct {
	ID   string
	Name string
}

func (q *Queries) ListStudios(ctx context.Context, limit int) ([]Studio, error) {
	rows, err := q.Pool.Query(ctx,
		`SELECT id, name FROM studios ORDER BY name LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	studios := make([]Studio, 0)
	for rows.Next() {
		var s Studio
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		studios = append(studios, s)
	}
	return studios, rows.Err()
}

// Trainer represents a trainer roster row
type Trainer struct {
	ID             string
	Name           string
	Specialization string
}

func (q *Queries) ListTrainers(ctx context.Context) ([]Trainer, error) {
	rows, err := q.Pool.Query(ctx,
		`SELECT id, name, specialization FROM trainers ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trainers := make([]Trainer, 0)
	for rows.Next() {
		var t Trainer
		if err := rows.Scan(&t.ID, &t.Name, &t.Specialization); err != nil {
			return nil, err
		}
		trainers = append(trainers, t)
	}
	return trainers, rows.Err()
}

func (q *Queries) GetTrainerByID(ctx context.Context, id string) (Trainer, error) {
	var t Trainer
	err := q.Pool.QueryRow(ctx,
		`SELECT id, name, specialization FROM trainers WHERE id = $1`,
		id,
	).Scan(&t.ID, &t.Name, &t.Specialization)
	return t, err
}
