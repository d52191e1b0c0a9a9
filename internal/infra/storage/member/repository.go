package member

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/domain"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/pkg/dbmetrics"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с участниками команды
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория участников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает участника по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"email",
		"role",
		"calendar_connected",
		"calendar_id",
		"created_at",
		"updated_at",
	).
		From("team_members").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var m domain.TeamMember
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.Role,
		&m.CalendarConnected,
		&m.CalendarID,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan member: %v", ErrScanRow, err)
	}

	m.CreatedAt = createdAt.Time
	m.UpdatedAt = updatedAt.Time

	return &m, nil
}

// List получает всех участников команды, упорядоченных по времени создания.
// Порядок стабилен - от него зависит распределение слотов по участникам
func (r *Repository) List(ctx context.Context) ([]domain.TeamMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"email",
		"role",
		"calendar_connected",
		"calendar_id",
		"created_at",
		"updated_at",
	).
		From("team_members").
		OrderBy("created_at ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	members := make([]domain.TeamMember, 0)
	for rows.Next() {
		var m domain.TeamMember
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Email,
			&m.Role,
			&m.CalendarConnected,
			&m.CalendarID,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		m.CreatedAt = createdAt.Time
		m.UpdatedAt = updatedAt.Time

		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return members, nil
}

// SetCalendarStatus обновляет состояние подключения внешнего календаря.
// При отключении calendarID передаётся как nil и ссылка очищается
func (r *Repository) SetCalendarStatus(ctx context.Context, id string, connected bool, calendarID *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("team_members").
		Set("calendar_connected", connected).
		Set("calendar_id", calendarID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetCalendarStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetCalendarStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetCalendarStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}
