package slot

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

// Repository репозиторий для работы с временными слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slot_date",
		"start_time",
		"end_time",
		"available",
		"member_id",
		"created_at",
		"updated_at",
	).
		From("time_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.TimeSlot
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.Date,
		&slot.StartTime,
		&slot.EndTime,
		&slot.Available,
		&slot.MemberID,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}

// GetByDate получает слоты на указанную дату, упорядоченные по времени начала.
// При onlyAvailable=true возвращает только свободные слоты
func (r *Repository) GetByDate(ctx context.Context, date string, onlyAvailable bool) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"slot_date",
		"start_time",
		"end_time",
		"available",
		"member_id",
		"created_at",
		"updated_at",
	).
		From("time_slots").
		Where(squirrel.Eq{"slot_date": date}).
		OrderBy("start_time ASC")

	if onlyAvailable {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"available": true})
	}

	// Внутри транзакции блокируем строки даты - для пропагации шаблона
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// SetAvailability атомарно переключает доступность слота: обновление
// проходит только если текущее состояние совпадает с ожидаемым (compare-and-set).
// Возвращает ErrSlotStateConflict, если слот существует, но состояние не совпало,
// и ErrSlotNotFound, если слота нет
func (r *Repository) SetAvailability(ctx context.Context, id string, expected, desired bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("available", desired).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "available": expected}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetAvailability - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected > 0 {
		return nil
	}

	// Различаем "нет слота" и "состояние не совпало"
	if _, err := r.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			return ErrSlotNotFound
		}
		return err
	}
	return ErrSlotStateConflict
}

// ReplaceForDate полностью заменяет слоты даты новым набором: старые строки
// удаляются, новые вставляются. Вызывать внутри транзакции
func (r *Repository) ReplaceForDate(ctx context.Context, date string, slots []*domain.TimeSlot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("time_slots").
		Where(squirrel.Eq{"slot_date": date}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForDate - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForDate - execute delete: %v", ErrExecQuery, err)
	}

	if len(slots) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("time_slots").
		Columns("id", "slot_date", "start_time", "end_time", "available", "member_id")

	for _, s := range slots {
		insertBuilder = insertBuilder.Values(s.ID, s.Date, s.StartTime, s.EndTime, s.Available, s.MemberID)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForDate - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForDate - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.TimeSlot, error) {
	slots := make([]*domain.TimeSlot, 0)

	for rows.Next() {
		var slot domain.TimeSlot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.Date,
			&slot.StartTime,
			&slot.EndTime,
			&slot.Available,
			&slot.MemberID,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		slot.UpdatedAt = updatedAt.Time

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
