package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FleetBookingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"organization_id",
	"branch_id",
	"driver_id",
	"vehicle_id",
	"status",
	"start_at",
	"end_at",
	"recurrence_kind",
	"recurrence_weekdays",
	"recurrence_month_days",
	"recurrence_ends_on",
	"start_odometer",
	"end_odometer",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	weekdays, monthDays, endsOn := recurrenceColumns(booking.Recurrence)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"organization_id",
			"branch_id",
			"driver_id",
			"vehicle_id",
			"status",
			"start_at",
			"end_at",
			"recurrence_kind",
			"recurrence_weekdays",
			"recurrence_month_days",
			"recurrence_ends_on",
			"notes",
		).
		Values(
			booking.OrganizationID,
			booking.BranchID,
			booking.DriverID,
			booking.VehicleID,
			booking.Status,
			booking.Window.Start,
			booking.Window.End,
			recurrenceKind(booking.Recurrence),
			pq.Array(weekdays),
			pq.Array(monthDays),
			endsOn,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByFilter получает бронирования филиала или водителя с фильтрацией
// Период [From, To) отбирает бронирования, окно которых пересекается с ним
func (r *Repository) GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("start_at DESC")

	if filter.BranchID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"branch_id": *filter.BranchID})
	}
	if filter.DriverID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"driver_id": *filter.DriverID})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_at": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_at": *filter.To})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": statusStrings(domain.TerminalStatuses())})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetDriverConflicts получает активные (approved, in_progress) бронирования водителя,
// пересекающиеся с окном. Граничные случаи (конец = начало) не считаются пересечением
// Внутри транзакции строки блокируются (FOR UPDATE)
func (r *Repository) GetDriverConflicts(ctx context.Context, driverID int64, window domain.BookingWindow) ([]domain.DriverBookingConflict, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := driverConflictsQuery(driverID, window, dbmetrics.IsInTransaction(ctx)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDriverConflicts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDriverConflicts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	conflicts := make([]domain.DriverBookingConflict, 0)
	for rows.Next() {
		var c domain.DriverBookingConflict
		if err := rows.Scan(&c.BookingID, &c.VehicleID, &c.Status, &c.Window.Start, &c.Window.End); err != nil {
			return nil, fmt.Errorf("%w: GetDriverConflicts - scan row: %v", ErrScanRow, err)
		}
		c.Window = localWindow(c.Window)
		conflicts = append(conflicts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDriverConflicts - rows error: %v", ErrScanRow, err)
	}

	return conflicts, nil
}

// driverConflictsQuery строгое пересечение: start_at < end AND end_at > start
func driverConflictsQuery(driverID int64, window domain.BookingWindow, forUpdate bool) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select("id", "vehicle_id", "status", "start_at", "end_at").
		From("bookings").
		Where(squirrel.Eq{"driver_id": driverID}).
		Where(squirrel.Eq{"status": statusStrings(domain.ConflictingStatuses)}).
		Where(squirrel.Lt{"start_at": window.End}).
		Where(squirrel.Gt{"end_at": window.Start}).
		OrderBy("start_at ASC")

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}
	return selectBuilder
}

// UpdateWindow сохраняет отредактированное бронирование (окно, автомобиль, повторение, заметки)
// Обновление применяется только пока бронирование в статусе pending_approval или approved
func (r *Repository) UpdateWindow(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	weekdays, monthDays, endsOn := recurrenceColumns(booking.Recurrence)

	query, args, err := psqlbuilder.Update("bookings").
		Set("vehicle_id", booking.VehicleID).
		Set("start_at", booking.Window.Start).
		Set("end_at", booking.Window.End).
		Set("recurrence_kind", recurrenceKind(booking.Recurrence)).
		Set("recurrence_weekdays", pq.Array(weekdays)).
		Set("recurrence_month_days", pq.Array(monthDays)).
		Set("recurrence_ends_on", endsOn).
		Set("notes", booking.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		Where(squirrel.Eq{"status": []string{string(domain.StatusPendingApproval), string(domain.StatusApproved)}}).
		Suffix("RETURNING status, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateWindow - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.Status, &booking.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrStatusChanged
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateWindow - execute update: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// ApplyTransition применяет переход жизненного цикла
// Переход выполняется только если текущий статус равен transition.From,
// иначе возвращается ErrStatusChanged
func (r *Repository) ApplyTransition(ctx context.Context, id int64, transition domain.Transition) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", transition.To).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": transition.From})

	switch transition.Kind {
	case domain.TransitionCheckOut:
		updateBuilder = updateBuilder.Set("start_odometer", transition.Odometer)
	case domain.TransitionCheckIn:
		updateBuilder = updateBuilder.Set("end_odometer", transition.Odometer)
	case domain.TransitionCancel:
		updateBuilder = updateBuilder.
			Set("cancellation_reason", transition.Reason).
			Set("cancelled_at", squirrel.Expr("NOW()"))
	case domain.TransitionExtend:
		if transition.NewEnd == nil {
			return fmt.Errorf("%w: extend without new end", ErrUnsupportedTransition)
		}
		updateBuilder = updateBuilder.Set("end_at", *transition.NewEnd)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedTransition, transition.Kind)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ApplyTransition - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ApplyTransition - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ApplyTransition - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusChanged
	}

	return nil
}

// Delete удаляет бронирование (терминальное удаление вне жизненного цикла)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в доменную модель
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b                    domain.Booking
		kind                 sql.NullString
		weekdays, monthDays  []int64
		endsOn               sql.NullTime
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&b.ID,
		&b.OrganizationID,
		&b.BranchID,
		&b.DriverID,
		&b.VehicleID,
		&b.Status,
		&b.Window.Start,
		&b.Window.End,
		&kind,
		pq.Array(&weekdays),
		pq.Array(&monthDays),
		&endsOn,
		&b.StartOdometer,
		&b.EndOdometer,
		&b.Notes,
		&b.CancellationReason,
		&b.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Window = localWindow(b.Window)
	b.Recurrence = recurrenceFromColumns(kind.String, weekdays, monthDays, endsOn)
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func recurrenceKind(p domain.RecurrencePattern) string {
	if !p.IsActive() {
		return string(domain.RecurrenceNone)
	}
	return string(p.Kind)
}

// recurrenceColumns раскладывает паттерн повторения по колонкам (int[] для селекторов).
// Селекторы сохраняются только для weekly/monthly
func recurrenceColumns(p domain.RecurrencePattern) ([]int64, []int64, *time.Time) {
	if !p.IsActive() {
		return []int64{}, []int64{}, nil
	}
	if !p.HasSelector() {
		return []int64{}, []int64{}, p.EndsOn
	}

	weekdays := make([]int64, 0, len(p.Weekdays))
	for _, d := range p.Weekdays {
		weekdays = append(weekdays, int64(d))
	}
	monthDays := make([]int64, 0, len(p.MonthDays))
	for _, d := range p.MonthDays {
		monthDays = append(monthDays, int64(d))
	}
	return weekdays, monthDays, p.EndsOn
}

func recurrenceFromColumns(kind string, weekdays, monthDays []int64, endsOn sql.NullTime) domain.RecurrencePattern {
	p := domain.RecurrencePattern{Kind: domain.RecurrenceKind(kind)}
	if kind == "" {
		p.Kind = domain.RecurrenceNone
	}
	for _, d := range weekdays {
		p.Weekdays = append(p.Weekdays, time.Weekday(d))
	}
	for _, d := range monthDays {
		p.MonthDays = append(p.MonthDays, int(d))
	}
	if endsOn.Valid {
		t := localWallClock(endsOn.Time)
		p.EndsOn = &t
	}
	return p
}

// localWallClock колонки TIMESTAMP/DATE хранят время филиала без зоны, lib/pq отдает их в UTC.
// Переносим те же часы и минуты в time.Local, где живут now и разобранные из запроса значения
func localWallClock(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.Local)
}

func localWindow(w domain.BookingWindow) domain.BookingWindow {
	return domain.BookingWindow{Start: localWallClock(w.Start), End: localWallClock(w.End)}
}

func statusStrings(statuses []domain.BookingStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}
