package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с записями клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Колонки записи вместе с длительностью услуги из LEFT JOIN services
var appointmentColumns = []string{
	"a.id",
	"a.salon_id",
	"a.professional_id",
	"a.service_id",
	"a.client_name",
	"a.client_contact",
	"a.confirmation_code",
	"a.date",
	"a.start_time",
	"a.status",
	"s.duration_minutes",
	"a.created_at",
}

// Create создает новую запись.
// Если в контексте передана активная транзакция, использует её.
//
// Нарушение уникальности активного слота и ошибка сериализации возвращаются как ErrSlotTaken,
// повтор кода подтверждения в салоне - как ErrDuplicateCode.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"salon_id",
			"professional_id",
			"service_id",
			"client_name",
			"client_contact",
			"confirmation_code",
			"date",
			"start_time",
			"status",
		).
		Values(
			appt.SalonID,
			appt.ProfessionalID,
			appt.ServiceID,
			appt.ClientName,
			appt.ClientContact,
			appt.ConfirmationCode,
			appt.Date.Format(domain.DateFormat),
			appt.StartTime,
			appt.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
	)

	if err != nil {
		if mapped := TranslateError(err); mapped != nil {
			return nil, fmt.Errorf("%w: Create: %v", mapped, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time

	return appt, nil
}

// ListActiveByProfessionalAndDate получает неотменённые записи мастера на дату,
// отсортированные по времени начала
func (r *Repository) ListActiveByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		LeftJoin("services s ON s.id = a.service_id").
		Where(squirrel.Eq{"a.professional_id": professionalID, "a.date": date.Format(domain.DateFormat)}).
		Where(squirrel.NotEq{"a.status": domain.StatusCancelled}).
		OrderBy("a.start_time").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByProfessionalAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByProfessionalAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetByCode получает запись салона по коду подтверждения
func (r *Repository) GetByCode(ctx context.Context, salonID int64, code string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		LeftJoin("services s ON s.id = a.service_id").
		Where(squirrel.Eq{"a.salon_id": salonID, "a.confirmation_code": code}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row scanner) (*domain.Appointment, error) {
	var (
		appt      domain.Appointment
		serviceID sql.NullInt64
		duration  sql.NullInt64
		createdAt sql.NullTime
	)

	err := row.Scan(
		&appt.ID,
		&appt.SalonID,
		&appt.ProfessionalID,
		&serviceID,
		&appt.ClientName,
		&appt.ClientContact,
		&appt.ConfirmationCode,
		&appt.Date,
		&appt.StartTime,
		&appt.Status,
		&duration,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if serviceID.Valid {
		id := serviceID.Int64
		appt.ServiceID = &id
	}
	if duration.Valid {
		minutes := int(duration.Int64)
		appt.ServiceDurationMinutes = &minutes
	}
	appt.CreatedAt = createdAt.Time

	return &appt, nil
}

// scanAppointments сканирует несколько записей из rows
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows iteration: %v", ErrScanRow, err)
	}

	return appointments, nil
}
