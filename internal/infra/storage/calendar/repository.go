package calendar

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
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// Repository даёт доступ на чтение к настройкам салона, каталогу и расписаниям мастеров.
// Все данные здесь только читаются: управление ими вне этого сервиса.
type Repository struct {
	db          DBExecutor
	defaultZone *time.Location
}

// NewRepository создает новый экземпляр репозитория календаря
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db, defaultZone: time.UTC}
}

// WithDefaultLocation задает часовой пояс для салонов без заполненного timezone
func (r *Repository) WithDefaultLocation(loc *time.Location) *Repository {
	if loc != nil {
		r.defaultZone = loc
	}
	return r
}

// GetSalonBySlug получает салон по slug вместе с разобранными настройками расписания
func (r *Repository) GetSalonBySlug(ctx context.Context, slug string) (*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slug",
		"name",
		"timezone",
		"open_time",
		"close_time",
		"closed_days",
		"custom_hours",
		"slot_step_minutes",
	).
		From("salons").
		Where(squirrel.Eq{"slug": slug}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSalonBySlug - build select query: %v", ErrBuildQuery, err)
	}

	var (
		salon       domain.Salon
		timezone    string
		openTime    types.TimeString
		closeTime   types.TimeString
		closedDays  string
		customHours []byte
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&salon.ID,
		&salon.Slug,
		&salon.Name,
		&timezone,
		&openTime,
		&closeTime,
		&closedDays,
		&customHours,
		&salon.SlotStepMinutes,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSalonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSalonBySlug - scan salon: %v", ErrScanRow, err)
	}

	salon.DefaultHours = types.NewTimeRange(openTime, closeTime)

	if salon.Location, err = parseTimezone(timezone, r.defaultZone); err != nil {
		return nil, err
	}
	if salon.ClosedDays, err = parseClosedDays(closedDays); err != nil {
		return nil, err
	}
	if salon.CustomHours, err = parseCustomHours(customHours); err != nil {
		return nil, err
	}

	return &salon, nil
}

// GetService получает услугу салона. Услуга другого салона считается не найденной.
func (r *Repository) GetService(ctx context.Context, salonID, serviceID int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"name",
		"price",
		"duration_minutes",
	).
		From("services").
		Where(squirrel.Eq{"id": serviceID, "salon_id": salonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var service domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.SalonID,
		&service.Name,
		&service.Price,
		&service.DurationMinutes,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}

	return &service, nil
}

// GetProfessional получает мастера салона вместе со списком его услуг
func (r *Repository) GetProfessional(ctx context.Context, salonID, professionalID int64) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"name",
		"specialty",
	).
		From("professionals").
		Where(squirrel.Eq{"id": professionalID, "salon_id": salonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetProfessional - build select query: %v", ErrBuildQuery, err)
	}

	var professional domain.Professional
	var specialty sql.NullString

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&professional.ID,
		&professional.SalonID,
		&professional.Name,
		&specialty,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetProfessional - scan professional: %v", ErrScanRow, err)
	}

	if specialty.Valid {
		professional.Specialty = &specialty.String
	}

	serviceIDs, err := r.serviceIDsOf(ctx, []int64{professional.ID})
	if err != nil {
		return nil, err
	}
	professional.ServiceIDs = serviceIDs[professional.ID]

	return &professional, nil
}

// ListProfessionalsByService получает мастеров салона, оказывающих услугу.
// Сортировка по имени, затем по id.
func (r *Repository) ListProfessionalsByService(ctx context.Context, salonID, serviceID int64) ([]*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"p.id",
		"p.salon_id",
		"p.name",
		"p.specialty",
	).
		From("professionals p").
		Join("professional_services ps ON ps.professional_id = p.id").
		Where(squirrel.Eq{"p.salon_id": salonID, "ps.service_id": serviceID}).
		OrderBy("p.name", "p.id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListProfessionalsByService - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListProfessionalsByService - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	professionals := make([]*domain.Professional, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var professional domain.Professional
		var specialty sql.NullString

		if err := rows.Scan(
			&professional.ID,
			&professional.SalonID,
			&professional.Name,
			&specialty,
		); err != nil {
			return nil, fmt.Errorf("%w: ListProfessionalsByService - scan professional: %v", ErrScanRow, err)
		}
		if specialty.Valid {
			professional.Specialty = &specialty.String
		}

		professionals = append(professionals, &professional)
		ids = append(ids, professional.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListProfessionalsByService - rows iteration: %v", ErrScanRow, err)
	}

	if len(ids) == 0 {
		return professionals, nil
	}

	serviceIDs, err := r.serviceIDsOf(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, professional := range professionals {
		professional.ServiceIDs = serviceIDs[professional.ID]
	}

	return professionals, nil
}

// serviceIDsOf загружает услуги мастеров одним запросом
func (r *Repository) serviceIDsOf(ctx context.Context, professionalIDs []int64) (map[int64][]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("professional_id", "service_id").
		From("professional_services").
		Where(squirrel.Eq{"professional_id": professionalIDs}).
		OrderBy("professional_id", "service_id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: serviceIDsOf - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: serviceIDsOf - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(map[int64][]int64, len(professionalIDs))
	for rows.Next() {
		var professionalID, serviceID int64
		if err := rows.Scan(&professionalID, &serviceID); err != nil {
			return nil, fmt.Errorf("%w: serviceIDsOf - scan row: %v", ErrScanRow, err)
		}
		result[professionalID] = append(result[professionalID], serviceID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: serviceIDsOf - rows iteration: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetWorkingHours получает рабочие часы мастера на день недели
func (r *Repository) GetWorkingHours(ctx context.Context, professionalID int64, day domain.DayOfWeek) ([]domain.WorkingHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"professional_id",
		"day_of_week",
		"start_time",
		"end_time",
	).
		From("working_hours").
		Where(squirrel.Eq{"professional_id": professionalID, "day_of_week": int(day)}).
		OrderBy("start_time").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]domain.WorkingHour, 0)
	for rows.Next() {
		var wh domain.WorkingHour
		if err := rows.Scan(&wh.ProfessionalID, &wh.Day, &wh.Hours.Start, &wh.Hours.End); err != nil {
			return nil, fmt.Errorf("%w: GetWorkingHours - scan row: %v", ErrScanRow, err)
		}
		hours = append(hours, wh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - rows iteration: %v", ErrScanRow, err)
	}

	return hours, nil
}

// GetBreaks получает перерывы мастера на день недели
func (r *Repository) GetBreaks(ctx context.Context, professionalID int64, day domain.DayOfWeek) ([]domain.Break, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"professional_id",
		"day_of_week",
		"start_time",
		"end_time",
	).
		From("professional_breaks").
		Where(squirrel.Eq{"professional_id": professionalID, "day_of_week": int(day)}).
		OrderBy("start_time").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBreaks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBreaks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	breaks := make([]domain.Break, 0)
	for rows.Next() {
		var br domain.Break
		if err := rows.Scan(&br.ProfessionalID, &br.Day, &br.Hours.Start, &br.Hours.End); err != nil {
			return nil, fmt.Errorf("%w: GetBreaks - scan row: %v", ErrScanRow, err)
		}
		breaks = append(breaks, br)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBreaks - rows iteration: %v", ErrScanRow, err)
	}

	return breaks, nil
}

// GetHolidays получает праздники салона на дату
func (r *Repository) GetHolidays(ctx context.Context, salonID int64, date time.Time) ([]domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"date",
		"description",
		"start_time",
		"end_time",
	).
		From("holidays").
		Where(squirrel.Eq{"salon_id": salonID, "date": date.Format(domain.DateFormat)}).
		OrderBy("start_time NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetHolidays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetHolidays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	holidays := make([]domain.Holiday, 0)
	for rows.Next() {
		var h domain.Holiday
		var start, end types.TimeString
		if err := rows.Scan(&h.ID, &h.SalonID, &h.Date, &h.Description, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: GetHolidays - scan row: %v", ErrScanRow, err)
		}
		h.Hours = optionalRange(start, end)
		holidays = append(holidays, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetHolidays - rows iteration: %v", ErrScanRow, err)
	}

	return holidays, nil
}

// GetSpecialSchedules получает отгулы мастера на дату
func (r *Repository) GetSpecialSchedules(ctx context.Context, professionalID int64, date time.Time) ([]domain.SpecialSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"professional_id",
		"date",
		"start_time",
		"end_time",
	).
		From("special_schedules").
		Where(squirrel.Eq{"professional_id": professionalID, "date": date.Format(domain.DateFormat)}).
		OrderBy("start_time NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSpecialSchedules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSpecialSchedules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]domain.SpecialSchedule, 0)
	for rows.Next() {
		var s domain.SpecialSchedule
		var start, end types.TimeString
		if err := rows.Scan(&s.ID, &s.SalonID, &s.ProfessionalID, &s.Date, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: GetSpecialSchedules - scan row: %v", ErrScanRow, err)
		}
		s.Hours = optionalRange(start, end)
		schedules = append(schedules, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSpecialSchedules - rows iteration: %v", ErrScanRow, err)
	}

	return schedules, nil
}
