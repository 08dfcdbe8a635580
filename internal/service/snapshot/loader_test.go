package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

type fakeCalendar struct {
	requestedDay domain.DayOfWeek
	breaksErr    error
}

func (f *fakeCalendar) GetWorkingHours(_ context.Context, professionalID int64, day domain.DayOfWeek) ([]domain.WorkingHour, error) {
	f.requestedDay = day
	return []domain.WorkingHour{{ProfessionalID: professionalID, Day: day, Hours: types.NewTimeRange("09:00", "17:00")}}, nil
}

func (f *fakeCalendar) GetBreaks(_ context.Context, _ int64, _ domain.DayOfWeek) ([]domain.Break, error) {
	if f.breaksErr != nil {
		return nil, f.breaksErr
	}
	return []domain.Break{}, nil
}

func (f *fakeCalendar) GetHolidays(_ context.Context, salonID int64, date time.Time) ([]domain.Holiday, error) {
	return []domain.Holiday{{SalonID: salonID, Date: date}}, nil
}

func (f *fakeCalendar) GetSpecialSchedules(_ context.Context, _ int64, _ time.Time) ([]domain.SpecialSchedule, error) {
	return nil, nil
}

type fakeAppointments struct{}

func (fakeAppointments) ListActiveByProfessionalAndDate(_ context.Context, professionalID int64, date time.Time) ([]*domain.Appointment, error) {
	return []*domain.Appointment{{ProfessionalID: professionalID, Date: date, StartTime: "10:00"}}, nil
}

func TestLoader_LoadDay(t *testing.T) {
	calendar := &fakeCalendar{}
	loader := NewLoader(calendar, fakeAppointments{})

	salon := &domain.Salon{ID: 1}
	professional := &domain.Professional{ID: 10, SalonID: 1}
	saturday := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	snap, err := loader.LoadDay(context.Background(), salon, professional, saturday)
	require.NoError(t, err)

	assert.Equal(t, domain.Saturday, calendar.requestedDay)
	assert.Same(t, salon, snap.Salon)
	assert.Same(t, professional, snap.Professional)
	assert.Len(t, snap.WorkingHours, 1)
	assert.Len(t, snap.Holidays, 1)
	assert.Len(t, snap.Appointments, 1)
	assert.Equal(t, domain.Saturday, snap.Day())
}

func TestLoader_LoadDay_RepositoryError(t *testing.T) {
	loader := NewLoader(&fakeCalendar{breaksErr: errors.New("db down")}, fakeAppointments{})

	_, err := loader.LoadDay(context.Background(), &domain.Salon{ID: 1}, &domain.Professional{ID: 10}, time.Now())
	assert.ErrorIs(t, err, ErrLoad)
}
