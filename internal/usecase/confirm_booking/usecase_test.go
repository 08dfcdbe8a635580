package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/appointment"
	calendarRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/availability"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
	"github.com/m04kA/SMC-SalonBookingService/pkg/metrics"
	"github.com/m04kA/SMC-SalonBookingService/pkg/txmanager"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// 2025-03-10 is a Monday
var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// fakeStore is an in-memory salon with one professional. Create enforces the
// active slot and per-salon code uniqueness the way the database does.
type fakeStore struct {
	mu           sync.Mutex
	salon        *domain.Salon
	professional *domain.Professional
	services     map[int64]*domain.Service
	appointments []*domain.Appointment
	holidays     []domain.Holiday

	// loadBarrier holds every LoadDay until all expected callers arrived
	loadBarrier *sync.WaitGroup
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		salon: &domain.Salon{
			ID:              1,
			Slug:            "studio",
			DefaultHours:    types.NewTimeRange("09:00", "18:00"),
			SlotStepMinutes: 30,
			Location:        time.UTC,
		},
		professional: &domain.Professional{ID: 10, SalonID: 1, Name: "Ana", ServiceIDs: []int64{100}},
		services: map[int64]*domain.Service{
			100: {ID: 100, SalonID: 1, Name: "Haircut", DurationMinutes: 30},
			200: {ID: 200, SalonID: 1, Name: "Coloring", DurationMinutes: 90},
		},
	}
}

func (s *fakeStore) GetSalonBySlug(_ context.Context, slug string) (*domain.Salon, error) {
	if slug != s.salon.Slug {
		return nil, calendarRepo.ErrSalonNotFound
	}
	return s.salon, nil
}

func (s *fakeStore) GetService(_ context.Context, salonID, serviceID int64) (*domain.Service, error) {
	svc, ok := s.services[serviceID]
	if !ok || svc.SalonID != salonID {
		return nil, calendarRepo.ErrServiceNotFound
	}
	return svc, nil
}

func (s *fakeStore) GetProfessional(_ context.Context, salonID, professionalID int64) (*domain.Professional, error) {
	if professionalID != s.professional.ID || salonID != s.professional.SalonID {
		return nil, calendarRepo.ErrProfessionalNotFound
	}
	return s.professional, nil
}

func (s *fakeStore) LoadDay(_ context.Context, salon *domain.Salon, professional *domain.Professional, date time.Time) (*availability.DaySnapshot, error) {
	s.mu.Lock()
	appointments := append([]*domain.Appointment(nil), s.appointments...)
	s.mu.Unlock()

	if s.loadBarrier != nil {
		s.loadBarrier.Done()
		s.loadBarrier.Wait()
	}

	return &availability.DaySnapshot{
		Salon:        salon,
		Professional: professional,
		Date:         date,
		WorkingHours: []domain.WorkingHour{
			{ProfessionalID: professional.ID, Day: domain.Monday, Hours: types.NewTimeRange("09:00", "17:00")},
		},
		Breaks: []domain.Break{
			{ProfessionalID: professional.ID, Day: domain.Monday, Hours: types.NewTimeRange("12:00", "13:00")},
		},
		Holidays:     s.holidays,
		Appointments: appointments,
	}, nil
}

func (s *fakeStore) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.appointments {
		if !existing.IsActive() {
			continue
		}
		if existing.ProfessionalID == appt.ProfessionalID && existing.Date.Equal(appt.Date) && existing.StartTime == appt.StartTime {
			return nil, fmt.Errorf("%w: duplicate slot", appointmentRepo.ErrSlotTaken)
		}
		if existing.SalonID == appt.SalonID && existing.ConfirmationCode == appt.ConfirmationCode {
			return nil, fmt.Errorf("%w: duplicate code", appointmentRepo.ErrDuplicateCode)
		}
	}

	appt.ID = int64(len(s.appointments) + 1)
	appt.CreatedAt = time.Now()
	s.appointments = append(s.appointments, appt)
	return appt, nil
}

func (s *fakeStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.appointments)
}

type passThroughTx struct {
	commitErr error
}

func (tx passThroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return tx.commitErr
}

type sequenceGenerator struct {
	mu    sync.Mutex
	codes []string
	next  int
}

func (g *sequenceGenerator) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	code := g.codes[g.next%len(g.codes)]
	g.next++
	return code, nil
}

type fixture struct {
	store   *fakeStore
	metrics *metrics.Metrics
	uc      *UseCase
}

func newFixture(t *testing.T, tx TransactionManager, gen CodeGenerator) *fixture {
	t.Helper()

	store := newFakeStore()
	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())
	uc := NewUseCase(store, store, store, gen, tx, m, logger.Nop()).
		WithTimeProvider(fixedTime{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)})

	return &fixture{store: store, metrics: m, uc: uc}
}

func validRequest() *Request {
	return &Request{
		SalonSlug:      "studio",
		ProfessionalID: 10,
		ServiceID:      100,
		Date:           monday,
		StartTime:      "10:00",
		ClientName:     "  Maria  ",
		ClientContact:  "+5511999999999",
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(t, passThroughTx{}, &sequenceGenerator{codes: []string{"AB12CD"}})

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "AB12CD", resp.ConfirmationCode)
	assert.Equal(t, "Maria", resp.ClientName)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("10:30"), resp.EndTime)
	assert.Equal(t, "Haircut", resp.ServiceName)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, 1, f.store.count())
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.BookingsTotal.WithLabelValues(metrics.OutcomeConfirmed)))
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Request)
		want   error
	}{
		{name: "unknown salon", modify: func(r *Request) { r.SalonSlug = "other" }, want: ErrSalonNotFound},
		{name: "unknown professional", modify: func(r *Request) { r.ProfessionalID = 99 }, want: ErrProfessionalNotFound},
		{name: "unknown service", modify: func(r *Request) { r.ServiceID = 999 }, want: ErrServiceNotFound},
		{name: "service not offered", modify: func(r *Request) { r.ServiceID = 200 }, want: ErrServiceNotOffered},
		{name: "malformed start", modify: func(r *Request) { r.StartTime = "25:00" }, want: ErrInvalidInput},
		{name: "blank client name", modify: func(r *Request) { r.ClientName = "   " }, want: ErrInvalidInput},
		{name: "contact too long", modify: func(r *Request) { r.ClientContact = "+55 11 99999-9999 ext 42" }, want: ErrInvalidInput},
		{name: "missing date", modify: func(r *Request) { r.Date = time.Time{} }, want: ErrInvalidInput},
		{name: "elapsed slot", modify: func(r *Request) { r.Date = time.Date(2025, 2, 24, 0, 0, 0, 0, time.UTC) }, want: ErrSlotInPast},
		{name: "break", modify: func(r *Request) { r.StartTime = "12:00" }, want: ErrSlotNotAvailable},
		{name: "after working hours", modify: func(r *Request) { r.StartTime = "17:00" }, want: ErrSlotNotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, passThroughTx{}, &sequenceGenerator{codes: []string{"AB12CD"}})
			req := validRequest()
			tt.modify(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 0, f.store.count())
		})
	}
}

func TestExecute_SecondBookingOfSameSlotConflicts(t *testing.T) {
	f := newFixture(t, passThroughTx{}, &sequenceGenerator{codes: []string{"AAAAAA", "BBBBBB"}})

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.SlotRejectionsTotal.WithLabelValues("appointment")))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.BookingsTotal.WithLabelValues(metrics.OutcomeConflict)))
}

func TestExecute_CancelledAppointmentFreesSlot(t *testing.T) {
	f := newFixture(t, passThroughTx{}, &sequenceGenerator{codes: []string{"AAAAAA", "BBBBBB"}})
	f.store.appointments = []*domain.Appointment{{
		SalonID: 1, ProfessionalID: 10, Date: monday, StartTime: "10:00",
		ConfirmationCode: "OLD000", Status: domain.StatusCancelled,
	}}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_HolidayConflicts(t *testing.T) {
	f := newFixture(t, passThroughTx{}, &sequenceGenerator{codes: []string{"AB12CD"}})
	f.store.holidays = []domain.Holiday{{SalonID: 1, Date: monday}}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_ConcurrentCommitsForSameSlot(t *testing.T) {
	f := newFixture(t, passThroughTx{}, &sequenceGenerator{codes: []string{"AAAAAA", "BBBBBB"}})

	const callers = 2
	barrier := &sync.WaitGroup{}
	barrier.Add(callers)
	f.store.loadBarrier = barrier

	var wg sync.WaitGroup
	results := make([]error, callers)
	codes := make([]string, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := f.uc.Execute(context.Background(), validRequest())
			results[i] = err
			if err == nil {
				codes[i] = resp.ConfirmationCode
			}
		}(i)
	}
	wg.Wait()

	successes, conflicts := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrSlotNotAvailable):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
	assert.Equal(t, 1, f.store.count())
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.SlotRejectionsTotal.WithLabelValues("concurrent")))
}

func TestExecute_SerializationFailureOnCommit(t *testing.T) {
	commitErr := fmt.Errorf("%w: %w", txmanager.ErrCommitTx, &pq.Error{Code: "40001"})
	f := newFixture(t, passThroughTx{commitErr: commitErr}, &sequenceGenerator{codes: []string{"AB12CD"}})

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_RegeneratesCollidingCode(t *testing.T) {
	gen := &sequenceGenerator{codes: []string{"TAKEN1", "TAKEN1", "FRESH1"}}
	f := newFixture(t, passThroughTx{}, gen)
	f.store.appointments = []*domain.Appointment{{
		SalonID: 1, ProfessionalID: 10, Date: monday, StartTime: "15:00",
		ConfirmationCode: "TAKEN1", Status: domain.StatusConfirmed,
	}}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "FRESH1", resp.ConfirmationCode)
	assert.Equal(t, 3, gen.next)
}

func TestExecute_GivesUpAfterRepeatedCodeCollisions(t *testing.T) {
	gen := &sequenceGenerator{codes: []string{"TAKEN1"}}
	f := newFixture(t, passThroughTx{}, gen)
	f.store.appointments = []*domain.Appointment{{
		SalonID: 1, ProfessionalID: 10, Date: monday, StartTime: "15:00",
		ConfirmationCode: "TAKEN1", Status: domain.StatusConfirmed,
	}}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, maxCodeAttempts, gen.next)
	assert.Equal(t, 1, f.store.count())
}

func TestExecute_InvalidSlotStepIsInternal(t *testing.T) {
	f := newFixture(t, passThroughTx{}, &sequenceGenerator{codes: []string{"AB12CD"}})
	f.store.salon.SlotStepMinutes = 0
	require.Equal(t, 30, f.store.services[100].DurationMinutes)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

// changingTx меняет хранилище перед началом транзакции, как правка администратора,
// пришедшая между предварительной проверкой и коммитом
type changingTx struct {
	change func()
}

func (tx changingTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.change()
	return fn(ctx)
}

func TestExecute_CommitSeesConfigurationChangedAfterPreCheck(t *testing.T) {
	tests := []struct {
		name       string
		change     func(s *fakeStore)
		want       error
		wantReason string
	}{
		{
			name: "salon closes on the weekday",
			change: func(s *fakeStore) {
				closed := *s.salon
				closed.ClosedDays = []domain.DayOfWeek{domain.Monday}
				s.salon = &closed
			},
			want:       ErrSlotNotAvailable,
			wantReason: "salon_closed",
		},
		{
			name: "professional stops offering the service",
			change: func(s *fakeStore) {
				prof := *s.professional
				prof.ServiceIDs = []int64{200}
				s.professional = &prof
			},
			want:       ErrSlotNotAvailable,
			wantReason: "service_not_offered",
		},
		{
			name: "service becomes longer and reaches the break",
			change: func(s *fakeStore) {
				svc := *s.services[100]
				svc.DurationMinutes = 150
				s.services = map[int64]*domain.Service{100: &svc, 200: s.services[200]}
			},
			want:       ErrSlotNotAvailable,
			wantReason: "break",
		},
		{
			name: "professional removed",
			change: func(s *fakeStore) {
				prof := *s.professional
				prof.ID = 11
				s.professional = &prof
			},
			want: ErrProfessionalNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *fixture
			f = newFixture(t, changingTx{change: func() { tt.change(f.store) }}, &sequenceGenerator{codes: []string{"AB12CD"}})

			_, err := f.uc.Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 0, f.store.count())
			if tt.wantReason != "" {
				assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.SlotRejectionsTotal.WithLabelValues(tt.wantReason)))
			} else {
				assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.BookingsTotal.WithLabelValues(metrics.OutcomeRejected)))
			}
		})
	}
}

func TestExecute_ResponseUsesEntitiesReadInTransaction(t *testing.T) {
	var f *fixture
	f = newFixture(t, changingTx{change: func() {
		svc := *f.store.services[100]
		svc.Name = "Haircut & Wash"
		svc.DurationMinutes = 60
		f.store.services = map[int64]*domain.Service{100: &svc, 200: f.store.services[200]}
	}}, &sequenceGenerator{codes: []string{"AB12CD"}})

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "Haircut & Wash", resp.ServiceName)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)
	require.Equal(t, 1, f.store.count())
	assert.Equal(t, 60, *f.store.appointments[0].ServiceDurationMinutes)
}
