package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fitclubhq/fitclub/app/models"
)

// memoryRepo implements Repository with the same atomicity contract as the
// GORM implementation: Admit is a single serialized check-and-insert, the
// status transitions are compare-and-set.
type memoryRepo struct {
	mu          sync.Mutex
	nextID      uint
	sessions    map[uint]*models.Session
	bookings    map[uint]*models.Booking
	memberships map[uint]bool
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		nextID:      1,
		sessions:    make(map[uint]*models.Session),
		bookings:    make(map[uint]*models.Booking),
		memberships: make(map[uint]bool),
	}
}

func (m *memoryRepo) addSession(s *models.Session) {
	m.sessions[s.ID] = s
}

func (m *memoryRepo) GetSession(_ context.Context, id uint) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := *s
	return &copied, nil
}

func (m *memoryRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	copied := *b
	if s, ok := m.sessions[b.SessionID]; ok {
		sess := *s
		copied.Session = &sess
	}
	return &copied, nil
}

func (m *memoryRepo) FindHeldBooking(_ context.Context, userID, sessionID uint) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.UserID == userID && b.SessionID == sessionID && b.HoldsSpot() {
			copied := *b
			return &copied, nil
		}
	}
	return nil, ErrBookingNotFound
}

func (m *memoryRepo) HasCurrentMembership(_ context.Context, userID uint, _ time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.memberships[userID], nil
}

func (m *memoryRepo) Admit(_ context.Context, userID, sessionID uint) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	held := int64(0)
	for _, b := range m.bookings {
		if b.SessionID != sessionID {
			continue
		}
		if b.UserID == userID && b.Status != models.BookingStatusCancelled {
			return nil, ErrDuplicateBooking
		}
		if b.HoldsSpot() {
			held++
		}
	}
	if held >= int64(sess.Capacity) {
		return nil, ErrCapacityExceeded
	}

	b := &models.Booking{
		ID:        m.nextID,
		UserID:    userID,
		SessionID: sessionID,
		Status:    models.BookingStatusConfirmed,
	}
	m.nextID++
	m.bookings[b.ID] = b
	copied := *b
	return &copied, nil
}

func (m *memoryRepo) MarkCancelled(_ context.Context, bookingID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[bookingID]
	if !ok || b.Status != models.BookingStatusConfirmed {
		return ErrNotConfirmed
	}
	b.Status = models.BookingStatusCancelled
	return nil
}

func (m *memoryRepo) MarkCheckedIn(_ context.Context, bookingID uint, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[bookingID]
	if !ok || b.Status != models.BookingStatusConfirmed {
		return ErrNotConfirmed
	}
	b.Status = models.BookingStatusCheckedIn
	b.CheckedInAt = &at
	return nil
}

func (m *memoryRepo) CountHeld(_ context.Context, sessionID uint) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var held int64
	for _, b := range m.bookings {
		if b.SessionID == sessionID && b.HoldsSpot() {
			held++
		}
	}
	return held, nil
}

func upcomingSession(id uint, capacity int) *models.Session {
	return &models.Session{
		ID:        id,
		Name:      "Morning Yoga",
		Capacity:  capacity,
		StartTime: time.Now().Add(time.Hour),
		EndTime:   time.Now().Add(2 * time.Hour),
	}
}

func runningSession(id uint, capacity int) *models.Session {
	return &models.Session{
		ID:        id,
		Name:      "Spin Class",
		Capacity:  capacity,
		StartTime: time.Now().Add(-30 * time.Minute),
		EndTime:   time.Now().Add(30 * time.Minute),
	}
}

func endedSession(id uint, capacity int) *models.Session {
	return &models.Session{
		ID:        id,
		Name:      "Old Session",
		Capacity:  capacity,
		StartTime: time.Now().Add(-2 * time.Hour),
		EndTime:   time.Now().Add(-time.Hour),
	}
}

func TestBook(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	repo.addSession(upcomingSession(1, 10))
	repo.memberships[42] = true
	svc := NewService(repo)

	b, err := svc.Book(ctx, 42, 1)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, b.Status)
	assert.Equal(t, uint(1), b.SessionID)

	_, err = svc.Book(ctx, 42, 1)
	assert.ErrorIs(t, err, ErrDuplicateBooking)

	_, err = svc.Book(ctx, 42, 99)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestBookRequiresMembership(t *testing.T) {
	repo := newMemoryRepo()
	repo.addSession(upcomingSession(1, 10))
	svc := NewService(repo)

	_, err := svc.Book(context.Background(), 42, 1)
	assert.ErrorIs(t, err, ErrMembershipRequired)
}

func TestBookEndedSession(t *testing.T) {
	repo := newMemoryRepo()
	repo.addSession(endedSession(1, 10))
	repo.memberships[42] = true
	svc := NewService(repo)

	_, err := svc.Book(context.Background(), 42, 1)
	assert.ErrorIs(t, err, ErrSessionEnded)
}

func TestBookCapacity(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	repo.addSession(upcomingSession(1, 1))
	repo.memberships[1] = true
	repo.memberships[2] = true
	svc := NewService(repo)

	first, err := svc.Book(ctx, 1, 1)
	assert.NoError(t, err)

	spots, err := svc.AvailableSpots(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 0, spots)

	_, err = svc.Book(ctx, 2, 1)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	// Cancelling frees the slot for the other user.
	_, err = svc.Cancel(ctx, 1, first.ID)
	assert.NoError(t, err)

	_, err = svc.Book(ctx, 2, 1)
	assert.NoError(t, err)
}

func TestConcurrentBookingNeverOversells(t *testing.T) {
	const capacity = 5
	const attempts = 40

	ctx := context.Background()
	repo := newMemoryRepo()
	repo.addSession(upcomingSession(1, capacity))
	for i := 1; i <= attempts; i++ {
		repo.memberships[uint(i)] = true
	}
	svc := NewService(repo)

	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Book(ctx, uint(i+1), 1)
		}(i)
	}
	wg.Wait()

	succeeded, rejected := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, ErrCapacityExceeded):
			rejected++
		}
	}
	assert.Equal(t, capacity, succeeded)
	assert.Equal(t, attempts-capacity, rejected)

	held, err := repo.CountHeld(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(capacity), held)
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	repo.addSession(upcomingSession(1, 2))
	repo.memberships[42] = true
	svc := NewService(repo)

	b, err := svc.Book(ctx, 42, 1)
	assert.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, 42, b.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)

	// Second cancel must fail and must not touch capacity again.
	_, err = svc.Cancel(ctx, 42, b.ID)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)

	spots, err := svc.AvailableSpots(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, spots)

	_, err = svc.Cancel(ctx, 42, 999)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	// Someone else's booking reads as not found.
	other, err := svc.Book(ctx, 42, 1)
	assert.NoError(t, err)
	_, err = svc.Cancel(ctx, 7, other.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelAfterSessionEnd(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	repo.addSession(endedSession(1, 2))
	repo.bookings[7] = &models.Booking{ID: 7, UserID: 42, SessionID: 1, Status: models.BookingStatusConfirmed}
	svc := NewService(repo)

	_, err := svc.Cancel(ctx, 42, 7)
	assert.ErrorIs(t, err, ErrSessionEnded)
}

func TestRebookAfterCancel(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	repo.addSession(upcomingSession(1, 1))
	repo.memberships[42] = true
	svc := NewService(repo)

	first, err := svc.Book(ctx, 42, 1)
	assert.NoError(t, err)

	_, err = svc.Cancel(ctx, 42, first.ID)
	assert.NoError(t, err)

	second, err := svc.Book(ctx, 42, 1)
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID, "re-booking creates a new row")
	assert.Equal(t, models.BookingStatusConfirmed, second.Status)
}

func TestCheckIn(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	repo.addSession(runningSession(1, 5))
	repo.memberships[42] = true
	svc := NewService(repo)

	b, err := svc.Book(ctx, 42, 1)
	assert.NoError(t, err)

	checked, err := svc.CheckIn(ctx, 42, 1)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusCheckedIn, checked.Status)
	assert.NotNil(t, checked.CheckedInAt)

	// Only once.
	_, err = svc.CheckIn(ctx, 42, 1)
	assert.ErrorIs(t, err, ErrNotConfirmed)

	// Checked-in bookings cannot be cancelled.
	_, err = svc.Cancel(ctx, 42, b.ID)
	assert.ErrorIs(t, err, ErrNotConfirmed)
}

func TestCheckInWindow(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	repo.addSession(upcomingSession(1, 5))
	repo.memberships[42] = true
	svc := NewService(repo)

	_, err := svc.Book(ctx, 42, 1)
	assert.NoError(t, err)

	// Session has not started yet.
	_, err = svc.CheckIn(ctx, 42, 1)
	assert.ErrorIs(t, err, ErrCheckinWindowClosed)

	// No booking at all.
	repo.addSession(runningSession(2, 5))
	_, err = svc.CheckIn(ctx, 42, 2)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
