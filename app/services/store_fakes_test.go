package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/database"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/models"
)

// fakeStore is an in-memory store used by the service tests. It enforces the
// same contract the Postgres schema does: unique (student, class, occurrence)
// keys for bookings and attendance, and an atomic capacity guard on inserts.
type fakeStore struct {
	mu         sync.Mutex
	classes    map[string]*models.ClassDefinition
	students   map[string]*models.Student
	franchises map[string]*models.Franchise
	bookings   map[string]*models.Booking // by booking ID
	attendance map[string]*models.Attendance
	rules      map[string]*models.GraduationRule
	history    []*models.GraduationHistory
	seq        int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		classes:    make(map[string]*models.ClassDefinition),
		students:   make(map[string]*models.Student),
		franchises: make(map[string]*models.Franchise),
		bookings:   make(map[string]*models.Booking),
		attendance: make(map[string]*models.Attendance),
		rules:      make(map[string]*models.GraduationRule),
	}
}

func occurrenceKey(studentID, classID string, date time.Time) string {
	return studentID + "|" + classID + "|" + date.Format("2006-01-02")
}

func ruleKey(belt models.Belt, degree int) string {
	return fmt.Sprintf("%s|%d", belt, degree)
}

func (f *fakeStore) GetClassDefinition(id string) (*models.ClassDefinition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.classes[id]; ok {
		return c, nil
	}
	return nil, database.ErrNotFound
}

func (f *fakeStore) GetStudent(id string) (*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.students[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, database.ErrNotFound
}

func (f *fakeStore) GetFranchise(id string) (*models.Franchise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if fr, ok := f.franchises[id]; ok {
		return fr, nil
	}
	return nil, database.ErrNotFound
}

func (f *fakeStore) GetBookingByID(id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := f.bookings[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, database.ErrNotFound
}

func (f *fakeStore) GetBookingForOccurrence(studentID, classID string, date time.Time) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if occurrenceKey(b.StudentID, b.ClassDefinitionID, b.OccurrenceDate) == occurrenceKey(studentID, classID, date) {
			copied := *b
			return &copied, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeStore) countActiveLocked(classID string, date time.Time) int {
	count := 0
	for _, b := range f.bookings {
		if b.ClassDefinitionID == classID && b.OccurrenceDate.Equal(date) &&
			(b.Status == models.BookingReserved || b.Status == models.BookingConfirmed) {
			count++
		}
	}
	return count
}

func (f *fakeStore) CountActiveBookings(classID string, date time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.countActiveLocked(classID, date), nil
}

func (f *fakeStore) InsertBooking(b *models.Booking, capacity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countActiveLocked(b.ClassDefinitionID, b.OccurrenceDate) >= capacity {
		return database.ErrCapacityFull
	}
	key := occurrenceKey(b.StudentID, b.ClassDefinitionID, b.OccurrenceDate)
	for _, existing := range f.bookings {
		if occurrenceKey(existing.StudentID, existing.ClassDefinitionID, existing.OccurrenceDate) == key {
			return database.ErrDuplicateKey
		}
	}
	f.seq++
	b.CreatedAt = time.Unix(int64(f.seq), 0)
	b.UpdatedAt = b.CreatedAt
	copied := *b
	f.bookings[b.ID] = &copied
	return nil
}

func (f *fakeStore) UpdateBookingStatus(id string, status models.BookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return database.ErrNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeStore) ListActiveBookings(classID string, date time.Time) ([]*models.BookingSeat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var seats []*models.BookingSeat
	for _, b := range f.bookings {
		if b.ClassDefinitionID != classID || !b.OccurrenceDate.Equal(date) {
			continue
		}
		if b.Status != models.BookingReserved && b.Status != models.BookingConfirmed {
			continue
		}
		seat := &models.BookingSeat{
			BookingID: b.ID,
			StudentID: b.StudentID,
			Status:    b.Status,
			CreatedAt: b.CreatedAt,
		}
		if s, ok := f.students[b.StudentID]; ok {
			seat.StudentFirstName = s.FirstName
			seat.StudentLastName = s.LastName
			seat.Belt = s.Belt
		}
		seats = append(seats, seat)
	}
	for i := 0; i < len(seats); i++ {
		for j := i + 1; j < len(seats); j++ {
			if seats[j].CreatedAt.Before(seats[i].CreatedAt) {
				seats[i], seats[j] = seats[j], seats[i]
			}
		}
	}
	return seats, nil
}

func (f *fakeStore) GetAttendanceForOccurrence(studentID, classID string, date time.Time) (*models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.attendance[occurrenceKey(studentID, classID, date)]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, database.ErrNotFound
}

func (f *fakeStore) countAttendanceLocked(classID string, date time.Time) int {
	count := 0
	for _, a := range f.attendance {
		if a.ClassDefinitionID == classID && a.OccurrenceDate.Equal(date) {
			count++
		}
	}
	return count
}

func (f *fakeStore) CountAttendance(classID string, date time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.countAttendanceLocked(classID, date), nil
}

func (f *fakeStore) InsertAttendance(a *models.Attendance, capacity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countAttendanceLocked(a.ClassDefinitionID, a.OccurrenceDate) >= capacity {
		return database.ErrCapacityFull
	}
	key := occurrenceKey(a.StudentID, a.ClassDefinitionID, a.OccurrenceDate)
	if _, exists := f.attendance[key]; exists {
		return database.ErrDuplicateKey
	}
	copied := *a
	f.attendance[key] = &copied
	return nil
}

func (f *fakeStore) DeleteAttendance(studentID, classID string, date time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := occurrenceKey(studentID, classID, date)
	if _, exists := f.attendance[key]; !exists {
		return false, nil
	}
	delete(f.attendance, key)
	return true, nil
}

func (f *fakeStore) CountAttendanceSince(studentID string, since time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, a := range f.attendance {
		if a.StudentID == studentID && !a.OccurrenceDate.Before(since) {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) GetGraduationRule(belt models.Belt, degree int) (*models.GraduationRule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.rules[ruleKey(belt, degree)]; ok {
		return r, nil
	}
	return nil, database.ErrNotFound
}

func (f *fakeStore) ApplyPromotion(studentID string, rule *models.GraduationRule, historyID, promotedBy string, promotedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.students[studentID]
	if !ok {
		return database.ErrNotFound
	}
	s.Belt = rule.ToBelt
	s.Degree = rule.ToDegree
	s.LastGraduationDate = &promotedAt
	f.history = append(f.history, &models.GraduationHistory{
		ID:         historyID,
		StudentID:  studentID,
		Belt:       rule.ToBelt,
		Degree:     rule.ToDegree,
		PromotedBy: promotedBy,
		PromotedAt: promotedAt,
	})
	return nil
}
