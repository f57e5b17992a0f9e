package services

import (
	"fmt"
	"time"

	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/config"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/models"
)

// Fixed zone instead of a tzdata lookup so tests run anywhere.
var testLoc = time.FixedZone("BRT", -3*60*60)

var testPolicy = config.CheckinPolicy{
	EarlyWindow:          15 * time.Minute,
	LateWindow:           20 * time.Minute,
	GeofenceRadiusMeters: 200,
}

// 2025-03-10 is a Monday.
var mondayDate = time.Date(2025, 3, 10, 0, 0, 0, 0, testLoc)

func seedClass(f *fakeStore, id string, capacity int) *models.ClassDefinition {
	class := &models.ClassDefinition{
		ID:          id,
		FranchiseID: "franchise-1",
		Name:        "Fundamentals Gi",
		Category:    models.CategoryGi,
		DayOfWeek:   int(time.Monday),
		StartTime:   "19:00",
		EndTime:     "20:00",
		Capacity:    capacity,
		IsActive:    true,
	}
	f.classes[id] = class
	return class
}

func seedFranchise(f *fakeStore) *models.Franchise {
	franchise := &models.Franchise{
		ID:        "franchise-1",
		Name:      "Arena Vila Mariana",
		Latitude:  -23.589548,
		Longitude: -46.634018,
		IsActive:  true,
	}
	f.franchises[franchise.ID] = franchise
	return franchise
}

func seedStudent(f *fakeStore, id string) *models.Student {
	student := &models.Student{
		ID:            id,
		FranchiseID:   "franchise-1",
		FirstName:     "Student",
		LastName:      id,
		Belt:          models.BeltWhite,
		Degree:        0,
		PaymentStatus: models.PaymentActive,
		EnrolledAt:    mondayDate.AddDate(-1, 0, 0),
		IsActive:      true,
	}
	f.students[id] = student
	return student
}

func seedAttendanceRows(f *fakeStore, studentID string, n int, from time.Time) {
	for i := 0; i < n; i++ {
		date := from.AddDate(0, 0, i)
		key := occurrenceKey(studentID, fmt.Sprintf("class-%d", i), date)
		f.attendance[key] = &models.Attendance{
			ID:                key,
			StudentID:         studentID,
			ClassDefinitionID: fmt.Sprintf("class-%d", i),
			OccurrenceDate:    date,
			Status:            models.Present,
			CheckInMethod:     models.CheckInSelfService,
		}
	}
}

func newBookingService(f *fakeStore, now time.Time) *BookingService {
	return &BookingService{
		Classes:  f,
		Bookings: f,
		Loc:      testLoc,
		Now:      func() time.Time { return now },
	}
}

func newAttendanceService(f *fakeStore, now time.Time) *AttendanceService {
	return &AttendanceService{
		Classes:    f,
		Students:   f,
		Franchises: f,
		Bookings:   f,
		Attendance: f,
		Validator:  &CheckinValidator{Policy: testPolicy, Loc: testLoc},
		Loc:        testLoc,
		Now:        func() time.Time { return now },
	}
}

func newGraduationService(f *fakeStore, now time.Time) *GraduationService {
	return &GraduationService{
		Students:   f,
		Rules:      f,
		Attendance: f,
		Now:        func() time.Time { return now },
	}
}
