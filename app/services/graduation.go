package services

import (
	"errors"
	"time"

	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/database"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/models"
	"github.com/google/uuid"
)

// GraduationService computes promotion eligibility from accumulated
// attendance and performs promotions along the rule ladder.
type GraduationService struct {
	Students   StudentStore
	Rules      GraduationStore
	Attendance AttendanceStore
	Now        func() time.Time // overridable in tests
}

func (s *GraduationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// EligibilityResult is the answer of one eligibility check, with the numbers
// behind it so the app can show progress.
type EligibilityResult struct {
	Eligible        bool        `json:"eligible"`
	AttendanceCount int         `json:"attendance_count"`
	ClassesRequired int         `json:"classes_required"`
	ElapsedDays     int         `json:"elapsed_days"`
	MinDaysRequired int         `json:"min_days_required"`
	NextBelt        models.Belt `json:"next_belt"`
	NextDegree      int         `json:"next_degree"`
}

// CheckEligibility looks up the rule for the student's current rung and
// AND-gates the two thresholds: classes attended since the last graduation
// and days elapsed since it. Meeting one without the other is not eligible.
func (s *GraduationService) CheckEligibility(studentID string) (*EligibilityResult, error) {
	student, rule, err := s.studentAndRule(studentID)
	if err != nil {
		return nil, err
	}

	since := student.GraduationStart()
	count, err := s.Attendance.CountAttendanceSince(studentID, since)
	if err != nil {
		return nil, err
	}
	elapsedDays := int(s.now().Sub(since).Hours() / 24)

	return &EligibilityResult{
		Eligible:        count >= rule.ClassesRequired && elapsedDays >= rule.MinDaysRequired,
		AttendanceCount: count,
		ClassesRequired: rule.ClassesRequired,
		ElapsedDays:     elapsedDays,
		MinDaysRequired: rule.MinDaysRequired,
		NextBelt:        rule.ToBelt,
		NextDegree:      rule.ToDegree,
	}, nil
}

// Promote moves the student to the rule's target rung: belt and degree
// update, one history entry is appended with the promoter, and the
// graduation reference date resets — all in one transaction. Eligibility is
// advisory; the promotion itself is a staff decision.
func (s *GraduationService) Promote(studentID, teacherID string) (*models.Student, error) {
	student, rule, err := s.studentAndRule(studentID)
	if err != nil {
		return nil, err
	}

	promotedAt := s.now()
	if err := s.Rules.ApplyPromotion(studentID, rule, uuid.NewString(), teacherID, promotedAt); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, Errf(KindNotFound, "student not found")
		}
		return nil, err
	}

	student.Belt = rule.ToBelt
	student.Degree = rule.ToDegree
	student.LastGraduationDate = &promotedAt
	return student, nil
}

func (s *GraduationService) studentAndRule(studentID string) (*models.Student, *models.GraduationRule, error) {
	student, err := s.Students.GetStudent(studentID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil, Errf(KindNotFound, "student not found")
		}
		return nil, nil, err
	}

	rule, err := s.Rules.GetGraduationRule(student.Belt, student.Degree)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil, Errf(KindRuleNotFound,
				"no graduation rule for %s belt, degree %d", student.Belt, student.Degree)
		}
		return nil, nil, err
	}
	return student, rule, nil
}
