package models

// BookingStatus defines the lifecycle states of a class booking.
type BookingStatus string

const (
	BookingReserved  BookingStatus = "reserved"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
	Late    AttendanceStatus = "late"
)

// CheckInMethod defines how an attendance record was produced.
// Self-service check-ins come from the student app with GPS coordinates;
// teacher check-ins are class-presence confirmations and skip the geofence.
type CheckInMethod string

const (
	CheckInSelfService CheckInMethod = "self_service"
	CheckInTeacher     CheckInMethod = "teacher"
)

// PaymentStatus defines the financial standing of a student.
type PaymentStatus string

const (
	PaymentActive    PaymentStatus = "active"
	PaymentPending   PaymentStatus = "pending"
	PaymentOverdue   PaymentStatus = "overdue"
	PaymentSuspended PaymentStatus = "suspended"
)

// BlockedPaymentStatuses are the statuses that prevent check-in.
var BlockedPaymentStatuses = map[PaymentStatus]bool{
	PaymentOverdue:   true,
	PaymentSuspended: true,
}

// Belt defines the adult belt colors of the graduation ladder.
type Belt string

const (
	BeltWhite  Belt = "white"
	BeltBlue   Belt = "blue"
	BeltPurple Belt = "purple"
	BeltBrown  Belt = "brown"
	BeltBlack  Belt = "black"
	BeltCoral  Belt = "coral"
)

// ClassCategory defines the training categories a class can belong to.
type ClassCategory string

const (
	CategoryGi        ClassCategory = "gi"
	CategoryNoGi      ClassCategory = "nogi"
	CategoryKids      ClassCategory = "kids"
	CategoryOpenMat   ClassCategory = "open_mat"
	CategoryWrestling ClassCategory = "wrestling"
)
