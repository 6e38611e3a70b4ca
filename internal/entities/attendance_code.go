package entities

import "time"

// AttendanceCode is the rotating payload a teacher displays for students to scan.
type AttendanceCode struct {
	Payload     string // QR_CODE_<random>_<COURSE>_<YEAR>
	Course      string
	IssuedAt    time.Time
	RotateEvery time.Duration
}

// ExpiresAt is when the display should switch to a fresh code.
func (a *AttendanceCode) ExpiresAt() time.Time {
	return a.IssuedAt.Add(a.RotateEvery)
}
