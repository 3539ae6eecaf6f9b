package domain

import "time"

// AttendanceSession is one check-in/check-out cycle for a staff member.
// A session with a nil CheckOutAt is "open". At most one open session may
// exist per staff member at any time. Sessions are append-only history:
// they are closed, never deleted.
type AttendanceSession struct {
	ID         int64
	StaffID    int64
	CheckInAt  time.Time
	CheckOutAt *time.Time
}

// Open reports whether the session has not been checked out yet.
func (s *AttendanceSession) Open() bool {
	return s.CheckOutAt == nil
}
