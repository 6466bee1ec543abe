package valueobject

// AttendanceStatus is a validated event attendance status.
type AttendanceStatus struct {
	value string
}

const (
	attendanceStatusRegistered = "REGISTERED"
	attendanceStatusConfirmed  = "CONFIRMED"
	attendanceStatusAttended   = "ATTENDED"
	attendanceStatusCancelled  = "CANCELLED"
	attendanceStatusNoShow     = "NO_SHOW"
)

var attendanceStatusValues = []string{attendanceStatusRegistered, attendanceStatusConfirmed, attendanceStatusAttended, attendanceStatusCancelled, attendanceStatusNoShow}

// NewAttendanceStatus validates raw and returns the matching AttendanceStatus.
func NewAttendanceStatus(raw string) (AttendanceStatus, error) {
	v, err := parse("attendance status", raw, attendanceStatusValues)
	if err != nil {
		return AttendanceStatus{}, err
	}
	return AttendanceStatus{value: v}, nil
}

// AttendanceStatusValues lists the allowed raw values.
func AttendanceStatusValues() []string {
	out := make([]string, len(attendanceStatusValues))
	copy(out, attendanceStatusValues)
	return out
}

func AttendanceStatusRegistered() AttendanceStatus {
	return AttendanceStatus{value: attendanceStatusRegistered}
}
func AttendanceStatusConfirmed() AttendanceStatus {
	return AttendanceStatus{value: attendanceStatusConfirmed}
}
func AttendanceStatusAttended() AttendanceStatus {
	return AttendanceStatus{value: attendanceStatusAttended}
}
func AttendanceStatusCancelled() AttendanceStatus {
	return AttendanceStatus{value: attendanceStatusCancelled}
}
func AttendanceStatusNoShow() AttendanceStatus {
	return AttendanceStatus{value: attendanceStatusNoShow}
}

func (s AttendanceStatus) Value() string  { return s.value }
func (s AttendanceStatus) String() string { return s.value }
func (s AttendanceStatus) IsZero() bool   { return s.value == "" }

// Equals compares by underlying value.
func (s AttendanceStatus) Equals(other AttendanceStatus) bool { return s.value == other.value }

func (s AttendanceStatus) IsRegistered() bool { return s.value == attendanceStatusRegistered }
func (s AttendanceStatus) IsConfirmed() bool  { return s.value == attendanceStatusConfirmed }
func (s AttendanceStatus) IsAttended() bool   { return s.value == attendanceStatusAttended }
func (s AttendanceStatus) IsCancelled() bool  { return s.value == attendanceStatusCancelled }
func (s AttendanceStatus) IsNoShow() bool     { return s.value == attendanceStatusNoShow }

func (s AttendanceStatus) MarshalText() ([]byte, error) { return []byte(s.value), nil }

func (s *AttendanceStatus) UnmarshalText(b []byte) error {
	v, err := NewAttendanceStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// IsOpen reports whether the registration still admits check-in or ticket assignment.
func (s AttendanceStatus) IsOpen() bool {
	return s.IsRegistered() || s.IsConfirmed()
}
