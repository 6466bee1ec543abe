package valueobject

// GroupStatus is a validated group lifecycle status.
type GroupStatus struct {
	value string
}

const (
	groupStatusActive   = "ACTIVE"
	groupStatusInactive = "INACTIVE"
	groupStatusClosed   = "CLOSED"
)

var groupStatusValues = []string{groupStatusActive, groupStatusInactive, groupStatusClosed}

// NewGroupStatus validates raw and returns the matching GroupStatus.
func NewGroupStatus(raw string) (GroupStatus, error) {
	v, err := parse("group status", raw, groupStatusValues)
	if err != nil {
		return GroupStatus{}, err
	}
	return GroupStatus{value: v}, nil
}

// GroupStatusValues lists the allowed raw values.
func GroupStatusValues() []string {
	out := make([]string, len(groupStatusValues))
	copy(out, groupStatusValues)
	return out
}

func GroupStatusActive() GroupStatus   { return GroupStatus{value: groupStatusActive} }
func GroupStatusInactive() GroupStatus { return GroupStatus{value: groupStatusInactive} }
func GroupStatusClosed() GroupStatus   { return GroupStatus{value: groupStatusClosed} }

func (s GroupStatus) Value() string  { return s.value }
func (s GroupStatus) String() string { return s.value }
func (s GroupStatus) IsZero() bool   { return s.value == "" }

// Equals compares by underlying value.
func (s GroupStatus) Equals(other GroupStatus) bool { return s.value == other.value }

func (s GroupStatus) IsActive() bool   { return s.value == groupStatusActive }
func (s GroupStatus) IsInactive() bool { return s.value == groupStatusInactive }
func (s GroupStatus) IsClosed() bool   { return s.value == groupStatusClosed }

func (s GroupStatus) MarshalText() ([]byte, error) { return []byte(s.value), nil }

func (s *GroupStatus) UnmarshalText(b []byte) error {
	v, err := NewGroupStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
