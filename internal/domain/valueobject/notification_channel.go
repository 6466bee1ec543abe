package valueobject

// NotificationChannel is a validated notification delivery channel.
type NotificationChannel struct {
	value string
}

const (
	notificationChannelEmail = "EMAIL"
	notificationChannelPush  = "PUSH"
	notificationChannelSms   = "SMS"
	notificationChannelInApp = "IN_APP"
)

var notificationChannelValues = []string{notificationChannelEmail, notificationChannelPush, notificationChannelSms, notificationChannelInApp}

// NewNotificationChannel validates raw and returns the matching NotificationChannel.
func NewNotificationChannel(raw string) (NotificationChannel, error) {
	v, err := parse("notification channel", raw, notificationChannelValues)
	if err != nil {
		return NotificationChannel{}, err
	}
	return NotificationChannel{value: v}, nil
}

// NotificationChannelValues lists the allowed raw values.
func NotificationChannelValues() []string {
	out := make([]string, len(notificationChannelValues))
	copy(out, notificationChannelValues)
	return out
}

func NotificationChannelEmail() NotificationChannel {
	return NotificationChannel{value: notificationChannelEmail}
}
func NotificationChannelPush() NotificationChannel {
	return NotificationChannel{value: notificationChannelPush}
}
func NotificationChannelSms() NotificationChannel {
	return NotificationChannel{value: notificationChannelSms}
}
func NotificationChannelInApp() NotificationChannel {
	return NotificationChannel{value: notificationChannelInApp}
}

func (s NotificationChannel) Value() string  { return s.value }
func (s NotificationChannel) String() string { return s.value }
func (s NotificationChannel) IsZero() bool   { return s.value == "" }

// Equals compares by underlying value.
func (s NotificationChannel) Equals(other NotificationChannel) bool { return s.value == other.value }

func (s NotificationChannel) IsEmail() bool { return s.value == notificationChannelEmail }
func (s NotificationChannel) IsPush() bool  { return s.value == notificationChannelPush }
func (s NotificationChannel) IsSms() bool   { return s.value == notificationChannelSms }
func (s NotificationChannel) IsInApp() bool { return s.value == notificationChannelInApp }

func (s NotificationChannel) MarshalText() ([]byte, error) { return []byte(s.value), nil }

func (s *NotificationChannel) UnmarshalText(b []byte) error {
	v, err := NewNotificationChannel(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// RequiresHTML reports whether templates on this channel must carry an HTML body.
func (s NotificationChannel) RequiresHTML() bool { return s.IsEmail() }
