package enums

import "fmt"

// NotificationSeverity mirrors the toast variants the storefront renders.
type NotificationSeverity string

const (
	NotificationSeverityInfo        NotificationSeverity = "info"
	NotificationSeveritySuccess     NotificationSeverity = "success"
	NotificationSeverityDestructive NotificationSeverity = "destructive"
)

var validNotificationSeverities = []NotificationSeverity{
	NotificationSeverityInfo,
	NotificationSeveritySuccess,
	NotificationSeverityDestructive,
}

// IsValid checks whether the given severity matches the canonical enum.
func (n NotificationSeverity) IsValid() bool {
	for _, candidate := range validNotificationSeverities {
		if candidate == n {
			return true
		}
	}
	return false
}

// ParseNotificationSeverity converts raw strings into NotificationSeverity.
func ParseNotificationSeverity(value string) (NotificationSeverity, error) {
	for _, candidate := range validNotificationSeverities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid notification severity %q", value)
}
