package i18npatch

import (
	"path/filepath"

	"golang.org/x/text/language"

	"github.com/louisbranch/i18npatch/internal/platform/i18n/localefile"
)

// NotificationsKey is the top-level key that holds the notification strings.
const NotificationsKey = "NOTIFICATIONS"

// SuccessMessage is printed once both locale files are committed.
const SuccessMessage = "✅ Successfully added NOTIFICATIONS translations to both files!"

// Locale file locations relative to the client project root.
const (
	EnglishPath = "public/assets/i18n/en.json"
	ArabicPath  = "public/assets/i18n/ar.json"
)

// EnglishNotifications holds the English notification panel strings.
var EnglishNotifications = localefile.MustSection(
	localefile.Entry{Key: "TITLE", Value: "Notifications"},
	localefile.Entry{Key: "NEW", Value: "New"},
	localefile.Entry{Key: "EMPTY_STATE", Value: "No notifications yet"},
	localefile.Entry{Key: "EMPTY_DESCRIPTION", Value: "You'll see notifications about your service requests here"},
	localefile.Entry{Key: "JUST_NOW", Value: "Just now"},
	localefile.Entry{Key: "MINUTES_AGO", Value: "{count}m ago"},
	localefile.Entry{Key: "HOURS_AGO", Value: "{count}h ago"},
	localefile.Entry{Key: "MARK_ALL_READ", Value: "Mark all as read"},
	localefile.Entry{Key: "MARK_AS_READ", Value: "Mark as read"},
)

// ArabicNotifications holds the Arabic notification panel strings. The
// {count} placeholder is substituted by the client at display time.
var ArabicNotifications = localefile.MustSection(
	localefile.Entry{Key: "TITLE", Value: "الإشعارات"},
	localefile.Entry{Key: "NEW", Value: "جديد"},
	localefile.Entry{Key: "EMPTY_STATE", Value: "لا توجد إشعارات بعد"},
	localefile.Entry{Key: "EMPTY_DESCRIPTION", Value: "ستظهر الإشعارات حول طلبات الخدمة هنا"},
	localefile.Entry{Key: "JUST_NOW", Value: "الآن"},
	localefile.Entry{Key: "MINUTES_AGO", Value: "منذ {count} د"},
	localefile.Entry{Key: "HOURS_AGO", Value: "منذ {count} س"},
	localefile.Entry{Key: "MARK_ALL_READ", Value: "تعليم الكل كمقروء"},
	localefile.Entry{Key: "MARK_AS_READ", Value: "تعليم كمقروء"},
)

// Target is one locale file and the section to store in it.
type Target struct {
	Locale     language.Tag
	Path       string
	SectionKey string
	Section    localefile.Section
}

// NotificationTargets returns the English and Arabic targets, in patch
// order, resolved against root.
func NotificationTargets(root string) []Target {
	return []Target{
		{
			Locale:     language.English,
			Path:       filepath.Join(root, filepath.FromSlash(EnglishPath)),
			SectionKey: NotificationsKey,
			Section:    EnglishNotifications,
		},
		{
			Locale:     language.Arabic,
			Path:       filepath.Join(root, filepath.FromSlash(ArabicPath)),
			SectionKey: NotificationsKey,
			Section:    ArabicNotifications,
		},
	}
}
