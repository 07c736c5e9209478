package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartrekker/bartrekker_api/internal/model"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestMergeSettingsDefaults(t *testing.T) {
	merged := MergeSettings(model.NotificationSettingsPatch{}, model.NotificationSettingsPatch{})

	assert.Equal(t, model.NotificationSettings{
		StartReminder:          15,
		LocationReminders:      5,
		ArrivalNotifications:   true,
		DepartureNotifications: true,
	}, merged)
}

func TestMergeSettingsThreeLayers(t *testing.T) {
	stored := model.NotificationSettingsPatch{StartReminder: intPtr(20)}
	update := model.NotificationSettingsPatch{LocationReminders: intPtr(10)}

	merged := MergeSettings(stored, update)

	assert.Equal(t, model.NotificationSettings{
		StartReminder:          20,
		LocationReminders:      10,
		ArrivalNotifications:   true,
		DepartureNotifications: true,
	}, merged)
}

func TestMergeSettingsUpdateWinsOverStored(t *testing.T) {
	falseVal := false
	stored := model.NotificationSettingsPatch{StartReminder: intPtr(20)}
	update := model.NotificationSettingsPatch{
		StartReminder:        intPtr(25),
		ArrivalNotifications: &falseVal,
	}

	merged := MergeSettings(stored, update)

	assert.Equal(t, 25, merged.StartReminder)
	assert.False(t, merged.ArrivalNotifications)
	assert.True(t, merged.DepartureNotifications)
}

func TestStoredSettingsPatch(t *testing.T) {
	assert.Equal(t, model.NotificationSettingsPatch{}, StoredSettingsPatch(nil))

	stored := &model.NotificationSettings{
		StartReminder:           20,
		LocationReminders:       5,
		ArrivalNotifications:    false,
		DepartureNotifications:  true,
		CustomMapConfirmMessage: "See you at the bar!",
	}
	merged := MergeSettings(StoredSettingsPatch(stored), model.NotificationSettingsPatch{})

	// A complete stored document overrides every default, including false
	// booleans.
	assert.Equal(t, *stored, merged)
}

func sampleList() []model.RecurringNotification {
	return []model.RecurringNotification{
		{ID: "n1", Time: "17:00", Title: "Doors open", Body: "First bar opens", IsActive: true},
		{ID: "n2", Time: "18:00", Title: "Crawl starts", Body: "Meet at the start", IsActive: true},
		{ID: "n3", Time: "23:00", Title: "Last call", Body: "Wrap it up", IsActive: false},
	}
}

func TestAddRecurring(t *testing.T) {
	list := AddRecurring(nil, model.AddRecurringNotificationRequest{
		LocalTime: "19:30",
		Title:     "  Crawl starts  ",
		Body:      "Meet at the first stop",
		MapURL:    "https://maps.google.com/?q=41.8781,-87.6298",
	}, "UTC")

	require.Len(t, list, 1)
	n := list[0]
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, "19:30", n.Time)
	assert.Equal(t, "Crawl starts", n.Title)
	assert.Equal(t, "Meet at the first stop", n.Body)
	assert.True(t, n.IsActive)
}

func TestAddRecurringRejectsBlankFields(t *testing.T) {
	existing := sampleList()

	testCases := []struct {
		name string
		req  model.AddRecurringNotificationRequest
	}{
		{"blank title", model.AddRecurringNotificationRequest{LocalTime: "19:00", Title: "   ", Body: "body"}},
		{"blank body", model.AddRecurringNotificationRequest{LocalTime: "19:00", Title: "title", Body: ""}},
		{"no time", model.AddRecurringNotificationRequest{Title: "title", Body: "body"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			list := AddRecurring(existing, tc.req, "UTC")
			assert.Len(t, list, len(existing))
		})
	}
}

func TestAddRecurringSoftFailKeepsLocalTime(t *testing.T) {
	// An unknown zone cannot be converted; the entry is stored with the
	// input time unchanged rather than dropped.
	list := AddRecurring(nil, model.AddRecurringNotificationRequest{
		LocalTime: "19:30",
		Title:     "Crawl starts",
		Body:      "Meet at the first stop",
	}, "Not/AZone")

	require.Len(t, list, 1)
	assert.Equal(t, "19:30", list[0].Time)
}

func TestUpdateRecurring(t *testing.T) {
	original := sampleList()

	list := UpdateRecurring(original, "n2", model.RecurringNotificationPatch{
		Title: strPtr("Crawl begins"),
		Time:  strPtr("18:30"),
	})

	require.Len(t, list, 3)
	assert.Equal(t, "Crawl begins", list[1].Title)
	assert.Equal(t, "18:30", list[1].Time)
	assert.Equal(t, "Meet at the start", list[1].Body)
	assert.Equal(t, original[0], list[0])
	assert.Equal(t, original[2], list[2])

	// Input list untouched.
	assert.Equal(t, "Crawl starts", original[1].Title)
}

func TestRemoveRecurring(t *testing.T) {
	list := RemoveRecurring(sampleList(), "n2")

	require.Len(t, list, 2)
	assert.Equal(t, "n1", list[0].ID)
	assert.Equal(t, "n3", list[1].ID)

	assert.Len(t, RemoveRecurring(list, "no-such-id"), 2)
}

func TestToggleRecurring(t *testing.T) {
	original := sampleList()

	list := ToggleRecurring(original, "n2")

	require.Len(t, list, 3)
	assert.False(t, list[1].IsActive)

	// Only the flag flips; every other field and entry is unchanged.
	toggled := list[1]
	toggled.IsActive = true
	assert.Equal(t, original[1], toggled)
	assert.Equal(t, original[0], list[0])
	assert.Equal(t, original[2], list[2])
}

func TestToggleRecurringUnknownID(t *testing.T) {
	original := sampleList()

	assert.Equal(t, original, ToggleRecurring(original, "no-such-id"))
}
