package member

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)

const testID = "0b6f7a4e-3c1d-4e8a-9f21-5d2c7b8a9e10"

func TestNormalize_EmptyOptionalFieldsBecomeNil(t *testing.T) {
	raw := RawRecord{
		"id":         testID,
		"firstName":  "Ada",
		"lastName":   "Obi",
		"dob":        "",
		"joinedDate": "",
		"age":        "",
		"picture":    "",
		"phone":      "  ",
		"metadata":   "",
	}

	m, err := Normalize(raw, testNow)
	require.NoError(t, err)

	assert.Nil(t, m.DOB)
	assert.Nil(t, m.JoinedDate)
	assert.Nil(t, m.Age)
	assert.Nil(t, m.Picture)
	assert.Nil(t, m.Phone)
	assert.Nil(t, m.Metadata)
}

func TestNormalize_Fields(t *testing.T) {
	raw := RawRecord{
		"id":             testID,
		"firstName":      "Ada",
		"lastName":       "Obi",
		"age":            "42",
		"childrenCount":  float64(3),
		"baptized":       true,
		"waterBaptized":  "true",
		"phone":          float64(5551234),
		"maritalStatus":  "Married",
		"metadata":       map[string]any{"tribe": "Levi"},
		"prayerRequests": "healing",
		"syncStatus":     "pending",
	}

	m, err := Normalize(raw, testNow)
	require.NoError(t, err)

	assert.Equal(t, testID, m.ID)
	assert.Equal(t, "Ada", m.FirstName)
	require.NotNil(t, m.Age)
	assert.Equal(t, 42, *m.Age)
	require.NotNil(t, m.ChildrenCount)
	assert.Equal(t, 3, *m.ChildrenCount)
	require.NotNil(t, m.Baptized)
	assert.True(t, *m.Baptized)
	require.NotNil(t, m.WaterBaptized)
	assert.True(t, *m.WaterBaptized)
	require.NotNil(t, m.Phone)
	assert.Equal(t, "5551234", *m.Phone)
	assert.Equal(t, map[string]any{"tribe": "Levi", "prayerRequests": "healing"}, m.Metadata)
	assert.Empty(t, m.SyncStatus, "sync status is set by the server")
}

func TestNormalize_Timestamps(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected time.Time
	}{
		{name: "missing", value: nil, expected: testNow},
		{name: "garbage", value: "not a date", expected: testNow},
		{name: "empty", value: "", expected: testNow},
		{name: "rfc3339", value: "2024-12-01T08:30:00Z", expected: time.Date(2024, 12, 1, 8, 30, 0, 0, time.UTC)},
		{name: "date only", value: "2024-12-01", expected: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
		{name: "unix millis", value: float64(1733041800000), expected: time.Date(2024, 12, 1, 8, 30, 0, 0, time.UTC)},
		{name: "unix seconds", value: float64(1733041800), expected: time.Date(2024, 12, 1, 8, 30, 0, 0, time.UTC)},
		{name: "year 10000 millis", value: float64(253402300800000), expected: testNow},
		{name: "year 10000 string", value: "10000-01-01T00:00:00Z", expected: testNow},
		{name: "negative", value: float64(-5), expected: testNow},
		{name: "wrong type", value: true, expected: testNow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := RawRecord{"firstName": "A", "lastName": "B"}
			if tt.value != nil {
				raw["createdAt"] = tt.value
			}

			m, err := Normalize(raw, testNow)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(m.CreatedAt), "got %s", m.CreatedAt)
			assert.True(t, testNow.Equal(m.UpdatedAt))
		})
	}
}

func TestNormalize_ID(t *testing.T) {
	m, err := Normalize(RawRecord{"id": "0B6F7A4E-3C1D-4E8A-9F21-5D2C7B8A9E10"}, testNow)
	require.NoError(t, err)
	assert.Equal(t, testID, m.ID)

	m, err = Normalize(RawRecord{}, testNow)
	require.NoError(t, err)
	assert.Empty(t, m.ID)

	_, err = Normalize(RawRecord{"id": "member-1"}, testNow)
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = Normalize(RawRecord{"id": float64(7)}, testNow)
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestNormalize_KeysAreCaseSensitive(t *testing.T) {
	m, err := Normalize(RawRecord{
		"ID":        "not-a-uuid",
		"firstName": "Ada",
		"lastName":  "Obi",
		"DOB":       "",
	}, testNow)
	require.NoError(t, err)
	assert.Empty(t, m.ID)
	assert.Nil(t, m.DOB)
	assert.Equal(t, map[string]any{"ID": "not-a-uuid", "DOB": ""}, m.Metadata)

	m, err = Normalize(RawRecord{"id": testID, "Id": "evil", "firstName": "Ada", "lastName": "Obi"}, testNow)
	require.NoError(t, err)
	assert.Equal(t, testID, m.ID)
	assert.Equal(t, "evil", m.Metadata["Id"])
}

func TestNormalize_InvalidValue(t *testing.T) {
	_, err := Normalize(RawRecord{"id": testID, "age": "forty"}, testNow)
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestMerge(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	phone := "555"
	ministry := "Choir"
	existing := &Member{
		ID:         testID,
		FirstName:  "Ada",
		LastName:   "Obi",
		Phone:      &phone,
		Ministry:   &ministry,
		Metadata:   map[string]any{"prayerRequests": "old"},
		SyncStatus: SyncStatusSynced,
		CreatedAt:  created,
		UpdatedAt:  created,
	}

	m, err := Merge(existing, RawRecord{
		"id":             "ignored",
		"lastName":       "Okafor",
		"phone":          "",
		"prayerRequests": "new",
	}, testNow)
	require.NoError(t, err)

	assert.Equal(t, testID, m.ID)
	assert.Equal(t, "Ada", m.FirstName)
	assert.Equal(t, "Okafor", m.LastName)
	assert.Nil(t, m.Phone, "empty string clears the field")
	require.NotNil(t, m.Ministry)
	assert.Equal(t, "Choir", *m.Ministry)
	assert.Equal(t, "new", m.Metadata["prayerRequests"])
	assert.True(t, created.Equal(m.CreatedAt))
	assert.True(t, testNow.Equal(m.UpdatedAt))
	assert.Equal(t, SyncStatusSynced, m.SyncStatus)
}

func TestMember_Validate(t *testing.T) {
	assert.NoError(t, (&Member{FirstName: "A", LastName: "B"}).Validate())
	assert.ErrorIs(t, (&Member{LastName: "B"}).Validate(), ErrInvalidData)
	assert.ErrorIs(t, (&Member{FirstName: "A", LastName: " "}).Validate(), ErrInvalidData)
}
