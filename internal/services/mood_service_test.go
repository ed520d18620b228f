package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodmate/moodmate-backend/internal/store"
)

func intPtr(v int) *int { return &v }

func newTestService(now time.Time) (*MoodService, *store.MemoryMoodStore) {
	s := store.NewMemoryMoodStore()
	svc := NewMoodService(s)
	svc.now = func() time.Time { return now }
	return svc, s
}

func TestRecordToday_Validation(t *testing.T) {
	tests := []struct {
		name      string
		input     RecordMoodInput
		wantField string
	}{
		{
			name:      "missing rating",
			input:     RecordMoodInput{Journal: "fine"},
			wantField: "moodRating",
		},
		{
			name:      "rating below range",
			input:     RecordMoodInput{MoodRating: intPtr(0), Journal: "fine"},
			wantField: "moodRating",
		},
		{
			name:      "rating above range",
			input:     RecordMoodInput{MoodRating: intPtr(6), Journal: "fine"},
			wantField: "moodRating",
		},
		{
			name:      "empty journal",
			input:     RecordMoodInput{MoodRating: intPtr(3), Journal: ""},
			wantField: "journal",
		},
		{
			name:      "whitespace journal",
			input:     RecordMoodInput{MoodRating: intPtr(3), Journal: "   "},
			wantField: "journal",
		},
		{
			name:      "journal too long",
			input:     RecordMoodInput{MoodRating: intPtr(3), Journal: strings.Repeat("a", 501)},
			wantField: "journal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(time.Now())
			_, err := svc.RecordToday(context.Background(), "user-1", tt.input)
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestRecordToday_AcceptsBoundaryValues(t *testing.T) {
	svc, _ := newTestService(time.Now())

	for _, rating := range []int{1, 5} {
		mood, err := svc.RecordToday(context.Background(), "user-1", RecordMoodInput{
			MoodRating: intPtr(rating),
			Journal:    strings.Repeat("a", 500),
		})
		require.NoError(t, err)
		assert.Equal(t, rating, mood.MoodRating)
	}
}

func TestRecordToday_SameDayReplacesEntry(t *testing.T) {
	morning := time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)
	svc, st := newTestService(morning)

	first, err := svc.RecordToday(context.Background(), "user-a", RecordMoodInput{
		MoodRating: intPtr(2),
		Journal:    "rough day",
		Tags:       []string{"tired"},
	})
	require.NoError(t, err)

	// Same calendar day, later wall clock
	svc.now = func() time.Time { return time.Date(2024, 3, 14, 20, 0, 0, 0, time.UTC) }

	second, err := svc.RecordToday(context.Background(), "user-a", RecordMoodInput{
		MoodRating: intPtr(4),
		Journal:    "better now",
		Tags:       []string{},
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	all, err := st.FindAllByUser(context.Background(), "user-a")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 4, all[0].MoodRating)
	assert.Equal(t, "better now", all[0].Journal)
	assert.Equal(t, []string{}, all[0].Tags)
}

func TestRecordToday_DistinctDaysCreateDistinctEntries(t *testing.T) {
	svc, st := newTestService(time.Date(2024, 3, 14, 23, 30, 0, 0, time.UTC))

	_, err := svc.RecordToday(context.Background(), "user-a", RecordMoodInput{
		MoodRating: intPtr(3),
		Journal:    "late night",
	})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2024, 3, 15, 0, 30, 0, 0, time.UTC) }
	_, err = svc.RecordToday(context.Background(), "user-a", RecordMoodInput{
		MoodRating: intPtr(4),
		Journal:    "early morning",
	})
	require.NoError(t, err)

	all, err := st.FindAllByUser(context.Background(), "user-a")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListAll_SortedDescending(t *testing.T) {
	svc, _ := newTestService(time.Now())

	days := []time.Time{
		time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 12, 12, 0, 0, 0, time.UTC),
	}
	for _, day := range days {
		svc.now = func() time.Time { return day }
		_, err := svc.RecordToday(context.Background(), "user-a", RecordMoodInput{
			MoodRating: intPtr(3),
			Journal:    "entry",
		})
		require.NoError(t, err)
	}

	all, err := svc.ListAll(context.Background(), "user-a")
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.True(t, all[i-1].Date.After(all[i].Date), "entries must be sorted descending by date")
	}
}

func TestListRange(t *testing.T) {
	svc, _ := newTestService(time.Now())

	for day := 10; day <= 14; day++ {
		d := time.Date(2024, 3, day, 12, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return d }
		_, err := svc.RecordToday(context.Background(), "user-a", RecordMoodInput{
			MoodRating: intPtr(3),
			Journal:    "entry",
		})
		require.NoError(t, err)
	}

	t.Run("inclusive bounds, ascending", func(t *testing.T) {
		moods, err := svc.ListRange(context.Background(), "user-a", "2024-03-11", "2024-03-13")
		require.NoError(t, err)
		require.Len(t, moods, 3)
		for i := 1; i < len(moods); i++ {
			assert.True(t, moods[i].Date.After(moods[i-1].Date), "entries must be sorted ascending by date")
		}
		assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), moods[0].Date)
		assert.Equal(t, time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), moods[2].Date)
	})

	t.Run("empty range yields empty sequence", func(t *testing.T) {
		moods, err := svc.ListRange(context.Background(), "user-a", "2023-01-01", "2023-01-31")
		require.NoError(t, err)
		assert.Empty(t, moods)
	})

	t.Run("rfc3339 timestamps accepted", func(t *testing.T) {
		moods, err := svc.ListRange(context.Background(), "user-a", "2024-03-10T00:00:00Z", "2024-03-14T23:59:59Z")
		require.NoError(t, err)
		assert.Len(t, moods, 5)
	})

	t.Run("invalid start date", func(t *testing.T) {
		_, err := svc.ListRange(context.Background(), "user-a", "not-a-date", "2024-03-13")
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "startDate", validationErr.Field)
	})

	t.Run("invalid end date", func(t *testing.T) {
		_, err := svc.ListRange(context.Background(), "user-a", "2024-03-11", "")
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "endDate", validationErr.Field)
	})
}

func TestGetByID_ExistenceBeforeOwnership(t *testing.T) {
	svc, _ := newTestService(time.Now())

	mood, err := svc.RecordToday(context.Background(), "owner", RecordMoodInput{
		MoodRating: intPtr(3),
		Journal:    "mine",
	})
	require.NoError(t, err)

	t.Run("owner reads own entry", func(t *testing.T) {
		got, err := svc.GetByID(context.Background(), "owner", mood.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, mood.ID, got.ID)
	})

	t.Run("unknown id is not found, regardless of caller", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "someone-else", "65f000000000000000000000")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("non-owner probing a real id gets not authorized", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "someone-else", mood.ID.Hex())
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})
}

func TestDeleteByID(t *testing.T) {
	svc, st := newTestService(time.Now())

	mood, err := svc.RecordToday(context.Background(), "owner", RecordMoodInput{
		MoodRating: intPtr(3),
		Journal:    "mine",
	})
	require.NoError(t, err)

	t.Run("non-owner delete leaves the entry unchanged", func(t *testing.T) {
		err := svc.DeleteByID(context.Background(), "intruder", mood.ID.Hex())
		assert.ErrorIs(t, err, ErrNotAuthorized)

		still, err := st.FindByID(context.Background(), mood.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, "mine", still.Journal)
	})

	t.Run("owner delete removes the entry for good", func(t *testing.T) {
		require.NoError(t, svc.DeleteByID(context.Background(), "owner", mood.ID.Hex()))

		_, err := svc.GetByID(context.Background(), "owner", mood.ID.Hex())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("deleting a missing entry is not found", func(t *testing.T) {
		err := svc.DeleteByID(context.Background(), "owner", mood.ID.Hex())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDayStartUTC(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "midday truncates to midnight",
			in:   time.Date(2024, 3, 14, 15, 9, 26, 535, time.UTC),
			want: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "midnight is already a bucket start",
			in:   time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "non-UTC wall clock buckets by its UTC day",
			in:   time.Date(2024, 3, 14, 22, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)),
			want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dayStartUTC(tt.in))
		})
	}
}
