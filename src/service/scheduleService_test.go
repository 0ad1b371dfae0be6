package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"purefarm/src/models"
)

func date(t *testing.T, s string) models.CalendarDate {
	t.Helper()
	d, err := models.ParseCalendarDate(s)
	require.NoError(t, err)
	return d
}

func window(t *testing.T, from, to string, days int) models.SubscriptionWindow {
	t.Helper()
	return models.SubscriptionWindow{From: date(t, from), To: date(t, to), Days: days}
}

func TestExpandWindowInclusiveGapless(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		want int
	}{
		{"single day", "2025-06-01", "2025-06-01", 1},
		{"one week", "2025-06-01", "2025-06-07", 7},
		{"across month end", "2025-01-30", "2025-02-02", 4},
		{"across year end", "2024-12-30", "2025-01-02", 4},
		{"across leap day", "2024-02-27", "2024-03-01", 4},
		{"spring DST month", "2025-03-01", "2025-03-31", 31},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := window(t, tc.from, tc.to, 0)
			days := ExpandWindow(w, models.StatusScheduled)

			require.Len(t, days, tc.want)
			assert.Equal(t, w.From.DaysUntil(w.To)+1, len(days))

			//first and last entries pin the window ends
			assert.True(t, days[0].Date.Equal(w.From))
			assert.True(t, days[len(days)-1].Date.Equal(w.To))

			//strictly increasing by exactly one calendar day
			for i := 1; i < len(days); i++ {
				assert.True(t, days[i-1].Date.Next().Equal(days[i].Date))
			}

			for _, day := range days {
				assert.Equal(t, models.StatusScheduled, day.Status)
				assert.Equal(t, DefaultDeliveryTime, day.Time)
			}
		})
	}
}

func TestExpandWindowDeterministic(t *testing.T) {
	w := window(t, "2025-05-01", "2025-05-14", 14)
	first := ExpandWindow(w, models.StatusScheduled)
	second := ExpandWindow(w, models.StatusScheduled)
	assert.Equal(t, first, second)
}

func TestExpandWindowInverted(t *testing.T) {
	w := window(t, "2025-05-10", "2025-05-01", 0)
	assert.Empty(t, ExpandWindow(w, models.StatusScheduled))
}

func TestMergeSchedulePreservesRecordedDays(t *testing.T) {
	w := window(t, "2025-06-01", "2025-06-05", 5)
	days := ExpandWindow(w, models.StatusScheduled)

	//courier marked the first two days delivered, third failed
	days[0].Status = models.StatusDelivered
	days[1].Status = models.StatusDelivered
	days[2].Status = models.StatusFailed

	merged := MergeSchedule(days, w, models.StatusScheduled)
	require.Len(t, merged, 5)
	assert.Equal(t, models.StatusDelivered, merged[0].Status)
	assert.Equal(t, models.StatusDelivered, merged[1].Status)
	assert.Equal(t, models.StatusFailed, merged[2].Status)
	assert.Equal(t, models.StatusScheduled, merged[3].Status)
}

func TestMergeScheduleExtendsWindow(t *testing.T) {
	short := window(t, "2025-06-01", "2025-06-03", 3)
	days := ExpandWindow(short, models.StatusScheduled)
	days[0].Status = models.StatusDelivered

	extended := window(t, "2025-06-01", "2025-06-06", 6)
	merged := MergeSchedule(days, extended, models.StatusPending)

	require.Len(t, merged, 6)
	assert.Equal(t, models.StatusDelivered, merged[0].Status)
	//new tail days get the default, old ones keep theirs
	assert.Equal(t, models.StatusScheduled, merged[1].Status)
	assert.Equal(t, models.StatusPending, merged[3].Status)
	assert.Equal(t, models.StatusPending, merged[5].Status)
}

func TestMergeScheduleInvertedWindowKeepsRecordedDays(t *testing.T) {
	w := window(t, "2025-06-01", "2025-06-03", 3)
	days := ExpandWindow(w, models.StatusScheduled)
	days[0].Status = models.StatusDelivered

	inverted := window(t, "2025-06-03", "2025-06-01", 0)
	merged := MergeSchedule(days, inverted, models.StatusScheduled)

	require.Len(t, merged, 3)
	assert.Equal(t, models.StatusDelivered, merged[0].Status)
}

func TestOverallStatusPriority(t *testing.T) {
	mk := func(statuses ...models.DeliveryStatus) models.DeliveryDays {
		days := make(models.DeliveryDays, len(statuses))
		cursor := date(t, "2025-06-01")
		for i, s := range statuses {
			days[i] = models.DeliveryDay{Date: cursor, Status: s}
			cursor = cursor.Next()
		}
		return days
	}

	cases := []struct {
		name string
		days models.DeliveryDays
		want models.DeliveryStatus
	}{
		{"in-progress wins over everything", mk(models.StatusDelivered, models.StatusInProgress, models.StatusFailed), models.StatusInProgress},
		{"single in-progress among delivered", mk(models.StatusDelivered, models.StatusDelivered, models.StatusDelivered, models.StatusDelivered, models.StatusDelivered, models.StatusInProgress), models.StatusInProgress},
		{"pending beats scheduled", mk(models.StatusScheduled, models.StatusPending), models.StatusPending},
		{"scheduled beats delivered mix", mk(models.StatusDelivered, models.StatusScheduled), models.StatusScheduled},
		{"all delivered", mk(models.StatusDelivered, models.StatusDelivered), models.StatusDelivered},
		//one failed day breaks all-delivered, so the failed branch reports it
		{"failed among delivered", mk(models.StatusDelivered, models.StatusDelivered, models.StatusDelivered, models.StatusDelivered, models.StatusDelivered, models.StatusFailed), models.StatusFailed},
		{"all failed", mk(models.StatusFailed, models.StatusFailed), models.StatusFailed},
		{"empty defaults to scheduled", nil, models.StatusScheduled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, OverallStatus(tc.days))
		})
	}
}

func TestSetDayStatus(t *testing.T) {
	w := window(t, "2025-06-01", "2025-06-03", 3)
	days := ExpandWindow(w, models.StatusScheduled)

	updated := SetDayStatus(days, date(t, "2025-06-02"), models.StatusDelivered)
	assert.Equal(t, models.StatusScheduled, updated[0].Status)
	assert.Equal(t, models.StatusDelivered, updated[1].Status)
	assert.Equal(t, models.StatusScheduled, updated[2].Status)

	//input slice untouched
	assert.Equal(t, models.StatusScheduled, days[1].Status)

	//unknown date is a no-op
	same := SetDayStatus(days, date(t, "2030-01-01"), models.StatusFailed)
	assert.Equal(t, days, same)
}

func TestSetFutureStatus(t *testing.T) {
	w := window(t, "2025-06-01", "2025-06-05", 5)
	days := ExpandWindow(w, models.StatusScheduled)
	days[1].Status = models.StatusDelivered

	today := date(t, "2025-06-03")
	updated := SetFutureStatus(days, today, models.StatusInProgress)

	//past days keep their state
	assert.Equal(t, models.StatusScheduled, updated[0].Status)
	assert.Equal(t, models.StatusDelivered, updated[1].Status)
	//today and later flip
	assert.Equal(t, models.StatusInProgress, updated[2].Status)
	assert.Equal(t, models.StatusInProgress, updated[3].Status)
	assert.Equal(t, models.StatusInProgress, updated[4].Status)
}

func TestSetFutureStatusSkipsDelivered(t *testing.T) {
	w := window(t, "2025-06-01", "2025-06-03", 3)
	days := ExpandWindow(w, models.StatusScheduled)
	days[2].Status = models.StatusDelivered

	updated := SetFutureStatus(days, date(t, "2025-06-01"), models.StatusFailed)
	assert.Equal(t, models.StatusFailed, updated[0].Status)
	assert.Equal(t, models.StatusFailed, updated[1].Status)
	assert.Equal(t, models.StatusDelivered, updated[2].Status)
}

func TestLineTotal(t *testing.T) {
	sub := func(days int) *models.SubscriptionWindow {
		w := window(t, "2025-06-01", "2025-06-30", days)
		return &w
	}

	cases := []struct {
		name  string
		price float64
		qty   int
		sub   *models.SubscriptionWindow
		want  float64
	}{
		{"subscription multiplies by days", 10, 2, sub(3), 60},
		{"plain line", 10, 2, nil, 20},
		{"zero days contributes nothing", 10, 2, sub(0), 0},
		{"negative days contributes nothing", 10, 2, sub(-7), 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LineTotal(tc.price, tc.qty, tc.sub))
		})
	}
}

func TestCartTotalSkipsBrokenSubscriptions(t *testing.T) {
	good := window(t, "2025-06-01", "2025-06-03", 3)
	broken := window(t, "2025-06-01", "2025-06-03", 0)

	items := []models.CartItem{
		{Price: 10, Quantity: 2, Subscription: &good},
		{Price: 5, Quantity: 1},
		{Price: 99, Quantity: 4, Subscription: &broken},
	}

	assert.Equal(t, 65.0, CartTotal(items))
	assert.Equal(t, 7, CartCount(items))
}
