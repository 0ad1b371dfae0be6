package service

import (
	"purefarm/src/models"
)

//display window shown to customers for every scheduled drop-off
const DefaultDeliveryTime = "7:00 AM - 9:00 AM"

//ExpandWindow turns an inclusive [from, to] subscription window into one
//entry per calendar day, ascending. The cursor advances by calendar day,
//never by 24h, so DST changes cannot skip or double a date. Re-running on
//the same window always yields the same dates.
func ExpandWindow(w models.SubscriptionWindow, status models.DeliveryStatus) models.DeliveryDays {
	if w.To.Before(w.From) {
		return nil
	}

	days := make(models.DeliveryDays, 0, w.From.DaysUntil(w.To)+1)
	for cursor := w.From; !cursor.After(w.To); cursor = cursor.Next() {
		days = append(days, models.DeliveryDay{
			Date:   cursor,
			Status: status,
			Time:   DefaultDeliveryTime,
		})
	}
	return days
}

//MergeSchedule re-expands a window against an already recorded schedule.
//Dates that exist keep their recorded status and time, so a day a courier
//marked delivered is never silently reset; only dates new to the window
//get the default status.
func MergeSchedule(existing models.DeliveryDays, w models.SubscriptionWindow, status models.DeliveryStatus) models.DeliveryDays {
	//a nonsense window must not wipe the recorded schedule
	if w.To.Before(w.From) {
		return existing
	}

	recorded := make(map[models.CalendarDate]models.DeliveryDay, len(existing))
	for _, day := range existing {
		recorded[day.Date] = day
	}

	fresh := ExpandWindow(w, status)
	for i, day := range fresh {
		if prev, ok := recorded[day.Date]; ok {
			fresh[i] = prev
		}
	}
	return fresh
}

//OverallStatus collapses a per-day schedule into one label. First match
//wins: in-progress, pending, scheduled, all-delivered, failed. Any failed
//day therefore only surfaces once nothing is left in flight.
func OverallStatus(days models.DeliveryDays) models.DeliveryStatus {
	anyWith := func(s models.DeliveryStatus) bool {
		for _, day := range days {
			if day.Status == s {
				return true
			}
		}
		return false
	}

	switch {
	case anyWith(models.StatusInProgress):
		return models.StatusInProgress
	case anyWith(models.StatusPending):
		return models.StatusPending
	case anyWith(models.StatusScheduled):
		return models.StatusScheduled
	}

	allDelivered := len(days) > 0
	for _, day := range days {
		if day.Status != models.StatusDelivered {
			allDelivered = false
			break
		}
	}
	if allDelivered {
		return models.StatusDelivered
	}
	if anyWith(models.StatusFailed) {
		return models.StatusFailed
	}
	return models.StatusScheduled
}

//SetDayStatus replaces the status of the entry matching date, leaving every
//other day untouched. Unknown dates are ignored.
func SetDayStatus(days models.DeliveryDays, date models.CalendarDate, status models.DeliveryStatus) models.DeliveryDays {
	updated := make(models.DeliveryDays, len(days))
	copy(updated, days)
	for i, day := range updated {
		if day.Date.Equal(date) {
			updated[i].Status = status
		}
	}
	return updated
}

//SetFutureStatus updates today and later days that have not already been
//delivered. Past days and delivered days keep their state.
func SetFutureStatus(days models.DeliveryDays, today models.CalendarDate, status models.DeliveryStatus) models.DeliveryDays {
	updated := make(models.DeliveryDays, len(days))
	copy(updated, days)
	for i, day := range updated {
		if day.Date.Before(today) || day.Status == models.StatusDelivered {
			continue
		}
		updated[i].Status = status
	}
	return updated
}

//LineTotal prices one cart or order line. A subscription multiplies the
//base price by its day count; a subscription whose day count is missing or
//nonsensical contributes nothing rather than poisoning the running total.
func LineTotal(price float64, quantity int, sub *models.SubscriptionWindow) float64 {
	if sub == nil {
		return price * float64(quantity)
	}
	if sub.Days <= 0 {
		return 0
	}
	return price * float64(quantity) * float64(sub.Days)
}

//CartTotal sums line totals for a cart.
func CartTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += LineTotal(item.Price, item.Quantity, item.Subscription)
	}
	return total
}

//CartCount is the number of units across the cart, not the number of lines.
func CartCount(items []models.CartItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
