package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderItemsJSONB(t *testing.T) {
	from, _ := ParseCalendarDate("2025-04-01")
	to, _ := ParseCalendarDate("2025-04-03")

	items := OrderItems{{
		ProductID: "p-1",
		Name:      "Farm Milk",
		Price:     55,
		Quantity:  2,
		Subscription: &SubscriptionWindow{
			From: from,
			To:   to,
			Days: 3,
		},
		DeliveryStatus: DeliveryDays{
			{Date: from, Status: StatusScheduled, Time: "7:00 AM - 9:00 AM"},
		},
	}}

	value, err := items.Value()
	require.NoError(t, err)

	var back OrderItems
	require.NoError(t, back.Scan(value))
	require.Len(t, back, 1)
	assert.Equal(t, "Farm Milk", back[0].Name)
	require.NotNil(t, back[0].Subscription)
	assert.Equal(t, 3, back[0].Subscription.Days)
	assert.Equal(t, "2025-04-01", back[0].DeliveryStatus[0].Date.String())
}

func TestJSONBScanFromString(t *testing.T) {
	//some drivers hand jsonb back as string, not []byte
	var days DeliveryDays
	require.NoError(t, days.Scan(`[{"date":"2025-04-01","status":"delivered"}]`))
	require.Len(t, days, 1)
	assert.Equal(t, StatusDelivered, days[0].Status)
}

func TestNilSubscriptionWindowValue(t *testing.T) {
	var w *SubscriptionWindow
	value, err := w.Value()
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestRoleCapabilities(t *testing.T) {
	assert.True(t, RoleFarmer.CanManageProducts())
	assert.True(t, RoleSupplier.CanManageProducts())
	assert.True(t, RoleAdmin.CanManageProducts())
	assert.False(t, RoleUser.CanManageProducts())

	assert.True(t, RoleFarmer.CanManageDeliveries())
	assert.False(t, RoleUser.CanManageDeliveries())

	assert.True(t, RoleAdmin.CanManageUsers())
	assert.False(t, RoleFarmer.CanManageUsers())
	assert.False(t, RoleSupplier.CanManageUsers())

	assert.False(t, Role("superuser").Valid())
	assert.True(t, RoleUser.Valid())
}
