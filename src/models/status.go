package models

//account approval status, set by an admin after signup
type AccountStatus string

const (
	AccountPending  AccountStatus = "pending"
	AccountApproved AccountStatus = "approved"
	AccountRejected AccountStatus = "rejected"
)

//Role is the closed set of account roles. Dashboard access is decided
//through the capability methods, never by comparing strings at call sites.
type Role string

const (
	RoleFarmer   Role = "farmer"
	RoleSupplier Role = "supplier"
	RoleUser     Role = "user"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleFarmer, RoleSupplier, RoleUser, RoleAdmin:
		return true
	}
	return false
}

//CanManageProducts reports whether the role may create or edit catalog entries.
func (r Role) CanManageProducts() bool {
	return r == RoleFarmer || r == RoleSupplier || r == RoleAdmin
}

//CanManageDeliveries reports whether the role may update delivery schedules.
func (r Role) CanManageDeliveries() bool {
	return r == RoleFarmer || r == RoleSupplier || r == RoleAdmin
}

//CanManageUsers reports whether the role may approve or reject accounts.
func (r Role) CanManageUsers() bool {
	return r == RoleAdmin
}

//DeliveryStatus is the per-day state of one subscription delivery.
type DeliveryStatus string

const (
	StatusScheduled  DeliveryStatus = "scheduled"
	StatusPending    DeliveryStatus = "pending"
	StatusInProgress DeliveryStatus = "in-progress"
	StatusDelivered  DeliveryStatus = "delivered"
	StatusFailed     DeliveryStatus = "failed"
)

func (s DeliveryStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusPending, StatusInProgress, StatusDelivered, StatusFailed:
		return true
	}
	return false
}

//OrderPaid is the only coarse order status written today, orders are only
//recorded after a verified payment.
const OrderPaid = "paid"
