package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type UserProfile struct {
	ID          string        `gorm:"type:uuid;primarykey" json:"user_id"`
	FirstName   string        `json:"first_name"`
	LastName    string        `json:"last_name"`
	Email       string        `gorm:"unique" json:"email"`
	Password    string        `json:"-"`
	Phone       string        `json:"phone"`
	FarmName    string        `json:"farm_name,omitempty"`
	CompanyName string        `json:"company_name,omitempty"`
	Address     string        `json:"address"`
	Status      AccountStatus `gorm:"default:pending" json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type UserRole struct {
	UserID string `gorm:"type:uuid;primarykey" json:"user_id"`
	Role   Role   `json:"role"`
}

type Category struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	Name      string    `gorm:"unique" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	ID          string         `gorm:"type:uuid;primarykey" json:"id"`
	UserID      string         `gorm:"type:uuid;index" json:"user_id"`
	Name        string         `json:"name"`
	Price       float64        `json:"price"`
	Description string         `json:"description"`
	Quantity    int            `json:"quantity"`
	Unit        string         `json:"unit,omitempty"`
	Features    Features       `gorm:"type:jsonb" json:"features,omitempty"`
	Image       string         `json:"image,omitempty"`
	CategoryID  string         `gorm:"type:uuid;index" json:"category_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

type CartItem struct {
	ID           string              `gorm:"type:uuid;primarykey" json:"id"`
	UserID       string              `gorm:"type:uuid;index:idx_cart_user_product" json:"user_id"`
	ProductID    string              `gorm:"type:uuid;index:idx_cart_user_product" json:"product_id"`
	Name         string              `json:"name"`
	Price        float64             `json:"price"`
	Image        string              `json:"image,omitempty"`
	Quantity     int                 `json:"quantity"`
	Subscription *SubscriptionWindow `gorm:"type:jsonb" json:"subscription,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

type Order struct {
	ID               string     `gorm:"type:uuid;primarykey" json:"id"`
	UserID           string     `gorm:"type:uuid;index" json:"user_id"`
	UserName         string     `json:"user_name"`
	UserEmail        string     `json:"user_email"`
	Phone            string     `json:"phone"`
	Items            OrderItems `gorm:"type:jsonb" json:"items"`
	TotalAmount      float64    `json:"total_amount"`
	GatewayOrderID   string     `gorm:"index" json:"gateway_order_id"`
	GatewayPaymentID string     `gorm:"index" json:"gateway_payment_id"`
	GatewaySignature string     `json:"-"`
	Location         string     `json:"location,omitempty"`
	Address          string     `json:"address"`
	City             string     `json:"city"`
	State            string     `json:"state"`
	Zip              string     `json:"zip"`
	Status           string     `gorm:"default:paid" json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
}

type Delivery struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	OrderID   string         `gorm:"type:uuid;index" json:"order_id"`
	ProductID string         `gorm:"type:uuid;index" json:"product_id"`
	UserID    string         `gorm:"type:uuid;index" json:"user_id"`
	Quantity  int            `json:"quantity"`
	FromDate  CalendarDate   `gorm:"type:date" json:"from_date"`
	ToDate    CalendarDate   `gorm:"type:date" json:"to_date"`
	Days      DeliveryDays   `gorm:"type:jsonb;column:deliverystatus" json:"deliverystatus"`
	Status    DeliveryStatus `gorm:"default:pending" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

//SubscriptionWindow is the inclusive [From, To] range of a recurring
//delivery commitment for one cart/order line. Days is the day count the
//storefront submitted, it is what line pricing multiplies by.
type SubscriptionWindow struct {
	From CalendarDate `json:"from"`
	To   CalendarDate `json:"to"`
	Days int          `json:"days"`
}

//DeliveryDay is one calendar date of a subscription with its own status.
type DeliveryDay struct {
	Date   CalendarDate   `json:"date"`
	Status DeliveryStatus `json:"status"`
	Time   string         `json:"time,omitempty"`
}

//OrderItem is one line of an order snapshot, enriched at checkout with the
//expanded per-day schedule.
type OrderItem struct {
	ProductID      string              `json:"product_id"`
	Name           string              `json:"name"`
	Price          float64             `json:"price"`
	Image          string              `json:"image,omitempty"`
	Quantity       int                 `json:"quantity"`
	Subscription   *SubscriptionWindow `json:"subscription,omitempty"`
	DeliveryStatus DeliveryDays        `json:"delivery_status,omitempty"`
}

type (
	OrderItems   []OrderItem
	DeliveryDays []DeliveryDay
	Features     []string
)

//jsonb column plumbing. Nested payloads are stored as canonical JSON,
//never as doubly-encoded strings.

func jsonbScan(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	}
	return fmt.Errorf("unsupported jsonb source %T", value)
}

func (i OrderItems) Value() (driver.Value, error) {
	return json.Marshal(i)
}

func (i *OrderItems) Scan(value interface{}) error {
	return jsonbScan(value, i)
}

func (d DeliveryDays) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *DeliveryDays) Scan(value interface{}) error {
	return jsonbScan(value, d)
}

func (f Features) Value() (driver.Value, error) {
	return json.Marshal(f)
}

func (f *Features) Scan(value interface{}) error {
	return jsonbScan(value, f)
}

func (w *SubscriptionWindow) Value() (driver.Value, error) {
	if w == nil {
		return nil, nil
	}
	return json.Marshal(w)
}

func (w *SubscriptionWindow) Scan(value interface{}) error {
	return jsonbScan(value, w)
}

func (d CalendarDate) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *CalendarDate) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		*d = CalendarDate{Year: v.Year(), Month: v.Month(), Day: v.Day()}
		return nil
	case []byte:
		parsed, err := ParseCalendarDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseCalendarDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}
	return fmt.Errorf("unsupported date source %T", value)
}
