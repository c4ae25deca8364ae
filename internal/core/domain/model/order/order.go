package order

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order represents a delivery order. It is the aggregate root that manages
// the order lifecycle from creation through assignment to delivery.
//
// Order maintains these invariants:
//   - Must have valid order and shop identifiers
//   - Shop name, customer phone, city, and delivery address must be present
//   - Payment amount must not be negative
//   - Status transitions are strictly forward: Pending -> Assigned -> Delivered
//   - Courier identity is recorded exactly when status is Assigned or Delivered
//   - DeliveredAt is recorded exactly when status is Delivered
//
// The struct uses private fields to ensure encapsulation. Timestamps are
// Dushanbe-local strings in the fixed "2006-01-02 15:04:05" layout.
type Order struct {
	id            kernel.OrderID
	shopID        kernel.UserID
	shopName      string
	customerPhone string
	city          string
	address       string
	paymentAmount float64
	status        Status
	createdAt     string

	courierID   *kernel.UserID
	courierName string
	assignedAt  string
	deliveredAt string

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status with no courier assigned.
// This is the only way to create a fresh order; all invariants are validated.
//
// Parameters:
//   - id: order identifier allocated from the store's monotonic counter
//   - shopID: identifier of the shop placing the order
//   - shopName: display name of the shop
//   - customerPhone: contact phone of the customer
//   - city: destination city
//   - address: delivery address
//   - paymentAmount: amount to collect, must not be negative
//   - createdAt: creation timestamp in the persisted layout
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(
	id kernel.OrderID,
	shopID kernel.UserID,
	shopName string,
	customerPhone string,
	city string,
	address string,
	paymentAmount float64,
	createdAt string,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setShopID(shopID),
		o.setShopName(shopName),
		o.setCustomerPhone(customerPhone),
		o.setCity(city),
		o.setAddress(address),
		o.setPaymentAmount(paymentAmount),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state.
//
// Unlike NewOrder it accepts any valid status together with the courier and
// delivery attributes, and checks their mutual consistency: a courier must be
// present exactly for Assigned and Delivered orders, and deliveredAt exactly
// for Delivered ones.
func RestoreOrder(
	id kernel.OrderID,
	shopID kernel.UserID,
	shopName string,
	customerPhone string,
	city string,
	address string,
	paymentAmount float64,
	status Status,
	createdAt string,
	courierID *kernel.UserID,
	courierName string,
	assignedAt string,
	deliveredAt string,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setShopID(shopID),
		o.setShopName(shopName),
		o.setCustomerPhone(customerPhone),
		o.setCity(city),
		o.setAddress(address),
		o.setPaymentAmount(paymentAmount),
		o.setCreatedAt(createdAt),
		status.Validate(),
		status.ValidateCanHaveCourier(courierID != nil),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		if courierName == "" {
			return nil, errs.NewValueIsRequiredError("courier name")
		}
	}

	if (status == Delivered) != (deliveredAt != "") {
		return nil, errs.NewValueIsInvalidErrorWithCause("delivered at",
			fmt.Errorf("delivery timestamp must be set exactly for status %s", Delivered))
	}

	o.status = status
	o.courierID = courierID
	o.courierName = courierName
	o.assignedAt = assignedAt
	o.deliveredAt = deliveredAt
	return o, nil
}

// Validate ensures the Order was created through a factory method.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// ShopID returns the identifier of the shop that placed the order.
func (o *Order) ShopID() kernel.UserID {
	return o.shopID
}

// ShopName returns the display name of the shop.
func (o *Order) ShopName() string {
	return o.shopName
}

// CustomerPhone returns the customer's contact phone.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// City returns the destination city.
func (o *Order) City() string {
	return o.city
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// PaymentAmount returns the amount to collect on behalf of the shop.
func (o *Order) PaymentAmount() float64 {
	return o.paymentAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() string {
	return o.createdAt
}

// Courier returns the assigned courier's id, or nil while Pending.
func (o *Order) Courier() *kernel.UserID {
	return o.courierID
}

// CourierName returns the assigned courier's display name, empty while Pending.
func (o *Order) CourierName() string {
	return o.courierName
}

// AssignedAt returns the assignment timestamp, empty while Pending.
func (o *Order) AssignedAt() string {
	return o.assignedAt
}

// DeliveredAt returns the delivery timestamp, empty until Delivered.
func (o *Order) DeliveredAt() string {
	return o.deliveredAt
}

// BelongsToCourier reports whether the order is assigned to the given courier.
func (o *Order) BelongsToCourier(courierID kernel.UserID) bool {
	return o.courierID != nil && *o.courierID == courierID
}

// Assign hands the order to a courier and moves it to Assigned.
//
// Rules enforced:
//   - courierID must be valid and courierName non-empty
//   - the order must be Pending; there is no reassignment
//
// On success the courier identity and the assignment timestamp are recorded.
func (o *Order) Assign(courierID kernel.UserID, courierName string, assignedAt string) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if courierName == "" {
		return errs.NewValueIsRequiredError("courier name")
	}
	if assignedAt == "" {
		return errs.NewValueIsRequiredError("assigned at")
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	o.courierName = courierName
	o.assignedAt = assignedAt
	return nil
}

// MarkDelivered confirms delivery and moves the order to Delivered.
//
// The order must be Assigned. Delivered is the final state; the delivery
// timestamp is recorded and never changes afterwards.
func (o *Order) MarkDelivered(deliveredAt string) error {
	if deliveredAt == "" {
		return errs.NewValueIsRequiredError("delivered at")
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = deliveredAt
	return nil
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setShopID(id kernel.UserID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.shopID = id
	return nil
}

func (o *Order) setShopName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("shop name")
	}
	o.shopName = name
	return nil
}

func (o *Order) setCustomerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	o.customerPhone = phone
	return nil
}

func (o *Order) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	o.city = city
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.address = address
	return nil
}

func (o *Order) setPaymentAmount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("payment amount",
			fmt.Errorf("%v is negative", amount))
	}
	o.paymentAmount = amount
	return nil
}

func (o *Order) setCreatedAt(createdAt string) error {
	if createdAt == "" {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}
