package customer

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName          = errors.New("customer name is required")
	ErrEmptyPhone         = errors.New("customer phone is required")
	ErrInsufficientPoints = errors.New("not enough reward points")
)

// Customer is looked up by phone at the counter; a walk-in that isn't found
// gets created on the spot.
type Customer struct {
	id       string
	name     string
	phone    string
	branchID string
	points   int
}

func New(name, phone, branchID string) (*Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return nil, ErrEmptyName
	}
	if phone == "" {
		return nil, ErrEmptyPhone
	}
	return &Customer{name: name, phone: phone, branchID: branchID}, nil
}

func Reconstruct(id, name, phone, branchID string, points int) *Customer {
	return &Customer{id: id, name: name, phone: phone, branchID: branchID, points: points}
}

func (c *Customer) AddPoints(points int) {
	c.points += points
}

func (c *Customer) DeductPoints(points int) error {
	if points > c.points {
		return ErrInsufficientPoints
	}
	c.points -= points
	return nil
}

func (c *Customer) SetID(id string) {
	if c.id == "" {
		c.id = id
	}
}

func (c *Customer) ID() string       { return c.id }
func (c *Customer) Name() string     { return c.name }
func (c *Customer) Phone() string    { return c.phone }
func (c *Customer) BranchID() string { return c.branchID }
func (c *Customer) Points() int      { return c.points }
