package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a read-only record populated from CustomerQueryRs
// elements. Optional fields keep their zero value when the response
// omits them.
type Customer struct {
	ListID                string
	Name                  string
	FullName              string
	CompanyName           string
	FirstName             string
	LastName              string
	PrintAs               string
	EditSequence          string
	Sublevel              string
	Phone                 string
	Email                 string
	DeliveryMethod        string
	Balance               decimal.Decimal
	TotalBalance          decimal.Decimal
	IsStatementWithParent string
	TimeCreated           time.Time
	TimeModified          time.Time
	BillAddress           Address
}

// Address is a flat billing address.
type Address struct {
	Addr1      string
	Addr2      string
	City       string
	State      string
	PostalCode string
}
