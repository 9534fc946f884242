package fields

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	// KindName is the Kind name for Name.
	KindName = "name"
	// KindPhone is the Kind name for Phone.
	KindPhone = "phone"
	// KindAddress is the Kind name for Address.
	KindAddress = "address"
	// KindEmail is the Kind name for Email.
	KindEmail = "email"
	// KindRemark is the Kind name for Remark.
	KindRemark = "remark"
)

const (
	// NameConstraints is the message returned for an invalid name.
	NameConstraints = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	// PhoneConstraints is the message returned for an invalid phone number.
	PhoneConstraints = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	// AddressConstraints is the message returned for an invalid address.
	AddressConstraints = "Addresses can take any values, and it should not be blank"
	// EmailConstraints is the message returned for an invalid email.
	EmailConstraints = "Emails should be of the format local-part@domain and adhere to the following constraints:\n" +
		"1. The local-part should only contain alphanumeric characters and these special characters, excluding " +
		"the parentheses, (+_.-).\n" +
		"2. This is followed by a '@' and then a domain name made up of domain labels separated by periods."
)

var (
	nameRE    = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)
	phoneRE   = regexp.MustCompile(`^[0-9]{3,}$`)
	addressRE = regexp.MustCompile(`^\S.*$`)
)

// Name is a client's full name.
type Name struct {
	v string
}

// NewName validates "s".
func NewName(s string) (Name, error) {
	if !nameRE.MatchString(s) {
		return Name{}, invalid(KindName, NameConstraints)
	}
	return Name{v: s}, nil
}

// String returns the name.
func (n Name) String() string { return n.v }

// Describe returns the long form, like "Name is ...".
func (n Name) Describe() string { return "Name is " + n.v }

// Phone is a phone number of digits only.
type Phone struct {
	v string
}

// NewPhone validates "s".
func NewPhone(s string) (Phone, error) {
	if !phoneRE.MatchString(s) {
		return Phone{}, invalid(KindPhone, PhoneConstraints)
	}
	return Phone{v: s}, nil
}

// String returns the number.
func (p Phone) String() string { return p.v }

// Describe returns the long form, like "Phone is ...".
func (p Phone) Describe() string { return "Phone number is " + p.v }

// Address is a free form, non-blank address.
type Address struct {
	v string
}

// NewAddress validates "s".
func NewAddress(s string) (Address, error) {
	if !addressRE.MatchString(s) {
		return Address{}, invalid(KindAddress, AddressConstraints)
	}
	return Address{v: s}, nil
}

// String returns the address.
func (a Address) String() string { return a.v }

// Describe returns the long form, like "Address is ...".
func (a Address) Describe() string { return "Address is " + a.v }

var validate = validator.New()

// Email is an email address.
type Email struct {
	v string
}

// NewEmail validates "s".
func NewEmail(s string) (Email, error) {
	if err := validate.Var(s, "required,email"); err != nil {
		return Email{}, invalid(KindEmail, EmailConstraints)
	}
	return Email{v: s}, nil
}

// String returns the address.
func (e Email) String() string { return e.v }

// Describe returns the long form, like "Email is ...".
func (e Email) Describe() string { return "Email is " + e.v }

// Remark is a free text note. It may be empty.
type Remark struct {
	v string
}

// NewRemark never fails.
func NewRemark(s string) (Remark, error) {
	return Remark{v: s}, nil
}

// String returns the remark, which may be "".
func (r Remark) String() string { return r.v }

// Describe returns the long form, or "No remarks" when empty.
func (r Remark) Describe() string {
	if r.v == "" {
		return "No remarks"
	}
	return "Remark: " + r.v
}
