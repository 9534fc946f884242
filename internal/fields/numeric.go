package fields

import (
	"regexp"
	"strconv"
	"time"
)

const (
	// KindIncome is the Kind name for Income.
	KindIncome = "income"
	// KindFamily is the Kind name for Family.
	KindFamily = "family"
	// KindBirthday is the Kind name for Birthday.
	KindBirthday = "birthday"
)

const (
	// IncomeConstraints is the message returned for an invalid income.
	IncomeConstraints = "Income should be a non-negative integer"
	// FamilyConstraints is the message returned for an invalid family size.
	FamilyConstraints = "Family size should be a positive integer"
	// BirthdayConstraints is the message returned for an invalid birthday.
	BirthdayConstraints = "Birthday should be in the format ddMMMyyyy, like 01May2009, and not be in the future"
)

// digitsRE allows plain digits only: no sign and no leading zero unless the number is 0.
var digitsRE = regexp.MustCompile(`^(0|[1-9][0-9]*)$`)

// BirthdayLayout is the time layout of a Birthday.
const BirthdayLayout = "02Jan2006"

// Income is a client's yearly income.
type Income struct {
	v int64
}

// NewIncome validates "s" is a whole number >= 0.
func NewIncome(s string) (Income, error) {
	if !digitsRE.MatchString(s) {
		return Income{}, invalid(KindIncome, IncomeConstraints)
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Income{}, invalid(KindIncome, IncomeConstraints)
	}
	return Income{v: i}, nil
}

// Amount returns the income.
func (i Income) Amount() int64 { return i.v }

// String returns the income with a dollar sign, like "$20000".
func (i Income) String() string { return "$" + strconv.FormatInt(i.v, 10) }

// Describe returns the long form, like "Income is $20000".
func (i Income) Describe() string { return "Income is $" + strconv.FormatInt(i.v, 10) }

// Family is the size of a client's family.
type Family struct {
	v int
}

// NewFamily validates "s" is a whole number > 0.
func NewFamily(s string) (Family, error) {
	if !digitsRE.MatchString(s) {
		return Family{}, invalid(KindFamily, FamilyConstraints)
	}
	i, err := strconv.Atoi(s)
	if err != nil || i < 1 {
		return Family{}, invalid(KindFamily, FamilyConstraints)
	}
	return Family{v: i}, nil
}

// Size returns the family size.
func (f Family) Size() int { return f.v }

// String returns the size, like "4".
func (f Family) String() string { return strconv.Itoa(f.v) }

// Describe returns the long form, like "Family size is 4".
func (f Family) Describe() string { return "Family size is " + strconv.Itoa(f.v) }

// now is replaced in tests.
var now = time.Now

// Birthday is a client's date of birth.
type Birthday struct {
	t time.Time
}

// NewBirthday validates "s" is a BirthdayLayout date that has already happened.
func NewBirthday(s string) (Birthday, error) {
	t, err := time.Parse(BirthdayLayout, s)
	if err != nil || t.After(now()) {
		return Birthday{}, invalid(KindBirthday, BirthdayConstraints)
	}
	return Birthday{t: t}, nil
}

// Time returns the date as a time.Time in UTC.
func (b Birthday) Time() time.Time { return b.t }

// String returns the date in BirthdayLayout, like "01May2009".
func (b Birthday) String() string { return b.t.Format(BirthdayLayout) }

// Describe returns the long form, like "Birthday is on 1 May 2009".
func (b Birthday) Describe() string { return "Birthday is on " + b.t.Format("2 January 2006") }
