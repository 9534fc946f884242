package fields

import (
	"errors"
	"testing"
	"time"

	"github.com/kylelemons/godebug/pretty"
)

func TestHousingType(t *testing.T) {
	tests := []struct {
		desc    string
		raw     string
		want    House
		wantErr bool
	}{
		{desc: "lower case", raw: "hdb", want: HDB},
		{desc: "mixed case", raw: "Hdb", want: HDB},
		{desc: "upper case", raw: "HDB", want: HDB},
		{desc: "space separated", raw: "landed property", want: LandedProperty},
		{desc: "underscore separated", raw: "LANDED_PROPERTY", wantErr: true},
		{desc: "three words", raw: "Good Class Bungalow", want: GoodClassBungalow},
		{desc: "full name", raw: "condominium", want: Condominium},
		{desc: "not a member", raw: "condo", wantErr: true},
		{desc: "empty", raw: "", wantErr: true},
		{desc: "blank", raw: "   ", wantErr: true},
		{desc: "double space", raw: "landed  property", wantErr: true},
		{desc: "symbols", raw: "hdb!", wantErr: true},
		{desc: "leading space", raw: " hdb", wantErr: true},
	}

	for _, test := range tests {
		got, err := NewHousingType(test.raw)
		valid := IsValidHousingType(test.raw)
		if valid != (err == nil) {
			t.Errorf("TestHousingType(%s): IsValidHousingType() = %v but NewHousingType() err = %v", test.desc, valid, err)
		}
		switch {
		case err == nil && test.wantErr:
			t.Errorf("TestHousingType(%s): got err == nil, want err != nil", test.desc)
			continue
		case err != nil && !test.wantErr:
			t.Errorf("TestHousingType(%s): got err == %s, want err == nil", test.desc, err)
			continue
		case err != nil:
			var vErr *ValidationError
			if !errors.As(err, &vErr) || vErr.Constraints != HousingConstraints || vErr.Field != KindHousing {
				t.Errorf("TestHousingType(%s): got err %#v, want *ValidationError with housing constraints", test.desc, err)
			}
			continue
		}
		if got.House() != test.want {
			t.Errorf("TestHousingType(%s): got %s, want %s", test.desc, got.House(), test.want)
		}
	}
}

func TestHousingTypeEqualityAndForms(t *testing.T) {
	a, _ := NewHousingType("hdb")
	b, _ := NewHousingType("HDB")
	c, _ := NewHousingType("condominium")
	if a != b {
		t.Errorf("TestHousingTypeEqualityAndForms: hdb != HDB")
	}
	if a == c {
		t.Errorf("TestHousingTypeEqualityAndForms: hdb == condominium")
	}

	lp, _ := NewHousingType("landed property")
	if got := lp.String(); got != "[LANDED_PROPERTY]" {
		t.Errorf("TestHousingTypeEqualityAndForms: String() = %q", got)
	}
	if got := lp.Describe(); got != "Preferred housing type is LANDED_PROPERTY" {
		t.Errorf("TestHousingTypeEqualityAndForms: Describe() = %q", got)
	}
}

func TestKinds(t *testing.T) {
	defer func(f func() time.Time) { now = f }(now)
	now = func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		kind    string
		raw     string
		want    string
		wantErr string
	}{
		{kind: KindName, raw: "John Doe", want: "John Doe"},
		{kind: KindName, raw: "", wantErr: NameConstraints},
		{kind: KindName, raw: "J@ne", wantErr: NameConstraints},
		{kind: KindPhone, raw: "98765432", want: "98765432"},
		{kind: KindPhone, raw: "12", wantErr: PhoneConstraints},
		{kind: KindPhone, raw: "9123 4567", wantErr: PhoneConstraints},
		{kind: KindAddress, raw: "Blk 30 Geylang Street 29, #06-40", want: "Blk 30 Geylang Street 29, #06-40"},
		{kind: KindAddress, raw: "", wantErr: AddressConstraints},
		{kind: KindEmail, raw: "johnd@example.com", want: "johnd@example.com"},
		{kind: KindEmail, raw: "johnd", wantErr: EmailConstraints},
		{kind: KindEmail, raw: "", wantErr: EmailConstraints},
		{kind: KindIncome, raw: "0", want: "$0"},
		{kind: KindIncome, raw: "20000", want: "$20000"},
		{kind: KindIncome, raw: "-1", wantErr: IncomeConstraints},
		{kind: KindIncome, raw: "lots", wantErr: IncomeConstraints},
		{kind: KindIncome, raw: "+5", wantErr: IncomeConstraints},
		{kind: KindIncome, raw: "-0", wantErr: IncomeConstraints},
		{kind: KindIncome, raw: "007", wantErr: IncomeConstraints},
		{kind: KindIncome, raw: "99999999999999999999", wantErr: IncomeConstraints},
		{kind: KindFamily, raw: "4", want: "4"},
		{kind: KindFamily, raw: "10", want: "10"},
		{kind: KindFamily, raw: "0", wantErr: FamilyConstraints},
		{kind: KindFamily, raw: "+3", wantErr: FamilyConstraints},
		{kind: KindFamily, raw: "04", wantErr: FamilyConstraints},
		{kind: KindRemark, raw: "", want: ""},
		{kind: KindRemark, raw: "likes pools", want: "likes pools"},
		{kind: KindBirthday, raw: "01May2009", want: "01May2009"},
		{kind: KindBirthday, raw: "01May2099", wantErr: BirthdayConstraints},
		{kind: KindBirthday, raw: "2009-05-01", wantErr: BirthdayConstraints},
		{kind: KindHousing, raw: "Hdb", want: "[HDB]"},
		{kind: KindHousing, raw: "condo", wantErr: HousingConstraints},
		{kind: KindTag, raw: "buyer", want: "[BUYER]"},
		{kind: KindTag, raw: "Seller", want: "[SELLER]"},
		{kind: KindTag, raw: "renter", wantErr: TagConstraints},
	}

	for _, test := range tests {
		k, err := Lookup(test.kind)
		if err != nil {
			t.Fatalf("TestKinds: Lookup(%s): %s", test.kind, err)
		}

		v, err := k.Parse(test.raw)
		if k.Valid(test.raw) != (err == nil) {
			t.Errorf("TestKinds(%s, %q): Valid() disagrees with Parse()", test.kind, test.raw)
		}
		if test.wantErr != "" {
			if err == nil {
				t.Errorf("TestKinds(%s, %q): got err == nil, want err != nil", test.kind, test.raw)
				continue
			}
			if err.Error() != test.wantErr {
				t.Errorf("TestKinds(%s, %q): got err %q, want %q", test.kind, test.raw, err, test.wantErr)
			}
			if v != nil {
				t.Errorf("TestKinds(%s, %q): got Value %v with error, want nil", test.kind, test.raw, v)
			}
			continue
		}
		if err != nil {
			t.Errorf("TestKinds(%s, %q): got err == %s, want err == nil", test.kind, test.raw, err)
			continue
		}
		if v.String() != test.want {
			t.Errorf("TestKinds(%s, %q): got %q, want %q", test.kind, test.raw, v.String(), test.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	r, _ := NewRemark("")
	b, _ := NewBirthday("01May2009")
	i, _ := NewIncome("5000")
	tag, _ := NewTag("buyer")

	got := []string{r.Describe(), b.Describe(), i.Describe(), tag.Describe()}
	want := []string{"No remarks", "Birthday is on 1 May 2009", "Income is $5000", "Client is a buyer"}
	if diff := pretty.Compare(want, got); diff != "" {
		t.Errorf("TestDescribe: -want/+got:\n%s", diff)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("salary"); err == nil {
		t.Errorf("TestLookupUnknown: got err == nil, want err != nil")
	}
	want := []string{"address", "birthday", "email", "family", "housing", "income", "name", "phone", "remark", "tag"}
	if diff := pretty.Compare(want, Names()); diff != "" {
		t.Errorf("TestLookupUnknown: Names() -want/+got:\n%s", diff)
	}
}
