package domain

import (
	"regexp"
	"strings"
)

// SavedAddress is the single persisted delivery address. It is overwritten
// wholesale on every save; there is no versioning and no address book.
type SavedAddress struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Pincode string `json:"pincode"`
	City    string `json:"city"`
	State   string `json:"state"`
}

// AddressForm carries the raw form fields before validation. HouseNo and Area
// are joined into the single persisted address line.
type AddressForm struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Pincode string `json:"pincode"`
	City    string `json:"city"`
	State   string `json:"state"`
	HouseNo string `json:"houseNo"`
	Area    string `json:"area"`
}

var IndianStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka",
	"Kerala", "Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya", "Mizoram",
	"Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim", "Tamil Nadu",
	"Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand", "West Bengal",
	"Delhi", "Chandigarh",
}

var (
	phoneRe   = regexp.MustCompile(`^[6-9]\d{9}$`)
	pincodeRe = regexp.MustCompile(`^\d{6}$`)
)

func isIndianState(s string) bool {
	for _, st := range IndianStates {
		if st == s {
			return true
		}
	}
	return false
}

// Validate checks every field and reports all failures at once, keyed by form
// field name. An empty map means the form is acceptable.
func (f *AddressForm) Validate() map[string]string {
	errs := map[string]string{}

	name := strings.TrimSpace(f.Name)
	if name == "" {
		errs["name"] = "Name is required"
	} else if len(name) > 100 {
		errs["name"] = "Name must be less than 100 characters"
	}

	phone := strings.TrimSpace(f.Phone)
	if phone == "" {
		errs["phone"] = "Phone number is required"
	} else if !phoneRe.MatchString(phone) {
		errs["phone"] = "Enter valid 10-digit mobile number"
	}

	pincode := strings.TrimSpace(f.Pincode)
	if pincode == "" {
		errs["pincode"] = "Pincode is required"
	} else if !pincodeRe.MatchString(pincode) {
		errs["pincode"] = "Enter valid 6-digit pincode"
	}

	if strings.TrimSpace(f.City) == "" {
		errs["city"] = "City is required"
	}
	if f.State == "" {
		errs["state"] = "State is required"
	} else if !isIndianState(f.State) {
		errs["state"] = "Select a valid state"
	}
	if strings.TrimSpace(f.HouseNo) == "" {
		errs["houseNo"] = "House/Flat number is required"
	}
	if strings.TrimSpace(f.Area) == "" {
		errs["area"] = "Area/Road is required"
	}

	return errs
}

// ToSavedAddress assumes Validate passed.
func (f *AddressForm) ToSavedAddress() *SavedAddress {
	return &SavedAddress{
		Name:    strings.TrimSpace(f.Name),
		Phone:   strings.TrimSpace(f.Phone),
		Address: strings.TrimSpace(f.HouseNo) + ", " + strings.TrimSpace(f.Area),
		Pincode: strings.TrimSpace(f.Pincode),
		City:    strings.TrimSpace(f.City),
		State:   f.State,
	}
}
