package dto

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CheckoutForm struct {
	BillingFirstName string `json:"billingFirstName" validate:"required,min=2"`
	BillingLastName  string `json:"billingLastName" validate:"required,min=2"`
	BillingEmail     string `json:"billingEmail" validate:"required,email"`
	BillingPhone     string `json:"billingPhone" validate:"required,min=10"`
	BillingAddress   string `json:"billingAddress" validate:"required,min=5"`
	BillingCity      string `json:"billingCity" validate:"required,min=2"`
	BillingState     string `json:"billingState" validate:"required,min=2"`
	BillingPincode   string `json:"billingPincode" validate:"required,min=6"`

	SameAsBilling bool `json:"sameAsBilling"`

	// Shipping fields become mandatory exactly when SameAsBilling is false.
	ShippingFirstName string `json:"shippingFirstName" validate:"required_if=SameAsBilling false,omitempty,min=2"`
	ShippingLastName  string `json:"shippingLastName" validate:"required_if=SameAsBilling false,omitempty,min=2"`
	ShippingEmail     string `json:"shippingEmail" validate:"required_if=SameAsBilling false,omitempty,email"`
	ShippingPhone     string `json:"shippingPhone" validate:"required_if=SameAsBilling false,omitempty,min=10"`
	ShippingAddress   string `json:"shippingAddress" validate:"required_if=SameAsBilling false,omitempty,min=5"`
	ShippingCity      string `json:"shippingCity" validate:"required_if=SameAsBilling false,omitempty,min=2"`
	ShippingState     string `json:"shippingState" validate:"required_if=SameAsBilling false,omitempty,min=2"`
	ShippingPincode   string `json:"shippingPincode" validate:"required_if=SameAsBilling false,omitempty,min=6"`
}

var formValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report field errors under their json names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

var fieldMessages = map[string]string{
	"billingFirstName": "First name is required",
	"billingLastName":  "Last name is required",
	"billingEmail":     "Invalid email address",
	"billingPhone":     "Phone number must be at least 10 digits",
	"billingAddress":   "Address is required",
	"billingCity":      "City is required",
	"billingState":     "State is required",
	"billingPincode":   "Valid pincode is required",
}

// Validate runs the checkout schema and returns per-field messages, keyed by
// json field name. An empty map means the form is valid.
func (f *CheckoutForm) Validate() map[string]string {
	fields := map[string]string{}

	err := formValidator.Struct(f)
	if err == nil {
		return fields
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fields["form"] = err.Error()
		return fields
	}

	for _, fe := range verrs {
		name := fe.Field()
		if msg, ok := fieldMessages[name]; ok {
			fields[name] = msg
			continue
		}
		if strings.HasPrefix(name, "shipping") {
			fields[name] = "Shipping information is required when different from billing"
			continue
		}
		fields[name] = "Invalid value"
	}

	return fields
}

// CustomerName is the display name used for gateway prefill and the order
// record.
func (f *CheckoutForm) CustomerName() string {
	return f.BillingFirstName + " " + f.BillingLastName
}

// ShippingIdentity resolves the effective shipping block: billing when the
// same-as-billing flag is set, the shipping fields otherwise.
func (f *CheckoutForm) ShippingIdentity() (address, city, state, pincode string) {
	if f.SameAsBilling {
		return f.BillingAddress, f.BillingCity, f.BillingState, f.BillingPincode
	}
	return f.ShippingAddress, f.ShippingCity, f.ShippingState, f.ShippingPincode
}
