package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := RegisterCustomerRequest{Phone: " 9876543210 ", Name: "  Asha Rao  "}
	SanitizeStruct(&req)

	assert.Equal(t, "9876543210", req.Phone)
	assert.Equal(t, "Asha Rao", req.Name)
}

func TestSanitizeStruct_EscapesNestedAddress(t *testing.T) {
	req := CoinPurchaseRequest{
		CustomerID: "9876543210",
		Address:    AddressRequest{Line: " 12 <b>MG</b> Road ", City: "Pune", PostCode: "411001"},
	}
	SanitizeStruct(&req)

	assert.Equal(t, "12 &lt;b&gt;MG&lt;/b&gt; Road", req.Address.Line)
	assert.Equal(t, "Pune", req.Address.City)
}

func TestSanitizeStruct_LeavesDecimalsAlone(t *testing.T) {
	req := AllotRequest{CustomerID: "9876543210", Grams: decimal.RequireFromString("0.5")}
	SanitizeStruct(&req)

	assert.Equal(t, "0.5", req.Grams.String())
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

func TestPhoneValidation(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"9876543210", true},
		{"98765", false},
		{"98765432101", false},
		{"98765abcde", false},
		{"", false},
	}
	for _, tc := range tests {
		err := binding.Validator.ValidateStruct(&RegisterCustomerRequest{Phone: tc.phone, Name: "x"})
		if tc.valid {
			assert.NoError(t, err, tc.phone)
		} else {
			assert.Error(t, err, tc.phone)
		}
	}
}

func TestCoinPurchaseRequest_DivesIntoItems(t *testing.T) {
	req := CoinPurchaseRequest{
		CustomerID: "9876543210",
		Items:      []CoinItemRequest{{CoinGrams: decimal.NewFromInt(1), Quantity: 0}},
		Address:    AddressRequest{Line: "1 Road", City: "Pune", PostCode: "411001"},
	}
	assert.Error(t, binding.Validator.ValidateStruct(&req))

	req.Items[0].Quantity = 2
	assert.NoError(t, binding.Validator.ValidateStruct(&req))
}
