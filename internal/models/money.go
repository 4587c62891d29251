package models

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

func init() {
	// the storefront API exchanges amounts as bare JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

const defaultDecimalPlaces = 2

// Amount pairs a decimal amount with its minor-unit integer form
type Amount struct {
	Amount        decimal.Decimal `json:"amount"`
	IntegerAmount int64           `json:"integerAmount"`
}

// NewAmount builds an Amount using the currency's decimal places
func NewAmount(amount decimal.Decimal, decimalPlaces int) Amount {
	return Amount{
		Amount:        amount,
		IntegerAmount: ToInteger(amount, decimalPlaces),
	}
}

// ToInteger converts an amount into minor units, e.g. 12.34 -> 1234
func ToInteger(amount decimal.Decimal, decimalPlaces int) int64 {
	if decimalPlaces <= 0 {
		decimalPlaces = defaultDecimalPlaces
	}
	return amount.Shift(int32(decimalPlaces)).Round(0).IntPart()
}

// ItemID is an identifier the API sends either as a string or a number
type ItemID string

func (id *ItemID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ItemID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("failed to decode item id %s: %w", string(data), err)
	}
	*id = ItemID(n.String())
	return nil
}

func (id ItemID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ItemID) String() string {
	return string(id)
}
