// Package money implements an exact USD amount with a canonical
// currency string representation such as "$1,234.50".
package money

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Places is the number of decimal places every amount is rounded to.
const Places = 2

var ErrInvalidAmount = errors.New("the amount is not a valid currency value")

var (
	printer = message.NewPrinter(language.AmericanEnglish)
	symbol  = printer.Sprint(currency.NarrowSymbol(currency.USD))
	number  = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)
)

// Money is a USD amount in cents precision.
//
// The zero value is $0.00.
type Money struct {
	amount decimal.Decimal
}

// Zero is $0.00.
var Zero = Money{}

// New returns the Money for a decimal, rounded to cents.
func New(d decimal.Decimal) Money {
	return Money{amount: d.Round(Places)}
}

// FromCents returns the Money for an integer number of cents.
func FromCents(cents int64) Money {
	return Money{amount: decimal.New(cents, -Places)}
}

// Parse parses a currency string.
//
// The currency symbol and grouping separators are stripped, the remainder
// must be a plain decimal number with an optional sign.
func Parse(text string) (Money, error) {
	s := strings.TrimSpace(text)

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = strings.TrimSpace(s[1:])
	}

	s = strings.ReplaceAll(s, symbol, "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if !number.MatchString(s) {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}

	// A double sign like "--5" or "-$-5" is not a number
	if negative && strings.ContainsAny(s, "+-") {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}

	d, err := decimal.NewFromString(strings.TrimPrefix(s, "+"))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}

	if negative {
		d = d.Neg()
	}

	return New(d), nil
}

// MustParse is like Parse but panics on invalid input. Meant for tests
// and constants.
func MustParse(text string) Money {
	m, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return m
}

// Format renders the amount in USD notation, e.g. "$1,234.50".
func (m Money) Format() string {
	fixed := m.amount.Abs().StringFixed(Places)
	integer, fraction, _ := strings.Cut(fixed, ".")

	sign := ""
	if m.amount.IsNegative() {
		sign = "-"
	}

	return sign + symbol + group(integer) + "." + fraction
}

// group inserts a comma between every three digits, counted from the right.
func group(digits string) string {
	var b strings.Builder

	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:min(lead, len(digits))])

	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}

// String implements fmt.Stringer.
func (m Money) String() string {
	return m.Format()
}

// Decimal returns the decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(o Money) Money {
	return Money{amount: m.amount.Add(o.amount)}
}

func (m Money) Sub(o Money) Money {
	return Money{amount: m.amount.Sub(o.amount)}
}

// Cmp compares m and o and returns -1, 0 or +1.
func (m Money) Cmp(o Money) int {
	return m.amount.Cmp(o.amount)
}

func (m Money) Equal(o Money) bool {
	return m.amount.Equal(o.amount)
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Add adds two currency strings and returns the formatted sum.
func Add(a, b string) (string, error) {
	return arithmetic(a, b, Money.Add)
}

// Subtract subtracts b from a and returns the formatted difference.
func Subtract(a, b string) (string, error) {
	return arithmetic(a, b, Money.Sub)
}

func arithmetic(a, b string, op func(Money, Money) Money) (string, error) {
	x, err := Parse(a)
	if err != nil {
		return "", err
	}

	y, err := Parse(b)
	if err != nil {
		return "", err
	}

	return op(x, y).Format(), nil
}

// MarshalJSON encodes the amount as its canonical currency string.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Format())
}

// UnmarshalJSON accepts a currency string or a JSON number.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("%w: null", ErrInvalidAmount)
	}

	text := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidAmount, data)
		}
	}

	parsed, err := Parse(text)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

// GormDBDataType defines the column type for amounts. sqlite stores DECIMAL
// columns as floating point numbers, so amounts are kept as text there.
func (Money) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "NUMERIC"
	}

	return "TEXT"
}

// Value implements driver.Valuer. Amounts are stored as plain decimals.
func (m Money) Value() (driver.Value, error) {
	return m.amount.StringFixed(Places), nil
}

// Scan implements sql.Scanner.
func (m *Money) Scan(value any) error {
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return fmt.Errorf("scanning amount: %w", err)
	}

	*m = New(d)
	return nil
}
