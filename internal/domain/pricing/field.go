package pricing

import "fmt"

// Field identifies the scalar package attributes that can be edited inline.
type Field int

const (
	FieldName Field = iota
	FieldDetails
	FieldPrice
	FieldSellPrice
)

// String returns the field's display key.
func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldDetails:
		return "details"
	case FieldPrice:
		return "price"
	case FieldSellPrice:
		return "sellPrice"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// Numeric reports whether the field holds a currency amount.
func (f Field) Numeric() bool {
	return f == FieldPrice || f == FieldSellPrice
}

// Value returns the field's current value formatted for editing.
func (f Field) Value(p Package) (string, error) {
	switch f {
	case FieldName:
		return p.Name, nil
	case FieldDetails:
		return p.Details, nil
	case FieldPrice:
		return FormatPrice(p.Price), nil
	case FieldSellPrice:
		return FormatPrice(p.SellPrice), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownField, f)
	}
}

// apply coerces raw into the field and returns the updated package. Prices
// that do not parse leave the package unchanged.
func (f Field) apply(p Package, raw string) (Package, error) {
	switch f {
	case FieldName:
		p.Name = raw
	case FieldDetails:
		p.Details = raw
	case FieldPrice:
		if v, ok := ParsePrice(raw); ok {
			p.Price = v
		}
	case FieldSellPrice:
		if v, ok := ParsePrice(raw); ok {
			p.SellPrice = v
		}
	default:
		return p, fmt.Errorf("%w: %s", ErrUnknownField, f)
	}
	return p, nil
}
