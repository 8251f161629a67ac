package theme

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	pterrors "github.com/alexisbeaulieu97/pricetable/pkg/errors"
)

var hexPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Suggestion is a generated partial theme. Applying it overwrites exactly
// the roles it carries.
type Suggestion interface {
	Assignments() map[Role]string
}

// UIPalette covers the six foreground and accent roles.
type UIPalette struct {
	Primary     string `json:"primary" validate:"nonblank"`
	HeaderText  string `json:"headerText" validate:"nonblank"`
	TableHeader string `json:"tableHeader" validate:"nonblank"`
	PriceText   string `json:"priceText" validate:"nonblank"`
	PackageText string `json:"packageText" validate:"nonblank"`
	DetailsText string `json:"detailsText" validate:"nonblank"`
}

// Assignments implements Suggestion.
func (p UIPalette) Assignments() map[Role]string {
	return map[Role]string{
		RolePrimary:     p.Primary,
		RoleHeaderText:  p.HeaderText,
		RoleTableHeader: p.TableHeader,
		RolePriceText:   p.PriceText,
		RolePackageText: p.PackageText,
		RoleDetailsText: p.DetailsText,
	}
}

// Gradient covers the three row background stops.
type Gradient struct {
	From string `json:"from" validate:"nonblank"`
	Via  string `json:"via" validate:"nonblank"`
	To   string `json:"to" validate:"nonblank"`
}

// Assignments implements Suggestion.
func (g Gradient) Assignments() map[Role]string {
	return map[Role]string{
		RoleTableGradientFrom: g.From,
		RoleTableGradientVia:  g.Via,
		RoleTableGradientTo:   g.To,
	}
}

// Validate reports the first missing or blank field of s.
func Validate(s Suggestion) error {
	if s == nil {
		return pterrors.NewValidationError("suggestion", "suggestion is nil", nil)
	}
	if err := validatorInstance().Struct(s); err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok {
			fe := ves[0]
			return pterrors.NewValidationError(fe.Field(), fmt.Sprintf("%s is required", fe.Field()), err)
		}
		return pterrors.NewValidationError("suggestion", err.Error(), err)
	}
	return nil
}

// Apply returns colors with the suggestion's roles overwritten by the values
// exactly as received. When the suggestion fails validation colors is
// returned unchanged with the error.
func Apply(colors Colors, s Suggestion) (Colors, error) {
	if err := Validate(s); err != nil {
		return colors, err
	}
	for role, value := range s.Assignments() {
		colors = colors.With(role, value)
	}
	return colors, nil
}

// ValidHex reports whether v is a #rgb or #rrggbb color.
func ValidHex(v string) bool {
	return hexPattern.MatchString(v)
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})

		_ = v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		validateInst = v
	})

	return validateInst
}
