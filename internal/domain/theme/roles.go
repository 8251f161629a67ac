package theme

import "fmt"

// Role names one color slot of the table theme.
type Role int

const (
	RolePrimary Role = iota
	RoleTableHeader
	RoleHeaderText
	RolePriceText
	RoleTableGradientFrom
	RoleTableGradientVia
	RoleTableGradientTo
	RolePackageText
	RoleDetailsText

	roleCount
)

var roleNames = [roleCount]string{
	"primary",
	"tableHeader",
	"headerText",
	"priceText",
	"tableGradientFrom",
	"tableGradientVia",
	"tableGradientTo",
	"packageText",
	"detailsText",
}

var roleLabels = [roleCount]string{
	"Primary Color",
	"Table Header",
	"Header Text",
	"Price Text",
	"Gradient From",
	"Gradient Via",
	"Gradient To",
	"Package Name Text",
	"Details Text",
}

// Roles returns every role in the order the customize panel lists them.
func Roles() []Role {
	return []Role{
		RolePrimary,
		RoleHeaderText,
		RoleTableHeader,
		RolePriceText,
		RolePackageText,
		RoleDetailsText,
		RoleTableGradientFrom,
		RoleTableGradientVia,
		RoleTableGradientTo,
	}
}

// String returns the role's key, e.g. "tableHeader".
func (r Role) String() string {
	if r < 0 || r >= roleCount {
		return fmt.Sprintf("role(%d)", int(r))
	}
	return roleNames[r]
}

// Label returns the human label shown next to the role's picker.
func (r Role) Label() string {
	if r < 0 || r >= roleCount {
		return r.String()
	}
	return roleLabels[r]
}

// ParseRole resolves a role key.
func ParseRole(name string) (Role, error) {
	for i, n := range roleNames {
		if n == name {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("unknown theme role %q", name)
}
