// Package theme holds the table's color roles and the rules for changing
// them by hand, by reset, or from a generated suggestion.
package theme

// Colors maps every role to a color value. Values are stored verbatim; the
// editor constrains what users can type.
type Colors struct {
	Primary           string `yaml:"primary,omitempty" json:"primary"`
	TableHeader       string `yaml:"tableHeader,omitempty" json:"tableHeader"`
	HeaderText        string `yaml:"headerText,omitempty" json:"headerText"`
	PriceText         string `yaml:"priceText,omitempty" json:"priceText"`
	TableGradientFrom string `yaml:"tableGradientFrom,omitempty" json:"tableGradientFrom"`
	TableGradientVia  string `yaml:"tableGradientVia,omitempty" json:"tableGradientVia"`
	TableGradientTo   string `yaml:"tableGradientTo,omitempty" json:"tableGradientTo"`
	PackageText       string `yaml:"packageText,omitempty" json:"packageText"`
	DetailsText       string `yaml:"detailsText,omitempty" json:"detailsText"`
}

// Defaults returns the fixed default theme.
func Defaults() Colors {
	return Colors{
		Primary:           "#16a34a",
		TableHeader:       "#2563eb",
		HeaderText:        "#ffffff",
		PriceText:         "#0d9488",
		TableGradientFrom: "#f0fdf4",
		TableGradientVia:  "#eff6ff",
		TableGradientTo:   "#f5f3ff",
		PackageText:       "#1f2937",
		DetailsText:       "#4b5563",
	}
}

// Get returns the value stored for role.
func (c Colors) Get(role Role) string {
	if p := c.slot(role); p != nil {
		return *p
	}
	return ""
}

// With returns a copy of c with role set to value.
func (c Colors) With(role Role, value string) Colors {
	if p := c.slot(role); p != nil {
		*p = value
	}
	return c
}

// Overlay returns c with every non-empty role of overrides applied.
func (c Colors) Overlay(overrides Colors) Colors {
	for _, role := range Roles() {
		if v := overrides.Get(role); v != "" {
			c = c.With(role, v)
		}
	}
	return c
}

func (c *Colors) slot(role Role) *string {
	switch role {
	case RolePrimary:
		return &c.Primary
	case RoleTableHeader:
		return &c.TableHeader
	case RoleHeaderText:
		return &c.HeaderText
	case RolePriceText:
		return &c.PriceText
	case RoleTableGradientFrom:
		return &c.TableGradientFrom
	case RoleTableGradientVia:
		return &c.TableGradientVia
	case RoleTableGradientTo:
		return &c.TableGradientTo
	case RolePackageText:
		return &c.PackageText
	case RoleDetailsText:
		return &c.DetailsText
	default:
		return nil
	}
}
