package pricing

import "slices"

const (
	// NewFeatureText is appended by AddFeature.
	NewFeatureText = "New Feature"
	// FeaturePlaceholder replaces a feature committed as blank text.
	FeaturePlaceholder = "Feature"

	newPackageName    = "New Package"
	newPackageFeature = "Editable Feature"
	newPackageDetails = "Data and minutes info"
)

// Package is one sellable plan shown as a table row.
type Package struct {
	ID        int
	Name      string
	Features  []string
	Details   string
	Price     float64
	SellPrice float64
}

// Clone returns a copy that shares no memory with p.
func (p Package) Clone() Package {
	p.Features = slices.Clone(p.Features)
	return p
}

// SeedPackages returns the package set every new table starts with.
func SeedPackages() []Package {
	return []Package{
		{ID: 1, Name: "Solo74", Features: []string{"Social Media", "Free Calls"}, Details: "20+20GB/450 Local Min(1M)", Price: 50, SellPrice: 60},
		{ID: 2, Name: "Solo99", Features: []string{"Unlimited Social", "100 Int Mins"}, Details: "35+UNL/1000 Local Min(1M)", Price: 62, SellPrice: 74},
		{ID: 3, Name: "Solo149", Features: []string{"Unlimited Social", "Free Roaming"}, Details: "59+UNL/ UNL Local Min(1M)", Price: 90, SellPrice: 108},
		{ID: 4, Name: "Solo179", Features: []string{"UNL Social", "UNL Roaming", "Free Device"}, Details: "79+UNL/UNL Local Min(1M)", Price: 110, SellPrice: 132},
		{ID: 5, Name: "Solo199", Features: []string{"Premium Access", "Intl. Calls"}, Details: "80+UNL/1800 Local Min(1M)", Price: 120, SellPrice: 144},
		{ID: 6, Name: "Solo iNfinity", Features: []string{"Truly Unlimited", "VIP Support"}, Details: "UNL Data+MiN+SMS (1M)", Price: 210, SellPrice: 252},
		{ID: 7, Name: "Solo160", Features: []string{"2-Month Contract", "5G Speed"}, Details: "50+UNL/1000 Local Min(2M)", Price: 98, SellPrice: 118},
		{ID: 8, Name: "Solo240", Features: []string{"3-Month Contract", "Extra Data"}, Details: "90+UNL/1000 Local Min(3M)", Price: 142, SellPrice: 170},
		{ID: 9, Name: "Solo340", Features: []string{"4-Month Contract", "Family Share"}, Details: "135+UNL/1500 Local Min(4M)", Price: 208, SellPrice: 250},
	}
}
