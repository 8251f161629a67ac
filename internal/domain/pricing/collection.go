package pricing

import (
	"slices"
	"strings"
)

// Collection is an ordered, immutable snapshot of packages. Every mutation
// returns a new Collection; earlier snapshots are never modified.
type Collection struct {
	packages []Package
	// lastID is the highest id this collection lineage has ever issued.
	lastID int
}

// NewCollection builds a collection from packages, copying them.
func NewCollection(packages []Package) Collection {
	c := Collection{packages: make([]Package, len(packages))}
	for i, p := range packages {
		c.packages[i] = p.Clone()
		c.lastID = max(c.lastID, p.ID)
	}
	return c
}

// SeededCollection returns a collection holding SeedPackages.
func SeededCollection() Collection {
	return NewCollection(SeedPackages())
}

// Len returns the number of packages.
func (c Collection) Len() int {
	return len(c.packages)
}

// At returns a copy of the package at index.
func (c Collection) At(index int) (Package, bool) {
	if index < 0 || index >= len(c.packages) {
		return Package{}, false
	}
	return c.packages[index].Clone(), true
}

// Packages returns copies of all packages in display order.
func (c Collection) Packages() []Package {
	out := make([]Package, len(c.packages))
	for i, p := range c.packages {
		out[i] = p.Clone()
	}
	return out
}

// IndexOf resolves a package id to its current position.
func (c Collection) IndexOf(id int) (int, bool) {
	for i, p := range c.packages {
		if p.ID == id {
			return i, true
		}
	}
	return -1, false
}

// UpdateField commits raw into field of the package at index.
func (c Collection) UpdateField(index int, field Field, raw string) (Collection, error) {
	return c.modify(index, func(p Package) (Package, error) {
		return field.apply(p, raw)
	})
}

// AddFeature appends NewFeatureText to the package's features.
func (c Collection) AddFeature(index int) (Collection, error) {
	return c.modify(index, func(p Package) (Package, error) {
		p.Features = append(p.Features, NewFeatureText)
		return p, nil
	})
}

// UpdateFeature replaces one feature; blank text becomes FeaturePlaceholder.
func (c Collection) UpdateFeature(index, feature int, value string) (Collection, error) {
	return c.modify(index, func(p Package) (Package, error) {
		if feature < 0 || feature >= len(p.Features) {
			return p, indexError("feature", feature, len(p.Features))
		}
		if strings.TrimSpace(value) == "" {
			value = FeaturePlaceholder
		}
		p.Features[feature] = value
		return p, nil
	})
}

// DeleteFeature removes one feature, shifting later ones down.
func (c Collection) DeleteFeature(index, feature int) (Collection, error) {
	return c.modify(index, func(p Package) (Package, error) {
		if feature < 0 || feature >= len(p.Features) {
			return p, indexError("feature", feature, len(p.Features))
		}
		p.Features = slices.Delete(p.Features, feature, feature+1)
		return p, nil
	})
}

// AddPackage appends a placeholder package with a fresh id.
func (c Collection) AddPackage() (Collection, Package) {
	id := c.lastID
	for _, p := range c.packages {
		id = max(id, p.ID)
	}
	id++

	pkg := Package{
		ID:       id,
		Name:     newPackageName,
		Features: []string{newPackageFeature},
		Details:  newPackageDetails,
	}

	next := Collection{
		packages: append(slices.Clone(c.packages), pkg),
		lastID:   id,
	}
	return next, pkg.Clone()
}

// DeletePackage removes the package at index.
func (c Collection) DeletePackage(index int) (Collection, error) {
	if index < 0 || index >= len(c.packages) {
		return c, indexError("package", index, len(c.packages))
	}
	next := Collection{
		packages: slices.Delete(slices.Clone(c.packages), index, index+1),
		lastID:   c.lastID,
	}
	return next, nil
}

// modify runs fn on a private copy of one package and splices the result
// into a new collection.
func (c Collection) modify(index int, fn func(Package) (Package, error)) (Collection, error) {
	if index < 0 || index >= len(c.packages) {
		return c, indexError("package", index, len(c.packages))
	}

	updated, err := fn(c.packages[index].Clone())
	if err != nil {
		return c, err
	}

	packages := slices.Clone(c.packages)
	packages[index] = updated
	return Collection{packages: packages, lastID: c.lastID}, nil
}
