package pricing

// Deletion is the single-slot guard for the two-step package delete. The
// zero value is idle.
type Deletion struct {
	id      int
	pending bool
}

// Initiate marks the package with id as awaiting confirmation, replacing
// any earlier pending request.
func (d Deletion) Initiate(id int) Deletion {
	return Deletion{id: id, pending: true}
}

// Pending returns the id awaiting confirmation.
func (d Deletion) Pending() (int, bool) {
	return d.id, d.pending
}

// Blocks reports whether edits to the package with id are locked.
func (d Deletion) Blocks(id int) bool {
	return d.pending && d.id == id
}

// Cancel drops the pending request.
func (d Deletion) Cancel() Deletion {
	return Deletion{}
}

// Confirm removes the pending package from packages and returns to idle.
// The id is resolved to a position only now, so structural edits made
// while the request was pending cannot redirect the delete. A package that
// no longer exists leaves packages unchanged.
func (d Deletion) Confirm(packages Collection) (Collection, Deletion, error) {
	if !d.pending {
		return packages, Deletion{}, nil
	}

	index, ok := packages.IndexOf(d.id)
	if !ok {
		return packages, Deletion{}, nil
	}

	next, err := packages.DeletePackage(index)
	if err != nil {
		return packages, d, err
	}
	return next, Deletion{}, nil
}
