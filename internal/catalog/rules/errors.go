// Package rules holds the entity lifecycle rule-set shared by all catalog
// entities: the failure taxonomy, pagination math and rating bounds. The
// per-entity packages apply these rules around their own SQL.
package rules

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// NameConflictError - another active record of the same entity type already
// holds the wanted name.
type NameConflictError struct {
	Entity string
	Name   string
}

func (e *NameConflictError) Error() string {
	return fmt.Sprintf("%s with name %q already exists", e.Entity, e.Name)
}

// InvalidReferenceError - one or more referenced ids point to missing or
// soft-deleted records.
type InvalidReferenceError struct {
	Entity     string
	MissingIDs []int
}

func (e *InvalidReferenceError) Error() string {
	if len(e.MissingIDs) == 0 {
		return fmt.Sprintf("one or more %ss do not exist or are deleted", e.Entity)
	}
	return fmt.Sprintf(
		"one or more %ss do not exist or are deleted: %s",
		e.Entity, JoinIDs(e.MissingIDs),
	)
}

// ValidationError - a request field failed basic validation.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// InvalidRatingError - score or totalRatings out of bounds.
type InvalidRatingError struct {
	Reason string
}

func (e *InvalidRatingError) Error() string {
	return e.Reason
}

// NotFoundError - the target record is missing or already soft-deleted.
// IDs is set by the find-by-ids operations and names the missing ids exactly.
type NotFoundError struct {
	Entity string
	ID     int
	IDs    []int
}

func (e *NotFoundError) Error() string {
	if len(e.IDs) > 0 {
		return fmt.Sprintf("%ss not found for ids: %s", e.Entity, JoinIDs(e.IDs))
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

// DependencyConflictError - active dependents block a soft delete.
type DependencyConflictError struct {
	Entity       string
	Dependent    string
	DependentIDs []int
}

func (e *DependencyConflictError) Error() string {
	return fmt.Sprintf(
		"cannot delete %s with associated %ss. affected %ss: %s",
		e.Entity, e.Dependent, e.Dependent, JoinIDs(e.DependentIDs),
	)
}

// HTTPStatus maps a rule failure to its response status. Unknown errors are
// internal store failures and map to 500.
func HTTPStatus(err error) int {
	var (
		nameConflict     *NameConflictError
		invalidReference *InvalidReferenceError
		invalidRating    *InvalidRatingError
		validation       *ValidationError
		notFound         *NotFoundError
		depConflict      *DependencyConflictError
	)
	switch {
	case errors.As(err, &nameConflict),
		errors.As(err, &invalidReference),
		errors.As(err, &invalidRating),
		errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &depConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message safe to surface to the caller. Rule
// errors arrive wrapped by the service layer, so the matched typed error is
// unwrapped and surfaced alone. Store errors and other unexpected failures
// are flattened to a generic message so no internals leak through the
// transport.
func PublicMessage(err error) string {
	var (
		nameConflict     *NameConflictError
		invalidReference *InvalidReferenceError
		invalidRating    *InvalidRatingError
		validation       *ValidationError
		notFound         *NotFoundError
		depConflict      *DependencyConflictError
	)
	switch {
	case errors.As(err, &nameConflict):
		return nameConflict.Error()
	case errors.As(err, &invalidReference):
		return invalidReference.Error()
	case errors.As(err, &invalidRating):
		return invalidRating.Error()
	case errors.As(err, &validation):
		return validation.Error()
	case errors.As(err, &notFound):
		return notFound.Error()
	case errors.As(err, &depConflict):
		return depConflict.Error()
	default:
		return "internal server error"
	}
}

func JoinIDs(ids []int) string {
	strs := make([]string, 0, len(ids))
	for _, id := range ids {
		strs = append(strs, strconv.Itoa(id))
	}
	return strings.Join(strs, ", ")
}

// MissingIDs returns the requested ids that are absent from found, preserving
// request order. Used by the reference validator and the find-by-ids
// operations to report exactly which ids failed.
func MissingIDs(requested, found []int) []int {
	foundSet := make(map[int]struct{}, len(found))
	for _, id := range found {
		foundSet[id] = struct{}{}
	}
	var missing []int
	for _, id := range requested {
		if _, ok := foundSet[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// DeletedName is the rename applied on soft delete, freeing the original
// name for reuse among active records.
func DeletedName(name string, id int) string {
	return fmt.Sprintf("%s_deleted_%d", name, id)
}
