package domain

import "regexp"

// EnsureOwnedBy fails when the acting customer does not own the resource.
// Ownership is always checked against the owning customer id carried by the
// customer or service request; sub-resources have no owner field of their
// own.
func EnsureOwnedBy(ownerID, actorID uint) error {
	if ownerID != actorID {
		return ErrForbidden
	}
	return nil
}

// EnsureServiceType hides a service's sub-collections behind the wrong type.
// Repairs are only reachable under a repair-type request and items under a
// sale-type request; a mismatch reads as the service not existing in that
// URL space rather than as a permission problem.
func EnsureServiceType(s *ServiceRequest, want ServiceType) error {
	if s.Type != want {
		return NotFound("service request", s.ID)
	}
	return nil
}

// Allows the usual local@domain.tld shape; no attempt at full RFC coverage.
var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidEmail checks basic email syntax.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}
