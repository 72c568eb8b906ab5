package shared

import (
	"errors"
	"visitorpass/shared/constant"

	"github.com/lib/pq"
)

// PqErrorCode returns the SQLSTATE of a postgres error anywhere in the chain.
func PqErrorCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return ""
}

func IsUniqueViolation(err error) bool {
	return PqErrorCode(err) == constant.PqErrorCodeUniqueViolation
}

// IsCapacityExceeded reports errors raised by the slot capacity procedures or the counter check.
func IsCapacityExceeded(err error) bool {
	code := PqErrorCode(err)

	return code == constant.PqErrorCodeRaiseException || code == constant.PqErrorCodeCheckViolation
}
