package records

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// wrapStoreErr annotates a DynamoDB failure with its service error code when
// one is available, so handler logs stay actionable while the HTTP response
// carries only a generic message.
func wrapStoreErr(op string, err error) error {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		return fmt.Errorf("%s: %s: %w", op, ae.ErrorCode(), err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
