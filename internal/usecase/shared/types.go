package shared

import (
	"daycare-waitlist/internal/infra"
	"daycare-waitlist/internal/pkg/errs"
)

// TranslateNotFound maps a repository miss to the NotFound taxonomy with a specific message,
// and passes every other error through.
func TranslateNotFound(err error, what string) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Markf(errs.ErrNotFound, "%s not found", what)
	}
	return err
}
