package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/greenpath/internal/common"
)

// report prints a user-facing message for err and logs it. It returns err
// so handlers can end with `return a.report(ctx, err)`.
func (a *App) report(ctx context.Context, err error) error {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		fields := make([]string, 0, len(ve.Fields))
		for f := range ve.Fields {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			fmt.Fprintf(a.out, "  %s: %s\n", f, ve.Fields[f])
		}
		return err
	case errors.Is(err, common.ErrInvalidCredentials):
		fmt.Fprintln(a.out, "Invalid email or password.")
	case errors.Is(err, common.ErrEmailAlreadyExists):
		fmt.Fprintln(a.out, "This email address is already registered.")
	case errors.Is(err, common.ErrNoActiveUser):
		fmt.Fprintln(a.out, "Please log in or sign up first.")
	case errors.Is(err, common.ErrSetupIncomplete):
		fmt.Fprintln(a.out, "Please complete your profile setup first. Type 'location' to do it now.")
	case errors.Is(err, common.ErrExternalService):
		fmt.Fprintln(a.out, "The AI advisor is unavailable. Please try again later.")
	case errors.Is(err, common.ErrCorruptPersistedState):
		fmt.Fprintln(a.out, "Local data is damaged and could not be read.")
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
	a.log.Warn(ctx, "command failed", "error", err)
	return err
}
