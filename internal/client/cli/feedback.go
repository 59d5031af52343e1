package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/greenpath/internal/client/services"
)

// Feedback collects a name (defaulting to the display name) and a message.
func (a *App) Feedback(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Your name (Enter to use your profile name)", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		if u, ok := a.session.User(); ok {
			name = u.DisplayName
		}
	}

	message, err := GetMultiline(a.reader, "Your message", a.out)
	if err != nil {
		return err
	}

	if _, err := a.feedbackService.Submit(ctx, services.FeedbackForm{Name: name, Message: message}); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, "Thank you for your feedback!")
	return nil
}

func (a *App) ListFeedback(ctx context.Context) error {
	all, err := a.feedbackService.List(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	if len(all) == 0 {
		fmt.Fprintln(a.out, "No feedback yet.")
		return nil
	}
	for _, fb := range all {
		fmt.Fprintf(a.out, "[%s] %s <%s>\n  %s\n", fb.Date, fb.Name, fb.UserEmail, fb.Message)
	}
	return nil
}
