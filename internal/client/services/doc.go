// Package services contains the application services behind the GreenPath
// CLI: sign-up and login, location setup, the heat-risk dashboard and
// reports, and feedback.
//
// Services validate user input (returning *common.ValidationError with one
// message per field), persist through the profile store, and keep the
// in-memory session in step with what was persisted. Writes that the user
// triggers go through a Pacer so the CLI shows a short pause before they
// apply.
package services
