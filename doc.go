// Package formkit provides helpers for the routine chores of server-side form
// handling: attaching and removing validators in bulk, patching values,
// adding and removing fields, cross-field matching, and turning a form's
// value into a submission payload.
//
// Every helper operates on a form.Form (see package pkg/form) and targets
// fields by name. Names that are not present are skipped silently; a bad
// entry in a bulk call never stops the remaining entries from being applied.
//
// # Usage
//
//	svc := formkit.New(formkit.WithLogger(log))
//
//	signup := svc.InitializeForm([]formkit.Field{
//	    {Name: "email", Validations: []validator.Validator{validator.Required(), validator.Email()}},
//	    {Name: "password"},
//	    {Name: "confirm"},
//	    {Name: "birthday"},
//	})
//
//	svc.PatchFormValues(signup, data)
//	svc.MatchFields(signup, "password", "confirm")
//
//	payload, err := svc.Submit(signup, []formkit.Field{
//	    {Name: "confirm", FormatType: formkit.FormatRemove},
//	    {Name: "birthday", FormatType: formkit.FormatDate, DateFormat: "yyyy-MM-dd"},
//	})
//
// Mutating and payload helpers are methods on Service, which carries the
// logger and the date formatter. Read-only inspection helpers
// (FieldErrorMessage, IsValidWithMarks, IsFormValid, FieldErrorMap) are plain
// functions.
//
// # Configuration
//
// LoadConfig reads FORMKIT_* environment variables (and optional .env files);
// NewFromConfig turns the result into a ready Service with a structured
// logger and a date formatter bound to the configured time zone.
//
// # Error Handling
//
// Only payload formatting and decoding can fail. Date formatting failures
// wrap ErrDateFormat, decoding failures wrap ErrDecodePayload, and Submit
// returns validator.ValidationErrors for an invalid form.
package formkit
