// Package validator provides control validators and the error types they
// report.
//
// A Validator is a function of the control value returning a Rule: a Check
// func plus the ValidationError recorded when the check fails. The error's
// Code is the key a form control stores the failure under.
//
// # Built-in validators
//
//   - Required, RequiredTrue
//   - MinLength, MaxLength
//   - Pattern, CompilePattern
//   - Min, Max (any Numeric bound; values are coerced with spf13/cast)
//   - Email
//
// Apart from Required and RequiredTrue, validators let empty values pass so
// that optional fields only fail once the user types something.
//
// # Usage
//
//	errs := validator.Run("ab", validator.Required(), validator.MinLength(3))
//	for _, e := range errs {
//	    fmt.Println(e.Code, e.TranslationValues["requiredLength"])
//	}
//
// Rules can also be evaluated directly with Apply, which returns
// ValidationErrors as an error:
//
//	err := validator.Apply(rules...)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // inspect verrs.Fields(), verrs.Codes(field)
//	}
//
// Label turns a field name such as "first_name" or "firstName" into a
// human-readable label ("First Name") for messages.
package validator
