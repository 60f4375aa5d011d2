// Package formdef loads declarative form definitions from YAML or JSON.
//
// A definition lists fields with their initial values, validation rules,
// payload format and mapped source key:
//
//	name: signup
//	fields:
//	  - name: email
//	    validations:
//	      - rule: required
//	      - rule: email
//	  - name: password
//	  - name: confirm
//	    match: password
//	  - name: age
//	    default: 18
//	    format: number
//	    validations:
//	      - rule: min
//	        value: 18
//	  - name: born
//	    format: date
//	    date_format: dd.MM.yyyy
//	    mapped_key: birth_date
//
// Fields with a match key are compared with their target by
// Definition.MatchFields once values are patched.
//
// Rules are resolved through a Registry. DefaultRegistry knows required,
// requiredTrue, email, minLength, maxLength, min, max and pattern; custom
// rules are added with Registry.Register.
package formdef
