// Package dateformat formats date-like values with a caller supplied pattern.
//
// Three pattern dialects are recognised:
//
//   - Unicode/CLDR style, as used by web form libraries: "yyyy-MM-dd",
//     "dd/MM/yy HH:mm", "EEEE, MMMM d". Text inside single quotes is copied
//     verbatim; two single quotes produce one.
//   - strftime, detected by a '%' directive: "%Y-%m-%d %H:%M". Formatting is
//     delegated to github.com/ncruces/go-strftime.
//   - Go reference layouts, detected by the "2006" year token: "2006-01-02".
//
// Values may be time.Time, *time.Time, strings in any layout understood by
// github.com/spf13/cast, or numbers interpreted as Unix milliseconds.
package dateformat
