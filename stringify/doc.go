// Package stringify converts single values into their canonical string form.
//
// Only a fixed set of types is recognised. Everything else, including numbers,
// booleans, nil and strings, is returned unchanged:
//
//	+----------------------------------+-----------------------------------+
//	| Value                            | Result                            |
//	+==================================+===================================+
//	| uuid.UUID                        | u.String()                        |
//	+----------------------------------+-----------------------------------+
//	| Timestamp (e.g. time.Time)       | 2006-01-02T15:04:05.000000-0700   |
//	+----------------------------------+-----------------------------------+
//	| Timestamp reporting Naive()      | 2006-01-02T15:04:05.000000        |
//	+----------------------------------+-----------------------------------+
//	| *bytes.Reader, *io.SectionReader | full content, decoded as UTF-8    |
//	+----------------------------------+-----------------------------------+
//	| *bytes.Buffer                    | buffer content, decoded as UTF-8  |
//	+----------------------------------+-----------------------------------+
//	| []byte                           | decoded as UTF-8                  |
//	+----------------------------------+-----------------------------------+
//
// Rules are evaluated top to bottom and the first match wins. Only the
// timestamp rule matches by capability; the other rules match concrete
// types, so numbers like *big.Int are never mistaken for byte buffers.
// Byte content that is not valid UTF-8 yields a *DecodeError.
package stringify
