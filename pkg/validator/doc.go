// Package validator provides string-keyed registries of validation predicates
// and the built-in predicate sets used by formkit forms.
//
// A predicate is a pure Func that receives a field value and the string
// parameters written in a rule string ("minLength:3" calls the "minLength"
// predicate with params ["3"]) and reports whether the value passes.
// Predicates never produce messages; message selection belongs to the form.
//
// Two registries ship with the package:
//
//   - NewStandard – scalar predicates for text, checkbox and other inputs
//     (required, email, minLength, between, uuid, matches, in, ...).
//   - NewFile – predicates over uploaded files (maxSize, accept, image, ...).
//
// Registries are plain values; extend a builtin set or build your own:
//
//	reg := validator.NewStandard().
//	    Register("even", isEven, validator.Arity(0, 0))
//
// # Parameter checks
//
// Every entry may declare ParamCheck functions (Arity, IntParams, FloatParams,
// SizeParams, RegexpParam). Compilers call Registry.Check once per rule, so a
// rule such as "minLength:abc" is rejected when the form is assembled, not
// when a user starts typing.
//
// # Value conversion
//
// Standard predicates accept any value and convert it: strings as is,
// numbers and booleans through strconv, fmt.Stringer through String. File
// predicates accept []*multipart.FileHeader or a single *multipart.FileHeader.
// File predicates other than "required" and "minFiles" pass on an empty
// collection, so presence and shape are checked independently.
package validator
