package validator

// Min: min:x. Non-numeric values fail.
func Min(value any, params ...string) bool {
	f, ok := toFloat(value)
	return ok && f >= atof(params[0])
}

// Max: max:x. Non-numeric values fail.
func Max(value any, params ...string) bool {
	f, ok := toFloat(value)
	return ok && f <= atof(params[0])
}

// Between: between:a:b, inclusive.
func Between(value any, params ...string) bool {
	f, ok := toFloat(value)
	return ok && f >= atof(params[0]) && f <= atof(params[1])
}
