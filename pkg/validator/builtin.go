package validator

import "mime/multipart"

// NewStandard returns a registry with the scalar predicates.
func NewStandard() *Registry {
	none := Arity(0, 0)
	one := Arity(1, 1)

	return NewRegistry(StandardRegistry).
		Register("required", Required, none).
		Register("empty", Empty, none).
		Register("checked", Checked, none).
		Register("minLength", MinLength, one, IntParams()).
		Register("maxLength", MaxLength, one, IntParams()).
		Register("length", Length, Arity(1, 2), IntParams()).
		Register("min", Min, one, FloatParams()).
		Register("max", Max, one, FloatParams()).
		Register("between", Between, Arity(2, 2), FloatParams()).
		Register("numeric", Numeric, none).
		Register("integer", Integer, none).
		Register("boolean", Boolean, none).
		Register("alpha", Alpha, none).
		Register("alphanumeric", Alphanumeric, none).
		Register("email", Email, none).
		Register("url", URL, Arity(0, -1)).
		Register("phone", Phone, none).
		Register("ip", IP, none).
		Register("ipv4", IPv4, none).
		Register("ipv6", IPv6, none).
		Register("uuid", UUID, Arity(0, 1), IntParams()).
		Register("slug", Slug, none).
		Register("matches", Matches, one, RegexpParam()).
		Register("in", In, Arity(1, -1)).
		Register("notIn", NotIn, Arity(1, -1)).
		Register("inFold", InFold, Arity(1, -1)).
		Register("equals", Equals, one).
		Register("contains", Contains, one).
		Register("startsWith", StartsWith, one).
		Register("endsWith", EndsWith, one)
}

// NewFile returns a registry with the upload predicates.
func NewFile() *Registry {
	none := Arity(0, 0)
	one := Arity(1, 1)

	return NewRegistry(FileRegistry).
		Register("required", FileRequired, none).
		Register("minFiles", MinFiles, one, IntParams()).
		Register("maxFiles", MaxFiles, one, IntParams()).
		Register("minSize", MinSize, one, SizeParams()).
		Register("maxSize", MaxSize, one, SizeParams()).
		Register("accept", Accept, Arity(1, -1)).
		Register("extension", Extension, Arity(1, -1)).
		Register("image", Image, none).
		Register("video", Video, none).
		Register("audio", Audio, none).
		Register("pdf", PDF, none)
}

func allFiles(value any, pred func(*multipart.FileHeader) bool) bool {
	for _, fh := range toFiles(value) {
		if !pred(fh) {
			return false
		}
	}
	return true
}
