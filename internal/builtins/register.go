package builtins

// NewDefaultRegistry builds the registry wired with every builtin the
// language ships with out of the box.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register("print", builtinPrint, CategoryIO, "Writes its arguments concatenated, with no trailing newline.")
	r.Register("println", builtinPrintln, CategoryIO, "Writes its arguments space-separated, followed by a newline.")

	r.Register("len", builtinLen, CategoryArray, "Returns the length of a string, array, or hash.")
	r.Register("push", builtinPush, CategoryArray, "Returns a new array with a value appended.")
	r.Register("pop", builtinPop, CategoryArray, "Returns a new array with its last element removed.")
	r.Register("first", builtinFirst, CategoryArray, "Returns an array's first element.")
	r.Register("last", builtinLast, CategoryArray, "Returns an array's last element.")
	r.Register("rest", builtinRest, CategoryArray, "Returns a new array holding every element after the first.")

	r.Register("keys", builtinKeys, CategoryHash, "Returns a hash's keys as an array, in insertion order.")
	r.Register("values", builtinValues, CategoryHash, "Returns a hash's values as an array, in insertion order.")

	r.Register("upper", builtinUpper, CategoryString, "Returns an uppercased copy of a string.")
	r.Register("lower", builtinLower, CategoryString, "Returns a lowercased copy of a string.")
	r.Register("trim", builtinTrim, CategoryString, "Returns a copy of a string with leading/trailing whitespace removed.")
	r.Register("split", builtinSplit, CategoryString, "Splits a string on a separator, returning an array.")
	r.Register("join", builtinJoin, CategoryString, "Joins an array's elements with a separator into a string.")
	r.Register("contains", builtinContains, CategoryString, "Reports whether a string contains a substring.")

	r.Register("str", builtinStr, CategoryConversion, "Converts a value to its string representation.")
	r.Register("int", builtinInt, CategoryConversion, "Converts a float, string, or boolean to an integer.")
	r.Register("float", builtinFloat, CategoryConversion, "Converts an integer or string to a float.")
	r.Register("bool", builtinBool, CategoryConversion, "Converts a value to a boolean using the language's truthiness rule.")

	r.Register("typeOf", builtinTypeOf, CategoryType, "Returns the type name of a value.")

	return r
}
