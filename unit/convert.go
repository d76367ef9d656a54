package unit

// CategoryOf returns the category of a unit type without needing a value.
func CategoryOf[U Unit]() Category {
	var zero U
	return zero.Category()
}

// Standard returns the standard unit of U's category.
func Standard[U Unit]() U {
	return U(CategoryOf[U]().Standard())
}

// Convert converts a value between two units of the same category, by way of
// the category's standard unit. Converting a unit to itself is the exact
// identity. Intermediate arithmetic is performed in float64 regardless of T.
func Convert[U Unit, T Float](value T, from, to U) T {
	if from == to {
		return value
	}
	return T(from.Category().Convert(float64(value), int(from), int(to)))
}

// ToStandard converts a value expressed in from into the standard unit.
func ToStandard[U Unit, T Float](value T, from U) T {
	return Convert(value, from, Standard[U]())
}

// FromStandard converts a value expressed in the standard unit into to.
func FromStandard[U Unit, T Float](value T, to U) T {
	return Convert(value, Standard[U](), to)
}

// Abbreviation returns the fixed display string of a unit, e.g. "kPa".
func Abbreviation[U Unit](u U) string {
	return u.Category().Abbreviation(int(u))
}

// Spellings returns the text tokens recognized for a unit.
func Spellings[U Unit](u U) []string {
	return u.Category().Spellings(int(u))
}

// Parse resolves a unit of type U from one of its recognized spellings,
// matched case-sensitively. Unknown spellings yield an error carrying
// did-you-mean suggestions.
func Parse[U Unit](text string) (U, error) {
	i, err := CategoryOf[U]().Parse(text)
	if err != nil {
		var zero U
		return zero, err
	}
	return U(i), nil
}
