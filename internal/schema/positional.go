package schema

// Position is a field name with its legacy declaration index.
// Negative indexes mark optional fields.
type Position struct {
	Name  string
	Index int
}

// Positional converts a legacy positional declaration into fields.
// A field is optional when its index is negative or it is the last one.
func Positional(positions ...Position) []Field {
	fields := make([]Field, len(positions))
	for i, p := range positions {
		fields[i] = Field{
			Name:     p.Name,
			Optional: p.Index < 0 || i == len(positions)-1,
		}
	}
	return fields
}

// At is shorthand for a Position literal.
func At(name string, index int) Position {
	return Position{Name: name, Index: index}
}
