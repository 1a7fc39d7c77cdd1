package domain

// Course is the canonical representation of one course inside this service.
// The loader materializes into this model, and all destinations (console,
// CSV, XML) render from this model.
type Course struct {
	Number        string   // normalized course number, e.g. "CS200"
	Title         string   // display title, e.g. "Data Structures"
	Prerequisites []string // normalized course numbers, in declaration order
}
