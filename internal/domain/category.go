package domain

// Category is a named group of questions, unique by name
type Category struct {
	ID   int
	Name string
}
