package ports

//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks

// Renderer prints human readable reports to the operator.
type Renderer interface {
	// Banner prints a framed title line.
	Banner(title string)
	// Step announces pipeline step index of total.
	Step(index, total int, title string)
	// Heading opens a titled section.
	Heading(title string)
	// Field prints a labelled value.
	Field(label, value string)
	// Item prints a bullet entry.
	Item(text string)
	// Success prints a positive outcome.
	Success(msg string)
	// Note prints a dimmed hint.
	Note(msg string)
}
