package ports

// DocumentStore persists JSON documents at fixed paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type DocumentStore interface {
	// Put serializes v with two-space indentation and overwrites the file at path,
	// creating parent directories as needed.
	Put(path string, v any) error

	// Get decodes the file at path into v.
	Get(path string, v any) error
}
