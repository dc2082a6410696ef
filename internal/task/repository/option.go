package repository

// FileOptions configures the flat-file repository.
type FileOptions struct {
	Path string // e.g. "tasks.txt"
}
