package ports

// ConfigLocator finds the directory holding bashy.yaml, starting from an arbitrary directory.
type ConfigLocator interface {
	FindRoot(startDir string) (string, error)
	Path(root string) string
}
