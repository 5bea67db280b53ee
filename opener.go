package mediumreader

// Opener hands a saved file to the host's default handler for its type.
// Failure to open is non-fatal and must be reported without aborting the
// save.
type Opener interface {
	Open(path string) error
}
