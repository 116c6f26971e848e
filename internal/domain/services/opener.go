package services

// PathOpener invokes the host OS's default file/directory opener.
// Failure is reported to the user, never fatal.
type PathOpener interface {
	Open(path string) error
}
