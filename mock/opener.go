package mock

import mediumreader "github.com/abdukarimovhm/medium-reader"

var _ mediumreader.Opener = (*Opener)(nil)

// Opener is a mock implementation of mediumreader.Opener.
type Opener struct {
	OpenFn func(path string) error
}

func (o *Opener) Open(path string) error {
	return o.OpenFn(path)
}
