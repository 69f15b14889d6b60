package domain

import "io"

// Upload is a file received from a client, before it is normalised and stored.
type Upload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}
