package ports

import "context"

// ImageLibrary lists the decorative images available for a session.
type ImageLibrary interface {
	List(ctx context.Context) ([]string, error)
}
