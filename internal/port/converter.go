package port

import "context"

// AudioConverter normalises an input asset to the standard mono AAC format.
// Convert returns the path of the converted file inside the converter's
// working directory; the caller owns persisting it to durable storage.
type AudioConverter interface {
	Convert(ctx context.Context, sourcePath string) (string, error)
}
