package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

var (
	NanoidSize     = 12
	nanoidAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NanoIDSize generates a short random id, used to correlate request logs.
func NanoIDSize(size int) string {
	if size == 0 {
		size = NanoidSize
	}

	return gonanoid.MustGenerate(nanoidAlphabet, size)
}
