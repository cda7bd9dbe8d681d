package code

import (
	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash returns a fingerprint of data
func Hash(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}

// Fingerprint returns a fingerprint of the canonical serialized form of model.
// Models equal field for field share a fingerprint regardless of how they were read.
func Fingerprint(model *SourceModel) (uint64, error) {
	data, err := Marshal(model, WithIndent(""), WithHeader(false))
	if err != nil {
		return 0, err
	}
	return Hash(data)
}
