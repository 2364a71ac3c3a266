package store

// Blob is the opaque string-keyed byte store underneath the gateway. The
// gateway owns what keys map to what serialized shapes; the blob store is
// just get/set/remove. *diskv.Diskv satisfies this directly.
type Blob interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
	Erase(key string) error
	Has(key string) bool
}
