package store

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
)

// Checksum returns the MD5 of the collection's canonical encoding. Keys are
// sorted by encoding/json, so equal collections always hash equally.
func Checksum(c Collection) (string, error) {
	if c == nil {
		c = Collection{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:]), nil
}
