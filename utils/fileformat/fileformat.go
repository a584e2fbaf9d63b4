package fileformat

import (
	"path"

	"github.com/twinj/uuid"
)

// UniqueFormat builds a collision-free object key from an uploaded file
// name, keeping the original extension.
func UniqueFormat(fileName string) string {
	return uuid.NewV4().String() + path.Ext(fileName)
}
