package uischema

import (
	"embed"
	"io/fs"
)

//go:embed ui/schema/*
var embeddedSchema embed.FS

// DefaultFile is the name of the bundled hints file inside EmbeddedFS.
const DefaultFile = "signup.yaml"

// EmbeddedFS returns the bundled UI schema assets.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedSchema, "ui/schema")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// Default returns the bundled hints.
func Default() *Form {
	form, err := LoadFS(EmbeddedFS(), DefaultFile)
	if err != nil {
		panic(err)
	}
	return form
}
