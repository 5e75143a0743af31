// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestTokenFile(t *testing.T) {
	is := is.New(t)
	f := tokenFile{path: filepath.Join(t.TempDir(), "nested", "token")}

	token, err := f.Load()
	is.NoErr(err)
	is.Equal(token, "") // nothing stored yet

	is.NoErr(f.Save("signed"))

	info, err := os.Stat(f.path)
	is.NoErr(err)
	is.Equal(info.Mode().Perm(), os.FileMode(0o600))

	token, err = f.Load()
	is.NoErr(err)
	is.Equal(token, "signed")

	is.NoErr(f.Clear())
	is.NoErr(f.Clear()) // clearing twice is fine

	token, err = f.Load()
	is.NoErr(err)
	is.Equal(token, "")
}
