// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	a, b := g.Generate(), g.Generate()
	if a == b {
		t.Fatal("expected distinct identifiers")
	}
	if _, err := ParseID(a); err != nil {
		t.Errorf("generated id must parse: %v", err)
	}
}

func TestParseID(t *testing.T) {
	upper := "0191F0C8-0000-7000-8000-000000000001"

	got, err := ParseID(upper)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if got != strings.ToLower(upper) {
		t.Errorf("expected canonical lower-case id, got %s", got)
	}

	for _, bad := range []string{"", "123", "66f1c2b7e4b0a1a2b3c4d5e6"} {
		if _, err := ParseID(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
