// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// IdentityFieldEmail is the only identity field the server relies on.
const IdentityFieldEmail = "email"

// Identity is the decoded payload of a signed token. The server only needs
// the email; everything else the client sent at token issuance is carried
// along in Attributes.
type Identity struct {
	Email      string
	Attributes Attributes
}

// MarshalJSON renders the identity as a flat document.
func (i Identity) MarshalJSON() ([]byte, error) {
	return mergeDocument(map[string]any{IdentityFieldEmail: i.Email}, i.Attributes)
}

// UnmarshalJSON accepts any JSON object.
func (i *Identity) UnmarshalJSON(data []byte) error {
	fields, attrs, err := splitDocument(data, IdentityFieldEmail)
	if err != nil {
		return err
	}

	email, err := decodeString(fields[IdentityFieldEmail])
	if err != nil {
		return fmt.Errorf("%s: %w", IdentityFieldEmail, err)
	}

	*i = Identity{Email: email, Attributes: attrs}
	return nil
}
