// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// InsertResult acknowledges a stored document.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult describes the outcome of a book update. ModifiedCount is 0
// when the stored fields already held the submitted values.
//
// When the identifier matched nothing a new document is created:
// MatchedCount is 0, UpsertedCount is 1 and UpsertedID holds the identifier.
type UpdateResult struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedCount int64   `json:"upsertedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

// DeleteResult acknowledges a delete. DeletedCount is 0 when nothing matched.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// SuccessResponse is the body of token issuance and logout responses.
type SuccessResponse struct {
	Success bool `json:"success"`
}
