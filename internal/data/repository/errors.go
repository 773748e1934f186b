package repository

import "errors"

// ErrNotFound is returned by mutating methods when the target row does not
// exist. Find methods return (nil, nil) on no rows, matching the pgx
// ErrNoRows translation used across repositories.
var ErrNotFound = errors.New("record not found")
