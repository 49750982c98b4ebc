// Package storage provides the client-local key-value storage that holds the
// serialized memo collection and the session token.
//
// Two backends implement Repository: SQLiteRepository (a single "storage"
// table in the local database, the default) and S3Repository (one object per
// key in an S3-compatible bucket). Absent keys read as (nil, nil).
package storage
