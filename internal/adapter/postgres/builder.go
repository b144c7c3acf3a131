package postgres

import "github.com/Masterminds/squirrel"

// Builder is the squirrel statement builder for PostgreSQL ($n placeholders).
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// TouchUpdatedAt is the SET expression every mutation uses for updated_at.
// It keeps updated_at strictly increasing even when two writes land within
// the same clock tick.
const TouchUpdatedAt = "GREATEST(now(), updated_at + interval '1 microsecond')"
