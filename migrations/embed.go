package migrations

import "embed"

// Files holds the versioned SQL migrations, applied in file name order.
//
//go:embed *.sql
var Files embed.FS
