package seller

import _ "embed"

// Schema holds the bootstrap SQL applied by the service at startup.
//
//go:embed schema.sql
var Schema string
