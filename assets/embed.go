package assets

import "embed"

// QuotesDir is the directory inside FS holding the quote collections.
const QuotesDir = "quotes"

//go:embed quotes/*.json
var FS embed.FS
