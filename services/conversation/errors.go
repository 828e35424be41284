package conversation

import "errors"

// ErrNoDeals is the defined best-deal outcome when fewer matches than the
// target were collected across the page budget. It is a business result,
// not a transport failure, and is surfaced to the user as "not found".
var ErrNoDeals = errors.New("no hotels matched the distance window")
