package decimal

import "github.com/zeebo/errs"

// Error is the class for malformed decimal text.
var Error = errs.Class("decimal")
