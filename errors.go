package immut

import "github.com/zeebo/errs"

// Error is the class of every contract violation raised by this package. These
// are programmer errors: they are delivered by panic and never returned.
var Error = errs.Class("immut")
