package testimonial

import "errors"

var ErrNotFound = errors.New("testimonial not found")
