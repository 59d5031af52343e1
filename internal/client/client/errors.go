package client

import "errors"

var ErrGenerationFailed = errors.New("generation failed")
