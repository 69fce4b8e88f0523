package client

import "errors"

var (
	ErrKEStage  = errors.New("key establishment stage")
	ErrNTPStage = errors.New("time synchronization stage")
)
