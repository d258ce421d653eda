package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors shared across repository implementations
var (
	ErrMemberNotFound = goerr.New("member not found")
	ErrScoreNotFound  = goerr.New("location average not found")
)

// Error taxonomy tags. Config, network and protocol failures are fatal for
// a run and abort it before any archive sweep. Record and asset failures
// are logged and the run continues.
var (
	ErrTagConfig   = goerr.NewTag("config")
	ErrTagNetwork  = goerr.NewTag("network")
	ErrTagProtocol = goerr.NewTag("protocol")
	ErrTagRecord   = goerr.NewTag("record")
	ErrTagAsset    = goerr.NewTag("asset")
)
