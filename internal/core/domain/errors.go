package domain

import "errors"

// Error kinds returned by the lifecycle engine. Every failing operation
// returns one of these (possibly wrapped) and leaves the ledgers unchanged.
var (
	ErrNotFound                = errors.New("not found")
	ErrDuplicateApplication    = errors.New("duplicate application")
	ErrInvalidTransition       = errors.New("invalid transition")
	ErrIncompleteDeliverables  = errors.New("incomplete deliverables")
	ErrCollaborationNotStarted = errors.New("collaboration not started")
	ErrNotUnderReview          = errors.New("collaboration not under review")
	ErrOutOfOrderRelease       = errors.New("out of order escrow release")
	ErrEscrowNotReleased       = errors.New("escrow not released")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrInvalidInput            = errors.New("invalid input")
	ErrCampaignClosed          = errors.New("campaign not accepting applications")
)
