package game

import "errors"

var ErrGameNotFound = errors.New("game not found")

var ErrGameNotActive = errors.New("game is not active")

// ErrMatchFull rejects an accept that would push the roster past
// maxPlayers. The game state is left unchanged.
var ErrMatchFull = errors.New("game is already full")

var ErrDuplicateRequest = errors.New("join request already sent")

var ErrRequestNotFound = errors.New("join request not found")

var ErrNotAllowed = errors.New("not allowed to perform this operation")

var ErrInvalidWindow = errors.New("game end time must be after start time")

var ErrInvalidCapacity = errors.New("max players must be between 1 and 50")

var ErrInvalidVisibility = errors.New("visibility must be public or private")

var ErrOutsideOpeningHours = errors.New("game window is outside venue opening hours")
