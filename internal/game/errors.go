package game

// Kind classifies a game error so the transport layer can map it without
// matching on individual sentinels. Every failure a caller can trigger is
// one of these; none is fatal to the process.
type Kind int

const (
	KindNotFound Kind = iota
	KindForbidden
	KindInvalidState
	KindValidation
	KindInvalidSelection
)

// Error is a caller-correctable game rule violation.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }

// KindOf returns the kind of a game error, or KindInvalidState for
// anything unclassified.
func KindOf(err error) Kind {
	if ge, ok := err.(*Error); ok {
		return ge.Kind
	}
	return KindInvalidState
}

var (
	ErrRoomNotFound   = &Error{KindNotFound, "room not found"}
	ErrPlayerNotFound = &Error{KindNotFound, "player not found in room"}
	ErrNoCurrentRound = &Error{KindNotFound, "no round in progress"}

	ErrNotHost         = &Error{KindForbidden, "only the host can do that"}
	ErrNotJudge        = &Error{KindForbidden, "only the judge can select the winning play"}
	ErrJudgeCannotPlay = &Error{KindForbidden, "judge cannot play cards"}

	ErrRoomFull          = &Error{KindInvalidState, "room is full"}
	ErrGameInProgress    = &Error{KindInvalidState, "game already in progress"}
	ErrGameAlreadyActive = &Error{KindInvalidState, "game already started"}
	ErrNotEnoughPlayers  = &Error{KindInvalidState, "need at least 3 players to start"}
	ErrGameNotFinished   = &Error{KindInvalidState, "can only restart finished games"}
	ErrGameFinished      = &Error{KindInvalidState, "game is finished"}
	ErrNotAcceptingPlays = &Error{KindInvalidState, "not accepting plays right now"}
	ErrNotJudgingPhase   = &Error{KindInvalidState, "not in judging phase"}
	ErrRoundNotReady     = &Error{KindInvalidState, "round not ready to advance"}

	ErrNameInvalid    = &Error{KindValidation, "player name must be 1-20 characters"}
	ErrRoomNameEmpty  = &Error{KindValidation, "room name is required"}
	ErrNameTaken      = &Error{KindValidation, "player name already taken"}
	ErrAlreadyPlayed  = &Error{KindValidation, "already played this round"}
	ErrWrongCardCount = &Error{KindValidation, "wrong number of cards for this prompt"}
	ErrCardNotInHand  = &Error{KindValidation, "card is not in your hand"}

	ErrInvalidPlaySelection = &Error{KindInvalidSelection, "invalid play selection"}
)
