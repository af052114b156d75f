package game

import "fmt"

// TargetFace is the target id used to attack the enemy hero directly.
const TargetFace = "face"

// IntentKind identifies the kind of state change an intent requests.
type IntentKind int

const (
	IntentPlayCard IntentKind = iota
	IntentAttack
	IntentEndTurn
	IntentConcede
	IntentMulligan
	IntentKeepHand
)

var intentKindNames = map[IntentKind]string{
	IntentPlayCard: "PLAY_CARD",
	IntentAttack:   "ATTACK",
	IntentEndTurn:  "END_TURN",
	IntentConcede:  "CONCEDE",
	IntentMulligan: "MULLIGAN",
	IntentKeepHand: "KEEP_HAND",
}

func (k IntentKind) String() string {
	if name, ok := intentKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("INTENT_%d", int(k))
}

// Intent is a caller-submitted request to change match state. Human intents
// arrive from the driver; AI intents are produced by the decision engine and
// submitted through the exact same path.
type Intent struct {
	Kind     IntentKind
	PlayerID string

	// PlayCard
	CardID   string
	TargetID string // optional target: creature instance id or TargetFace

	// Attack
	AttackerID string

	// Mulligan: hand indexes to replace
	Replace []int
}

// ResultCode classifies the outcome of submitting an intent. Every rejection
// is distinguishable from success so the driver can give feedback without
// inspecting game internals.
type ResultCode int

const (
	ResultOK ResultCode = iota
	ResultGameNotRunning
	ResultWrongPhase
	ResultNotYourTurn
	ResultUnknownPlayer
	ResultCardNotInHand
	ResultInsufficientMana
	ResultBoardFull
	ResultInvalidAttacker
	ResultInvalidTarget
	ResultTauntRequired
	ResultAlreadyKept
	ResultUnknownIntent
)

var resultCodeNames = map[ResultCode]string{
	ResultOK:               "OK",
	ResultGameNotRunning:   "GAME_NOT_RUNNING",
	ResultWrongPhase:       "WRONG_PHASE",
	ResultNotYourTurn:      "NOT_YOUR_TURN",
	ResultUnknownPlayer:    "UNKNOWN_PLAYER",
	ResultCardNotInHand:    "CARD_NOT_IN_HAND",
	ResultInsufficientMana: "INSUFFICIENT_MANA",
	ResultBoardFull:        "BOARD_FULL",
	ResultInvalidAttacker:  "INVALID_ATTACKER",
	ResultInvalidTarget:    "INVALID_TARGET",
	ResultTauntRequired:    "TAUNT_REQUIRED",
	ResultAlreadyKept:      "ALREADY_KEPT",
	ResultUnknownIntent:    "UNKNOWN_INTENT",
}

func (c ResultCode) String() string {
	if name, ok := resultCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("RESULT_%d", int(c))
}

// Result is the outcome of submitting an intent. A rejected intent leaves
// match state unchanged.
type Result struct {
	Code    ResultCode
	Message string
}

// OK reports whether the intent was accepted.
func (r Result) OK() bool {
	return r.Code == ResultOK
}

func accepted() Result {
	return Result{Code: ResultOK}
}

func rejected(code ResultCode, format string, args ...any) Result {
	return Result{Code: code, Message: fmt.Sprintf(format, args...)}
}
