package conversation

import (
	"strings"

	"pizzaiolo/internal/order"
)

// Sentinel is the literal token the model is instructed to emit at the start
// of its reply once it judges the order finished.
const Sentinel = "ORDER_COMPLETE"

// IsComplete decides whether the order is finished after a turn. Two
// independent signals, either of which completes the turn:
//
//  1. the assistant reply begins with the sentinel token, or
//  2. the order has a pizza and a delivery address, and the allergy question
//     was answered (field set, or the user just said they have no allergies).
//
// The second signal is a fallback for turns where the model forgets the
// sentinel. The "no allerg" check here is deliberately independent of the
// extractor's own allergy rule; the two conditions can disagree on a given
// utterance and unifying them would change completion timing.
func IsComplete(o order.PartialOrder, assistantReply, latestUserUtterance string) bool {
	if strings.HasPrefix(assistantReply, Sentinel) {
		return true
	}
	return o.HasPizza() && o.HasAddress() &&
		(o.HasAllergies() || strings.Contains(strings.ToLower(latestUserUtterance), "no allerg"))
}

// StripSentinel removes the first occurrence of the sentinel token from the
// reply and trims surrounding whitespace, yielding the text shown to the user.
func StripSentinel(reply string) string {
	return strings.TrimSpace(strings.Replace(reply, Sentinel, "", 1))
}
