// Package speech defines the optional voice capabilities as explicit
// interfaces so the ordering core can be tested without any audio subsystem
// present. Implementations wrap whatever speech engine the deployment uses;
// the core only ever sees transcribed text on the same channel a typed
// message would use.
package speech

// Recognizer captures spoken input and delivers transcripts.
type Recognizer interface {
	// Start begins capture; each finished transcript is passed to
	// onTranscript. Calling Start while capturing is an error.
	Start(onTranscript func(text string)) error
	// Stop ends capture. Stopping an idle recognizer is a no-op.
	Stop() error
}

// Synthesizer plays back assistant replies. Speak is fire-and-forget; the
// core does not depend on a success or failure contract.
type Synthesizer interface {
	Speak(text string) error
}

// NoopRecognizer is a Recognizer that never produces transcripts. Used when
// voice input is disabled.
type NoopRecognizer struct{}

func (NoopRecognizer) Start(func(string)) error { return nil }
func (NoopRecognizer) Stop() error              { return nil }

// NoopSynthesizer is a Synthesizer that discards all output.
type NoopSynthesizer struct{}

func (NoopSynthesizer) Speak(string) error { return nil }
