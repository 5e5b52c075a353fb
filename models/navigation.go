package models

// NavigationKind discriminates the variants of [NavigationState].
type NavigationKind int

const (
	// NavigationInitialScreen is shown while a load cycle is in flight.
	NavigationInitialScreen NavigationKind = iota

	// NavigationPrimaryInterface is the app's own main interface.
	NavigationPrimaryInterface

	// NavigationBrowserContent hands the session over to a
	// remote-supplied destination.
	NavigationBrowserContent

	// NavigationFailureMessage presents a failure with a retry option.
	NavigationFailureMessage
)

// String returns the kind name for logs.
func (k NavigationKind) String() string {
	switch k {
	case NavigationInitialScreen:
		return "initial-screen"
	case NavigationPrimaryInterface:
		return "primary-interface"
	case NavigationBrowserContent:
		return "browser-content"
	case NavigationFailureMessage:
		return "failure-message"
	default:
		return "unknown"
	}
}

// NavigationState is the single value driving top-level navigation.
//
// Destination is meaningful only for [NavigationBrowserContent], Message only
// for [NavigationFailureMessage]. Cycle records which load attempt produced
// the state; consumers treat it as opaque.
type NavigationState struct {
	// Kind selects the active variant.
	Kind NavigationKind

	// Destination is the remote page to show for BrowserContent states.
	Destination string

	// Message is the display text for FailureMessage states.
	Message string

	// Cycle is the load attempt that produced this state.
	Cycle uint64
}

// NewInitialScreenState constructs the in-flight state.
func NewInitialScreenState() NavigationState {
	return NavigationState{Kind: NavigationInitialScreen}
}

// NewPrimaryInterfaceState constructs the local-interface state.
func NewPrimaryInterfaceState() NavigationState {
	return NavigationState{Kind: NavigationPrimaryInterface}
}

// NewBrowserContentState constructs the remote-handoff state.
func NewBrowserContentState(destination string) NavigationState {
	return NavigationState{
		Kind:        NavigationBrowserContent,
		Destination: destination,
	}
}

// NewFailureMessageState constructs the failure state.
func NewFailureMessageState(message string) NavigationState {
	return NavigationState{
		Kind:    NavigationFailureMessage,
		Message: message,
	}
}
