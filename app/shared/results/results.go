// Package results defines the operation result envelope used by every
// application service. A service call distinguishes three outcomes:
//
//   - Success: the operation completed; Success holds the event payload.
//   - Failure: a business precondition failed (duplicate open ticket,
//     unauthorized transition, validation); Failure holds the failure
//     payload that gets published so the caller learns the reason.
//   - error: an infrastructure problem (DB down, bad payload); the message
//     is retried or dead-lettered by the router, nothing is published.
package results

// OperationResult carries either a success or a failure payload. Exactly one
// side should be non-nil on a normal return; both nil with a non-nil error
// signals an infrastructure fault.
type OperationResult struct {
	Success any
	Failure any
}

// SuccessResult wraps a success payload.
func SuccessResult(payload any) OperationResult {
	return OperationResult{Success: payload}
}

// FailureResult wraps a business failure payload.
func FailureResult(payload any) OperationResult {
	return OperationResult{Failure: payload}
}

// HandlerResult is a topic/payload pair produced when mapping an operation
// result onto outbound events.
type HandlerResult struct {
	Topic    string
	Payload  any
	Metadata map[string]string
}

// MapToHandlerResults converts the result into at most one outbound event:
// the success payload on successTopic, or the failure payload on
// failureTopic. An empty result maps to no events.
func (r OperationResult) MapToHandlerResults(successTopic, failureTopic string) []HandlerResult {
	switch {
	case r.Success != nil:
		return []HandlerResult{{Topic: successTopic, Payload: r.Success}}
	case r.Failure != nil:
		return []HandlerResult{{Topic: failureTopic, Payload: r.Failure}}
	default:
		return nil
	}
}
