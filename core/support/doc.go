// Package support implements a chain of responsibility for customer support
// requests.
//
// A chain is a singly linked list of Handler values. Each TopicHandler
// services exactly one RequestType and forwards everything else to its
// successor. Every chain ends in a NoSupportHandler which accepts any request,
// so dispatch always produces an Outcome.
//
//	chain := support.BuildChain(
//	    support.NewBillingHandler(),
//	    support.NewTechnicalHandler(),
//	)
//	out := chain.Handle(support.NewRequest(support.Technical, "Unable to login."))
//	// out.Handler == "technical"
//
// Chains are built once and are then safe for concurrent Handle calls.
package support
