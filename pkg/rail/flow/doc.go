// Package flow lifts the step primitives over channels for concurrent
// pipelines: one Result per message, fan-out across items, never across
// the steps of a single item.
//
// Common usage:
// - ToResults: wrap raw inputs as successful Results on a channel
// - Validate/Bind/Map/Tee/Try/DoubleMap/DoubleTee: build a Stage
// - Run/Turnout: drive a stage with a worker pool (Turnout changes type)
// - RunWith/TurnoutWith: add cancel routing and success callbacks
// - Finally: fold Results into plain values via handlers
// - Collect/First: consume the output channel
//
// Cancellation routing is explicit: CancelHandlers plus the DrainRemaining
// helpers decide whether queued items surface as canceled Results or are
// dropped, configurable per context via WithDrainOnCancel.
package flow
