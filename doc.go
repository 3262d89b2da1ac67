// Package saga provides the reactive decision core of the saga pattern: a
// pure function from one action result (an event, or the outcome of a remote
// call) to the follow-up actions it warrants, plus an algebra for composing
// such functions.
//
// Sagas coordinate multi-step business processes across services without a
// central transaction manager. This package deliberately owns only the
// decision step of that loop; receiving action results and dispatching the
// produced actions belong to the surrounding driver.
//
// # Overview
//
//  1. Write a reaction function:
//     - A ReactFunc maps one action result to zero or more actions.
//     - Wrap it with NewSaga. Keep it pure: no I/O, no mutable state.
//  2. Compose:
//     - MapAction and MapActionResult adapt a saga's action or
//       action-result type.
//     - Combine runs two sagas with unrelated types under one tagged-union
//       type (Sum).
//     - Merge runs two sagas over the same action-result type on every
//       input, concatenating their outputs.
//  3. Drive it:
//     - Feed each incoming action result to ComputeNewActions and hand the
//       returned actions to your dispatcher.
//     - Optionally keep named sagas in a Registry for concurrent lookup.
//
// For runnable demos, see the programs under the examples directory.
package saga
