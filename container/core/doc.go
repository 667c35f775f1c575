// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

/*
Package core implements the container state engine.

# State

A single Engine owns the only mutable state in the process: the gas mass,
the temperature, and the destroyed flag. Every public operation acquires
one exclusive lock for the duration of its critical section; pressure is
derived from mass and temperature on every read and never stored.

# States

The container is a two-state machine:

	Stable    -> Destroyed   guard: pressure < ImplosionLimit or
	                                pressure > ExplosionLimit,
	                         evaluated once per background tick
	Destroyed -> Stable      unconditional, fires on the tick after
	                         entering Destroyed, action: full reset

Mutation operations never change state membership directly, only the
values the next tick's guard evaluates. While destroyed, mass and
temperature are frozen and both mutation operations are no-ops.

# Admission control

IncreaseMass and DecreaseMass are gated by the configured pressure
thresholds. A request that does not meet its threshold is not an error:
it is a logged no-op and the caller observes a successful call with
unchanged state.
*/
package core
