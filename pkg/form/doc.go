// Package form provides the in-memory form model the formkit helpers operate
// on: a Group of named Controls, each holding a value, an ordered list of
// validators, the resulting error set and the usual interaction marks
// (touched, dirty, pristine, disabled).
//
// # Architecture
//
// Form is the interface every helper accepts. Group is its only
// implementation; there is no typed/untyped split. Controls are attached to a
// Group by name and keep a pointer back to it so that, unless OnlySelf is
// requested, value, validity and touched changes propagate to the group.
//
// Validity is recomputed synchronously by UpdateValueAndValidity, which runs
// the control's validators (see package validator) and stores failures under
// their error code. Disabled controls never report errors.
//
// Change notifications are delivered synchronously to listeners registered
// with Group.Subscribe. Every mutating method accepts Option values; Silent
// suppresses the notification, OnlySelf stops propagation to the group.
//
// # Usage
//
//	g := form.New()
//	g.AddControl("email", form.NewControl("", validator.Required(), validator.Email()))
//	g.PatchValue(map[string]any{"email": "john@example.com"})
//	if !g.Valid() {
//	    return g.Err()
//	}
//
// # Concurrency
//
// Groups and controls are single-owner values and are not safe for
// concurrent use.
package form
