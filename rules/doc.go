// Package rules holds the VitalCheck business rules: vital sign validation and
// severity banding, appointment date and conflict checks, medication schedule
// validation and the medication reminder generator.
//
// Every function here is pure. Nothing is logged, persisted or cached, so the
// functions are safe to call from any number of goroutines.
package rules
