// Package cloud holds the shared tag cloud domain types and the error
// taxonomy used across the pipeline.
//
// Pipeline stages tag failures with the exported sentinel errors so callers
// can classify them with errors.Is without parsing messages. Wrap is the
// single constructor for tagged errors; prefer it over hand-rolled
// fmt.Errorf chains so every failure carries component and operation
// context.
package cloud
