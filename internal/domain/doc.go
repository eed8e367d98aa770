// Package domain holds what the entity packages (registration, course,
// calculator) share: sentinel errors, ValidationError and the Action and
// WriteStager contracts of the unit of work.
package domain
