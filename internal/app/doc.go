// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port
// interfaces: the registration form sessions, the course generator and
// library, and the calculator.
package app
