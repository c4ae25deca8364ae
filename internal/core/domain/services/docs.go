// Package services provides domain services that implement business rules
// spanning more than one aggregate or depending on persisted state.
//
// The package includes:
//   - AccessPolicy: decides which users may interact with the system,
//     combining configured admin ids with the persisted whitelist
package services
