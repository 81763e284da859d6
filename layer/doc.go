// Package layer implements the packer (spec.md §4.2): for each conduction
// section it determines how many layers are needed to hold the section's
// turns under the section's layer orientation, splits partial windings
// across layers in declaration order, and inserts inter-layer insulation
// layers. An insulation section packs into a single insulation layer
// spanning its geometry.
package layer
