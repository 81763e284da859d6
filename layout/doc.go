// Package layout defines the small, closed enumerations shared by every
// stage of the placement pipeline — orientation, alignment, winding
// style, turn direction, isolation side, entity type — so that section,
// layer, turn, and policy do not each redeclare them or import one
// another just to share a type.
package layout
