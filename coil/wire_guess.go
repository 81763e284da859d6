package coil

import (
	"math"
	"sort"

	"github.com/gowind/coilwind/wire"
)

// copperResistivityOhmM is copper's volume resistivity at 20C, in
// ohm-meters.
const copperResistivityOhmM = 1.68e-8

// GuessRoundWireFromDcResistance is the standalone helper spec.md §6 names
// "guessRoundWireFromDcResistance([R…], length)": given a catalog of round
// wire candidates, a target DC resistance per winding, and an estimated
// mean turn length shared by every winding, it returns the smallest
// (by conducting diameter) candidate meeting each target. Only copper
// conductors are supported; any other Material is skipped.
func GuessRoundWireFromDcResistance(candidates []wire.Record, targets map[string]float64, meanTurnLength float64) (map[string]wire.Record, error) {
	round := make([]wire.Record, 0, len(candidates))
	for _, r := range candidates {
		if r.Type == wire.Round && r.Material == "copper" {
			round = append(round, r)
		}
	}
	sort.Slice(round, func(i, j int) bool {
		return round[i].NominalConductingDiameter < round[j].NominalConductingDiameter
	})

	out := make(map[string]wire.Record, len(targets))
	for name, target := range targets {
		rec, ok := smallestMeeting(round, target, meanTurnLength)
		if !ok {
			return nil, newError(ErrNoWireMeetsResistance)
		}

		out[name] = rec
	}

	return out, nil
}

// smallestMeeting returns the first (smallest-diameter) record in round,
// sorted ascending, whose DC resistance over length is <= targetOhms.
func smallestMeeting(round []wire.Record, targetOhms, length float64) (wire.Record, bool) {
	for _, r := range round {
		if dcResistance(r, length) <= targetOhms {
			return r, true
		}
	}

	return wire.Record{}, false
}

// dcResistance computes R = resistivity * length / crossSectionArea for
// a round conductor of diameter r.NominalConductingDiameter.
func dcResistance(r wire.Record, length float64) float64 {
	radius := r.NominalConductingDiameter / 2
	area := math.Pi * radius * radius

	return copperResistivityOhmM * length / area
}
