// Package ms reads the text output of Hudson's ms coalescent simulator.
//
// A stream starts with the command line and the random seed, followed by one
// block per replicate introduced by a "//" line:
//
//	ms 6 2 -t 5.0 -I 2 4 2 -r 2.0 1000
//	4125 23508 35624
//
//	//
//	segsites: 3
//	positions: 0.1043 0.5512 0.9130
//	101
//	...
//
// Reader walks the blocks in order; Args exposes the parsed command line; and
// ToBasePositions turns relative site positions into distinct base
// coordinates on the simulated locus.
package ms
