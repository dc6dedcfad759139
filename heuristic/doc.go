// Package heuristic provides remaining-cost estimates for the informed
// searches in package search.
//
// The central type is Table: a precomputed straight-line-distance lookup
// towards a single designated target. A Table only answers for that
// target; asked about any other goal it returns 0, which turns Greedy and
// A* into uninformed (but still correct) searches. This mirrors the
// classic Romania exercise, where the table is measured to Bucharest only.
//
// Zero is the always-0 estimate used when no heuristic is configured,
// and Func adapts a plain function.
package heuristic
