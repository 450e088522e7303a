// Package taxicab is an exhaustive search for numbers that are the sum of
// two positive cubes in two different ways.
//
// 🚀 What is a taxicab quadruple?
//
//	Four distinct positive integers with a³ + b³ = c³ + d³, a < b, c < d.
//	The smallest common sum is 1729 = 1³ + 12³ = 9³ + 10³.
//
// Under the hood, everything is organized under these packages:
//
//	search/           — the enumeration engine, options, result types, line format
//	internal/config/  — YAML file + TAXICAB_* environment configuration
//	internal/logging/ — zap logger on stderr
//	cmd/taxicab/      — command-line entry point
//
// Quick example:
//
//	$ taxicab --bound 13
//	1 12 1729 9 10
//	9 10 1729 1 12
//
//	go install github.com/katalvlaran/taxicab/cmd/taxicab@latest
package taxicab
