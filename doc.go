// Package socialgraph is an in-memory social network: profiles, mutual
// friendships between them, and friend-of-friend suggestions.
//
// What is socialgraph?
//
//	A small, thread-safe store that keeps several indices consistent:
//		• Profiles by id, by name (duplicates allowed) and by full tuple
//		• Symmetric friendship adjacency with O(1) membership
//		• Suggestions ranked by mutual-friend count
//		• A write-only directed mirror of the friendship relation
//
// Under the hood, everything is organized under these subpackages:
//
//	profile/      - Profile value type, identity Key, partial-update Patch
//	social/       - Network: the store and its public operations
//	mirror/       - directed graph that receives every friendship as two arcs
//	analysis/     - degrees of separation and communities (gonum)
//	logging/      - slog CompactHandler and request ids
//	config/       - layered koanf configuration for the CLI
//	cmd/socialnet - interactive menu and scripted demo
//
// Quick ASCII example:
//
//	    Alex───Bella
//	     │       │
//	   Carlos──Diana
//
//	Diana is suggested to Alex with two mutual friends.
//
//	go install github.com/katalvlaran/socialgraph/cmd/socialnet@latest
package socialgraph
