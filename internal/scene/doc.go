// Package scene builds minitui trees from TOML layout descriptions.
//
// A description has one root [node] table. Containers list their children
// as [[...children]] arrays of tables:
//
//	[node]
//	kind = "overlay"
//	width = "flex(100)"
//	height = "flex(100)"
//
//	  [[node.children]]
//	  kind = "leaf"
//	  width = "absolute(40)"
//	  height = "absolute(15)"
//	  widget = "box"
//	  title = " Modal "
//
// Kinds are vertical, horizontal, overlay and leaf. Constraints are written
// fixed(N), flex(N) or absolute(N); an omitted constraint is flex(100).
// Leaf widgets are box, label, fill and login.
package scene
