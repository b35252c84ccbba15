// Package mapping provides the YAML accessor table: explicit accessor names
// and ignore lists per struct type, for fields whose accessors do not follow
// the naming convention.
//
// Example:
//
//	version: "1"
//	types:
//	  - type: graph.Post
//	    ignore: cachedAt
//	    fields:
//	      commentList: {adder: AddComment, remover: RemoveComment}
package mapping
